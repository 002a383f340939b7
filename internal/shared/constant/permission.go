// Package constant holds identifiers shared across modules, mostly casbin
// objects and actions.
package constant

// Permission objects.
const (
	PermIdentityMgmtUsers  = "identity.mgmt.users"
	PermIdentityMgmtRoles  = "identity.mgmt.roles"
	PermMailboxMessages    = "mailbox.messages"
	PermMailboxMessagesAll = "mailbox.messages.all"
	PermMailboxGroups      = "mailbox.groups"
)

// Permission actions.
const (
	PermActRead   = "read"
	PermActCreate = "create"
	PermActUpdate = "update"
	PermActDelete = "delete"
)
