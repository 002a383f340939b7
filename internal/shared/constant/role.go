package constant

// Roles known to the system. Casbin policies use these as subjects.
const (
	RoleAdmin    = "ADMIN"
	RoleLecturer = "LECTURER"
	RoleStudent  = "STUDENT"
)

// Roles lists every valid role, in display order.
var Roles = []string{RoleAdmin, RoleLecturer, RoleStudent}
