package entity

// User is the directory view of an account used for addressing and notifying.
type User struct {
	ID       int64
	Email    string
	FullName string
	IsActive bool
	Roles    []string
}

// Group is a named set of users addressable as a single recipient.
type Group struct {
	ID        int64
	Name      string
	MemberIDs []int64
}

// GroupSummary is a search row for groups.
type GroupSummary struct {
	ID          int64
	Name        string
	MemberCount int32
}

// GroupMember is a resolved member of a group.
type GroupMember struct {
	UserID   int64
	Email    string
	FullName string
}
