package entity

import (
	"time"
)

type User struct {
	ID                int64
	Email             string
	FullName          string
	AvatarURL         string
	Status            UserStatus
	Roles             []string
	PasswordChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

type Challenge struct {
	ID        int64
	UserID    int64
	Token     string
	Purpose   ChallengePurpose
	ExpiresAt time.Time
}

type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// ---- //

type ChallengeUser struct {
	ChallengeID        int64
	ChallengePurpose   ChallengePurpose
	ChallengeExpiresAt time.Time
	UserID             int64
	UserEmail          string
	UserStatus         UserStatus
}

type UserLoginInfo struct {
	ID       int64
	Email    string
	Status   UserStatus
	Password string
	Roles    []string
}

type UserCredentialInfo struct {
	ID       int64
	Email    string
	Status   UserStatus
	Password string
}

type RotateRefreshToken struct {
	NewID        int64
	OldID        int64
	UserID       int64
	NewToken     string
	NewExpiresAt time.Time
}

type UserRefreshToken struct {
	UserID                   int64
	UserEmail                string
	UserStatus               UserStatus
	UserRoles                []string
	RefreshID                int64
	RefreshRevoked           bool
	RefreshReplacedByTokenID *int64
	RefreshExpiresAt         time.Time
}

type ActivateUser struct {
	ChallengeID int64
	UserID      int64
}

type UserListFilter struct {
	Search   string
	Statuses []int16
	Role     string
	Size     int32
	Offset   int32
}

type NewUser struct {
	ID        int64
	Email     string
	FullName  string
	AvatarURL string
	Status    UserStatus
	Roles     []string
	CreatedBy int64
}

// PatchUser carries a partial update. Zero values keep the stored value and a
// nil Roles leaves role assignments untouched.
type PatchUser struct {
	ID        int64
	Email     string
	FullName  string
	AvatarURL string
	Status    UserStatus
	Roles     []string
	UpdatedBy int64
}
