package entity

import (
	"slices"
	"strconv"
)

// UserStatus is the lifecycle state of an account, stored as SMALLINT.
// Accounts are provisioned Unverified, become Active through activation and
// may be switched Inactive by an administrator.
type UserStatus int16

const (
	UserStatusUnknown UserStatus = iota
	UserStatusUnverified
	UserStatusActive
	UserStatusInactive
)

var userStatusNames = [...]string{
	UserStatusUnknown:    "Unknown",
	UserStatusUnverified: "Unverified",
	UserStatusActive:     "Active",
	UserStatusInactive:   "Inactive",
}

func (us UserStatus) String() string {
	return userStatusNames[us.Ensure()]
}

func (us UserStatus) IsUnknown() bool {
	return us <= UserStatusUnknown || int(us) >= len(userStatusNames)
}

// Ensure collapses anything outside the known range to UserStatusUnknown.
func (us UserStatus) Ensure() UserStatus {
	if us.IsUnknown() {
		return UserStatusUnknown
	}
	return us
}

// Toggled flips an account between active and inactive. An unverified account
// becomes active, which is how an administrator activates on a user's behalf.
func (us UserStatus) Toggled() UserStatus {
	if us == UserStatusActive {
		return UserStatusInactive
	}
	return UserStatusActive
}

// StatusFilter turns raw query values into the distinct known statuses, in
// first-seen order, ready to bind as a SMALLINT array. Garbage is skipped.
func StatusFilter(raws []string) []int16 {
	out := make([]int16, 0, len(raws))
	for _, v := range raws {
		n, err := strconv.ParseInt(v, 10, 16)
		if err != nil || UserStatus(n).IsUnknown() {
			continue
		}
		if !slices.Contains(out, int16(n)) {
			out = append(out, int16(n))
		}
	}
	return out
}

// ChallengePurpose scopes a one-time token to the flow that issued it.
type ChallengePurpose int16

const (
	ChallengePurposeUnknown ChallengePurpose = iota
	ChallengePurposeActivation
)
