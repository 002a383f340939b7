package entity

import (
	"strconv"
	"strings"
	"time"
)

// RecipientKind tags what a recipient entity id points at.
type RecipientKind int16

const (
	RecipientKindUnknown RecipientKind = iota
	RecipientKindUser
	RecipientKindGroup
)

func (k RecipientKind) String() string {
	switch k {
	case RecipientKindUser:
		return "user"
	case RecipientKindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// RecipientKindFromString maps the wire value ("user", "group") to a kind.
func RecipientKindFromString(s string) RecipientKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return RecipientKindUser
	case "group":
		return RecipientKindGroup
	default:
		return RecipientKindUnknown
	}
}

// RecipientRef is an addressing reference as supplied by the composer.
type RecipientRef struct {
	Kind RecipientKind
	ID   int64
}

func UserRef(id int64) RecipientRef  { return RecipientRef{Kind: RecipientKindUser, ID: id} }
func GroupRef(id int64) RecipientRef { return RecipientRef{Kind: RecipientKindGroup, ID: id} }

// Key identifies the ref by kind and id, e.g. "group:7".
func (r RecipientRef) Key() string {
	return r.Kind.String() + ":" + strconv.FormatInt(r.ID, 10)
}

// RecipientLink is one persisted recipient row of a message.
type RecipientLink struct {
	RecipientID   int64
	RecipientKind RecipientKind
	IsRead        bool
	ReadAt        *time.Time
}

// Ref returns the addressing reference the link was stored with.
func (l RecipientLink) Ref() RecipientRef {
	return RecipientRef{Kind: l.RecipientKind, ID: l.RecipientID}
}

// UniqueRefs drops repeated refs keeping the first occurrence.
func UniqueRefs(refs []RecipientRef) []RecipientRef {
	seen := make(map[RecipientRef]struct{}, len(refs))
	out := make([]RecipientRef, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
