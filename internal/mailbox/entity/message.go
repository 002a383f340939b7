package entity

import "time"

type Message struct {
	ID         int64
	Subject    string
	Body       string
	SenderID   int64
	SenderName string
	IsDraft    bool
	SentAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Recipients []RecipientLink
}

// OwnedDraft reports whether m is a draft whose sender is userID.
func (m *Message) OwnedDraft(userID int64) bool {
	return m != nil && m.IsDraft && m.SenderID == userID
}

// VisibleTo reports whether userID may read m: the sender always, a user
// recipient only once the message is sent.
func (m *Message) VisibleTo(userID int64) bool {
	if m == nil {
		return false
	}
	if m.SenderID == userID {
		return true
	}
	if m.IsDraft {
		return false
	}
	return m.LinkFor(userID) != nil
}

// LinkFor returns the user link of userID, or nil.
func (m *Message) LinkFor(userID int64) *RecipientLink {
	for i := range m.Recipients {
		l := &m.Recipients[i]
		if l.RecipientKind == RecipientKindUser && l.RecipientID == userID {
			return l
		}
	}
	return nil
}

// RecipientRefs returns the refs of every link in stored order.
func (m *Message) RecipientRefs() []RecipientRef {
	refs := make([]RecipientRef, 0, len(m.Recipients))
	for _, l := range m.Recipients {
		refs = append(refs, l.Ref())
	}
	return refs
}

// MessageSummary is a mailbox listing row.
type MessageSummary struct {
	ID             int64
	Subject        string
	Preview        string
	SenderID       int64
	SenderName     string
	SenderEmail    string
	IsRead         bool
	SentAt         *time.Time
	UpdatedAt      time.Time
	RecipientCount int32
}

type MessageListFilter struct {
	UserID int64
	Search string
	Size   int32
	Offset int32
}
