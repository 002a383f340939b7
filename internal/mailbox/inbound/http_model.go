package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/usecase"
)

type RecipientRequest struct {
	ID   int64  `json:"id,string"`
	Type string `json:"type" example:"user"`
}

type ComposeRequest struct {
	Subject    string             `json:"subject"`
	Body       string             `json:"body"`
	Recipients []RecipientRequest `json:"recipients"`
}

func (r ComposeRequest) recipients() []usecase.RecipientInput {
	out := make([]usecase.RecipientInput, 0, len(r.Recipients))
	for _, rec := range r.Recipients {
		out = append(out, usecase.RecipientInput{ID: rec.ID, Type: rec.Type})
	}
	return out
}

type RecipientResponse struct {
	ID       int64      `json:"id,string"`
	Type     string     `json:"type"`
	Email    string     `json:"email,omitempty"`
	FullName string     `json:"full_name,omitempty"`
	IsRead   bool       `json:"is_read"`
	ReadAt   *time.Time `json:"read_at,omitempty"`
}

type MessageResponse struct {
	ID         int64               `json:"id,string"`
	Subject    string              `json:"subject"`
	Body       string              `json:"body"`
	SenderID   int64               `json:"sender_id,string"`
	SenderName string              `json:"sender_name,omitempty"`
	IsDraft    bool                `json:"is_draft"`
	SentAt     *time.Time          `json:"sent_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Recipients []RecipientResponse `json:"recipients"`
}

func newMessageResponse(m entity.Message, users map[int64]entity.User) MessageResponse {
	recipients := make([]RecipientResponse, 0, len(m.Recipients))
	for _, l := range m.Recipients {
		rr := RecipientResponse{
			ID:     l.RecipientID,
			Type:   l.RecipientKind.String(),
			IsRead: l.IsRead,
			ReadAt: l.ReadAt,
		}
		if u, ok := users[l.RecipientID]; ok && l.RecipientKind == entity.RecipientKindUser {
			rr.Email = u.Email
			rr.FullName = u.FullName
		}
		recipients = append(recipients, rr)
	}

	return MessageResponse{
		ID:         m.ID,
		Subject:    m.Subject,
		Body:       m.Body,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		IsDraft:    m.IsDraft,
		SentAt:     m.SentAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Recipients: recipients,
	}
}

type SentMessageResponse struct {
	MessageResponse
}

func (SentMessageResponse) Message() string { return "Message has been sent" }
func (SentMessageResponse) StatusCode() int { return http.StatusCreated }

type DraftResponse struct {
	MessageResponse
}

func (DraftResponse) Message() string { return "Draft has been saved" }

type MessageSummaryResponse struct {
	ID             int64      `json:"id,string"`
	Subject        string     `json:"subject"`
	Preview        string     `json:"preview"`
	SenderID       int64      `json:"sender_id,string"`
	SenderName     string     `json:"sender_name"`
	SenderEmail    string     `json:"sender_email"`
	IsRead         bool       `json:"is_read"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
	RecipientCount int32      `json:"recipient_count"`
}

type MessagesResponse struct {
	Messages []MessageSummaryResponse `json:"messages"`
	// meta
	total *int64
	size  int32
	page  int32
}

func (r MessagesResponse) Meta() map[string]any {
	meta := map[string]any{
		"size": r.size,
		"page": r.page,
	}
	if r.total != nil {
		meta["total"] = *r.total
	}
	return meta
}

func newMessagesResponse(items []entity.MessageSummary, page, size int32) MessagesResponse {
	msgs := make([]MessageSummaryResponse, 0, len(items))
	for _, m := range items {
		msgs = append(msgs, MessageSummaryResponse{
			ID:             m.ID,
			Subject:        m.Subject,
			Preview:        m.Preview,
			SenderID:       m.SenderID,
			SenderName:     m.SenderName,
			SenderEmail:    m.SenderEmail,
			IsRead:         m.IsRead,
			SentAt:         m.SentAt,
			UpdatedAt:      m.UpdatedAt,
			RecipientCount: m.RecipientCount,
		})
	}

	return MessagesResponse{Messages: msgs, page: page, size: size}
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type RecipientSuggestionResponse struct {
	ID          int64    `json:"id,string"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Email       string   `json:"email,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	MemberCount int32    `json:"member_count,omitempty"`
}

type SearchRecipientsResponse struct {
	Recipients []RecipientSuggestionResponse `json:"recipients"`
}

type GroupMemberResponse struct {
	ID       int64  `json:"id,string"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type GroupDetailResponse struct {
	ID          int64                 `json:"id,string"`
	Name        string                `json:"name"`
	MemberCount int                   `json:"member_count"`
	Members     []GroupMemberResponse `json:"members"`
}

type GroupCreateRequest struct {
	Name      string  `json:"name"`
	MemberIDs []int64 `json:"member_ids"`
}

type GroupCreateResponse struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

func (GroupCreateResponse) StatusCode() int { return http.StatusCreated }

type GroupMembersReplaceRequest struct {
	MemberIDs []int64 `json:"member_ids"`
}
