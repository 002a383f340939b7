package inbound

import (
	"context"

	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

type uc interface {
	SendMessage(ctx context.Context, in usecase.SendMessageInput) (*usecase.SendMessageOutput, error)
	GetMessage(ctx context.Context, in usecase.GetMessageInput) (*usecase.GetMessageOutput, error)
	MarkRead(ctx context.Context, in usecase.MarkReadInput) error
	MarkUnread(ctx context.Context, in usecase.MarkReadInput) error
	UnreadCount(ctx context.Context) (*usecase.UnreadCountOutput, error)

	GetInbox(ctx context.Context, in usecase.ListMessagesInput) (*usecase.ListMessagesOutput, error)
	GetSent(ctx context.Context, in usecase.ListMessagesInput) (*usecase.ListMessagesOutput, error)
	GetDrafts(ctx context.Context, in usecase.ListMessagesInput) (*usecase.ListMessagesOutput, error)
	ListAllMessages(ctx context.Context, in usecase.ListMessagesInput) (*usecase.ListAllMessagesOutput, error)

	SaveDraft(ctx context.Context, in usecase.SaveDraftInput) (*usecase.DraftOutput, error)
	UpdateDraft(ctx context.Context, in usecase.UpdateDraftInput) (*usecase.DraftOutput, error)
	DeleteDraft(ctx context.Context, in usecase.DeleteDraftInput) error
	SendDraft(ctx context.Context, in usecase.SendDraftInput) (*usecase.SendMessageOutput, error)

	SearchRecipients(ctx context.Context, in usecase.SearchRecipientsInput) (*usecase.SearchRecipientsOutput, error)
	GroupDetail(ctx context.Context, in usecase.GroupDetailInput) (*usecase.GroupDetailOutput, error)
	GroupCreate(ctx context.Context, in usecase.GroupCreateInput) (*entity.Group, error)
	GroupMembersReplace(ctx context.Context, in usecase.GroupMembersReplaceInput) error
	GroupDelete(ctx context.Context, in usecase.GroupDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Messages (need authenticated)
	r.POST("/api/v1/mailbox/messages", end.SendMessage)
	r.GET("/api/v1/mailbox/messages/:id", end.GetMessage)
	r.POST("/api/v1/mailbox/messages/:id/read", end.MarkRead)
	r.DELETE("/api/v1/mailbox/messages/:id/read", end.MarkUnread)
	r.GET("/api/v1/mailbox/unread-count", end.UnreadCount)

	// Folders
	r.GET("/api/v1/mailbox/inbox", end.GetInbox)
	r.GET("/api/v1/mailbox/sent", end.GetSent)
	r.GET("/api/v1/mailbox/drafts", end.GetDrafts)

	// Drafts
	r.POST("/api/v1/mailbox/drafts", end.SaveDraft)
	r.PUT("/api/v1/mailbox/drafts/:id", end.UpdateDraft)
	r.DELETE("/api/v1/mailbox/drafts/:id", end.DeleteDraft)
	r.POST("/api/v1/mailbox/drafts/:id/send", end.SendDraft)

	// Addressing
	r.GET("/api/v1/mailbox/recipients", end.SearchRecipients)
	r.GET("/api/v1/mailbox/groups/:id", end.GroupDetail)

	// Administration (need authenticated & authorization)
	r.GET("/api/v1/mailbox/admin/messages", end.ListAllMessages)
	r.POST("/api/v1/mailbox/admin/groups", end.GroupCreate)
	r.PUT("/api/v1/mailbox/admin/groups/:id/members", end.GroupMembersReplace)
	r.DELETE("/api/v1/mailbox/admin/groups/:id", end.GroupDelete)
}
