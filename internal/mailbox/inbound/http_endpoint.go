package inbound

import (
	"github.com/shandysiswandi/gomailbox/internal/mailbox/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

const headerIdempotencyKey = "Idempotency-Key"

// HTTPEndpoint exposes HTTP handlers for composing and reading messages.
type HTTPEndpoint struct {
	uc uc
}

// SendMessage composes and sends a message to users and groups.
// @Summary Send message
// @Description Expands group recipients, emails every recipient and stores the message. Nothing is stored when any email fails.
// @Tags Mailbox
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Key that deduplicates retried sends"
// @Param request body ComposeRequest true "Message payload"
// @Success 201 {object} router.successResponse{data=SentMessageResponse} "Sent message"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Sender account not active"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/mailbox/messages [post]
func (h *HTTPEndpoint) SendMessage(r *router.Request) (any, error) {
	var req ComposeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SendMessage(r.Context(), usecase.SendMessageInput{
		Subject:        req.Subject,
		Body:           req.Body,
		Recipients:     req.recipients(),
		IdempotencyKey: r.Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return nil, err
	}

	return SentMessageResponse{MessageResponse: newMessageResponse(resp.Message, nil)}, nil
}

// GetMessage returns one message visible to the caller.
// @Summary Get message
// @Tags Mailbox
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} router.successResponse{data=MessageResponse} "Message"
// @Failure 404 {object} router.errorResponse "Message not found"
// @Router /api/v1/mailbox/messages/{id} [get]
func (h *HTTPEndpoint) GetMessage(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GetMessage(r.Context(), usecase.GetMessageInput{MessageID: id})
	if err != nil {
		return nil, err
	}

	return newMessageResponse(resp.Message, resp.Recipients), nil
}

// MarkRead marks a received message as read.
// @Summary Mark message read
// @Tags Mailbox
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 404 {object} router.errorResponse "Message not found"
// @Router /api/v1/mailbox/messages/{id}/read [post]
func (h *HTTPEndpoint) MarkRead(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.MarkRead(r.Context(), usecase.MarkReadInput{MessageID: id})
}

// MarkUnread marks a received message as unread.
// @Summary Mark message unread
// @Tags Mailbox
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 404 {object} router.errorResponse "Message not found"
// @Router /api/v1/mailbox/messages/{id}/read [delete]
func (h *HTTPEndpoint) MarkUnread(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.MarkUnread(r.Context(), usecase.MarkReadInput{MessageID: id})
}

// UnreadCount returns how many received messages are unread.
// @Summary Unread count
// @Tags Mailbox
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=UnreadCountResponse} "Unread count"
// @Router /api/v1/mailbox/unread-count [get]
func (h *HTTPEndpoint) UnreadCount(r *router.Request) (any, error) {
	resp, err := h.uc.UnreadCount(r.Context())
	if err != nil {
		return nil, err
	}

	return UnreadCountResponse{Count: resp.Count}, nil
}

func listInput(r *router.Request) (usecase.ListMessagesInput, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return usecase.ListMessagesInput{}, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return usecase.ListMessagesInput{}, err
	}

	return usecase.ListMessagesInput{Search: r.GetQuery("search"), Page: page, Size: size}, nil
}

// GetInbox lists received messages.
// @Summary Inbox
// @Description Lists received messages ordered by sent time, newest first.
// @Tags Mailbox
// @Security BearerAuth
// @Produce json
// @Param search query string false "Subject search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} router.successResponse{data=MessagesResponse} "Messages"
// @Router /api/v1/mailbox/inbox [get]
func (h *HTTPEndpoint) GetInbox(r *router.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GetInbox(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return newMessagesResponse(resp.Messages, resp.Page, resp.Size), nil
}

// GetSent lists sent messages.
// @Summary Sent
// @Tags Mailbox
// @Security BearerAuth
// @Produce json
// @Param search query string false "Subject search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} router.successResponse{data=MessagesResponse} "Messages"
// @Router /api/v1/mailbox/sent [get]
func (h *HTTPEndpoint) GetSent(r *router.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GetSent(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return newMessagesResponse(resp.Messages, resp.Page, resp.Size), nil
}

// GetDrafts lists drafts.
// @Summary Drafts
// @Tags Mailbox
// @Security BearerAuth
// @Produce json
// @Param search query string false "Subject search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} router.successResponse{data=MessagesResponse} "Drafts"
// @Router /api/v1/mailbox/drafts [get]
func (h *HTTPEndpoint) GetDrafts(r *router.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GetDrafts(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return newMessagesResponse(resp.Messages, resp.Page, resp.Size), nil
}

// ListAllMessages lists every sent message for administrators.
// @Summary All messages
// @Tags Mailbox, Administration
// @Security BearerAuth
// @Produce json
// @Param search query string false "Subject search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} router.successResponse{data=MessagesResponse} "Messages"
// @Failure 403 {object} router.errorResponse "Account not allowed"
// @Router /api/v1/mailbox/admin/messages [get]
func (h *HTTPEndpoint) ListAllMessages(r *router.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ListAllMessages(r.Context(), in)
	if err != nil {
		return nil, err
	}

	out := newMessagesResponse(resp.Messages, resp.Page, resp.Size)
	out.total = &resp.Total
	return out, nil
}

// SaveDraft creates a draft.
// @Summary Save draft
// @Tags Mailbox
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ComposeRequest true "Draft payload"
// @Success 200 {object} router.successResponse{data=DraftResponse} "Draft"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/mailbox/drafts [post]
func (h *HTTPEndpoint) SaveDraft(r *router.Request) (any, error) {
	var req ComposeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SaveDraft(r.Context(), usecase.SaveDraftInput{
		Subject:    req.Subject,
		Body:       req.Body,
		Recipients: req.recipients(),
	})
	if err != nil {
		return nil, err
	}

	return DraftResponse{MessageResponse: newMessageResponse(resp.Draft, nil)}, nil
}

// UpdateDraft replaces a draft's content and recipients.
// @Summary Update draft
// @Tags Mailbox
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body ComposeRequest true "Draft payload"
// @Success 200 {object} router.successResponse{data=DraftResponse} "Draft"
// @Failure 404 {object} router.errorResponse "Message not found"
// @Router /api/v1/mailbox/drafts/{id} [put]
func (h *HTTPEndpoint) UpdateDraft(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ComposeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UpdateDraft(r.Context(), usecase.UpdateDraftInput{
		DraftID:    id,
		Subject:    req.Subject,
		Body:       req.Body,
		Recipients: req.recipients(),
	})
	if err != nil {
		return nil, err
	}

	return DraftResponse{MessageResponse: newMessageResponse(resp.Draft, nil)}, nil
}

// DeleteDraft removes a draft.
// @Summary Delete draft
// @Tags Mailbox
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 404 {object} router.errorResponse "Message not found"
// @Router /api/v1/mailbox/drafts/{id} [delete]
func (h *HTTPEndpoint) DeleteDraft(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.DeleteDraft(r.Context(), usecase.DeleteDraftInput{DraftID: id})
}

// SendDraft sends a saved draft.
// @Summary Send draft
// @Tags Mailbox
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} router.successResponse{data=SentMessageResponse} "Sent message"
// @Failure 404 {object} router.errorResponse "Message not found"
// @Failure 422 {object} router.errorResponse "Draft not ready to send"
// @Router /api/v1/mailbox/drafts/{id}/send [post]
func (h *HTTPEndpoint) SendDraft(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.SendDraft(r.Context(), usecase.SendDraftInput{DraftID: id})
	if err != nil {
		return nil, err
	}

	return SentMessageResponse{MessageResponse: newMessageResponse(resp.Message, nil)}, nil
}

// SearchRecipients suggests users and groups to address.
// @Summary Search recipients
// @Tags Mailbox
// @Security BearerAuth
// @Produce json
// @Param q query string true "Name or email fragment"
// @Success 200 {object} router.successResponse{data=SearchRecipientsResponse} "Suggestions"
// @Router /api/v1/mailbox/recipients [get]
func (h *HTTPEndpoint) SearchRecipients(r *router.Request) (any, error) {
	resp, err := h.uc.SearchRecipients(r.Context(), usecase.SearchRecipientsInput{Term: r.GetQuery("q")})
	if err != nil {
		return nil, err
	}

	out := make([]RecipientSuggestionResponse, 0, len(resp.Users)+len(resp.Groups))
	for _, u := range resp.Users {
		out = append(out, RecipientSuggestionResponse{
			ID:    u.ID,
			Type:  "user",
			Name:  u.FullName,
			Email: u.Email,
			Roles: u.Roles,
		})
	}
	for _, g := range resp.Groups {
		out = append(out, RecipientSuggestionResponse{
			ID:          g.ID,
			Type:        "group",
			Name:        g.Name,
			MemberCount: g.MemberCount,
		})
	}

	return SearchRecipientsResponse{Recipients: out}, nil
}

// GroupDetail returns a group with its members.
// @Summary Group detail
// @Tags Mailbox
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} router.successResponse{data=GroupDetailResponse} "Group"
// @Failure 404 {object} router.errorResponse "Group not found"
// @Router /api/v1/mailbox/groups/{id} [get]
func (h *HTTPEndpoint) GroupDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GroupDetail(r.Context(), usecase.GroupDetailInput{GroupID: id})
	if err != nil {
		return nil, err
	}

	members := make([]GroupMemberResponse, 0, len(resp.Members))
	for _, m := range resp.Members {
		members = append(members, GroupMemberResponse{ID: m.UserID, Email: m.Email, FullName: m.FullName})
	}

	return GroupDetailResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		MemberCount: len(members),
		Members:     members,
	}, nil
}

// GroupCreate creates a recipient group.
// @Summary Create group
// @Tags Mailbox, Administration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body GroupCreateRequest true "Group payload"
// @Success 201 {object} router.successResponse{data=GroupCreateResponse} "Group"
// @Failure 403 {object} router.errorResponse "Account not allowed"
// @Failure 409 {object} router.errorResponse "Group name already exists"
// @Router /api/v1/mailbox/admin/groups [post]
func (h *HTTPEndpoint) GroupCreate(r *router.Request) (any, error) {
	var req GroupCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	group, err := h.uc.GroupCreate(r.Context(), usecase.GroupCreateInput{Name: req.Name, MemberIDs: req.MemberIDs})
	if err != nil {
		return nil, err
	}

	return GroupCreateResponse{ID: group.ID, Name: group.Name}, nil
}

// GroupMembersReplace replaces the members of a group.
// @Summary Replace group members
// @Tags Mailbox, Administration
// @Security BearerAuth
// @Accept json
// @Param id path string true "Group ID"
// @Param request body GroupMembersReplaceRequest true "Members payload"
// @Success 204 "No Content"
// @Failure 404 {object} router.errorResponse "Group not found"
// @Router /api/v1/mailbox/admin/groups/{id}/members [put]
func (h *HTTPEndpoint) GroupMembersReplace(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req GroupMembersReplaceRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.GroupMembersReplace(r.Context(), usecase.GroupMembersReplaceInput{GroupID: id, MemberIDs: req.MemberIDs})
}

// GroupDelete deletes a group. Messages already sent to it are unaffected.
// @Summary Delete group
// @Tags Mailbox, Administration
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 204 "No Content"
// @Failure 404 {object} router.errorResponse "Group not found"
// @Router /api/v1/mailbox/admin/groups/{id} [delete]
func (h *HTTPEndpoint) GroupDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.GroupDelete(r.Context(), usecase.GroupDeleteInput{GroupID: id})
}
