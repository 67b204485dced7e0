package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/myplanner/backend/api/transport"
	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/pkg/httpcontext"
	"github.com/myplanner/backend/repository"
	reminderUC "github.com/myplanner/backend/usecase/reminder"
)

type ReminderHandler struct {
	baseHandler
	uc *reminderUC.UseCase
}

func NewReminderHandler(uc *reminderUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List reminders across the user's tasks
// @Tags reminders
// @Router /api/v1/reminders [get]
func (h *ReminderHandler) GetReminders(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	limit, offset := pageParams(ctx)
	filter := repository.ReminderFilter{
		OwnerID: userID,
		TaskID:  string(ctx.QueryArgs().Peek("task")),
		Sort:    string(ctx.QueryArgs().Peek("sort")),
		Limit:   limit,
		Offset:  offset,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	reminders, total, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(reminders, transport.PageMeta{Limit: limit, Offset: offset, Total: total}))
}

// @Summary Get a reminder
// @Tags reminders
// @Router /api/v1/reminders/{id} [get]
func (h *ReminderHandler) GetReminder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id := h.pathID(ctx, "id")
	if id == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	reminder, err := h.uc.Get(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, reminder)
}

// @Summary Create reminder
// @Tags reminders
// @Router /api/v1/reminders [post]
func (h *ReminderHandler) CreateReminder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	reminder, ok := h.parseReminder(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, userID, reminder)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update reminder
// @Tags reminders
// @Router /api/v1/reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	reminder, ok := h.parseReminder(ctx)
	if !ok {
		return
	}
	if reminder.ID == "" {
		reminder.ID, _ = ctx.UserValue("id").(string)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, userID, reminder)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete reminder
// @Tags reminders
// @Router /api/v1/reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id := h.pathID(ctx, "id")
	if id == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, userID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *ReminderHandler) parseReminder(ctx *fasthttp.RequestCtx) (*domain.Reminder, bool) {
	var req transport.ReminderRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	remindAt, err := parseTimestamp(req.RemindAt)
	if err != nil {
		h.respondError(ctx, err)
		return nil, false
	}

	return &domain.Reminder{
		ID:       req.ID,
		TaskID:   req.TaskID,
		RemindAt: remindAt,
		Note:     req.Note,
	}, true
}
