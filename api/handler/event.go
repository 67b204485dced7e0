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
	eventUC "github.com/myplanner/backend/usecase/event"
)

type EventHandler struct {
	baseHandler
	uc *eventUC.UseCase
}

func NewEventHandler(uc *eventUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List events across the user's tasks
// @Tags events
// @Router /api/v1/events [get]
func (h *EventHandler) GetEvents(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	limit, offset := pageParams(ctx)
	filter := repository.EventFilter{
		OwnerID: userID,
		TaskID:  string(ctx.QueryArgs().Peek("task")),
		Sort:    string(ctx.QueryArgs().Peek("sort")),
		Limit:   limit,
		Offset:  offset,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	events, total, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(events, transport.PageMeta{Limit: limit, Offset: offset, Total: total}))
}

// @Summary Get an event
// @Tags events
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) GetEvent(ctx *fasthttp.RequestCtx) {
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

	event, err := h.uc.Get(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, event)
}

// @Summary Create an event for a task
// @Tags events
// @Router /api/v1/events [post]
func (h *EventHandler) CreateEvent(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	event, ok := h.parseEvent(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, userID, event)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update an event
// @Tags events
// @Router /api/v1/events/{id} [put]
func (h *EventHandler) UpdateEvent(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	event, ok := h.parseEvent(ctx)
	if !ok {
		return
	}
	if event.ID == "" {
		event.ID, _ = ctx.UserValue("id").(string)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, userID, event)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete an event
// @Tags events
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) DeleteEvent(ctx *fasthttp.RequestCtx) {
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

func (h *EventHandler) parseEvent(ctx *fasthttp.RequestCtx) (*domain.Event, bool) {
	var req transport.EventRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	start, err := parseTimestamp(req.StartTime)
	if err != nil {
		h.respondError(ctx, err)
		return nil, false
	}
	end, err := parseTimestamp(req.EndTime)
	if err != nil {
		h.respondError(ctx, err)
		return nil, false
	}

	return &domain.Event{
		ID:        req.ID,
		TaskID:    req.TaskID,
		StartTime: start,
		EndTime:   end,
	}, true
}
