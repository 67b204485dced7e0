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
	listUC "github.com/myplanner/backend/usecase/list"
)

type ListHandler struct {
	baseHandler
	uc *listUC.UseCase
}

func NewListHandler(uc *listUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ListHandler {
	return &ListHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List to-do lists
// @Tags lists
// @Router /api/v1/lists [get]
func (h *ListHandler) GetLists(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	limit, offset := pageParams(ctx)
	filter := repository.ListFilter{
		OwnerID: userID,
		Query:   string(ctx.QueryArgs().Peek("q")),
		Sort:    string(ctx.QueryArgs().Peek("sort")),
		Limit:   limit,
		Offset:  offset,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	lists, total, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(lists, transport.PageMeta{Limit: limit, Offset: offset, Total: total}))
}

// @Summary Get a to-do list
// @Tags lists
// @Router /api/v1/lists/{id} [get]
func (h *ListHandler) GetList(ctx *fasthttp.RequestCtx) {
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

	list, err := h.uc.Get(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, list)
}

// @Summary Create a to-do list
// @Tags lists
// @Router /api/v1/lists [post]
func (h *ListHandler) CreateList(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	list, ok := h.parseList(ctx, userID)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, list)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update a to-do list
// @Tags lists
// @Router /api/v1/lists/{id} [put]
func (h *ListHandler) UpdateList(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	list, ok := h.parseList(ctx, userID)
	if !ok {
		return
	}
	if list.ID == "" {
		list.ID, _ = ctx.UserValue("id").(string)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, list)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete a to-do list and its tasks
// @Tags lists
// @Router /api/v1/lists/{id} [delete]
func (h *ListHandler) DeleteList(ctx *fasthttp.RequestCtx) {
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

func (h *ListHandler) parseList(ctx *fasthttp.RequestCtx, userID string) (*domain.List, bool) {
	var req transport.ListRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	return &domain.List{
		ID:          req.ID,
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
	}, true
}
