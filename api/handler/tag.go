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
	tagUC "github.com/myplanner/backend/usecase/tag"
)

type TagHandler struct {
	baseHandler
	uc *tagUC.UseCase
}

func NewTagHandler(uc *tagUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TagHandler {
	return &TagHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tags
// @Tags tags
// @Router /api/v1/tags [get]
func (h *TagHandler) GetTags(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	limit, offset := pageParams(ctx)
	filter := repository.TagFilter{
		OwnerID: userID,
		Query:   string(ctx.QueryArgs().Peek("q")),
		Sort:    string(ctx.QueryArgs().Peek("sort")),
		Limit:   limit,
		Offset:  offset,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tags, total, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(tags, transport.PageMeta{Limit: limit, Offset: offset, Total: total}))
}

// @Summary Get a tag
// @Tags tags
// @Router /api/v1/tags/{id} [get]
func (h *TagHandler) GetTag(ctx *fasthttp.RequestCtx) {
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

	tag, err := h.uc.Get(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tag)
}

// @Summary Create tag
// @Tags tags
// @Router /api/v1/tags [post]
func (h *TagHandler) CreateTag(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	tag, ok := h.parseTag(ctx, userID)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, tag)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update tag
// @Tags tags
// @Router /api/v1/tags/{id} [put]
func (h *TagHandler) UpdateTag(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	tag, ok := h.parseTag(ctx, userID)
	if !ok {
		return
	}
	if tag.ID == "" {
		tag.ID, _ = ctx.UserValue("id").(string)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, tag)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete tag (detaches it from tasks)
// @Tags tags
// @Router /api/v1/tags/{id} [delete]
func (h *TagHandler) DeleteTag(ctx *fasthttp.RequestCtx) {
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

// @Summary Bulk delete tags
// @Tags tags
// @Router /api/v1/tags [delete]
func (h *TagHandler) BulkDeleteTags(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.TagBulkDeleteRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || len(req.IDs) == 0 {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.BulkDelete(stdCtx, userID, req.IDs)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"deleted": deleted})
}

func (h *TagHandler) parseTag(ctx *fasthttp.RequestCtx, userID string) (*domain.Tag, bool) {
	var req transport.TagRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	return &domain.Tag{
		ID:      req.ID,
		OwnerID: userID,
		Name:    req.Name,
		Color:   req.Color,
	}, true
}
