package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/myplanner/backend/api/transport"
	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/pkg/httpcontext"
	commentUC "github.com/myplanner/backend/usecase/comment"
)

type CommentHandler struct {
	baseHandler
	uc *commentUC.UseCase
}

func NewCommentHandler(uc *commentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List a task's comments, newest first
// @Tags comments
// @Router /api/v1/tasks/{id}/comments [get]
func (h *CommentHandler) GetComments(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	taskID := h.pathID(ctx, "id")
	if taskID == "" {
		return
	}

	limit, offset := pageParams(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comments, total, err := h.uc.ListByTask(stdCtx, userID, taskID, limit, offset)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(comments, transport.PageMeta{Limit: limit, Offset: offset, Total: total}))
}

// @Summary Comment on a task
// @Tags comments
// @Router /api/v1/tasks/{id}/comments [post]
func (h *CommentHandler) CreateComment(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	taskID := h.pathID(ctx, "id")
	if taskID == "" {
		return
	}

	var req transport.CommentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comment, err := h.uc.Create(stdCtx, userID, taskID, req.Body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, comment)
}

// @Summary Delete a comment (author or task owner only)
// @Tags comments
// @Router /api/v1/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(ctx *fasthttp.RequestCtx) {
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
