package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/myplanner/backend/api/transport"
	"github.com/myplanner/backend/domain"
)

// userID reads the identity injected by the auth middleware. An empty value
// writes the 401 response; callers must bail out.
func (h baseHandler) userID(ctx *fasthttp.RequestCtx) string {
	userID := string(ctx.Request.Header.Peek("X-User-ID"))
	if userID == "" {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), "missing user id", nil))
	}
	return userID
}

// pathID reads a route parameter. An empty value writes the 400 response;
// callers must bail out.
func (h baseHandler) pathID(ctx *fasthttp.RequestCtx, key string) string {
	id, _ := ctx.UserValue(key).(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing "+key, nil))
	}
	return id
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}

// pageParams extracts limit/offset, clamped to the repository bounds so the
// response meta reports the literal page size used.
func pageParams(ctx *fasthttp.RequestCtx) (int, int) {
	limit := parseInt(string(ctx.QueryArgs().Peek("limit")), 50)
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := parseInt(string(ctx.QueryArgs().Peek("offset")), 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid date, expected YYYY-MM-DD")
	}
	return &parsed, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.NewError(domain.ErrCodeInvalid, "invalid timestamp, expected RFC 3339")
	}
	return parsed, nil
}
