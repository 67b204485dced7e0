package handler

import (
	"testing"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/myplanner/backend/domain"
)

func requestCtx(uri string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	var req fasthttp.Request
	req.SetRequestURI(uri)
	ctx.Init(&req, nil, nil)
	return &ctx
}

func TestPageParamsDefaults(t *testing.T) {
	limit, offset := pageParams(requestCtx("/api/v1/tasks"))
	if limit != 50 || offset != 0 {
		t.Fatalf("expected defaults 50/0, got %d/%d", limit, offset)
	}
}

func TestPageParamsClamped(t *testing.T) {
	limit, offset := pageParams(requestCtx("/api/v1/tasks?limit=999&offset=-5"))
	if limit != 100 {
		t.Fatalf("expected limit clamped to 100, got %d", limit)
	}
	if offset != 0 {
		t.Fatalf("expected negative offset clamped to 0, got %d", offset)
	}
}

func TestPageParamsExplicit(t *testing.T) {
	limit, offset := pageParams(requestCtx("/api/v1/tasks?limit=10&offset=20"))
	if limit != 10 || offset != 20 {
		t.Fatalf("expected 10/20, got %d/%d", limit, offset)
	}
}

func TestParseDate(t *testing.T) {
	due, err := parseDate("2026-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if due == nil || due.Format("2006-01-02") != "2026-03-14" {
		t.Fatalf("unexpected date: %v", due)
	}

	due, err = parseDate("")
	if err != nil || due != nil {
		t.Fatalf("empty date should parse to nil, got %v / %v", due, err)
	}

	if _, err := parseDate("14/03/2026"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := parseTimestamp("2026-03-14T09:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.Equal(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp: %v", ts)
	}

	ts, err = parseTimestamp("")
	if err != nil || !ts.IsZero() {
		t.Fatalf("empty timestamp should parse to zero, got %v / %v", ts, err)
	}

	if _, err := parseTimestamp("not-a-time"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrTaskNotFound, 404},
		{domain.ErrCommentForbidden, 403},
		{domain.ErrBadCredentials, 401},
		{domain.ErrEventExists, 409},
		{domain.ErrInvalidPayload, 400},
		{domain.NewError(domain.ErrCodeInternal, "boom"), 500},
	}
	for _, c := range cases {
		if status, _ := mapError(c.err); status != c.want {
			t.Fatalf("mapError(%v) = %d, want %d", c.err, status, c.want)
		}
	}
}
