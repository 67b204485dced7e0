package handler

import (
	"testing"

	"github.com/valyala/fasthttp"
)

func filterCtx(uri string) *fasthttp.RequestCtx {
	return requestCtx(uri)
}

func TestParseFilterDefaults(t *testing.T) {
	h := &TaskHandler{baseHandler: newBaseHandler(nil, nil)}

	filter, ok := h.parseFilter(filterCtx("/api/v1/tasks"), "u1")
	if !ok {
		t.Fatal("expected filter to parse")
	}
	if filter.OwnerID != "u1" {
		t.Fatalf("unexpected owner: %s", filter.OwnerID)
	}
	if filter.Priority != 0 || filter.Done != nil || len(filter.TagIDs) != 0 {
		t.Fatalf("expected empty predicates, got %+v", filter)
	}
}

func TestParseFilterFullQuery(t *testing.T) {
	h := &TaskHandler{baseHandler: newBaseHandler(nil, nil)}

	filter, ok := h.parseFilter(filterCtx("/api/v1/tasks?q=milk&list=l1&priority=2&done=1&tags=a&tags=b&sort=-due_date"), "u1")
	if !ok {
		t.Fatal("expected filter to parse")
	}
	if filter.Query != "milk" || filter.ListID != "l1" || filter.Priority != 2 || filter.Sort != "-due_date" {
		t.Fatalf("unexpected filter: %+v", filter)
	}
	if filter.Done == nil || !*filter.Done {
		t.Fatalf("expected done=true, got %v", filter.Done)
	}
	if len(filter.TagIDs) != 2 || filter.TagIDs[0] != "a" || filter.TagIDs[1] != "b" {
		t.Fatalf("expected both tags collected, got %v", filter.TagIDs)
	}
}

func TestParseFilterDoneFalse(t *testing.T) {
	h := &TaskHandler{baseHandler: newBaseHandler(nil, nil)}

	filter, ok := h.parseFilter(filterCtx("/api/v1/tasks?done=0"), "u1")
	if !ok {
		t.Fatal("expected filter to parse")
	}
	if filter.Done == nil || *filter.Done {
		t.Fatalf("expected done=false, got %v", filter.Done)
	}
}

func TestParseFilterBadPriority(t *testing.T) {
	h := &TaskHandler{baseHandler: newBaseHandler(nil, nil)}

	ctx := filterCtx("/api/v1/tasks?priority=9")
	if _, ok := h.parseFilter(ctx, "u1"); ok {
		t.Fatal("expected out-of-range priority to be rejected")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestParseFilterBadDone(t *testing.T) {
	h := &TaskHandler{baseHandler: newBaseHandler(nil, nil)}

	ctx := filterCtx("/api/v1/tasks?done=maybe")
	if _, ok := h.parseFilter(ctx, "u1"); ok {
		t.Fatal("expected unparseable done to be rejected")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}
