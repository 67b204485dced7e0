package postgres

import "testing"

func TestClampLimit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, defaultLimit},
		{-1, defaultLimit},
		{25, 25},
		{100, 100},
		{500, maxLimit},
	}
	for _, c := range cases {
		if got := clampLimit(c.in); got != c.want {
			t.Fatalf("clampLimit(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{
		"title":    "t.title",
		"due_date": "t.due_date",
	}
	fallback := "t.priority ASC"

	cases := []struct {
		sort, want string
	}{
		{"", fallback},
		{"title", "t.title ASC"},
		{"-title", "t.title DESC"},
		{"due_date", "t.due_date ASC"},
		{"owner_id", fallback},
		{"; DROP TABLE tasks", fallback},
	}
	for _, c := range cases {
		if got := orderClause(c.sort, allowed, fallback); got != c.want {
			t.Fatalf("orderClause(%q) = %q, want %q", c.sort, got, c.want)
		}
	}
}
