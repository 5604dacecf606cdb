package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"gqlug/internal/domain"
	"gqlug/internal/filter"
)

func TestBuildListQuery_NoFilter(t *testing.T) {
	query, args, err := buildListQuery("users", userColumns, nil, "created, id", 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "WHERE TRUE") {
		t.Fatalf("nil filter should render WHERE TRUE: %q", query)
	}
	if !strings.Contains(query, "LIMIT $1 OFFSET $2") {
		t.Fatalf("pagination placeholders should start at $1: %q", query)
	}
	if len(args) != 2 || args[0] != 10 || args[1] != 20 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListQuery_FilterArgsPrecedePagination(t *testing.T) {
	expr, err := filter.Parse(map[string]any{
		"valid": map[string]any{"_eq": true},
	}, domain.UserFilterDescriptor())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	query, args, err := buildListQuery("users", userColumns, expr, "created, id", 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "WHERE valid = $1") {
		t.Fatalf("filter clause missing or misplaced: %q", query)
	}
	if !strings.Contains(query, "LIMIT $2 OFFSET $3") {
		t.Fatalf("pagination placeholders should follow filter args: %q", query)
	}
	if len(args) != 3 || args[0] != true || args[1] != 5 || args[2] != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
	if !strings.Contains(query, "COUNT(*) OVER() AS total_count") {
		t.Fatalf("windowed total count missing: %q", query)
	}
}

func TestBuildUpdateQuery_GuardsOnStampAndTouchesAudit(t *testing.T) {
	id := uuid.New()
	actor := uuid.New()
	stamp := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	b := &setClauseBuilder{}
	name := "Alice"
	b.add("name", name)

	query, args := buildUpdateQuery("users", userColumns, b, id, stamp, actor)

	if !strings.Contains(query, "name = $1") {
		t.Fatalf("data field missing: %q", query)
	}
	if !strings.Contains(query, "changedby = $2") {
		t.Fatalf("changedby must be set with the data fields: %q", query)
	}
	if !strings.Contains(query, "lastchange = now()") {
		t.Fatalf("lastchange must advance with every update: %q", query)
	}
	if !strings.Contains(query, "WHERE id = $3 AND lastchange = $4") {
		t.Fatalf("optimistic lock guard missing: %q", query)
	}
	want := []any{name, actor, id, stamp}
	if len(args) != len(want) {
		t.Fatalf("unexpected args: %v", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: expected %v, got %v", i, want[i], args[i])
		}
	}
}

func TestOrUUID(t *testing.T) {
	if orUUID(uuid.Nil) == uuid.Nil {
		t.Fatal("nil uuid should be replaced with a generated one")
	}
	fixed := uuid.New()
	if orUUID(fixed) != fixed {
		t.Fatal("supplied uuid must be preserved")
	}
}
