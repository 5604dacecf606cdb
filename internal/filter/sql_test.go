package filter

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, where map[string]any) Expr {
	t.Helper()
	expr, err := Parse(where, userDescriptor())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return expr
}

func TestToSQL_NilExprRendersTrue(t *testing.T) {
	clause, args, err := ToSQL(nil, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != "TRUE" || len(args) != 0 {
		t.Fatalf("expected TRUE with no args, got %q %v", clause, args)
	}
}

func TestToSQL_SimpleEquality(t *testing.T) {
	expr := mustParse(t, map[string]any{"valid": map[string]any{"_eq": true}})

	clause, args, err := ToSQL(expr, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != "valid = $1" {
		t.Fatalf("unexpected clause: %q", clause)
	}
	if len(args) != 1 || args[0] != true {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestToSQL_PlaceholdersStartAtOffset(t *testing.T) {
	expr := mustParse(t, map[string]any{
		"name":    map[string]any{"_eq": "Alice"},
		"surname": map[string]any{"_eq": "Novak"},
	})

	clause, args, err := ToSQL(expr, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != "(name = $3 AND surname = $4)" {
		t.Fatalf("unexpected clause: %q", clause)
	}
	if len(args) != 2 || args[0] != "Alice" || args[1] != "Novak" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestToSQL_NoClientTextInClause(t *testing.T) {
	expr := mustParse(t, map[string]any{
		"name": map[string]any{"_eq": "'; DROP TABLE users; --"},
	})

	clause, args, err := ToSQL(expr, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(clause, "DROP TABLE") {
		t.Fatalf("client literal leaked into the clause: %q", clause)
	}
	if len(args) != 1 {
		t.Fatalf("literal should travel as a bind arg, got %v", args)
	}
}

func TestToSQL_StartsWithEscapesMetacharacters(t *testing.T) {
	expr := mustParse(t, map[string]any{
		"name": map[string]any{"_startswith": "50%_a"},
	})

	clause, args, err := ToSQL(expr, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != "name LIKE $1" {
		t.Fatalf("unexpected clause: %q", clause)
	}
	if args[0] != `50\%\_a%` {
		t.Fatalf("metacharacters not escaped: %v", args[0])
	}
}

func TestToSQL_InRendersAny(t *testing.T) {
	expr := mustParse(t, map[string]any{
		"email": map[string]any{"_in": []any{"a@x.cz", "b@x.cz"}},
	})

	clause, args, err := ToSQL(expr, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != "email = ANY($1)" {
		t.Fatalf("unexpected clause: %q", clause)
	}
	items, ok := args[0].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected list arg, got %#v", args[0])
	}
}

func TestToSQL_NestedCombinators(t *testing.T) {
	expr := mustParse(t, map[string]any{
		"_or": []any{
			map[string]any{"name": map[string]any{"_ilike": "a%"}},
			map[string]any{
				"surname": map[string]any{"_eq": "Novak"},
				"valid":   map[string]any{"_eq": true},
			},
		},
	})

	clause, args, err := ToSQL(expr, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != "(name ILIKE $1 OR (surname = $2 AND valid = $3))" {
		t.Fatalf("unexpected clause: %q", clause)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}
