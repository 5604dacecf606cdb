package graphql

import (
	"strings"
	"testing"

	"gqlug/graph"
	"gqlug/internal/domain"
	"gqlug/internal/filter"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestToWhereMap_FlattensOperatorAndAttributeKeys(t *testing.T) {
	where := &graph.GroupWhereFilter{
		NameEn: &graph.StringFilter{Ilike: strPtr("%fac%")},
		Valid:  &graph.BoolFilter{Eq: boolPtr(true)},
	}

	flat, err := toWhereMap(where)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nameEn, ok := flat["name_en"].(map[string]any)
	if !ok {
		t.Fatalf("expected name_en key in flattened map, got %#v", flat)
	}
	if nameEn["_ilike"] != "%fac%" {
		t.Fatalf("expected _ilike operator, got %#v", nameEn)
	}

	valid, ok := flat["valid"].(map[string]any)
	if !ok || valid["_eq"] != true {
		t.Fatalf("expected valid._eq, got %#v", flat["valid"])
	}
}

func TestToWhereMap_NilInputYieldsNil(t *testing.T) {
	var where *graph.UserWhereFilter
	flat, err := toWhereMap(where)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flat != nil {
		t.Fatalf("expected nil map for nil input, got %#v", flat)
	}
}

func TestParseWhere_NestedBranchesTranslate(t *testing.T) {
	where := &graph.UserWhereFilter{
		Or: []*graph.UserWhereFilter{
			{Surname: &graph.StringFilter{Startswith: strPtr("Nov")}},
			{Email: &graph.StringFilter{Endswith: strPtr("@example.org")}},
		},
	}

	expr, err := parseWhere(where, domain.UserFilterDescriptor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clause, args, err := filter.ToSQL(expr, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(clause, "surname LIKE $1") || !strings.Contains(clause, "email LIKE $2") {
		t.Fatalf("unexpected clause: %s", clause)
	}
	if !strings.Contains(clause, " OR ") {
		t.Fatalf("expected OR branch in clause: %s", clause)
	}
	if len(args) != 2 {
		t.Fatalf("expected two args, got %v", args)
	}
}

func TestParseWhere_EmptyFilterYieldsNilExpr(t *testing.T) {
	expr, err := parseWhere(&graph.UserWhereFilter{}, domain.UserFilterDescriptor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expr != nil {
		t.Fatalf("expected nil expression for empty filter, got %#v", expr)
	}
}
