package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func userDescriptor() Descriptor {
	return Descriptor{
		Entity: "User",
		Attributes: map[string]Attribute{
			"id":         {Column: "id", Type: TypeUUID},
			"name":       {Column: "name", Type: TypeString},
			"surname":    {Column: "surname", Type: TypeString},
			"email":      {Column: "email", Type: TypeString},
			"valid":      {Column: "valid", Type: TypeBool},
			"created":    {Column: "created", Type: TypeTimestamp},
			"lastchange": {Column: "lastchange", Type: TypeTimestamp},
		},
	}
}

func TestParse_NilAndEmptyInput(t *testing.T) {
	expr, err := Parse(nil, userDescriptor())
	if err != nil {
		t.Fatalf("unexpected error for nil where: %v", err)
	}
	if expr != nil {
		t.Fatalf("expected nil expression for nil where, got %#v", expr)
	}

	expr, err = Parse(map[string]any{}, userDescriptor())
	if err != nil {
		t.Fatalf("unexpected error for empty where: %v", err)
	}
	if expr != nil {
		t.Fatalf("expected nil expression for empty where, got %#v", expr)
	}
}

func TestParse_SingleCondition(t *testing.T) {
	expr, err := Parse(map[string]any{
		"name": map[string]any{"_eq": "Alice"},
	}, userDescriptor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cond, ok := expr.(Condition)
	if !ok {
		t.Fatalf("expected Condition, got %#v", expr)
	}
	if cond.Attr != "name" || cond.Column != "name" || cond.Op != OpEq {
		t.Fatalf("unexpected condition: %#v", cond)
	}
	if cond.Value != "Alice" {
		t.Fatalf("expected literal Alice, got %#v", cond.Value)
	}
}

func TestParse_UndeclaredAttributeFails(t *testing.T) {
	_, err := Parse(map[string]any{
		"nickname": map[string]any{"_eq": "al"},
	}, userDescriptor())
	if err == nil {
		t.Fatal("expected error for undeclared attribute")
	}

	var invalid *InvalidFilterError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidFilterError, got %T: %v", err, err)
	}
	if invalid.Attribute != "nickname" {
		t.Fatalf("error should name the attribute, got %#v", invalid)
	}
}

func TestParse_UnsupportedOperatorForType(t *testing.T) {
	_, err := Parse(map[string]any{
		"valid": map[string]any{"_like": "tru%"},
	}, userDescriptor())
	if err == nil {
		t.Fatal("expected error for _like on a bool attribute")
	}

	var invalid *InvalidFilterError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidFilterError, got %T", err)
	}
	if invalid.Op != OpLike {
		t.Fatalf("error should name the operator, got %#v", invalid)
	}
}

func TestParse_LiteralTypeMismatch(t *testing.T) {
	cases := []map[string]any{
		{"valid": map[string]any{"_eq": "yes"}},
		{"name": map[string]any{"_eq": 42.0}},
		{"created": map[string]any{"_ge": "yesterday"}},
		{"id": map[string]any{"_eq": "not-a-uuid"}},
	}
	for _, where := range cases {
		if _, err := Parse(where, userDescriptor()); err == nil {
			t.Errorf("expected type mismatch error for %v", where)
		}
	}
}

func TestParse_MultipleOperatorsRejected(t *testing.T) {
	_, err := Parse(map[string]any{
		"name": map[string]any{"_eq": "a", "_like": "a%"},
	}, userDescriptor())
	if err == nil {
		t.Fatal("expected error for two operators in one operator object")
	}
}

func TestParse_NilOperatorValuesIgnored(t *testing.T) {
	// gqlgen marshals unset input fields as explicit nulls.
	expr, err := Parse(map[string]any{
		"name":  map[string]any{"_eq": "Alice", "_like": nil},
		"valid": nil,
	}, userDescriptor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := expr.(Condition); !ok {
		t.Fatalf("expected a single condition, got %#v", expr)
	}
}

func TestParse_CoercesLiterals(t *testing.T) {
	id := uuid.New()
	stamp := "2024-05-01T10:00:00Z"

	expr, err := Parse(map[string]any{
		"id":      map[string]any{"_eq": id.String()},
		"created": map[string]any{"_ge": stamp},
	}, userDescriptor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conj, ok := expr.(Conjunction)
	if !ok || len(conj.Exprs) != 2 {
		t.Fatalf("expected conjunction of two conditions, got %#v", expr)
	}

	created := conj.Exprs[0].(Condition)
	if _, ok := created.Value.(time.Time); !ok {
		t.Fatalf("timestamp literal not coerced: %#v", created.Value)
	}
	idCond := conj.Exprs[1].(Condition)
	if got, ok := idCond.Value.(uuid.UUID); !ok || got != id {
		t.Fatalf("uuid literal not coerced: %#v", idCond.Value)
	}
}

func TestParse_NestedCombinators(t *testing.T) {
	where := map[string]any{
		"_or": []any{
			map[string]any{"name": map[string]any{"_startswith": "A"}},
			map[string]any{
				"_and": []any{
					map[string]any{"surname": map[string]any{"_eq": "Novak"}},
					map[string]any{"valid": map[string]any{"_eq": true}},
				},
			},
		},
	}

	expr, err := Parse(where, userDescriptor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	or, ok := expr.(Disjunction)
	if !ok {
		t.Fatalf("expected disjunction at the root, got %#v", expr)
	}
	if len(or.Exprs) != 2 {
		t.Fatalf("expected two branches, got %d", len(or.Exprs))
	}
	if _, ok := or.Exprs[1].(Conjunction); !ok {
		t.Fatalf("expected nested conjunction, got %#v", or.Exprs[1])
	}
}

func TestParse_InvalidAttributeInsideBranchFails(t *testing.T) {
	where := map[string]any{
		"_and": []any{
			map[string]any{"bogus": map[string]any{"_eq": "x"}},
		},
	}
	if _, err := Parse(where, userDescriptor()); err == nil {
		t.Fatal("expected validation to reach nested branches")
	}
}
