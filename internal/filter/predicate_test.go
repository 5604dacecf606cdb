package filter

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPredicate_ValidEqSelectsMatchingRows(t *testing.T) {
	rows := []Row{
		{"id": int64(1), "name": "a", "valid": true},
		{"id": int64(2), "name": "b", "valid": false},
	}

	expr := mustParse(t, map[string]any{"valid": map[string]any{"_eq": true}})
	pred := Predicate(expr)

	var selected []Row
	for _, row := range rows {
		if pred(row) {
			selected = append(selected, row)
		}
	}
	if len(selected) != 1 || selected[0]["name"] != "a" {
		t.Fatalf("expected exactly the valid row, got %v", selected)
	}
}

func TestPredicate_ConjunctionRequiresBothSides(t *testing.T) {
	a := map[string]any{"name": map[string]any{"_eq": "Alice"}}
	b := map[string]any{"valid": map[string]any{"_eq": true}}
	both := map[string]any{
		"_and": []any{a, b},
	}

	predA := Predicate(mustParse(t, a))
	predB := Predicate(mustParse(t, b))
	predBoth := Predicate(mustParse(t, both))

	rows := []Row{
		{"name": "Alice", "valid": true},
		{"name": "Alice", "valid": false},
		{"name": "Bob", "valid": true},
		{"name": "Bob", "valid": false},
	}
	for _, row := range rows {
		want := predA(row) && predB(row)
		if predBoth(row) != want {
			t.Errorf("AND predicate disagrees with its parts on %v", row)
		}
	}
}

func TestPredicate_DisjunctionMatchesEitherSide(t *testing.T) {
	expr := mustParse(t, map[string]any{
		"_or": []any{
			map[string]any{"name": map[string]any{"_eq": "Alice"}},
			map[string]any{"name": map[string]any{"_eq": "Bob"}},
		},
	})
	pred := Predicate(expr)

	if !pred(Row{"name": "Alice"}) || !pred(Row{"name": "Bob"}) {
		t.Fatal("disjunction should match either branch")
	}
	if pred(Row{"name": "Cyril"}) {
		t.Fatal("disjunction should not match unrelated rows")
	}
}

func TestPredicate_StringOperators(t *testing.T) {
	row := Row{"name": "Svoboda"}

	cases := []struct {
		where map[string]any
		want  bool
	}{
		{map[string]any{"name": map[string]any{"_like": "Svo%"}}, true},
		{map[string]any{"name": map[string]any{"_like": "svo%"}}, false},
		{map[string]any{"name": map[string]any{"_ilike": "svo%"}}, true},
		{map[string]any{"name": map[string]any{"_ilike": "%bod_"}}, true},
		{map[string]any{"name": map[string]any{"_startswith": "Svo"}}, true},
		{map[string]any{"name": map[string]any{"_endswith": "oda"}}, true},
		{map[string]any{"name": map[string]any{"_endswith": "Svo"}}, false},
		{map[string]any{"name": map[string]any{"_gt": "Novak"}}, true},
	}
	for _, tc := range cases {
		pred := Predicate(mustParse(t, tc.where))
		if pred(row) != tc.want {
			t.Errorf("where %v: expected %v", tc.where, tc.want)
		}
	}
}

func TestPredicate_TimestampComparisons(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	row := Row{"created": created}

	before := created.Add(-time.Hour).Format(time.RFC3339)
	after := created.Add(time.Hour).Format(time.RFC3339)

	if !Predicate(mustParse(t, map[string]any{"created": map[string]any{"_gt": before}}))(row) {
		t.Error("_gt against earlier stamp should match")
	}
	if Predicate(mustParse(t, map[string]any{"created": map[string]any{"_ge": after}}))(row) {
		t.Error("_ge against later stamp should not match")
	}
	exact := created.Format(time.RFC3339)
	if !Predicate(mustParse(t, map[string]any{"created": map[string]any{"_le": exact}}))(row) {
		t.Error("_le against the exact stamp should match")
	}
}

func TestPredicate_UUIDIn(t *testing.T) {
	want := uuid.New()
	other := uuid.New()

	expr := mustParse(t, map[string]any{
		"id": map[string]any{"_in": []any{want.String(), other.String()}},
	})
	pred := Predicate(expr)

	if !pred(Row{"id": want}) {
		t.Error("row with listed id should match")
	}
	if pred(Row{"id": uuid.New()}) {
		t.Error("row with unlisted id should not match")
	}
}

func TestPredicate_MissingAttributeNeverMatches(t *testing.T) {
	expr := mustParse(t, map[string]any{"email": map[string]any{"_eq": "a@x.cz"}})
	if Predicate(expr)(Row{"name": "Alice"}) {
		t.Fatal("missing attribute behaves like SQL NULL and must not match")
	}
	if Predicate(expr)(Row{"email": nil}) {
		t.Fatal("nil attribute must not match")
	}
}
