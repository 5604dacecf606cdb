package filter

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Row is one candidate record keyed by attribute name. Values use the same Go
// representations Parse coerces literals to.
type Row map[string]any

// Predicate compiles the expression into a pure in-memory row predicate. The
// predicate and the SQL rendered by ToSQL agree on every row: a row satisfies
// the predicate iff the SQL predicate would select it.
func Predicate(expr Expr) func(Row) bool {
	if expr == nil {
		return func(Row) bool { return true }
	}
	switch e := expr.(type) {
	case Condition:
		return func(row Row) bool { return evalCondition(e, row) }
	case Conjunction:
		subs := compileBranches(e.Exprs)
		return func(row Row) bool {
			for _, sub := range subs {
				if !sub(row) {
					return false
				}
			}
			return true
		}
	case Disjunction:
		subs := compileBranches(e.Exprs)
		return func(row Row) bool {
			if len(subs) == 0 {
				return true
			}
			for _, sub := range subs {
				if sub(row) {
					return true
				}
			}
			return false
		}
	default:
		return func(Row) bool { return false }
	}
}

func compileBranches(exprs []Expr) []func(Row) bool {
	subs := make([]func(Row) bool, 0, len(exprs))
	for _, sub := range exprs {
		subs = append(subs, Predicate(sub))
	}
	return subs
}

func evalCondition(c Condition, row Row) bool {
	raw, ok := row[c.Attr]
	if !ok || raw == nil {
		// SQL comparisons against NULL never match.
		return false
	}

	if c.Op == OpIn {
		items, ok := c.Value.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if scalarsEqual(raw, item, c.Type) {
				return true
			}
		}
		return false
	}

	switch c.Type {
	case TypeString:
		have, ok := asString(raw)
		if !ok {
			return false
		}
		want := c.Value.(string)
		switch c.Op {
		case OpEq:
			return have == want
		case OpLt:
			return have < want
		case OpLe:
			return have <= want
		case OpGt:
			return have > want
		case OpGe:
			return have >= want
		case OpLike:
			return likeMatch(have, want, false)
		case OpILike:
			return likeMatch(have, want, true)
		case OpStartsWith:
			return strings.HasPrefix(have, want)
		case OpEndsWith:
			return strings.HasSuffix(have, want)
		}
	case TypeInt:
		have, ok := asInt64(raw)
		if !ok {
			return false
		}
		want := c.Value.(int64)
		return ordered(c.Op, compareInt64(have, want))
	case TypeBool:
		have, ok := raw.(bool)
		if !ok {
			return false
		}
		return c.Op == OpEq && have == c.Value.(bool)
	case TypeUUID:
		have, ok := asUUID(raw)
		if !ok {
			return false
		}
		return c.Op == OpEq && have == c.Value.(uuid.UUID)
	case TypeTimestamp:
		have, ok := asTime(raw)
		if !ok {
			return false
		}
		want := c.Value.(time.Time)
		switch c.Op {
		case OpEq:
			return have.Equal(want)
		case OpLt:
			return have.Before(want)
		case OpLe:
			return !have.After(want)
		case OpGt:
			return have.After(want)
		case OpGe:
			return !have.Before(want)
		}
	}
	return false
}

func ordered(op Op, cmp int) bool {
	switch op {
	case OpEq:
		return cmp == 0
	case OpLt:
		return cmp < 0
	case OpLe:
		return cmp <= 0
	case OpGt:
		return cmp > 0
	case OpGe:
		return cmp >= 0
	}
	return false
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func scalarsEqual(raw, want any, t AttrType) bool {
	switch t {
	case TypeString:
		have, ok := asString(raw)
		return ok && have == want.(string)
	case TypeInt:
		have, ok := asInt64(raw)
		return ok && have == want.(int64)
	case TypeUUID:
		have, ok := asUUID(raw)
		return ok && have == want.(uuid.UUID)
	default:
		return false
	}
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	default:
		return "", false
	}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), n == float64(int64(n))
	default:
		return 0, false
	}
}

func asUUID(v any) (uuid.UUID, bool) {
	switch id := v.(type) {
	case uuid.UUID:
		return id, true
	case string:
		parsed, err := uuid.Parse(id)
		return parsed, err == nil
	default:
		return uuid.Nil, false
	}
}

func asTime(v any) (time.Time, bool) {
	switch ts := v.(type) {
	case time.Time:
		return ts, true
	case *time.Time:
		if ts == nil {
			return time.Time{}, false
		}
		return *ts, true
	case string:
		parsed, err := time.Parse(time.RFC3339, ts)
		return parsed, err == nil
	default:
		return time.Time{}, false
	}
}

// likeMatch evaluates a SQL LIKE pattern (% any run, _ single rune, backslash
// escapes) against s.
func likeMatch(s, pattern string, foldCase bool) bool {
	if foldCase {
		s = strings.ToLower(s)
		pattern = strings.ToLower(pattern)
	}
	return likeRunes([]rune(s), []rune(pattern))
}

func likeRunes(s, pattern []rune) bool {
	if len(pattern) == 0 {
		return len(s) == 0
	}
	switch pattern[0] {
	case '%':
		for i := 0; i <= len(s); i++ {
			if likeRunes(s[i:], pattern[1:]) {
				return true
			}
		}
		return false
	case '_':
		return len(s) > 0 && likeRunes(s[1:], pattern[1:])
	case '\\':
		if len(pattern) > 1 {
			return len(s) > 0 && s[0] == pattern[1] && likeRunes(s[1:], pattern[2:])
		}
		return len(s) > 0 && s[0] == '\\' && likeRunes(s[1:], pattern[1:])
	default:
		return len(s) > 0 && s[0] == pattern[0] && likeRunes(s[1:], pattern[1:])
	}
}
