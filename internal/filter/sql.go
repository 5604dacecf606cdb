package filter

import (
	"fmt"
	"strings"
)

// ToSQL renders the expression as a parameterized SQL predicate. Placeholders
// start at startArg, so callers can append the returned args after their own.
// A nil expression renders as TRUE.
func ToSQL(expr Expr, startArg int) (string, []any, error) {
	if expr == nil {
		return "TRUE", nil, nil
	}
	b := &sqlBuilder{nextArg: startArg}
	clause, err := b.render(expr)
	if err != nil {
		return "", nil, err
	}
	return clause, b.args, nil
}

type sqlBuilder struct {
	args    []any
	nextArg int
}

func (b *sqlBuilder) placeholder(value any) string {
	b.args = append(b.args, value)
	p := fmt.Sprintf("$%d", b.nextArg)
	b.nextArg++
	return p
}

func (b *sqlBuilder) render(expr Expr) (string, error) {
	switch e := expr.(type) {
	case Condition:
		return b.renderCondition(e)
	case Conjunction:
		return b.renderBranches(e.Exprs, " AND ")
	case Disjunction:
		return b.renderBranches(e.Exprs, " OR ")
	default:
		return "", fmt.Errorf("unknown filter expression %T", expr)
	}
}

func (b *sqlBuilder) renderBranches(exprs []Expr, joiner string) (string, error) {
	if len(exprs) == 0 {
		return "TRUE", nil
	}
	parts := make([]string, 0, len(exprs))
	for _, sub := range exprs {
		clause, err := b.render(sub)
		if err != nil {
			return "", err
		}
		parts = append(parts, clause)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, joiner) + ")", nil
}

func (b *sqlBuilder) renderCondition(c Condition) (string, error) {
	switch c.Op {
	case OpEq:
		return fmt.Sprintf("%s = %s", c.Column, b.placeholder(c.Value)), nil
	case OpLt:
		return fmt.Sprintf("%s < %s", c.Column, b.placeholder(c.Value)), nil
	case OpLe:
		return fmt.Sprintf("%s <= %s", c.Column, b.placeholder(c.Value)), nil
	case OpGt:
		return fmt.Sprintf("%s > %s", c.Column, b.placeholder(c.Value)), nil
	case OpGe:
		return fmt.Sprintf("%s >= %s", c.Column, b.placeholder(c.Value)), nil
	case OpLike:
		return fmt.Sprintf("%s LIKE %s", c.Column, b.placeholder(c.Value)), nil
	case OpILike:
		return fmt.Sprintf("%s ILIKE %s", c.Column, b.placeholder(c.Value)), nil
	case OpStartsWith:
		pattern := escapeLikeLiteral(c.Value.(string)) + "%"
		return fmt.Sprintf("%s LIKE %s", c.Column, b.placeholder(pattern)), nil
	case OpEndsWith:
		pattern := "%" + escapeLikeLiteral(c.Value.(string))
		return fmt.Sprintf("%s LIKE %s", c.Column, b.placeholder(pattern)), nil
	case OpIn:
		items, ok := c.Value.([]any)
		if !ok {
			return "", fmt.Errorf("filter: _in literal for %s is not a list", c.Attr)
		}
		return fmt.Sprintf("%s = ANY(%s)", c.Column, b.placeholder(items)), nil
	default:
		return "", fmt.Errorf("filter: no SQL rendering for operator %s", c.Op)
	}
}

// escapeLikeLiteral neutralises LIKE metacharacters in literals that the
// translator wraps into patterns itself (_startswith, _endswith). Literals for
// _like and _ilike pass through untouched, the client owns those patterns.
func escapeLikeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
