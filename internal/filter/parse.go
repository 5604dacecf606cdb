package filter

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Parse validates a where input against the entity descriptor and returns the
// expression tree. The input is the map form of a GraphQL where argument, so
// scalar literals follow JSON decoding conventions (numbers are float64,
// timestamps and UUIDs are strings). A nil or empty input yields a nil Expr,
// which ToSQL and Predicate treat as "match everything".
//
// Attribute conditions and combinator entries appearing in the same object are
// joined with AND. Exactly one operator is allowed per operator object.
func Parse(where map[string]any, desc Descriptor) (Expr, error) {
	if len(where) == 0 {
		return nil, nil
	}

	exprs := make([]Expr, 0, len(where))

	// Iterate deterministically so error reporting and generated SQL are stable.
	keys := make([]string, 0, len(where))
	for key := range where {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := where[key]
		if value == nil {
			continue
		}

		switch key {
		case "_and":
			sub, err := parseBranchList(value, desc, key)
			if err != nil {
				return nil, err
			}
			if len(sub) > 0 {
				exprs = append(exprs, Conjunction{Exprs: sub})
			}
		case "_or":
			sub, err := parseBranchList(value, desc, key)
			if err != nil {
				return nil, err
			}
			if len(sub) > 0 {
				exprs = append(exprs, Disjunction{Exprs: sub})
			}
		default:
			cond, ok, err := parseCondition(key, value, desc)
			if err != nil {
				return nil, err
			}
			if ok {
				exprs = append(exprs, cond)
			}
		}
	}

	switch len(exprs) {
	case 0:
		return nil, nil
	case 1:
		return exprs[0], nil
	default:
		return Conjunction{Exprs: exprs}, nil
	}
}

func parseBranchList(value any, desc Descriptor, combinator string) ([]Expr, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, &InvalidFilterError{
			Entity:    desc.Entity,
			Attribute: combinator,
			Reason:    fmt.Sprintf("expected a list of filter objects, got %T", value),
		}
	}

	exprs := make([]Expr, 0, len(items))
	for _, item := range items {
		branch, ok := item.(map[string]any)
		if !ok {
			return nil, &InvalidFilterError{
				Entity:    desc.Entity,
				Attribute: combinator,
				Reason:    fmt.Sprintf("expected a filter object, got %T", item),
			}
		}
		expr, err := Parse(branch, desc)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			exprs = append(exprs, expr)
		}
	}
	return exprs, nil
}

func parseCondition(attr string, value any, desc Descriptor) (Condition, bool, error) {
	declared, ok := desc.Attributes[attr]
	if !ok {
		return Condition{}, false, &InvalidFilterError{
			Entity:    desc.Entity,
			Attribute: attr,
			Reason:    "attribute is not declared on this entity",
		}
	}

	opObject, ok := value.(map[string]any)
	if !ok {
		return Condition{}, false, &InvalidFilterError{
			Entity:    desc.Entity,
			Attribute: attr,
			Reason:    fmt.Sprintf("expected an operator object, got %T", value),
		}
	}

	var picked Op
	var literal any
	count := 0
	for rawOp, rawValue := range opObject {
		if rawValue == nil {
			continue
		}
		picked = Op(rawOp)
		literal = rawValue
		count++
	}

	if count == 0 {
		return Condition{}, false, nil
	}
	if count > 1 {
		return Condition{}, false, &InvalidFilterError{
			Entity:    desc.Entity,
			Attribute: attr,
			Reason:    "only one operator is allowed per attribute",
		}
	}

	if !opSupported(declared.Type, picked) {
		return Condition{}, false, &InvalidFilterError{
			Entity:    desc.Entity,
			Attribute: attr,
			Op:        picked,
			Reason:    fmt.Sprintf("operator is not supported for %s attributes", declared.Type),
		}
	}

	coerced, err := coerceLiteral(literal, declared.Type, picked, desc.Entity, attr)
	if err != nil {
		return Condition{}, false, err
	}

	return Condition{
		Attr:   attr,
		Column: declared.Column,
		Type:   declared.Type,
		Op:     picked,
		Value:  coerced,
	}, true, nil
}

func coerceLiteral(value any, t AttrType, op Op, entity, attr string) (any, error) {
	if op == OpIn {
		items, ok := value.([]any)
		if !ok {
			return nil, &InvalidFilterError{
				Entity:    entity,
				Attribute: attr,
				Op:        op,
				Reason:    fmt.Sprintf("expected a list literal, got %T", value),
			}
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			coerced, err := coerceScalar(item, t, op, entity, attr)
			if err != nil {
				return nil, err
			}
			out = append(out, coerced)
		}
		return out, nil
	}
	return coerceScalar(value, t, op, entity, attr)
}

func coerceScalar(value any, t AttrType, op Op, entity, attr string) (any, error) {
	mismatch := func() error {
		return &InvalidFilterError{
			Entity:    entity,
			Attribute: attr,
			Op:        op,
			Reason:    fmt.Sprintf("literal %v is not compatible with %s attribute", value, t),
		}
	}

	switch t {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, mismatch()
		}
		return s, nil
	case TypeBool:
		b, ok := value.(bool)
		if !ok {
			return nil, mismatch()
		}
		return b, nil
	case TypeInt:
		switch v := value.(type) {
		case float64:
			if v != math.Trunc(v) {
				return nil, mismatch()
			}
			return int64(v), nil
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		default:
			return nil, mismatch()
		}
	case TypeUUID:
		s, ok := value.(string)
		if !ok {
			return nil, mismatch()
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, &InvalidFilterError{
				Entity:    entity,
				Attribute: attr,
				Op:        op,
				Reason:    fmt.Sprintf("literal %q is not a valid UUID", s),
			}
		}
		return id, nil
	case TypeTimestamp:
		switch v := value.(type) {
		case time.Time:
			return v, nil
		case string:
			ts, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return nil, &InvalidFilterError{
					Entity:    entity,
					Attribute: attr,
					Op:        op,
					Reason:    fmt.Sprintf("literal %q is not an RFC3339 timestamp", v),
				}
			}
			return ts, nil
		default:
			return nil, mismatch()
		}
	default:
		return nil, &InvalidFilterError{
			Entity:    entity,
			Attribute: attr,
			Op:        op,
			Reason:    fmt.Sprintf("attribute has unsupported type %q", t),
		}
	}
}
