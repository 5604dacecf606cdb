package filter

import "fmt"

// AttrType identifies the declared type of a filterable attribute.
type AttrType string

const (
	TypeString    AttrType = "string"
	TypeInt       AttrType = "int"
	TypeBool      AttrType = "bool"
	TypeUUID      AttrType = "uuid"
	TypeTimestamp AttrType = "timestamp"
)

// Op is a comparison operator as it appears in a where input (_eq, _like, ...).
type Op string

const (
	OpEq         Op = "_eq"
	OpLt         Op = "_lt"
	OpLe         Op = "_le"
	OpGt         Op = "_gt"
	OpGe         Op = "_ge"
	OpLike       Op = "_like"
	OpILike      Op = "_ilike"
	OpStartsWith Op = "_startswith"
	OpEndsWith   Op = "_endswith"
	OpIn         Op = "_in"
)

// operatorsByType lists the operators each attribute type accepts.
var operatorsByType = map[AttrType][]Op{
	TypeString:    {OpEq, OpLt, OpLe, OpGt, OpGe, OpLike, OpILike, OpStartsWith, OpEndsWith, OpIn},
	TypeInt:       {OpEq, OpLt, OpLe, OpGt, OpGe, OpIn},
	TypeBool:      {OpEq},
	TypeUUID:      {OpEq, OpIn},
	TypeTimestamp: {OpEq, OpLt, OpLe, OpGt, OpGe},
}

func opSupported(t AttrType, op Op) bool {
	for _, candidate := range operatorsByType[t] {
		if candidate == op {
			return true
		}
	}
	return false
}

// Attribute declares one filterable attribute of an entity together with the
// column it maps onto. SQL column names come exclusively from here, never from
// client input.
type Attribute struct {
	Column string
	Type   AttrType
}

// Descriptor declares the filterable surface of one entity.
type Descriptor struct {
	Entity     string
	Attributes map[string]Attribute
}

// InvalidFilterError reports a where input that references an undeclared
// attribute, an unsupported operator, or a literal of the wrong type.
type InvalidFilterError struct {
	Entity    string
	Attribute string
	Op        Op
	Reason    string
}

func (e *InvalidFilterError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("invalid filter on %s: %s", e.Entity, e.Reason)
	}
	if e.Op == "" {
		return fmt.Sprintf("invalid filter on %s.%s: %s", e.Entity, e.Attribute, e.Reason)
	}
	return fmt.Sprintf("invalid filter on %s.%s (%s): %s", e.Entity, e.Attribute, e.Op, e.Reason)
}
