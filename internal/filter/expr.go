package filter

// Expr is a parsed, validated where expression. It is produced by Parse and
// consumed by ToSQL and Predicate; callers never construct the tree from raw
// client input directly.
type Expr interface {
	isExpr()
}

// Condition is a single attribute comparison. Value holds the literal already
// coerced to the attribute's Go representation (string, int64, bool, uuid.UUID,
// time.Time, or a slice of those for _in).
type Condition struct {
	Attr   string
	Column string
	Type   AttrType
	Op     Op
	Value  any
}

// Conjunction combines sub-expressions with AND.
type Conjunction struct {
	Exprs []Expr
}

// Disjunction combines sub-expressions with OR.
type Disjunction struct {
	Exprs []Expr
}

func (Condition) isExpr()   {}
func (Conjunction) isExpr() {}
func (Disjunction) isExpr() {}
