package filter

// Expression is a boolean tree over leaf Filters: And[...], Or[...], or a
// bare Filter leaf. List builders only accept a flat []Filter (implicit
// AND, see ToExprAND); search builders accept either a flat list or a
// full Expression.
type Expression struct {
	And    []Expression `json:"and,omitempty"`
	Or     []Expression `json:"or,omitempty"`
	Filter *Filter      `json:"filter,omitempty"`
}

// Leaf wraps a single Filter as an Expression.
func Leaf(f Filter) Expression { return Expression{Filter: &f} }

// And builds a conjunction of the given expressions.
func And(exprs ...Expression) Expression { return Expression{And: exprs} }

// Or builds a disjunction of the given expressions.
func Or(exprs ...Expression) Expression { return Expression{Or: exprs} }

// ToExprAND converts a flat, implicit-AND list of Filters into the
// equivalent And Expression, for builders that take an Expression.
func ToExprAND(filters []Filter) Expression {
	exprs := make([]Expression, len(filters))
	for i, f := range filters {
		exprs[i] = Leaf(f)
	}
	return And(exprs...)
}

// Validate recursively validates every leaf Filter in the tree.
func (e Expression) Validate() error {
	if e.Filter != nil {
		return e.Filter.Validate()
	}
	for _, sub := range e.And {
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	for _, sub := range e.Or {
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToWire encodes the expression tree into the JSON-ready body the
// server expects.
func (e Expression) ToWire() map[string]any {
	if e.Filter != nil {
		return e.Filter.ToWire()
	}
	if len(e.And) > 0 {
		sub := make([]map[string]any, len(e.And))
		for i, s := range e.And {
			sub[i] = s.ToWire()
		}
		return map[string]any{"and": sub}
	}
	if len(e.Or) > 0 {
		sub := make([]map[string]any, len(e.Or))
		for i, s := range e.Or {
			sub[i] = s.ToWire()
		}
		return map[string]any{"or": sub}
	}
	return map[string]any{}
}
