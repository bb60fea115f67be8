// Package filter implements the filter and sort algebra used by list and
// search builders (C4): typed filter values, comparison conditions, a
// boolean expression tree, and a parser for the textual
// "KEY[COND]=VALUE" form used by the CLI and examples.
package filter

import "github.com/anytype-sdk/anytype-go/errs"

// ValueKind names the typed-value variant a Filter carries, which in
// turn constrains which Conditions are legal for it.
type ValueKind int

const (
	KindText ValueKind = iota
	KindNumber
	KindCheckbox
	KindMultiSelect
	KindObjects
	KindIsEmpty
	KindNotEmpty
)

// Condition is a comparison operator. Not every condition is legal for
// every ValueKind; Filter.Validate enforces the pairing.
type Condition string

const (
	Equal            Condition = "eq"
	NotEqual         Condition = "ne"
	Less             Condition = "lt"
	LessOrEqual      Condition = "lte"
	Greater          Condition = "gt"
	GreaterOrEqual   Condition = "gte"
	Contains         Condition = "contains"
	NotContains      Condition = "ncontains"
	In               Condition = "in"
	NotIn            Condition = "nin"
	Empty            Condition = "empty"
	NotEmptyCond     Condition = "nempty"
)

// numericConditions are legal on numbers and dates.
var numericConditions = map[Condition]bool{
	Less: true, LessOrEqual: true, Greater: true, GreaterOrEqual: true,
	Equal: true, NotEqual: true, In: true, NotIn: true,
}

var textConditions = map[Condition]bool{
	Equal: true, NotEqual: true, Contains: true, NotContains: true, In: true, NotIn: true,
}

var checkboxConditions = map[Condition]bool{
	Equal: true, NotEqual: true,
}

var setConditions = map[Condition]bool{
	Equal: true, NotEqual: true, Contains: true, NotContains: true, In: true, NotIn: true,
}

// Filter is a single leaf condition: a property key, a comparison
// condition, and a typed value. Text/Number/Checkbox/MultiSelect/Objects
// carry a Value; IsEmpty/NotEmpty carry none.
type Filter struct {
	PropertyKey string
	Kind        ValueKind
	Condition   Condition

	Text        string
	Number      float64
	Checkbox    bool
	MultiSelect []string
	Objects     []string
}

// Validate checks that Condition is legal for Kind and that PropertyKey
// is non-empty, returning a *errs.Error{Kind: Validation} otherwise. It
// is exported so builders can validate eagerly instead of deferring to
// the wire layer.
func (f Filter) Validate() error {
	if f.PropertyKey == "" {
		return errs.Validation("filter: empty property key")
	}
	switch f.Kind {
	case KindIsEmpty, KindNotEmpty:
		return nil
	case KindText:
		if !textConditions[f.Condition] {
			return errs.Validation("filter: condition " + string(f.Condition) + " not valid for text")
		}
	case KindNumber:
		if !numericConditions[f.Condition] {
			return errs.Validation("filter: condition " + string(f.Condition) + " not valid for number")
		}
	case KindCheckbox:
		if !checkboxConditions[f.Condition] {
			return errs.Validation("filter: condition " + string(f.Condition) + " not valid for checkbox")
		}
	case KindMultiSelect, KindObjects:
		if !setConditions[f.Condition] {
			return errs.Validation("filter: condition " + string(f.Condition) + " not valid for set")
		}
	}
	return nil
}

// ToWire encodes the filter into the JSON-ready map the REST/RPC body
// expects.
func (f Filter) ToWire() map[string]any {
	w := map[string]any{
		"property_key": f.PropertyKey,
		"condition":    string(f.Condition),
	}
	switch f.Kind {
	case KindText:
		w["value"] = f.Text
	case KindNumber:
		w["value"] = f.Number
	case KindCheckbox:
		w["value"] = f.Checkbox
	case KindMultiSelect:
		w["value"] = f.MultiSelect
	case KindObjects:
		w["value"] = f.Objects
	}
	return w
}

// Text builds a text filter.
func Text(key string, cond Condition, value string) Filter {
	return Filter{PropertyKey: key, Kind: KindText, Condition: cond, Text: value}
}

// Number builds a numeric filter (also used for dates encoded as
// Unix-epoch floats at the wire boundary).
func Number(key string, cond Condition, value float64) Filter {
	return Filter{PropertyKey: key, Kind: KindNumber, Condition: cond, Number: value}
}

// Checkbox builds a boolean filter.
func Checkbox(key string, value bool) Filter {
	return Filter{PropertyKey: key, Kind: KindCheckbox, Condition: Equal, Checkbox: value}
}

// MultiSelectFilter builds an in/nin filter over select/multi_select
// tag keys.
func MultiSelectFilter(key string, cond Condition, values []string) Filter {
	return Filter{PropertyKey: key, Kind: KindMultiSelect, Condition: cond, MultiSelect: values}
}

// ObjectsFilter builds an in/nin filter over type keys, used for the
// special "type" property.
func ObjectsFilter(key string, cond Condition, values []string) Filter {
	return Filter{PropertyKey: key, Kind: KindObjects, Condition: cond, Objects: values}
}

// IsEmptyFilter and NotEmptyFilter build the emptiness predicates, which
// carry no value.
func IsEmptyFilter(key string) Filter {
	return Filter{PropertyKey: key, Kind: KindIsEmpty, Condition: Empty}
}
func NotEmptyFilter(key string) Filter {
	return Filter{PropertyKey: key, Kind: KindNotEmpty, Condition: NotEmptyCond}
}
