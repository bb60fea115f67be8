package filter

import (
	"strconv"
	"strings"

	"github.com/anytype-sdk/anytype-go/errs"
)

// conditionTokens maps the text-form condition token to the Condition
// constant. Absent "[COND]" defaults to Equal.
var conditionTokens = map[string]Condition{
	"eq":        Equal,
	"ne":        NotEqual,
	"neq":       NotEqual,
	"empty":     Empty,
	"nempty":    NotEmptyCond,
	"lt":        Less,
	"lte":       LessOrEqual,
	"gt":        Greater,
	"gte":       GreaterOrEqual,
	"contains":  Contains,
	"ncontains": NotContains,
	"in":        In,
	"nin":       NotIn,
}

// Parse parses the textual filter form "KEY[COND]=VALUE" used by the CLI
// (--filter flag) and the examples. [COND] is optional and defaults to
// "eq". For in/nin, VALUE is comma-split into a list. The special key
// "type" routes in/nin to the Objects variant instead of MultiSelect.
// VALUE is parsed as bool, then int64, then uint64, then float64, then
// text, in that order; the first successful parse wins. An empty key,
// an unterminated "[", or an unrecognized condition token is a
// validation error.
func Parse(s string) (Filter, error) {
	key, condTok, rest, err := splitKeyCondValue(s)
	if err != nil {
		return Filter{}, err
	}
	if key == "" {
		return Filter{}, errs.Validation("filter: empty key in " + strconv.Quote(s))
	}

	cond, ok := conditionTokens[condTok]
	if !ok {
		return Filter{}, errs.Validation("filter: unknown condition " + strconv.Quote(condTok))
	}

	if cond == Empty {
		return IsEmptyFilter(key), nil
	}
	if cond == NotEmptyCond {
		return NotEmptyFilter(key), nil
	}

	if cond == In || cond == NotIn {
		values := strings.Split(rest, ",")
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}
		if key == "type" {
			return ObjectsFilter(key, cond, values), nil
		}
		return MultiSelectFilter(key, cond, values), nil
	}

	return Filter{PropertyKey: key, Kind: inferKind(rest), Condition: cond,
		Text: rest, Number: parseNumberOrZero(rest), Checkbox: parseBoolOrFalse(rest)}, nil
}

// splitKeyCondValue splits "KEY[COND]=VALUE" into its three parts.
// "[COND]" is optional; when absent condTok defaults to "eq".
func splitKeyCondValue(s string) (key, condTok, value string, err error) {
	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return "", "", "", errs.Validation("filter: missing '=' in " + strconv.Quote(s))
	}
	head, value := s[:eq], s[eq+1:]

	if open := strings.IndexByte(head, '['); open >= 0 {
		if !strings.HasSuffix(head, "]") {
			return "", "", "", errs.Validation("filter: unterminated '[' in " + strconv.Quote(s))
		}
		key = head[:open]
		condTok = head[open+1 : len(head)-1]
		return key, condTok, value, nil
	}
	return head, "eq", value, nil
}

// inferKind picks the Filter value kind by attempting, in order, bool,
// int64, uint64, float64, then falling back to text. This mirrors the
// value-parsing precedence used to build the typed Filter from a raw
// string, independent of the property's declared format (the server
// performs the authoritative type check).
func inferKind(raw string) ValueKind {
	if _, err := strconv.ParseBool(raw); err == nil {
		return KindCheckbox
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return KindNumber
	}
	if _, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return KindNumber
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return KindNumber
	}
	return KindText
}

func parseNumberOrZero(raw string) float64 {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return 0
}

func parseBoolOrFalse(raw string) bool {
	b, _ := strconv.ParseBool(raw)
	return b
}

// Format re-serializes a Filter back into normalized "KEY[COND]=VALUE"
// text, used to verify round-trip parsing (s -> Filter -> s') in tests.
func Format(f Filter) string {
	var value string
	switch f.Kind {
	case KindText:
		value = f.Text
	case KindNumber:
		value = strconv.FormatFloat(f.Number, 'g', -1, 64)
	case KindCheckbox:
		value = strconv.FormatBool(f.Checkbox)
	case KindMultiSelect:
		value = strings.Join(f.MultiSelect, ",")
	case KindObjects:
		value = strings.Join(f.Objects, ",")
	}
	return f.PropertyKey + "[" + string(f.Condition) + "]=" + value
}
