package forms

import "strconv"

// CondOp enumerates the comparison operators a visibility condition can use.
type CondOp string

const (
	OpEq  CondOp = "eq"
	OpNeq CondOp = "neq"
	OpGt  CondOp = "gt"
	OpGte CondOp = "gte"
	OpLt  CondOp = "lt"
	OpLte CondOp = "lte"
)

// Condition decides whether a conditional field (and its children) is shown.
// When And/Or are set the leaf comparison is combined with them; an empty
// Field means the condition is purely a combinator.
type Condition struct {
	Field string `json:"field,omitempty"`
	Op    CondOp `json:"op,omitempty"`
	Value any    `json:"value,omitempty"`

	And []Condition `json:"and,omitempty"`
	Or  []Condition `json:"or,omitempty"`
}

// Holds evaluates the condition against submitted form data. A nil condition
// always holds, so data-driven callers can pass fields through unchecked.
func (c *Condition) Holds(data FormData) bool {
	if c == nil {
		return true
	}

	result := true
	if c.Field != "" {
		result = compare(data[c.Field], c.Op, c.Value)
	}

	for i := range c.And {
		result = result && c.And[i].Holds(data)
	}

	if len(c.Or) > 0 {
		orResult := false
		for i := range c.Or {
			if c.Or[i].Holds(data) {
				orResult = true
				break
			}
		}
		result = result || orResult
	}

	return result
}

func compare(actual any, op CondOp, expected any) bool {
	switch op {
	case OpEq, "":
		return equalValues(actual, expected)
	case OpNeq:
		return !equalValues(actual, expected)
	case OpGt, OpGte, OpLt, OpLte:
		a, aok := toNumber(actual)
		b, bok := toNumber(expected)
		if !aok || !bok {
			return false
		}
		switch op {
		case OpGt:
			return a > b
		case OpGte:
			return a >= b
		case OpLt:
			return a < b
		default:
			return a <= b
		}
	}
	return false
}

// equalValues compares loosely the way the form layer does: numbers compare
// numerically even when one side arrived as a string input.
func equalValues(actual, expected any) bool {
	if actual == nil {
		actual = ""
	}
	if a, aok := toNumber(actual); aok {
		if b, bok := toNumber(expected); bok {
			return a == b
		}
	}
	as, aok := actual.(string)
	bs, bok := expected.(string)
	if aok && bok {
		return as == bs
	}
	ab, aok := actual.(bool)
	bb, bok := expected.(bool)
	if aok && bok {
		return ab == bb
	}
	return false
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
