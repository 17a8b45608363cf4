package filters

import "strings"

// Match aplica o filtro de texto sem diferenciar maiúsculas
func (f *TextFilter) Match(s string) bool {
	if f == nil || f.Value == "" {
		return true
	}

	value, target := strings.ToLower(f.Value), strings.ToLower(s)

	switch f.Operator {
	case OperatorEquals:
		return value == target
	case OperatorNotEquals:
		return value != target
	default:
		return strings.Contains(target, value)
	}
}

func (f *NumericFilter) Match(v float64) bool {
	if f == nil {
		return true
	}

	switch f.Operator {
	case OperatorGreaterThan:
		return v > f.Value
	case OperatorLessThan:
		return v < f.Value
	case OperatorNotEquals:
		return v != f.Value
	case OperatorBetween:
		if f.Min != nil && v < *f.Min {
			return false
		}
		if f.Max != nil && v > *f.Max {
			return false
		}
		return true
	default:
		return v == f.Value
	}
}

// MatchAny indica se value está na seleção. Seleção vazia aceita tudo.
func MatchAny(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}
