package forms

import "strconv"

// FieldByID finds a field anywhere in the config, descending into
// conditional fields' children. Returns nil when no field matches; callers
// are expected to degrade to neutral values rather than fail, so old form
// data survives schema changes.
func FieldByID(config *FormConfig, id string) *Field {
	if config == nil {
		return nil
	}
	for si := range config.Sections {
		if f := fieldByID(config.Sections[si].Fields, id); f != nil {
			return f
		}
	}
	return nil
}

func fieldByID(fields []Field, id string) *Field {
	for i := range fields {
		if fields[i].ID == id {
			return &fields[i]
		}
		if fields[i].Type == FieldConditional {
			if f := fieldByID(fields[i].Children, id); f != nil {
				return f
			}
		}
	}
	return nil
}

// SectionOf returns the title of the section containing the field, or ""
// when the field is unknown. Conditional children belong to the section of
// their conditional parent.
func SectionOf(config *FormConfig, id string) string {
	if config == nil {
		return ""
	}
	for si := range config.Sections {
		if fieldByID(config.Sections[si].Fields, id) != nil {
			return config.Sections[si].Title
		}
	}
	return ""
}

// OptionLabel resolves the display label for a submitted value. Unknown
// fields or values fall back to the raw value so stale answers still render.
func OptionLabel(field *Field, value string) string {
	if field == nil {
		return value
	}
	for i := range field.Options {
		if field.Options[i].Value == value {
			return field.Options[i].Label
		}
	}
	return value
}

// Coefficient resolves the multiplicative adjustment a submitted answer
// carries. Checkbox answers multiply every matched option's coefficient;
// radio/select answers use the single matched option. Anything unresolvable
// is the neutral 1.0.
func Coefficient(field *Field, value any) float64 {
	if field == nil {
		return 1.0
	}
	switch field.Type {
	case FieldCheckbox:
		coef := 1.0
		for _, selected := range checkboxValues(value) {
			if opt := findOption(field, selected); opt != nil && opt.Coefficient != 0 {
				coef *= opt.Coefficient
			}
		}
		return coef
	case FieldRadio, FieldSelect:
		s, ok := scalarString(value)
		if !ok {
			return 1.0
		}
		if opt := findOption(field, s); opt != nil && opt.Coefficient != 0 {
			return opt.Coefficient
		}
		return 1.0
	case FieldInput, FieldConditional, FieldTextarea, FieldAlert:
		return 1.0
	}
	return 1.0
}

// FixedAddon resolves the flat CZK amount a submitted answer adds. Checkbox
// answers sum every matched option's addon; radio/select answers use the
// single matched option. Unresolvable answers add nothing.
func FixedAddon(field *Field, value any) float64 {
	if field == nil {
		return 0
	}
	switch field.Type {
	case FieldCheckbox:
		var sum float64
		for _, selected := range checkboxValues(value) {
			if opt := findOption(field, selected); opt != nil {
				sum += opt.FixedAddon
			}
		}
		return sum
	case FieldRadio, FieldSelect:
		s, ok := scalarString(value)
		if !ok {
			return 0
		}
		if opt := findOption(field, s); opt != nil {
			return opt.FixedAddon
		}
		return 0
	case FieldInput, FieldConditional, FieldTextarea, FieldAlert:
		return 0
	}
	return 0
}

// scalarString normalizes a scalar answer to the string form option values
// use. Numeric answers match options whose value is the same number spelled
// out ("3" for 3), which happens when a select is bound to a number input.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	}
	return "", false
}

func findOption(field *Field, value string) *Option {
	for i := range field.Options {
		if field.Options[i].Value == value {
			return &field.Options[i]
		}
	}
	return nil
}

func checkboxValues(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		// A lone string still counts as one selection.
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}
