// Package forms holds the declarative form schemas for every service type,
// plus the lookup helpers the pricing engine and offer builders use to
// resolve submitted answers against those schemas.
package forms

// FieldType enumerates every field kind a form section can contain.
// Resolvers switch over this exhaustively; adding a kind here means
// updating every switch.
type FieldType string

const (
	FieldRadio       FieldType = "radio"
	FieldSelect      FieldType = "select"
	FieldCheckbox    FieldType = "checkbox"
	FieldInput       FieldType = "input"
	FieldConditional FieldType = "conditional"
	FieldTextarea    FieldType = "textarea"
	FieldAlert       FieldType = "alert"
)

// Option is a selectable choice on a radio/select/checkbox field.
// A zero Coefficient means "no multiplier" and is treated as 1.0;
// FixedAddon is a flat CZK amount added on top of the coefficient math.
type Option struct {
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Coefficient float64 `json:"coefficient,omitempty"`
	FixedAddon  float64 `json:"fixedAddon,omitempty"`
	Hidden      bool    `json:"hidden,omitempty"`
	Tooltip     string  `json:"tooltip,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// Field is a single form input. Which parts are populated depends on Type:
// option-bearing kinds carry Options, conditional fields carry Condition and
// Children, input/textarea carry Placeholder/Unit.
type Field struct {
	ID          string     `json:"id"`
	Type        FieldType  `json:"type"`
	Label       string     `json:"label,omitempty"`
	Options     []Option   `json:"options,omitempty"`
	Condition   *Condition `json:"condition,omitempty"`
	Children    []Field    `json:"children,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	Tooltip     string     `json:"tooltip,omitempty"`
	Note        string     `json:"note,omitempty"`
	Optional    bool       `json:"optional,omitempty"`
}

// Section groups fields for display. Title doubles as the lookup key when an
// addon has to be attributed to a named category on the offer.
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// ServiceCategory is one block of the "what's included" listing.
type ServiceCategory struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// FormConfig describes one service type end to end: identity, pricing
// constants and the ordered sections of its form. Configs are built once at
// startup (see Registry) and never mutated afterwards.
type FormConfig struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	BasePrice float64 `json:"basePrice"`

	// Hourly marks services billed per hour (one-time cleaning, handyman).
	// Their base price is an hourly rate, rounded to whole crowns.
	Hourly bool `json:"hourly,omitempty"`

	// GeneralCleaningBasePrice is the base of the separately priced periodic
	// deep-clean track; zero when the service has no such track.
	GeneralCleaningBasePrice float64 `json:"generalCleaningBasePrice,omitempty"`

	// WinterMaintenanceFee is charged per winter month when the winter
	// maintenance option is selected; zero when not offered.
	WinterMaintenanceFee float64 `json:"winterMaintenanceFee,omitempty"`

	Conditions     []string          `json:"conditions,omitempty"`
	CommonServices []ServiceCategory `json:"commonServices,omitempty"`
	Sections       []Section         `json:"sections"`
}

// FormData maps field id to the submitted answer. Values arrive from JSON,
// so the possible types are string, float64, bool and []any of strings
// (checkbox selections).
type FormData map[string]any

// StringValue returns the answer for id as a string when it is one.
func (d FormData) StringValue(id string) (string, bool) {
	s, ok := d[id].(string)
	return s, ok
}

// StringsValue normalizes a checkbox answer to a string slice. Both []string
// (built in code) and []any (decoded from JSON) are accepted.
func (d FormData) StringsValue(id string) ([]string, bool) {
	switch v := d[id].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}

// IsEmptyValue reports whether a submitted value counts as "not answered":
// nil, empty string or an empty selection list.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}
