package domain

// FormState is the converter workflow state. The form starts Disabled and
// becomes Editable once the rate table is available; Valid means a conversion
// may be committed. Committed is transient: a successful conversion returns
// the form to Editable.
type FormState string

const (
	FormDisabled FormState = "disabled"
	FormEditable FormState = "editable"
	FormValid    FormState = "valid"
)

// FormField identifies one of the three converter inputs.
type FormField string

const (
	FieldAmount FormField = "amount"
	FieldFrom   FormField = "from"
	FieldTo     FormField = "to"
)

// FieldEdited is the tagged edit event for a single form field.
type FieldEdited struct {
	Field FormField `json:"field"`
	Value string    `json:"value"`
}

// ConverterForm is a read snapshot of the workflow form. Handlers only ever
// see copies; the workflow owns the mutable state.
type ConverterForm struct {
	State  FormState `json:"state"`
	Amount string    `json:"amount"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	// Suggestions are the autocomplete matches for the last edited
	// currency field.
	FromSuggestions []string `json:"fromSuggestions,omitempty"`
	ToSuggestions   []string `json:"toSuggestions,omitempty"`
}

// Alert is one user-visible notification emitted through the alerting
// surface.
type Alert struct {
	Message string `json:"message"`
	At      string `json:"at"`
}
