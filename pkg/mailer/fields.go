package mailer

// FieldType enumerates the input widget a configuration field maps to when
// a UI renders a provider's connection form.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldNumber   FieldType = "number"
)

// Field describes one provider configuration input. It is static metadata
// for UI composition only; no runtime logic reads it.
type Field struct {
	Name        string    // machine name, e.g. "api_key"
	Label       string    // human-readable label
	Placeholder string    // example value shown in the empty input
	Help        string    // short guidance text
	Type        FieldType // input widget type
	Required    bool      // field must be filled before saving
	Secret      bool      // masked input, flagged for encrypted storage
}

// SharedFields returns the connection fields common to every provider:
// title, sender identity, and priority. Provider adapters contribute their
// specific fields (typically credentials) on top of these. The returned
// slice is built fresh on every call, so callers may not mutate shared
// state through it.
func SharedFields() []Field {
	return []Field{
		{
			Name:     "title",
			Label:    "Connection title",
			Type:     FieldText,
			Required: true,
		},
		{
			Name:        "from_email",
			Label:       "From email",
			Placeholder: "notifications@example.com",
			Type:        FieldEmail,
			Required:    true,
		},
		{
			Name:  "from_name",
			Label: "From name",
			Type:  FieldText,
		},
		{
			Name: "priority",
			Help: "Connections with lower numbers are preferred.",
			Type: FieldNumber,
		},
	}
}
