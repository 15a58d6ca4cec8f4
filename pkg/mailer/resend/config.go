package resend

import "github.com/dmitrymomot/courier/pkg/mailer"

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}

// Fields returns the provider-specific configuration schema: a single
// required secret input for the API key. Combine with mailer.SharedFields
// for the full connection form. Static metadata only; nothing at runtime
// reads it.
func Fields() []mailer.Field {
	return []mailer.Field{
		{
			Name:        "api_key",
			Label:       "API key",
			Placeholder: "re_xxxxxxxx",
			Help:        "Create an API key in the Resend dashboard.",
			Type:        mailer.FieldPassword,
			Required:    true,
			Secret:      true,
		},
	}
}
