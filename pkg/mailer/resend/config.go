package resend

// Config holds Resend credentials and the default sender.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"EMAIL_FROM" envDefault:"notifications@onresend.com"`
	SenderName  string `env:"EMAIL_FROM_NAME" envDefault:"Duck Works"`
}
