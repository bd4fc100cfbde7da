package config

// OAuthClientConfig holds the Google OAuth client credentials and the path
// of the persisted token used for Gmail delivery
type OAuthClientConfig struct {
	ClientID     string `yaml:"clientID" validate:"required"`
	ClientSecret string `yaml:"clientSecret" validate:"required"`
	TokenFile    string `yaml:"tokenFile" validate:"required"`
}
