package server

import "golang.org/x/text/language"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// DefaultLanguage is used for labels when neither the request nor the
	// caller context names a language.
	DefaultLanguage string `mapstructure:"default_language" default:"tr"`
}

// FallbackLanguage is the system default when DefaultLanguage is unset.
const FallbackLanguage = "tr"

// IsValidLanguage checks if the configured default language is a well-formed language code.
func (c Config) IsValidLanguage() bool {
	if c.DefaultLanguage == "" || len(c.DefaultLanguage) > 10 {
		return false
	}
	_, err := language.Parse(c.DefaultLanguage)
	return err == nil
}

// Language returns the configured default language, or FallbackLanguage.
func (c Config) Language() string {
	if !c.IsValidLanguage() {
		return FallbackLanguage
	}
	return c.DefaultLanguage
}
