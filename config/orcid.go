package config

import "strings"

// OrcidConfig contains configuration for the public ORCID directory client.
type OrcidConfig struct {
	// BaseURL is the public record endpoint prefix. Overridable for tests.
	BaseURL string `env:"BASE_URL" envDefault:"https://pub.orcid.org/v3.0/"`
}

// Sanitize normalizes the base URL so callers can append identifiers directly.
func (o *OrcidConfig) Sanitize() {
	if o.BaseURL == "" {
		o.BaseURL = "https://pub.orcid.org/v3.0/"
	}
	if !strings.HasSuffix(o.BaseURL, "/") {
		o.BaseURL += "/"
	}
}
