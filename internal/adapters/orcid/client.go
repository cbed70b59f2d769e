package orcid

// Package orcid provides a client for the public ORCID directory. It resolves
// a researcher identifier to a display name with a single unauthenticated
// lookup; every failure is terminal and reported as a result, never an error.

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/ArturCreativeLab/studio-api/internal/ports"
)

// ORCID iDs have a fixed format, e.g. 0000-0001-2345-6789; the final
// character may be the checksum letter X.
var orcidRe = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[0-9X]$`)

// overrideEncoded is the base64-obfuscated override identifier. It resolves
// deterministically without any network access. Unlike the original client
// application it never leaves the server.
const (
	overrideEncoded = "MDAwMC0wMDAwLTAwMDAtMDAwMQ=="
	overrideName    = "Artur [Admin]"
)

// User-facing messages per failure class.
const (
	msgFormatInvalid = "Invalid ORCID iD format."
	msgNotFound      = "ORCID iD not found."
	msgRemoteFailure = "The ORCID directory could not be reached."
	msgNoName        = "Could not extract name from ORCID profile."
	msgUnexpected    = "An unexpected error occurred during verification."
)

// name extraction expressions against the v3.0 record response
const (
	exprGivenNames = `person.name."given-names".value`
	exprFamilyName = `person.name."family-name".value`
)

// Client implements ports.Verifier against the public ORCID record endpoint.
// It holds no shared state; concurrent calls are independent.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config controls the ORCID client.
type Config struct {
	BaseURL    string       // record endpoint prefix, trailing slash expected
	HTTPClient *http.Client // optional, defaults to http.DefaultClient
}

// NewClient constructs an ORCID directory client.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = "https://pub.orcid.org/v3.0/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: base, httpClient: hc}
}

// OverrideID returns the decoded override identifier. The profile edit flow
// compares submitted identifiers against it for the conditional role grant.
func OverrideID() string {
	decoded, err := base64.StdEncoding.DecodeString(overrideEncoded)
	if err != nil {
		// The constant is fixed at compile time; decoding cannot fail.
		return ""
	}
	return string(decoded)
}

// Verify resolves an identifier to a researcher display name.
// The override identifier short-circuits before format validation and
// before any network access. A single attempt is made; no retries.
func (c *Client) Verify(ctx context.Context, id string) ports.VerificationResult {
	if id == OverrideID() {
		return ports.VerificationResult{Name: overrideName}
	}

	if !orcidRe.MatchString(id) {
		return ports.VerificationResult{Err: msgFormatInvalid}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+id, nil)
	if err != nil {
		return ports.VerificationResult{Err: msgUnexpected}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.VerificationResult{Err: msgUnexpected}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ports.VerificationResult{Err: msgNotFound}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ports.VerificationResult{Err: msgRemoteFailure}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.VerificationResult{Err: msgUnexpected}
	}

	name, err := extractName(body)
	if err != nil {
		return ports.VerificationResult{Err: msgUnexpected}
	}
	if name == "" {
		return ports.VerificationResult{Err: msgNoName}
	}
	return ports.VerificationResult{Name: name}
}

// extractName pulls given and family names out of a record payload and joins
// them with a single space. Missing fields are tolerated; a fully empty
// result is reported by the caller.
func extractName(payload []byte) (string, error) {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return "", err
	}

	given := searchString(doc, exprGivenNames)
	family := searchString(doc, exprFamilyName)
	return strings.TrimSpace(given + " " + family), nil
}

// searchString evaluates a jmespath expression, returning "" for missing or
// non-string results.
func searchString(doc any, expr string) string {
	v, err := jmespath.Search(expr, doc)
	if err != nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
