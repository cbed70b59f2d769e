// Package disabledauth provides an AuthProvider used when no identity
// provider is configured. Every flow fails with ErrProviderDisabled so the
// deployment degrades to guest-only access without call sites branching on
// configuration.
package disabledauth

import (
	"context"
	"errors"

	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/ports"
)

// ErrProviderDisabled is returned by every Provider operation.
var ErrProviderDisabled = errors.New("authentication provider is not configured")

// Provider implements ports.AuthProvider by rejecting every flow.
type Provider struct{}

var _ ports.AuthProvider = (*Provider)(nil)

// NewProvider constructs a disabled Provider.
func NewProvider() *Provider { return &Provider{} }

// Begin always fails with ErrProviderDisabled.
func (p *Provider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	return "", "", "", ErrProviderDisabled
}

// Exchange always fails with ErrProviderDisabled.
func (p *Provider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	return domainauth.Identity{}, ErrProviderDisabled
}
