package session

import (
	"github.com/FrumiousOwl/Teses-front-sub000/providers"
	"go.uber.org/zap"
)

// Provider is the one place that touches the credential store; views ask it
// for the current session instead of reading the storage key themselves.
type Provider struct {
	store  providers.CredentialStore
	logger providers.ZapLoggerProvider
}

func NewProvider(store providers.CredentialStore, logger providers.ZapLoggerProvider) *Provider {
	return &Provider{store: store, logger: logger}
}

func (p *Provider) Current() Session {
	return Decode(p.store.Get())
}

// HasCredential is the routing gate: a non-empty stored value counts as
// logged in, whatever the value decodes to.
func (p *Provider) HasCredential() bool {
	return p.store.Get() != ""
}

// Login stores the submitted credential verbatim. This build performs no
// client-side authentication; the server rejects bad tokens on first use.
func (p *Provider) Login(raw string) error {
	if err := p.store.Set(raw); err != nil {
		return err
	}
	p.logger.GetLogger().Info("credential stored", zap.String("role", string(Decode(raw).Role)))
	return nil
}

func (p *Provider) Logout() error {
	p.logger.GetLogger().Info("logging out, clearing stored credential")
	return p.store.Clear()
}
