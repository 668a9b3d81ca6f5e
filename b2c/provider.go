package b2c

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"golang.org/x/oauth2"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/claims"
	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

// ProviderName identifies identities produced by this package.
const ProviderName = "b2c"

// Client is the capability contract of an OpenID Connect client plugin:
// its default settings, settings form, endpoints and requested scopes.
type Client interface {
	DefaultConfiguration() Configuration
	BuildForm() []FormField
	Endpoints() Endpoints
	Scopes() []string
}

// Identity is the normalised result of a B2C sign-in. It holds facts
// only; account creation and linking are left to the caller.
type Identity struct {
	Provider    string
	Subject     string
	Name        string
	Email       string
	EmailSource email.Source
}

// Provider is an Azure AD B2C client for one tenant and user flow.
// It is immutable after New and safe for concurrent use.
type Provider struct {
	cfg        Configuration
	resolver   *email.Resolver
	httpClient *http.Client
}

var _ Client = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider) error

// WithResolver sets the email resolver used by Identity and Exchange.
//
// Default: a resolver without logging, metrics or tracing.
func WithResolver(r *email.Resolver) Option {
	return func(p *Provider) error {
		if r == nil {
			return errors.New("resolver cannot be nil")
		}
		p.resolver = r
		return nil
	}
}

// WithHTTPClient sets the client used for discovery and code exchange.
//
// Default: http.DefaultClient
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) error {
		if c == nil {
			return errors.New("http client cannot be nil")
		}
		p.httpClient = c
		return nil
	}
}

// New returns a Provider for cfg. The configuration must be valid.
func New(cfg Configuration, opts ...Option) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Provider{
		cfg:        cfg.clone(),
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.resolver == nil {
		r, err := email.New()
		if err != nil {
			return nil, err
		}
		p.resolver = r
	}

	return p, nil
}

// Name returns ProviderName.
func (p *Provider) Name() string {
	return ProviderName
}

// Configuration returns a copy of the provider configuration.
func (p *Provider) Configuration() Configuration {
	return p.cfg.clone()
}

func (p *Provider) DefaultConfiguration() Configuration {
	return DefaultConfiguration()
}

func (p *Provider) BuildForm() []FormField {
	return p.cfg.BuildForm()
}

func (p *Provider) Endpoints() Endpoints {
	return p.cfg.Endpoints()
}

func (p *Provider) Scopes() []string {
	return slices.Clone(p.cfg.Scopes)
}

// OAuth2Config returns an authorization code flow configuration for the
// registered application.
func (p *Provider) OAuth2Config(clientID, clientSecret, redirectURL string) *oauth2.Config {
	ep := p.Endpoints()
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   ep.Authorization,
			TokenURL:  ep.Token,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: p.Scopes(),
	}
}

// Identity normalises sign-in claims. The subject is "sub", or "oid" when
// the flow is configured to omit "sub".
func (p *Provider) Identity(ctx context.Context, c claims.Claims) Identity {
	subject, ok := c.String("sub")
	if !ok || subject == "" {
		subject, _ = c.String("oid")
	}
	name, _ := c.String("name")

	res := p.resolver.Resolve(ctx, c)

	return Identity{
		Provider:    ProviderName,
		Subject:     subject,
		Name:        name,
		Email:       res.Email,
		EmailSource: res.Source,
	}
}

// Exchange trades an authorization code for tokens and returns the identity
// described by the id_token. The id_token signature is not verified here;
// callers that need verification must do it before trusting the result.
func (p *Provider) Exchange(ctx context.Context, cfg *oauth2.Config, code string, opts ...oauth2.AuthCodeOption) (Identity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := cfg.Exchange(ctx, code, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("b2c token exchange failed: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return Identity{}, ErrIDTokenMissing
	}

	return p.Identity(ctx, claims.DecodePayload(rawIDToken)), nil
}
