// Package identity wraps the hosted identity provider: it signs the user
// in, caches the short-lived ID token, and force-refreshes it on demand.
// The application never persists the ID token itself; only the long-lived
// refresh token is stored between runs.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/storyline-app/storyline-cli/internal/logging"
)

// ErrNotAuthenticated is returned when no signed-in user could be resolved
// within the wait policy, or after an explicit sign-out.
var ErrNotAuthenticated = errors.New("not authenticated")

const (
	defaultSignInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"
	defaultTokenURL  = "https://securetoken.googleapis.com/v1/token"

	// defaultWaitTimeout bounds how long Token waits for a first sign-in.
	defaultWaitTimeout = 5 * time.Second

	// expirySkew refreshes tokens slightly early so a token does not expire
	// mid-flight.
	expirySkew = 30 * time.Second
)

// SessionStore persists the refresh token between runs so a later session
// can resume without an interactive sign-in.
type SessionStore interface {
	LoadRefreshToken(ctx context.Context) (string, error)
	SaveRefreshToken(ctx context.Context, token string) error
	ClearRefreshToken(ctx context.Context) error
}

// Config holds identity-provider endpoints and credentials.
//
// SignInURL and TokenURL default to the hosted provider's REST endpoints;
// tests point them at local fakes.
type Config struct {
	APIKey      string
	SignInURL   string
	TokenURL    string
	WaitTimeout time.Duration
}

// Provider is the token source for the gateway. It is safe for concurrent
// use.
type Provider struct {
	cfg   Config
	http  *http.Client
	log   logging.Logger
	store SessionStore

	mu           sync.Mutex
	idToken      string
	refreshToken string
	expiry       time.Time
	signedIn     chan struct{}
}

type Option func(*Provider)

func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) { p.http = c }
}

func WithLogger(l logging.Logger) Option {
	return func(p *Provider) { p.log = l }
}

// WithSessionStore enables refresh-token persistence.
func WithSessionStore(s SessionStore) Option {
	return func(p *Provider) { p.store = s }
}

func New(cfg Config, opts ...Option) *Provider {
	if cfg.SignInURL == "" {
		cfg.SignInURL = defaultSignInURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = defaultWaitTimeout
	}

	p := &Provider{
		cfg:      cfg,
		http:     &http.Client{},
		log:      logging.NewDefault(slog.LevelInfo),
		signedIn: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resume adopts a refresh token stored by a previous run, if any. The first
// Token call will mint a fresh ID token from it.
func (p *Provider) Resume(ctx context.Context) error {
	if p.store == nil {
		return nil
	}
	token, err := p.store.LoadRefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("load stored session: %w", err)
	}
	if token == "" {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.refreshToken = token
	p.markSignedInLocked()
	return nil
}

// Token returns a bearer token for the current user. When force is true, or
// the cached token is expired or about to expire, a fresh token is minted
// from the refresh token.
//
// If no user is signed in yet, Token waits for the first sign-in up to the
// configured WaitTimeout and then fails with ErrNotAuthenticated.
func (p *Provider) Token(ctx context.Context, force bool) (string, error) {
	if err := p.waitForSession(ctx); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.refreshToken == "" {
		// signed out between the wait and the lock
		return "", ErrNotAuthenticated
	}

	if !force && p.idToken != "" && time.Until(p.expiry) > expirySkew {
		return p.idToken, nil
	}

	return p.refreshLocked(ctx)
}

// SignedIn reports whether a session is currently known.
func (p *Provider) SignedIn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshToken != ""
}

func (p *Provider) waitForSession(ctx context.Context) error {
	p.mu.Lock()
	ch := p.signedIn
	p.mu.Unlock()

	select {
	case <-ch:
		return nil
	default:
	}

	timer := time.NewTimer(p.cfg.WaitTimeout)
	defer timer.Stop()

	select {
	case <-ch:
		return nil
	case <-timer.C:
		return ErrNotAuthenticated
	case <-ctx.Done():
		return ctx.Err()
	}
}

// markSignedInLocked releases everyone blocked in waitForSession.
func (p *Provider) markSignedInLocked() {
	select {
	case <-p.signedIn:
	default:
		close(p.signedIn)
	}
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	Email        string `json:"email"`
}

// SignIn authenticates with email/password and establishes the session.
// The refresh token is persisted when a SessionStore is configured.
func (p *Provider) SignIn(ctx context.Context, email, password string) error {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp signInResponse
	if err := p.postJSON(ctx, p.cfg.SignInURL, payload, &resp); err != nil {
		return err
	}

	p.mu.Lock()
	p.idToken = resp.IDToken
	p.refreshToken = resp.RefreshToken
	p.expiry = tokenExpiry(resp.IDToken, resp.ExpiresIn)
	p.markSignedInLocked()
	p.mu.Unlock()

	if p.store != nil {
		if err := p.store.SaveRefreshToken(ctx, resp.RefreshToken); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}

	p.log.Info(ctx, "signed in", "email", resp.Email)
	return nil
}

// SignOut drops the session and clears the stored refresh token.
func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.idToken = ""
	p.refreshToken = ""
	p.expiry = time.Time{}
	p.signedIn = make(chan struct{})
	p.mu.Unlock()

	if p.store != nil {
		if err := p.store.ClearRefreshToken(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
}

// refreshLocked mints a fresh ID token from the refresh token. Callers must
// hold p.mu.
func (p *Provider) refreshLocked(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", p.refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.withKey(p.cfg.TokenURL), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read refresh response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrNotAuthenticated, providerErrorMessage(body))
	}

	var r refreshResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}

	p.idToken = r.IDToken
	if r.RefreshToken != "" {
		p.refreshToken = r.RefreshToken
	}
	p.expiry = tokenExpiry(r.IDToken, r.ExpiresIn)

	p.log.Debug(ctx, "token refreshed", "expires", p.expiry)
	return p.idToken, nil
}

func (p *Provider) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.withKey(endpoint), strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read identity response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, providerErrorMessage(body))
	}

	return json.Unmarshal(body, out)
}

func (p *Provider) withKey(endpoint string) string {
	if p.cfg.APIKey == "" {
		return endpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "key=" + url.QueryEscape(p.cfg.APIKey)
}

// providerErrorMessage extracts the provider's error code from a response
// like {"error":{"message":"INVALID_PASSWORD"}}.
func providerErrorMessage(body []byte) string {
	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return "identity provider rejected the request"
}

// tokenExpiry determines when an ID token expires, preferring the exp claim
// embedded in the token over the provider's expires_in hint. The token is
// parsed without signature verification; the backend, not the client, is
// responsible for validating it.
func tokenExpiry(idToken, expiresIn string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if secs, err := strconv.Atoi(expiresIn); err == nil && secs > 0 {
		return time.Now().Add(time.Duration(secs) * time.Second)
	}
	return time.Time{}
}
