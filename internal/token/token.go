// Package token mints and verifies the signed bearer credentials returned by
// the auth endpoints. The issuer is stateless: it keeps no registry of issued
// tokens and offers no revocation, a token lives and dies by its exp claim.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/config"
)

var (
	// ErrMissingSecret is returned by New when no signing secret is configured.
	// Callers are expected to treat this as fatal at startup.
	ErrMissingSecret = errors.New("token signing secret is not configured")
	// ErrInvalidToken is returned when a token fails parsing or signature checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("token has expired")
)

// Options override per-call issuance settings. Zero-valued fields fall through
// to the issuer's configured defaults (shallow merge, field by field).
type Options struct {
	ExpiresIn time.Duration
	Audience  string
	Subject   string
}

// Issuer signs arbitrary claim payloads with a process-wide secret and default
// expiry, both fixed at construction. Safe for concurrent use.
type Issuer struct {
	secret     []byte
	defaultTTL time.Duration
	issuer     string
}

// New builds an Issuer from auth config. An empty secret is a configuration
// error surfaced here so the process fails at startup, not on first login.
func New(cfg config.AuthConfig) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	ttl := time.Duration(cfg.TokenTTL) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{
		secret:     []byte(cfg.Secret),
		defaultTTL: ttl,
		issuer:     cfg.Issuer,
	}, nil
}

// Issue signs the given claims as an HS256 JWT. Caller claims are copied in
// as-is; iat, exp, iss and jti are stamped on top. opts may be nil; non-zero
// option fields replace the corresponding defaults. Errors come only from the
// signing primitive itself and are returned unchanged.
func (i *Issuer) Issue(claims map[string]any, opts *Options) (string, error) {
	ttl := i.defaultTTL
	audience := ""
	subject := ""
	if opts != nil {
		if opts.ExpiresIn > 0 {
			ttl = opts.ExpiresIn
		}
		audience = opts.Audience
		subject = opts.Subject
	}

	now := time.Now()
	payload := jwt.MapClaims{}
	for k, v := range claims {
		payload[k] = v
	}
	payload["iat"] = jwt.NewNumericDate(now)
	payload["exp"] = jwt.NewNumericDate(now.Add(ttl))
	payload["jti"] = uuid.New().String()
	if i.issuer != "" {
		payload["iss"] = i.issuer
	}
	if audience != "" {
		payload["aud"] = audience
	}
	if subject != "" {
		payload["sub"] = subject
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(i.secret)
}

// Verify parses tokenString, checks the HMAC signature and timing claims, and
// returns the embedded claims.
func (i *Issuer) Verify(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
