package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Verified subject and profile claims taken from an Auth0 access token.
type Identity struct {
	Sub       string
	Email     string
	FirstName string
	LastName  string
}

var ErrInvalidToken = errors.New("invalid token")

// Verifier checks RS256 bearer tokens against the tenant's JWKS.
// Keys are cached; an unknown kid triggers one refetch.
type Verifier struct {
	issuer   string
	audience string
	jwksURL  string
	client   *http.Client

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

const jwksCacheTTL = 10 * time.Minute

func NewVerifier(domain string, audience string) *Verifier {
	return &Verifier{
		issuer:   fmt.Sprintf("https://%s/", domain),
		audience: audience,
		jwksURL:  fmt.Sprintf("https://%s/.well-known/jwks.json", domain),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// newVerifierForEndpoint is the test seam: issuer and JWKS URL are taken as-is.
func newVerifierForEndpoint(issuer string, audience string, jwksURL string) *Verifier {
	return &Verifier{
		issuer:   issuer,
		audience: audience,
		jwksURL:  jwksURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify parses and validates the raw bearer token and returns the identity
// claims. Any validation failure comes back wrapped in ErrInvalidToken.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (Identity, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodRS256 {
			return nil, errors.New("unexpected signing method")
		}

		kid, ok := t.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("token has no kid header")
		}

		return v.keyForKid(ctx, kid)
	}, jwt.WithValidMethods([]string{"RS256"}))

	if err != nil || token == nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	if !claims.VerifyIssuer(v.issuer, true) {
		return Identity{}, fmt.Errorf("%w: issuer mismatch", ErrInvalidToken)
	}
	if !claims.VerifyAudience(v.audience, true) {
		return Identity{}, fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	firstName, _ := claims["given_name"].(string)
	lastName, _ := claims["family_name"].(string)

	return Identity{
		Sub:       sub,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

func (v *Verifier) keyForKid(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if key, ok := v.keys[kid]; ok && time.Since(v.fetchedAt) < jwksCacheTTL {
		return key, nil
	}

	if err := v.refetchLocked(ctx); err != nil {
		return nil, err
	}

	key, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no key for kid %q", kid)
	}
	return key, nil
}

type jwksDocument struct {
	Keys []jwksKey `json:"keys"`
}

type jwksKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (v *Verifier) refetchLocked(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch jwks: status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decode jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}

	if len(keys) == 0 {
		return errors.New("jwks contains no usable RSA keys")
	}

	v.keys = keys
	v.fetchedAt = time.Now()
	return nil
}

func parseRSAKey(k jwksKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	if e == 0 {
		return nil, errors.New("invalid exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
