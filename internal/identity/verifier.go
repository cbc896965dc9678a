package identity

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"
)

var ErrInvalidSession = errors.New("invalid or expired session token")

// Verifier validates shopper session tokens issued by the identity provider.
// Sessions are RS256 JWTs; the signing keys come from the provider's JWKS
// endpoint and are cached for a day.
type Verifier struct {
	jwksURL   string
	secretKey string
	http      *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
}

func NewVerifier(jwksURL, secretKey string, timeout time.Duration) *Verifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Verifier{
		jwksURL:   jwksURL,
		secretKey: secretKey,
		http:      &http.Client{Timeout: timeout},
		keys:      make(map[string]*rsa.PublicKey),
	}
}

type jwksResponse struct {
	Keys []struct {
		Kty string `json:"kty"`
		Kid string `json:"kid"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

type sessionHeader struct {
	Alg string `json:"alg"`
	Kid string `json:"kid"`
}

type sessionClaims struct {
	Sub string `json:"sub"`
	Exp int64  `json:"exp"`
}

// VerifySession checks the token's signature and expiry against the
// provider's published keys and returns the shopper's user id.
func (v *Verifier) VerifySession(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", ErrInvalidSession
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidSession
	}
	var header sessionHeader
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return "", ErrInvalidSession
	}
	if header.Alg != "RS256" {
		return "", fmt.Errorf("%w: unexpected algorithm %s", ErrInvalidSession, header.Alg)
	}

	pubKey, err := v.publicKey(header.Kid)
	if err != nil {
		return "", err
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrInvalidSession
	}
	var claims sessionClaims
	if err := json.Unmarshal(claimsBytes, &claims); err != nil {
		return "", ErrInvalidSession
	}
	if claims.Sub == "" || time.Now().Unix() > claims.Exp {
		return "", ErrInvalidSession
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return "", ErrInvalidSession
	}
	hashed := sha256.Sum256([]byte(parts[0] + "." + parts[1]))
	if err := rsa.VerifyPKCS1v15(pubKey, crypto.SHA256, hashed[:], signature); err != nil {
		return "", fmt.Errorf("%w: signature mismatch", ErrInvalidSession)
	}

	return claims.Sub, nil
}

func (v *Verifier) publicKey(kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	if key, ok := v.keys[kid]; ok && time.Now().Before(v.expiresAt) {
		v.mu.RUnlock()
		return key, nil
	}
	v.mu.RUnlock()

	if err := v.refreshKeys(); err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	if key, ok := v.keys[kid]; ok {
		return key, nil
	}
	return nil, fmt.Errorf("%w: unknown signing key %s", ErrInvalidSession, kid)
}

func (v *Verifier) refreshKeys() error {
	req, err := http.NewRequest(http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return err
	}
	if v.secretKey != "" {
		req.Header.Set("Authorization", "Bearer "+v.secretKey)
	}

	resp, err := v.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch signing keys: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("signing key endpoint returned status %d", resp.StatusCode)
	}

	var set jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("failed to decode signing keys: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.keys = make(map[string]*rsa.PublicKey)
	for _, key := range set.Keys {
		pub, err := parseRSAKey(key.N, key.E)
		if err != nil {
			continue
		}
		v.keys[key.Kid] = pub
	}
	v.expiresAt = time.Now().Add(24 * time.Hour)
	return nil
}

func parseRSAKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}
