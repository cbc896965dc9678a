package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newJWKSServer(t *testing.T, key *rsa.PrivateKey, kid string) *httptest.Server {
	n := base64.RawURLEncoding.EncodeToString(key.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes())
	body := fmt.Sprintf(`{"keys":[{"kty":"RSA","kid":%q,"use":"sig","alg":"RS256","n":%q,"e":%q}]}`, kid, n, e)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		w.Write([]byte(body))
	}))
}

func signSession(t *testing.T, key *rsa.PrivateKey, kid, sub string, exp time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	})
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestVerifySession(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := newJWKSServer(t, key, "key-1")
	defer srv.Close()

	v := NewVerifier(srv.URL, "sk_test_123", 5*time.Second)

	sub, err := v.VerifySession(signSession(t, key, "key-1", "user_2abc", time.Now().Add(time.Hour)))
	require.NoError(t, err)
	require.Equal(t, "user_2abc", sub)

	// Expired token.
	_, err = v.VerifySession(signSession(t, key, "key-1", "user_2abc", time.Now().Add(-time.Hour)))
	require.ErrorIs(t, err, ErrInvalidSession)

	// Signed by a key the provider never published.
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	_, err = v.VerifySession(signSession(t, other, "key-1", "user_2abc", time.Now().Add(time.Hour)))
	require.ErrorIs(t, err, ErrInvalidSession)

	// Unknown kid.
	_, err = v.VerifySession(signSession(t, key, "key-2", "user_2abc", time.Now().Add(time.Hour)))
	require.ErrorIs(t, err, ErrInvalidSession)

	_, err = v.VerifySession("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifySession_RejectsNonRS256(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token.Header["kid"] = "key-1"
	signed, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	// Rejected on the alg header alone, before any key fetch.
	v := NewVerifier("http://127.0.0.1:1/jwks", "", time.Second)
	_, err = v.VerifySession(signed)
	require.ErrorIs(t, err, ErrInvalidSession)
}
