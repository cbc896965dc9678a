package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/users/user_abc":
			w.Write([]byte(`{"email_addresses":[{"email_address":"ali@example.com"},{"email_address":"second@example.com"}]}`))
		case "/users/user_noemail":
			w.Write([]byte(`{"email_addresses":[]}`))
		case "/users/user_gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_123", 5*time.Second)
	ctx := context.Background()

	email, err := client.UserEmail(ctx, "user_abc")
	require.NoError(t, err)
	require.Equal(t, "ali@example.com", email)

	email, err = client.UserEmail(ctx, "user_noemail")
	require.NoError(t, err)
	require.Equal(t, "No Email", email)

	_, err = client.UserEmail(ctx, "user_gone")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = client.UserEmail(ctx, "user_boom")
	require.ErrorContains(t, err, "status 500")
}
