package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityWebhook_Unmarshal(t *testing.T) {
	payload := []byte(`{
		"type": "user.created",
		"data": {
			"id": "user_2abc",
			"first_name": "Ali",
			"last_name": "Raza",
			"email_addresses": [
				{"email_address": "ali@example.com"},
				{"email_address": "ali.work@example.com"}
			]
		}
	}`)

	var hook IdentityWebhook
	require.NoError(t, json.Unmarshal(payload, &hook))
	require.Equal(t, "user.created", hook.Type)
	require.Equal(t, "user_2abc", hook.Data.ID)
	require.Equal(t, "Ali", hook.Data.FirstName)
	require.Equal(t, "ali@example.com", hook.Data.PrimaryEmail())
}

func TestPrimaryEmail_Empty(t *testing.T) {
	user := IdentityWebhookUser{ID: "user_2abc"}
	require.Equal(t, "", user.PrimaryEmail())
}
