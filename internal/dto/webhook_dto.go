package dto

// IdentityWebhook is the identity provider's user.created notification.
type IdentityWebhook struct {
	Type string              `json:"type"`
	Data IdentityWebhookUser `json:"data"`
}

type IdentityWebhookUser struct {
	ID             string          `json:"id"`
	EmailAddresses []identityEmail `json:"email_addresses"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
}

type identityEmail struct {
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the first listed address, or "".
func (u *IdentityWebhookUser) PrimaryEmail() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}
