package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/softcorner-studio/storefront-api/internal/dto"
)

// Client creates hosted checkout sessions against Stripe's form-encoded API.
type Client struct {
	baseURL   string
	secretKey string
	currency  string
	http      *http.Client
}

func NewClient(baseURL, secretKey, currency string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		currency:  currency,
		http:      &http.Client{Timeout: timeout},
	}
}

type sessionResponse struct {
	URL   string `json:"url"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCheckoutSession returns the hosted payment page URL for a card
// payment covering the given cart. Amounts are converted to minor units.
func (c *Client) CreateCheckoutSession(ctx context.Context, items []dto.CartItem, successURL, cancelURL string) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)

	for i, item := range items {
		prefix := "line_items[" + strconv.Itoa(i) + "]"
		form.Set(prefix+"[price_data][currency]", c.currency)
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(int64(item.Price*100), 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("failed to decode payment gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := "unknown error"
		if session.Error != nil {
			msg = session.Error.Message
		}
		return "", fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, msg)
	}
	return session.URL, nil
}
