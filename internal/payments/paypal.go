// README: PayPal REST client for order create/capture.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"easymove/internal/types"
)

// PayPalClient talks to the PayPal Orders v2 API. Access tokens are fetched
// with the client-credentials grant and held in an injected TokenCache.
type PayPalClient struct {
	baseURL    string
	clientID   string
	secret     string
	httpClient *http.Client
	tokens     *TokenCache
}

func NewPayPalClient(baseURL, clientID, secret string) *PayPalClient {
	c := &PayPalClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientID:   clientID,
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	c.tokens = NewTokenCache(c.fetchToken)
	return c
}

// Enabled reports whether credentials are configured. Safe on a nil client.
func (c *PayPalClient) Enabled() bool {
	return c != nil && c.clientID != "" && c.secret != ""
}

// fetchToken implements the client-credentials grant.
func (c *PayPalClient) fetchToken(ctx context.Context) (string, time.Duration, error) {
	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", body)
	if err != nil {
		return "", 0, err
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("paypal token request failed: %s", resp.Status)
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", 0, err
	}
	return out.AccessToken, time.Duration(out.ExpiresIn) * time.Second, nil
}

// CreateOrder opens a CAPTURE-intent order for the given amount and returns
// the PayPal order ID.
func (c *PayPalClient) CreateOrder(ctx context.Context, amount types.Money) (string, error) {
	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"amount": map[string]string{
					"currency_code": amount.Currency,
					"value":         fmt.Sprintf("%.2f", amount.Pounds()),
				},
			},
		},
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/v2/checkout/orders", payload, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// CaptureOrder captures a previously approved order and returns its status.
func (c *PayPalClient) CaptureOrder(ctx context.Context, orderID string) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	path := "/v2/checkout/orders/" + orderID + "/capture"
	if err := c.doJSON(ctx, http.MethodPost, path, struct{}{}, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

func (c *PayPalClient) doJSON(ctx context.Context, method, path string, payload, out any) error {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("paypal auth: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token rejected despite the cache margin; force a refresh next call.
		c.tokens.Invalidate()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("paypal %s %s failed: %s", method, path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
