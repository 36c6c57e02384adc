package stripe

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultURL = "https://api.stripe.com"

var (
	errEmptySecretKey = fmt.Errorf("empty secret key")
	errEmptySecret    = fmt.Errorf("payment intent carries no client secret")
)

// Stripe creates payment intents. The gateway is a black box: an amount
// in minor units goes in, a client secret comes back for the browser to
// confirm the charge with.
type Stripe interface {
	CreatePaymentIntent(amount int64, currency string) (string, error)
}

type client struct {
	secretKey  string
	url        string
	httpClient *http.Client
}

type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent requests a payment intent from the gateway and
// returns its client secret. Failures are terminal; duplicate
// submission safety is the gateway's responsibility.
func (s *client) CreatePaymentIntent(amount int64, currency string) (string, error) {
	if s.secretKey == "" {
		return "", errEmptySecretKey
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequest(http.MethodPost, s.url+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error.Message != "" {
			return "", fmt.Errorf("stripe: %s", e.Error.Message)
		}
		return "", fmt.Errorf("stripe: unexpected status %d", resp.StatusCode)
	}

	var intent paymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", err
	}
	if intent.ClientSecret == "" {
		return "", errEmptySecret
	}

	return intent.ClientSecret, nil
}

func New(secretKey string, url string) Stripe {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &client{
		secretKey: secretKey,
		url:       u,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
