package stripe_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donatelife/donatelife-api/external/stripe"
)

func TestCreatePaymentIntent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "2500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))

		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":            "pi_123",
			"client_secret": "pi_123_secret_456",
		})
	}))
	defer ts.Close()

	s := stripe.New("sk_test_123", ts.URL)
	secret, err := s.CreatePaymentIntent(2500, "usd")

	assert.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
}

func TestCreatePaymentIntentGatewayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]map[string]string{
			"error": {"message": "Your card was declined."},
		})
	}))
	defer ts.Close()

	s := stripe.New("sk_test_123", ts.URL)
	_, err := s.CreatePaymentIntent(2500, "usd")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "declined")
}

func TestCreatePaymentIntentEmptyKey(t *testing.T) {
	s := stripe.New("", "")
	_, err := s.CreatePaymentIntent(2500, "usd")
	assert.Error(t, err)
}
