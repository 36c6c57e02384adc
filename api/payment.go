package api

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/donatelife/donatelife-api/schema"
)

// createPaymentIntent proxies a price to the payment gateway and hands
// the client secret back for the browser to confirm the charge.
func (s *Server) createPaymentIntent(c *gin.Context) {
	logger := log.WithField("api", "createPaymentIntent")

	var params struct {
		Price    float64 `json:"price"`
		Currency string  `json:"currency"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Price <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if params.Currency == "" {
		params.Currency = "usd"
	}

	// gateway amounts are integral minor units
	amount := int64(math.Round(params.Price * 100))

	secret, err := s.stripeClient.CreatePaymentIntent(amount, params.Currency)
	if err != nil {
		logger.WithError(err).Error(errorPaymentGateway.Message)
		abortWithEncoding(c, http.StatusInternalServerError, errorPaymentGateway)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_secret": secret})
}

// paymentCreate records a completed payment against the caller's own
// identity.
func (s *Server) paymentCreate(c *gin.Context) {
	var params struct {
		Name          string  `json:"name"`
		Amount        float64 `json:"amount" binding:"required"`
		Currency      string  `json:"currency"`
		TransactionID string  `json:"transaction_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Currency == "" {
		params.Currency = "usd"
	}

	payment, err := s.mongoStore.CreatePayment(schema.Payment{
		Email:         c.GetString("requester"),
		Name:          params.Name,
		Amount:        params.Amount,
		Currency:      params.Currency,
		TransactionID: params.TransactionID,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": payment})
}

// paymentList is the staff view over every funding record.
func (s *Server) paymentList(c *gin.Context) {
	payments, err := s.mongoStore.ListPayments()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": payments})
}
