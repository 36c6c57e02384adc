package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const PaymentCollection = "payments"

// Payment is an append-only funding record. Amounts are stored as
// submitted (major currency units); reporting sums them with decimal
// coercion instead of accumulating floats.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name" json:"name"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// AdminStats is the on-demand dashboard report. Funding counts payment
// records as a proxy for funding contributors.
type AdminStats struct {
	Users    int64   `json:"users"`
	Requests int64   `json:"requests"`
	Donors   int64   `json:"donors"`
	Funding  int64   `json:"funding"`
	Funds    float64 `json:"funds"`
}
