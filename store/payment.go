package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/donatelife/donatelife-api/schema"
)

type PaymentStore interface {
	CreatePayment(payment schema.Payment) (*schema.Payment, error)
	ListPayments() ([]schema.Payment, error)
}

// CreatePayment appends a funding record. Payments are never mutated or
// deleted.
func (m *mongoDB) CreatePayment(payment schema.Payment) (*schema.Payment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PaymentCollection)

	payment.ID = primitive.NilObjectID
	payment.CreatedAt = time.Now().UTC()

	result, err := c.InsertOne(ctx, &payment)
	if err != nil {
		return nil, err
	}
	payment.ID = result.InsertedID.(primitive.ObjectID)

	return &payment, nil
}

// ListPayments returns every funding record.
func (m *mongoDB) ListPayments() ([]schema.Payment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PaymentCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	payments := []schema.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}
