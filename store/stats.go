package store

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/donatelife/donatelife-api/schema"
)

type StatsStore interface {
	AdminStats() (*schema.AdminStats, error)
}

// AdminStats computes the dashboard report on demand. The funds total
// is summed through $toDecimal so float amounts never accumulate drift
// inside the pipeline; the result decodes as a Decimal128. An empty
// store yields a zero-valued report, not an error.
func (m *mongoDB) AdminStats() (*schema.AdminStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)

	users, err := db.Collection(schema.UserCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	donors, err := db.Collection(schema.UserCollection).CountDocuments(ctx, bson.M{
		"role": schema.RoleDonor,
	})
	if err != nil {
		return nil, err
	}

	requests, err := db.Collection(schema.DonationRequestCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	funding, err := db.Collection(schema.PaymentCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	funds, err := m.sumPaymentAmounts(ctx)
	if err != nil {
		return nil, err
	}

	return &schema.AdminStats{
		Users:    users,
		Requests: requests,
		Donors:   donors,
		Funding:  funding,
		Funds:    funds,
	}, nil
}

func (m *mongoDB) sumPaymentAmounts(ctx context.Context) (float64, error) {
	c := m.client.Database(m.database).Collection(schema.PaymentCollection)

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$toDecimal": "$amount"}},
		}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		Total primitive.Decimal128 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}

	return strconv.ParseFloat(results[0].Total.String(), 64)
}
