package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/donatelife/donatelife-api/schema"
)

type LocationStore interface {
	ListLocations() ([]schema.DistrictWithUpazilas, error)
}

// ListLocations returns the static district list with its upazilas
// nested, joined with a lookup stage so one round trip serves the whole
// reference set.
func (m *mongoDB) ListLocations() ([]schema.DistrictWithUpazilas, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DistrictCollection)

	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         schema.UpazilaCollection,
			"localField":   "id",
			"foreignField": "district_id",
			"as":           "upazilas",
		}},
		{"$sort": bson.M{"name": 1}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	districts := []schema.DistrictWithUpazilas{}
	if err := cursor.All(ctx, &districts); err != nil {
		return nil, err
	}

	return districts, nil
}
