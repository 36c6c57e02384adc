package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexDonationRequestCollection())
	panicIfError(m.IndexPaymentCollection())
	panicIfError(m.IndexLocationCollections())
}

// IndexUserCollection creates the unique email index that backs the
// idempotent registration guarantee.
func (m *MongoDBIndexer) IndexUserCollection() error {
	if err := m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "role", Value: 1},
			{Key: "status", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexDonationRequestCollection() error {
	if err := m.createIndex(DonationRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"status": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(DonationRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"requester_email": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexPaymentCollection() error {
	return m.createIndex(PaymentCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexLocationCollections() error {
	if err := m.createIndex(DistrictCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(UpazilaCollection, mongo.IndexModel{
		Keys: bson.M{
			"district_id": 1,
		},
	})
}
