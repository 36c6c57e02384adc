package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/donatelife/donatelife-api/schema"
)

type StatsTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewStatsTestSuite(connURI, dbName string) *StatsTestSuite {
	return &StatsTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *StatsTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb, including the side
// databases the empty-store and payment tests run against
func (s *StatsTestSuite) CleanMongoDB() error {
	for _, suffix := range []string{"", "-empty", "-payments"} {
		if err := s.mongoClient.Database(s.testDBName + suffix).Drop(context.Background()); err != nil {
			return err
		}
	}
	return nil
}

// TestAdminStatsEmptyStore runs against a database nothing else writes
// to, so the report must come back all zero rather than erroring on the
// empty aggregation.
func (s *StatsTestSuite) TestAdminStatsEmptyStore() {
	store := NewMongoStore(s.mongoClient, s.testDBName+"-empty")

	stats, err := store.AdminStats()
	s.NoError(err)
	s.Equal(&schema.AdminStats{}, stats)
}

func (s *StatsTestSuite) TestAdminStatsReport() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateUser(schema.User{Email: "donor@x.com", Role: schema.RoleDonor})
	s.Require().NoError(err)
	_, err = store.CreateUser(schema.User{Email: "admin@x.com", Role: schema.RoleAdmin})
	s.Require().NoError(err)

	_, err = store.CreateRequest(schema.DonationRequest{
		RequesterEmail: "donor@x.com",
		BloodGroup:     "A+",
	})
	s.Require().NoError(err)

	for _, p := range []schema.Payment{
		{Email: "donor@x.com", Name: "Donor", Amount: 10.10, Currency: "usd", TransactionID: "pi_1"},
		{Email: "admin@x.com", Name: "Admin", Amount: 20.25, Currency: "usd", TransactionID: "pi_2"},
	} {
		_, err := store.CreatePayment(p)
		s.Require().NoError(err)
	}

	stats, err := store.AdminStats()
	s.NoError(err)
	s.Equal(int64(2), stats.Users)
	s.Equal(int64(1), stats.Requests)
	s.Equal(int64(1), stats.Donors)
	s.Equal(int64(2), stats.Funding)
	s.Equal(30.35, stats.Funds)
}

func (s *StatsTestSuite) TestCreateAndListPayments() {
	store := NewMongoStore(s.mongoClient, s.testDBName+"-payments")

	created, err := store.CreatePayment(schema.Payment{
		Email:         "giver@x.com",
		Name:          "Giver",
		Amount:        50,
		Currency:      "usd",
		TransactionID: "pi_list",
	})
	s.NoError(err)
	s.False(created.ID.IsZero())
	s.False(created.CreatedAt.IsZero())

	payments, err := store.ListPayments()
	s.NoError(err)
	s.Len(payments, 1)
	s.Equal("giver@x.com", payments[0].Email)
	s.Equal(50.0, payments[0].Amount)
}

func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, NewStatsTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-donatelife-stats"))
}
