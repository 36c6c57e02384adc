package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/donatelife/donatelife-api/schema"
)

type UserTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewUserTestSuite(connURI, dbName string) *UserTestSuite {
	return &UserTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *UserTestSuite) SetupSuite() {
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
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *UserTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	_, err := s.testDatabase.Collection(schema.UserCollection).InsertMany(ctx, []interface{}{
		schema.User{Email: "admin@donatelife.org", Name: "Admin", Role: schema.RoleAdmin, Status: schema.AccountActive},
		schema.User{Email: "volunteer@donatelife.org", Name: "Volunteer", Role: schema.RoleVolunteer, Status: schema.AccountActive},
		schema.User{Email: "a@x.com", Name: "Donor A", Role: schema.RoleDonor, Status: schema.AccountActive, BloodGroup: "A+", District: "Dhaka", Upazila: "Dhanmondi"},
		schema.User{Email: "b@x.com", Name: "Donor B", Role: schema.RoleDonor, Status: schema.AccountActive, BloodGroup: "A+", District: "Chattogram", Upazila: "Pahartali"},
		schema.User{Email: "c@x.com", Name: "Donor C", Role: schema.RoleDonor, Status: schema.AccountActive, BloodGroup: "B+", District: "Dhaka", Upazila: "Mirpur"},
		schema.User{Email: "d@x.com", Name: "Donor D", Role: schema.RoleDonor, Status: schema.AccountBlocked, BloodGroup: "A+", District: "Dhaka", Upazila: "Dhanmondi"},
	})

	return err
}

// CleanMongoDB drop the whole test mongodb
func (s *UserTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *UserTestSuite) TestCreateUserDefaults() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	user, err := store.CreateUser(schema.User{
		Email:      "new@x.com",
		Name:       "Newcomer",
		BloodGroup: "O-",
		District:   "Rajshahi",
	})
	s.NoError(err)
	s.False(user.ID.IsZero())
	s.Equal(schema.RoleDonor, user.Role)
	s.Equal(schema.AccountActive, user.Status)
	s.False(user.CreatedAt.IsZero())
}

func (s *UserTestSuite) TestCreateUserDuplicateEmail() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateUser(schema.User{Email: "a@x.com", Name: "Impostor"})
	s.Equal(ErrAccountTaken, err)

	// no second document was inserted
	count, err := s.testDatabase.Collection(schema.UserCollection).CountDocuments(
		context.Background(), bson.M{"email": "a@x.com"})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *UserTestSuite) TestGetUser() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	user, err := store.GetUser("a@x.com")
	s.NoError(err)
	s.Equal("Donor A", user.Name)
	s.Equal(schema.RoleDonor, user.Role)

	_, err = store.GetUser("nobody@x.com")
	s.Equal(ErrAccountNotFound, err)
}

func (s *UserTestSuite) TestListUsersByStatus() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	blocked, err := store.ListUsers(schema.AccountBlocked)
	s.NoError(err)
	s.Equal([]string{"d@x.com"}, emails(blocked))
}

func (s *UserTestSuite) TestSearchDonorsConjunction() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// both dimensions constrained: only the active A+ donor in Dhaka
	donors, err := store.SearchDonors(DonorFilter{BloodGroup: "A+", District: "Dhaka"})
	s.NoError(err)
	s.Equal([]string{"a@x.com"}, emails(donors))

	// "all" leaves the district unconstrained
	donors, err = store.SearchDonors(DonorFilter{BloodGroup: "A+", District: "all"})
	s.NoError(err)
	s.Contains(emails(donors), "a@x.com")
	s.Contains(emails(donors), "b@x.com")
	s.NotContains(emails(donors), "c@x.com")

	// blocked donors never show up
	s.NotContains(emails(donors), "d@x.com")

	// no match is an empty slice, not an error
	donors, err = store.SearchDonors(DonorFilter{BloodGroup: "AB-"})
	s.NoError(err)
	s.Equal([]schema.User{}, donors)
}

func (s *UserTestSuite) TestUpdateUserRoleAndStatus() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	var user schema.User
	err := s.testDatabase.Collection(schema.UserCollection).FindOne(
		context.Background(), bson.M{"email": "c@x.com"}).Decode(&user)
	s.NoError(err)

	s.NoError(store.UpdateUserRole(user.ID, schema.RoleVolunteer))
	s.NoError(store.UpdateUserStatus(user.ID, schema.AccountBlocked))

	updated, err := store.GetUser("c@x.com")
	s.NoError(err)
	s.Equal(schema.RoleVolunteer, updated.Role)
	s.Equal(schema.AccountBlocked, updated.Status)

	s.Equal(ErrAccountNotFound, store.UpdateUserRole(primitive.NewObjectID(), schema.RoleAdmin))
	s.Equal(ErrAccountNotFound, store.UpdateUserStatus(primitive.NewObjectID(), schema.AccountActive))
}

func emails(users []schema.User) []string {
	result := []string{}
	for _, u := range users {
		result = append(result, u.Email)
	}
	return result
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, NewUserTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-donatelife-user"))
}
