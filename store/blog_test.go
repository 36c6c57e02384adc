package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/donatelife/donatelife-api/schema"
)

type BlogTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewBlogTestSuite(connURI, dbName string) *BlogTestSuite {
	return &BlogTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *BlogTestSuite) SetupSuite() {
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

// CleanMongoDB drop the whole test mongodb
func (s *BlogTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *BlogTestSuite) TestBlogLifecycle() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateBlog(schema.Blog{
		Title:       "Why donate blood",
		Content:     "One donation can save up to three lives.",
		AuthorEmail: "volunteer@donatelife.org",
		Status:      schema.BlogPublished, // ignored, posts start as drafts
	})
	s.NoError(err)
	s.Equal(schema.BlogDraft, created.Status)
	s.False(created.ID.IsZero())

	// drafts are invisible to the public listing
	published, err := store.ListBlogs(schema.BlogPublished)
	s.NoError(err)
	s.Equal([]schema.Blog{}, published)

	s.NoError(store.UpdateBlogStatus(created.ID, schema.BlogPublished))

	published, err = store.ListBlogs(schema.BlogPublished)
	s.NoError(err)
	s.Len(published, 1)
	s.Equal(created.ID, published[0].ID)

	// unconstrained and "all" listings include everything
	all, err := store.ListBlogs("all")
	s.NoError(err)
	s.Len(all, 1)

	got, err := store.GetBlog(created.ID)
	s.NoError(err)
	s.Equal("Why donate blood", got.Title)
}

func (s *BlogTestSuite) TestBlogNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetBlog(primitive.NewObjectID())
	s.Equal(ErrBlogNotFound, err)

	s.Equal(ErrBlogNotFound, store.UpdateBlogStatus(primitive.NewObjectID(), schema.BlogDraft))
}

func TestBlogTestSuite(t *testing.T) {
	suite.Run(t, NewBlogTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-donatelife-blog"))
}
