package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/donatelife/donatelife-api/schema"
)

var ErrBlogNotFound = fmt.Errorf("blog not found")

type BlogStore interface {
	CreateBlog(blog schema.Blog) (*schema.Blog, error)
	GetBlog(id primitive.ObjectID) (*schema.Blog, error)
	ListBlogs(status schema.BlogStatus) ([]schema.Blog, error)
	UpdateBlogStatus(id primitive.ObjectID, status schema.BlogStatus) error
}

// CreateBlog persists a new blog post. Posts always start as drafts;
// publication is a separate admin action.
func (m *mongoDB) CreateBlog(blog schema.Blog) (*schema.Blog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BlogCollection)

	blog.ID = primitive.NilObjectID
	blog.Status = schema.BlogDraft
	blog.CreatedAt = time.Now().UTC()

	result, err := c.InsertOne(ctx, &blog)
	if err != nil {
		return nil, err
	}
	blog.ID = result.InsertedID.(primitive.ObjectID)

	return &blog, nil
}

// GetBlog returns one blog post by id.
func (m *mongoDB) GetBlog(id primitive.ObjectID) (*schema.Blog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BlogCollection)

	var blog schema.Blog
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return &blog, nil
}

// ListBlogs returns blog posts, optionally narrowed by status.
func (m *mongoDB) ListBlogs(status schema.BlogStatus) ([]schema.Blog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BlogCollection)

	query := bson.M{}
	if constrained(string(status)) {
		query["status"] = status
	}

	cursor, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	blogs := []schema.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

// UpdateBlogStatus flips a post between draft and published.
func (m *mongoDB) UpdateBlogStatus(id primitive.ObjectID, status schema.BlogStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BlogCollection)

	result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrBlogNotFound
	}

	return nil
}
