package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BlogCollection = "blogs"

// BlogStatus is either draft or published. Only admins flip it.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

func (s BlogStatus) Valid() bool {
	return s == BlogDraft || s == BlogPublished
}

type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Thumbnail   string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Content     string             `bson:"content" json:"content"`
	Status      BlogStatus         `bson:"status" json:"status"`
	AuthorEmail string             `bson:"author_email" json:"author_email"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
