package schema

import "time"

const ContactMessageCollection = "contactMessages"

// ContactMessage is an append-only inbound message. It is never read
// back through the API in this version, only recorded.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
