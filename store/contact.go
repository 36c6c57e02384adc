package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/donatelife/donatelife-api/schema"
)

type ContactStore interface {
	CreateContactMessage(message schema.ContactMessage) (*schema.ContactMessage, error)
}

// CreateContactMessage appends an inbound contact message.
func (m *mongoDB) CreateContactMessage(message schema.ContactMessage) (*schema.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ContactMessageCollection)

	message.ID = uuid.New().String()
	message.CreatedAt = time.Now().UTC()

	if _, err := c.InsertOne(ctx, &message); err != nil {
		return nil, err
	}

	return &message, nil
}
