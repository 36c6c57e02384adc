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

var (
	ErrRequestNotFound       = fmt.Errorf("donation request not found")
	ErrInvalidTransition     = fmt.Errorf("illegal donation request transition")
	ErrConflictingTransition = fmt.Errorf("donation request was changed by someone else")
	ErrNotAllowed            = fmt.Errorf("caller may not modify this donation request")
)

// RequestFilter narrows request listings. Zero values leave a dimension
// unconstrained; "all" is accepted as an explicit no-op from clients.
type RequestFilter struct {
	RequesterEmail string
	Status         schema.RequestStatus
}

type DonationStore interface {
	CreateRequest(req schema.DonationRequest) (*schema.DonationRequest, error)
	GetRequest(id primitive.ObjectID) (*schema.DonationRequest, error)
	ListRequests(filter RequestFilter) ([]schema.DonationRequest, error)
	ClaimRequest(id primitive.ObjectID, donorName, donorEmail string) (*schema.DonationRequest, error)
	CloseRequest(id primitive.ObjectID, actorEmail string, next schema.RequestStatus) error
	EditRequest(id primitive.ObjectID, requesterEmail string, edit schema.RequestEdit) error
	DeleteRequest(id primitive.ObjectID, actorEmail string) error
}

// CreateRequest persists a new donation request. The status is always
// forced to pending and donor fields are cleared, whatever the caller
// submitted.
func (m *mongoDB) CreateRequest(req schema.DonationRequest) (*schema.DonationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DonationRequestCollection)

	req.ID = primitive.NilObjectID
	req.Status = schema.RequestPending
	req.DonorName = ""
	req.DonorEmail = ""
	req.CreatedAt = time.Now().UTC()

	result, err := c.InsertOne(ctx, &req)
	if err != nil {
		return nil, err
	}
	req.ID = result.InsertedID.(primitive.ObjectID)

	return &req, nil
}

// GetRequest returns one donation request by id.
func (m *mongoDB) GetRequest(id primitive.ObjectID) (*schema.DonationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DonationRequestCollection)

	var req schema.DonationRequest
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// ListRequests returns requests matching the conjunction of the
// provided filter dimensions. An empty result is an empty slice.
func (m *mongoDB) ListRequests(filter RequestFilter) ([]schema.DonationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DonationRequestCollection)

	query := bson.M{}
	if filter.RequesterEmail != "" {
		query["requester_email"] = filter.RequesterEmail
	}
	if constrained(string(filter.Status)) {
		query["status"] = filter.Status
	}

	cursor, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	requests := []schema.DonationRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ClaimRequest moves a pending request to inprogress and attaches the
// donor identity. The status check and the "claimant is not the
// requester" guard live in the update filter, so two concurrent claims
// resolve atomically: exactly one matches, the loser gets
// ErrConflictingTransition.
func (m *mongoDB) ClaimRequest(id primitive.ObjectID, donorName, donorEmail string) (*schema.DonationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DonationRequestCollection)

	result, err := c.UpdateOne(ctx, bson.M{
		"_id":             id,
		"status":          schema.RequestPending,
		"requester_email": bson.M{"$ne": donorEmail},
	}, bson.M{
		"$set": bson.M{
			"status":      schema.RequestInProgress,
			"donor_name":  donorName,
			"donor_email": donorEmail,
		},
	})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, m.explainFailedTransition(ctx, c, id, schema.RequestPending, schema.RequestInProgress)
	}

	return m.GetRequest(id)
}

// CloseRequest finishes an inprogress request as done or cancel. Only
// the requester or the claimed donor may close it.
func (m *mongoDB) CloseRequest(id primitive.ObjectID, actorEmail string, next schema.RequestStatus) error {
	if next != schema.RequestDone && next != schema.RequestCancelled {
		return ErrInvalidTransition
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DonationRequestCollection)

	result, err := c.UpdateOne(ctx, bson.M{
		"_id":    id,
		"status": schema.RequestInProgress,
		"$or": bson.A{
			bson.M{"requester_email": actorEmail},
			bson.M{"donor_email": actorEmail},
		},
	}, bson.M{
		"$set": bson.M{"status": next},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return m.explainFailedTransition(ctx, c, id, schema.RequestInProgress, next)
	}

	return nil
}

// EditRequest replaces the recipient, schedule and message fields of a
// pending request. Editing is the requester's privilege and is legal
// only while the request is still pending; the status never changes.
func (m *mongoDB) EditRequest(id primitive.ObjectID, requesterEmail string, edit schema.RequestEdit) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DonationRequestCollection)

	result, err := c.UpdateOne(ctx, bson.M{
		"_id":             id,
		"status":          schema.RequestPending,
		"requester_email": requesterEmail,
	}, bson.M{
		"$set": edit,
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return m.explainFailedEdit(ctx, c, id, requesterEmail)
	}

	return nil
}

// DeleteRequest removes a request. Only the requester or the claimed
// donor may remove it.
func (m *mongoDB) DeleteRequest(id primitive.ObjectID, actorEmail string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DonationRequestCollection)

	result, err := c.DeleteOne(ctx, bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"requester_email": actorEmail},
			bson.M{"donor_email": actorEmail},
		},
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		if _, err := m.GetRequest(id); err != nil {
			return err
		}
		return ErrNotAllowed
	}

	return nil
}

// explainFailedTransition turns a zero-match conditional update into a
// typed error by re-reading the document. A snapshot where the request
// already carries the target state means somebody else won the
// transition; a state that could never legally reach the target means
// the caller tried to skip a step; anything else failed the identity
// guard.
func (m *mongoDB) explainFailedTransition(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, expected, next schema.RequestStatus) error {
	var req schema.DonationRequest
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrRequestNotFound
		}
		return err
	}

	if req.Status == next {
		return ErrConflictingTransition
	}
	if req.Status != expected {
		if req.Status.CanTransition(next) {
			return ErrConflictingTransition
		}
		return ErrInvalidTransition
	}

	return ErrNotAllowed
}

func (m *mongoDB) explainFailedEdit(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, requesterEmail string) error {
	var req schema.DonationRequest
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrRequestNotFound
		}
		return err
	}

	if req.RequesterEmail != requesterEmail {
		return ErrNotAllowed
	}

	// the request moved on while the edit was in flight
	return ErrInvalidTransition
}
