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
	ErrAccountTaken    = fmt.Errorf("this account has been registered or has been taken")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// DonorFilter narrows the public donor search. Empty values and the
// sentinel "all" leave the dimension unconstrained.
type DonorFilter struct {
	BloodGroup string
	District   string
	Upazila    string
}

type UserStore interface {
	CreateUser(user schema.User) (*schema.User, error)
	GetUser(email string) (*schema.User, error)
	ListUsers(status schema.AccountStatus) ([]schema.User, error)
	SearchDonors(filter DonorFilter) ([]schema.User, error)
	UpdateUserRole(id primitive.ObjectID, role schema.Role) error
	UpdateUserStatus(id primitive.ObjectID, status schema.AccountStatus) error
}

// CreateUser registers an account. Registration is idempotent on email:
// a duplicate performs no insert and reports ErrAccountTaken. The
// unique index on email backs the check against concurrent registration.
func (m *mongoDB) CreateUser(user schema.User) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	count, err := c.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAccountTaken
	}

	user.ID = primitive.NilObjectID
	user.CreatedAt = time.Now().UTC()
	if user.Role == "" {
		user.Role = schema.RoleDonor
	}
	if user.Status == "" {
		user.Status = schema.AccountActive
	}

	result, err := c.InsertOne(ctx, &user)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrAccountTaken
		}
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	return &user, nil
}

// GetUser returns the account registered under an email.
func (m *mongoDB) GetUser(email string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &user, nil
}

// ListUsers returns every account, optionally narrowed by status.
func (m *mongoDB) ListUsers(status schema.AccountStatus) ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	cursor, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	users := []schema.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// SearchDonors returns active donors matching the conjunction of all
// provided filter dimensions.
func (m *mongoDB) SearchDonors(filter DonorFilter) ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	query := bson.M{
		"role":   schema.RoleDonor,
		"status": schema.AccountActive,
	}
	if constrained(filter.BloodGroup) {
		query["blood_group"] = filter.BloodGroup
	}
	if constrained(filter.District) {
		query["district"] = filter.District
	}
	if constrained(filter.Upazila) {
		query["upazila"] = filter.Upazila
	}

	cursor, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	donors := []schema.User{}
	if err := cursor.All(ctx, &donors); err != nil {
		return nil, err
	}

	return donors, nil
}

// UpdateUserRole sets the role of an account.
func (m *mongoDB) UpdateUserRole(id primitive.ObjectID, role schema.Role) error {
	return m.updateUserField(id, bson.M{"role": role})
}

// UpdateUserStatus sets the status of an account. Blocking does not
// invalidate outstanding tokens; role-guarded routes re-check status on
// every call instead.
func (m *mongoDB) UpdateUserStatus(id primitive.ObjectID, status schema.AccountStatus) error {
	return m.updateUserField(id, bson.M{"status": status})
}

func (m *mongoDB) updateUserField(id primitive.ObjectID, fields bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// constrained reports whether a filter value actually narrows a query.
// Clients send "all" for an unset dropdown.
func constrained(value string) bool {
	return value != "" && value != "all"
}

func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
