package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserCollection = "users"

// Role classifies what a user is allowed to do. Admins manage roles,
// statuses and blog publication; volunteers get elevated read access to
// requests and blogs; donors are regular accounts.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

// AccountStatus gates access for an otherwise valid token. A blocked
// account keeps its documents but fails every role-guarded route.
type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountBlocked AccountStatus = "blocked"
)

func (s AccountStatus) Valid() bool {
	return s == AccountActive || s == AccountBlocked
}

// User is a registered account. The email is the stable identity key
// across users, donation requests and payments; it is unique-indexed and
// never changes after registration.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	BloodGroup string             `bson:"blood_group" json:"blood_group"`
	District   string             `bson:"district" json:"district"`
	Upazila    string             `bson:"upazila" json:"upazila"`
	Role       Role               `bson:"role" json:"role"`
	Status     AccountStatus      `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
