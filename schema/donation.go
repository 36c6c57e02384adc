package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DonationRequestCollection = "donationRequests"

// RequestStatus is the lifecycle state of a donation request. The wire
// values match what clients already store and filter on.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "inprogress"
	RequestDone       RequestStatus = "done"
	RequestCancelled  RequestStatus = "cancel"
)

// requestTransitions is the single source of truth for legal lifecycle
// moves. done and cancel are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:    {RequestInProgress},
	RequestInProgress: {RequestDone, RequestCancelled},
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestInProgress, RequestDone, RequestCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition can leave this state.
func (s RequestStatus) Terminal() bool {
	return len(requestTransitions[s]) == 0 && s.Valid()
}

// CanTransition reports whether moving from s to next is a legal
// lifecycle step.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, t := range requestTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// DonationRequest is a recipient's ask for blood. The requester owns the
// record; donor name and email are attached only once a claim moves it
// to inprogress.
type DonationRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequesterName  string             `bson:"requester_name" json:"requester_name"`
	RequesterEmail string             `bson:"requester_email" json:"requester_email"`
	RecipientName  string             `bson:"recipient_name" json:"recipient_name"`
	BloodGroup     string             `bson:"blood_group" json:"blood_group"`
	District       string             `bson:"district" json:"district"`
	Upazila        string             `bson:"upazila" json:"upazila"`
	Hospital       string             `bson:"hospital" json:"hospital"`
	Address        string             `bson:"address" json:"address"`
	Date           string             `bson:"date" json:"date"`
	Time           string             `bson:"time" json:"time"`
	Message        string             `bson:"message,omitempty" json:"message,omitempty"`
	Status         RequestStatus      `bson:"status" json:"status"`
	DonorName      string             `bson:"donor_name,omitempty" json:"donor_name,omitempty"`
	DonorEmail     string             `bson:"donor_email,omitempty" json:"donor_email,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// RequestEdit carries the replaceable fields of a pending request. The
// status and the requester identity are never editable.
type RequestEdit struct {
	RecipientName string `bson:"recipient_name" json:"recipient_name"`
	BloodGroup    string `bson:"blood_group" json:"blood_group"`
	District      string `bson:"district" json:"district"`
	Upazila       string `bson:"upazila" json:"upazila"`
	Hospital      string `bson:"hospital" json:"hospital"`
	Address       string `bson:"address" json:"address"`
	Date          string `bson:"date" json:"date"`
	Time          string `bson:"time" json:"time"`
	Message       string `bson:"message" json:"message"`
}
