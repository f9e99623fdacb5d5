// internal/domain/models/registration.go
package models

import "time"

// Registration is a single lead submission.
//
// NOTE:
//   - ID is assigned by the backing store (Mongo ObjectID hex, or a UUID for
//     the DynamoDB and memory backends) and is never reused.
//   - CreatedAt is set server-side at insert time and never updated.
type Registration struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Phone       string    `bson:"phone" json:"phone"`
	Email       string    `bson:"email" json:"email"` // lowercased, trimmed
	State       string    `bson:"state" json:"state"`
	City        string    `bson:"city" json:"city"`
	InquiryType string    `bson:"inquiry_type" json:"inquiryType"` // register | inquiry
	Status      string    `bson:"status" json:"status"`            // new | contacted | enrolled | closed
	Notes       string    `bson:"notes" json:"notes"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Registration status values. Status is an admin-managed lifecycle tag,
// unrelated to HTTP status codes.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusEnrolled  = "enrolled"
	StatusClosed    = "closed"
)

// Inquiry type values.
const (
	InquiryRegister = "register"
	InquiryGeneral  = "inquiry"
)

// ValidStatus reports whether s is one of the four allowed status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusEnrolled, StatusClosed:
		return true
	}
	return false
}

// ValidInquiryType reports whether t is an allowed inquiry type.
func ValidInquiryType(t string) bool {
	return t == InquiryRegister || t == InquiryGeneral
}
