// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a chapter event members can RSVP to.
//
// Attendees has set semantics: a uid appears at most once, enforced by
// the store's $addToSet/$pull updates. RSVPResponses is keyed by
// attendee uid; an entry may only exist while that uid is in Attendees,
// and cancelling an RSVP removes both in the same atomic update.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"` // optional time-of-day, display only
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	StoragePath string             `bson:"storage_path,omitempty" json:"storage_path,omitempty"`

	Attendees     []string            `bson:"attendees" json:"attendees"`
	RSVPQuestions []string            `bson:"rsvp_questions,omitempty" json:"rsvp_questions,omitempty"`
	RSVPResponses map[string][]string `bson:"rsvp_responses,omitempty" json:"rsvp_responses,omitempty"`

	CreatedBy string    `bson:"created_by" json:"created_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasAttendee reports whether uid has RSVP'd to the event.
func (e *Event) HasAttendee(uid string) bool {
	for _, a := range e.Attendees {
		if a == uid {
			return true
		}
	}
	return false
}

// HasQuestions reports whether the event collects RSVP answers.
func (e *Event) HasQuestions() bool {
	return len(e.RSVPQuestions) > 0
}
