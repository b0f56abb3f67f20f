package models

import (
	"time"

	"github.com/cuet-cad-club/clubsite-api/pkg/sanity"
)

// EventStatus enumerates the lifecycle states an event can be in.
type EventStatus string

const (
	EventStatusOpen       EventStatus = "open"
	EventStatusComingSoon EventStatus = "coming-soon"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

// Upcoming reports whether the status places the event in the upcoming bucket.
func (s EventStatus) Upcoming() bool {
	return s == EventStatusOpen || s == EventStatusComingSoon
}

// Past reports whether the status places the event in the past bucket.
// Cancelled events belong to neither bucket.
func (s EventStatus) Past() bool {
	return s == EventStatusCompleted
}

// Label returns the display label for the status.
func (s EventStatus) Label() string {
	switch s {
	case EventStatusOpen:
		return "Open for Registration"
	case EventStatusComingSoon:
		return "Coming Soon"
	case EventStatusCompleted:
		return "Completed"
	case EventStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// Slug wraps the content store's slug object.
type Slug struct {
	Current string `json:"current"`
}

// Event is a club event document as stored in the content store.
type Event struct {
	ID               string            `json:"_id"`
	Title            string            `json:"title"`
	Slug             Slug              `json:"slug"`
	Date             time.Time         `json:"date"`
	EndDate          *time.Time        `json:"endDate,omitempty"`
	Location         string            `json:"location"`
	Description      string            `json:"description"`
	Status           EventStatus       `json:"status"`
	Image            *sanity.ImageRef  `json:"image,omitempty"`
	Gallery          []sanity.ImageRef `json:"gallery,omitempty"`
	RegistrationLink string            `json:"registrationLink,omitempty"`
}
