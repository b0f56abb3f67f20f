package dto

import "time"

// EventCard is the rendered form of one event.
type EventCard struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Date             time.Time  `json:"date"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Location         string     `json:"location"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	StatusLabel      string     `json:"statusLabel"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	GalleryURLs      []string   `json:"galleryUrls,omitempty"`
	RegistrationLink string     `json:"registrationLink,omitempty"`
}

// EventsPageResponse partitions events for the events page. Cancelled
// events appear in neither list.
type EventsPageResponse struct {
	Upcoming []EventCard `json:"upcoming"`
	Past     []EventCard `json:"past"`
}
