package dto

import "time"

// WorkshopCard is the rendered form of one workshop.
type WorkshopCard struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Level            string     `json:"level"`
	LevelLabel       string     `json:"levelLabel"`
	Description      string     `json:"description"`
	DurationHours    float64    `json:"durationHours"`
	Instructor       string     `json:"instructor,omitempty"`
	LearningOutcomes []string   `json:"learningOutcomes,omitempty"`
	Prerequisites    string     `json:"prerequisites,omitempty"`
	Software         []string   `json:"software,omitempty"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	AvailableSpots   *int       `json:"availableSpots,omitempty"`
	NextSession      *time.Time `json:"nextSession,omitempty"`
}

// WorkshopsPageResponse partitions workshops by next-session recency.
type WorkshopsPageResponse struct {
	Upcoming []WorkshopCard `json:"upcoming"`
	Past     []WorkshopCard `json:"past"`
}
