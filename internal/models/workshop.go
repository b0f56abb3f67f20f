package models

import (
	"strings"
	"time"

	"github.com/cuet-cad-club/clubsite-api/pkg/sanity"
)

// WorkshopLevel enumerates workshop difficulty levels.
type WorkshopLevel string

const (
	WorkshopLevelBeginner     WorkshopLevel = "beginner"
	WorkshopLevelIntermediate WorkshopLevel = "intermediate"
	WorkshopLevelAdvanced     WorkshopLevel = "advanced"
)

// Label returns the capitalised display form of the level.
func (l WorkshopLevel) Label() string {
	if l == "" {
		return ""
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Workshop is a training workshop document.
type Workshop struct {
	ID               string           `json:"_id"`
	Title            string           `json:"title"`
	Slug             Slug             `json:"slug"`
	Level            WorkshopLevel    `json:"level"`
	Description      string           `json:"description"`
	Duration         float64          `json:"duration"`
	Instructor       string           `json:"instructor,omitempty"`
	LearningOutcomes []string         `json:"learningOutcomes,omitempty"`
	Prerequisites    string           `json:"prerequisites,omitempty"`
	Software         []string         `json:"software,omitempty"`
	Image            *sanity.ImageRef `json:"image,omitempty"`
	AvailableSpots   *int             `json:"availableSpots,omitempty"`
	NextSession      *time.Time       `json:"nextSession,omitempty"`
}

// UpcomingAt reports whether the workshop has a session strictly in the
// future relative to now. Sessionless workshops are never upcoming.
func (w Workshop) UpcomingAt(now time.Time) bool {
	return w.NextSession != nil && w.NextSession.After(now)
}
