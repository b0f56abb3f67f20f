package models

import "github.com/cuet-cad-club/clubsite-api/pkg/sanity"

// AlumniProfile is a graduated-member profile document.
type AlumniProfile struct {
	ID              string           `json:"_id"`
	Name            string           `json:"name"`
	GraduationYear  int              `json:"graduationYear"`
	Degree          string           `json:"degree"`
	CurrentPosition string           `json:"currentPosition"`
	Company         string           `json:"company"`
	Bio             string           `json:"bio"`
	Achievements    []string         `json:"achievements,omitempty"`
	Image           *sanity.ImageRef `json:"image,omitempty"`
	LinkedIn        string           `json:"linkedin,omitempty"`
	Email           string           `json:"email,omitempty"`
	Featured        bool             `json:"featured,omitempty"`
}
