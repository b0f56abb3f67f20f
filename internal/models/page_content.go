package models

import "github.com/cuet-cad-club/clubsite-api/pkg/sanity"

// Icon is the closed set of icon tags editors may attach to statistics
// and membership benefits. Unrecognised names resolve to IconUsers so a
// stale CMS value can never break rendering.
type Icon string

const (
	IconUsers     Icon = "Users"
	IconLightbulb Icon = "Lightbulb"
	IconCalendar  Icon = "Calendar"
	IconWrench    Icon = "Wrench"
	IconAward     Icon = "Award"
)

// ParseIcon maps a free-text icon name onto the closed set.
func ParseIcon(name string) Icon {
	switch Icon(name) {
	case IconUsers, IconLightbulb, IconCalendar, IconWrench, IconAward:
		return Icon(name)
	default:
		return IconUsers
	}
}

// Stat is one entry of the homepage statistics strip.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// Activity describes one "what we do" card on the about page.
type Activity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Benefit describes one membership benefit on the join page.
type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// HomeContent is the singleton homepage document. Absence of the document,
// or of any field on it, is an expected state covered by fallback copy.
type HomeContent struct {
	HeroTitle       string           `json:"heroTitle,omitempty"`
	HeroSubtitle    string           `json:"heroSubtitle,omitempty"`
	HeroDescription string           `json:"heroDescription,omitempty"`
	HeroImage       *sanity.ImageRef `json:"heroImage,omitempty"`
	Stats           []Stat           `json:"stats,omitempty"`
}

// AboutContent is the singleton about-page document.
type AboutContent struct {
	Mission              string     `json:"mission,omitempty"`
	Vision               string     `json:"vision,omitempty"`
	CommunityDescription string     `json:"communityDescription,omitempty"`
	Activities           []Activity `json:"activities,omitempty"`
}

// JoinContent is the singleton join-page document.
type JoinContent struct {
	Benefits       []Benefit `json:"benefits,omitempty"`
	ContactEmail   string    `json:"contactEmail,omitempty"`
	OfficeLocation string    `json:"officeLocation,omitempty"`
	OfficeHours    string    `json:"officeHours,omitempty"`
}
