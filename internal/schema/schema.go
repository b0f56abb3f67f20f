// Package schema declares the authoring contract for every content kind
// accepted by the hosted studio. It is metadata only: the delivered site
// never validates against it at runtime, but the content access layer's
// expected shapes must match what is declared here.
package schema

import (
	"time"

	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

// FieldType enumerates the primitive field types the studio understands.
type FieldType string

const (
	TypeString   FieldType = "string"
	TypeText     FieldType = "text"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeDatetime FieldType = "datetime"
	TypeSlug     FieldType = "slug"
	TypeImage    FieldType = "image"
	TypeURL      FieldType = "url"
	TypeEmail    FieldType = "email"
	TypeArray    FieldType = "array"
	TypeObject   FieldType = "object"
)

// Field describes one field of a content kind.
type Field struct {
	Name          string    `json:"name"`
	Title         string    `json:"title"`
	Type          FieldType `json:"type"`
	Required      bool      `json:"required,omitempty"`
	AllowedValues []string  `json:"allowedValues,omitempty"`
	Min           *float64  `json:"min,omitempty"`
	Max           *float64  `json:"max,omitempty"`
	// OfType is set for arrays of primitives, Of for arrays of objects.
	OfType FieldType `json:"ofType,omitempty"`
	Of     []Field   `json:"of,omitempty"`
}

// DocumentType describes one content kind.
type DocumentType struct {
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Singleton bool    `json:"singleton,omitempty"`
	Fields    []Field `json:"fields"`
}

// Types returns the full authoring contract, with the graduation-year
// window anchored at the current wall clock.
func Types() []DocumentType {
	return TypesAt(time.Now())
}

// TypesAt returns the authoring contract with numeric date bounds derived
// from the supplied reference time.
func TypesAt(now time.Time) []DocumentType {
	return []DocumentType{
		homeContent(),
		aboutContent(),
		joinContent(),
		event(),
		workshop(),
		committeeMember(),
		alumniProfile(now),
	}
}

func ptr(v float64) *float64 { return &v }

func iconValues() []string {
	return []string{
		string(models.IconUsers),
		string(models.IconLightbulb),
		string(models.IconCalendar),
		string(models.IconWrench),
		string(models.IconAward),
	}
}

func event() DocumentType {
	return DocumentType{
		Name:  "event",
		Title: "Events",
		Fields: []Field{
			{Name: "title", Title: "Title", Type: TypeString, Required: true},
			{Name: "slug", Title: "Slug", Type: TypeSlug, Required: true},
			{Name: "date", Title: "Event Date", Type: TypeDatetime, Required: true},
			{Name: "endDate", Title: "End Date", Type: TypeDatetime},
			{Name: "location", Title: "Location", Type: TypeString, Required: true},
			{Name: "description", Title: "Description", Type: TypeText, Required: true},
			{Name: "status", Title: "Status", Type: TypeString, Required: true, AllowedValues: []string{
				string(models.EventStatusOpen),
				string(models.EventStatusComingSoon),
				string(models.EventStatusCompleted),
				string(models.EventStatusCancelled),
			}},
			{Name: "image", Title: "Featured Image", Type: TypeImage},
			{Name: "gallery", Title: "Gallery", Type: TypeArray, OfType: TypeImage},
			{Name: "registrationLink", Title: "Registration Link", Type: TypeURL},
		},
	}
}

func workshop() DocumentType {
	return DocumentType{
		Name:  "workshop",
		Title: "Workshops",
		Fields: []Field{
			{Name: "title", Title: "Title", Type: TypeString, Required: true},
			{Name: "slug", Title: "Slug", Type: TypeSlug, Required: true},
			{Name: "level", Title: "Level", Type: TypeString, Required: true, AllowedValues: []string{
				string(models.WorkshopLevelBeginner),
				string(models.WorkshopLevelIntermediate),
				string(models.WorkshopLevelAdvanced),
			}},
			{Name: "description", Title: "Description", Type: TypeText, Required: true},
			{Name: "duration", Title: "Duration (hours)", Type: TypeNumber, Required: true, Min: ptr(0)},
			{Name: "instructor", Title: "Instructor", Type: TypeString},
			{Name: "learningOutcomes", Title: "Learning Outcomes", Type: TypeArray, OfType: TypeString},
			{Name: "prerequisites", Title: "Prerequisites", Type: TypeText},
			{Name: "software", Title: "Required Software", Type: TypeArray, OfType: TypeString},
			{Name: "image", Title: "Featured Image", Type: TypeImage},
			{Name: "availableSpots", Title: "Available Spots", Type: TypeNumber},
			{Name: "nextSession", Title: "Next Session Date", Type: TypeDatetime},
		},
	}
}

func committeeMember() DocumentType {
	return DocumentType{
		Name:  "committeeMember",
		Title: "Committee Members",
		Fields: []Field{
			{Name: "name", Title: "Name", Type: TypeString, Required: true},
			{Name: "position", Title: "Position", Type: TypeString, Required: true},
			{Name: "role", Title: "Role Type", Type: TypeString, Required: true, AllowedValues: []string{
				string(models.RoleFaculty),
				string(models.RoleExecutive),
				string(models.RoleMember),
			}},
			{Name: "department", Title: "Department", Type: TypeString, Required: true},
			{Name: "year", Title: "Academic Year", Type: TypeString},
			{Name: "email", Title: "Email", Type: TypeEmail},
			{Name: "bio", Title: "Bio", Type: TypeText},
			{Name: "image", Title: "Profile Image", Type: TypeImage},
			{Name: "linkedin", Title: "LinkedIn URL", Type: TypeURL},
			{Name: "order", Title: "Display Order", Type: TypeNumber},
		},
	}
}

func alumniProfile(now time.Time) DocumentType {
	return DocumentType{
		Name:  "alumniProfile",
		Title: "Alumni Profiles",
		Fields: []Field{
			{Name: "name", Title: "Name", Type: TypeString, Required: true},
			{Name: "graduationYear", Title: "Graduation Year", Type: TypeNumber, Required: true,
				Min: ptr(1900), Max: ptr(float64(now.Year() + 10))},
			{Name: "degree", Title: "Degree", Type: TypeString, Required: true},
			{Name: "currentPosition", Title: "Current Position", Type: TypeString, Required: true},
			{Name: "company", Title: "Company/Organization", Type: TypeString, Required: true},
			{Name: "bio", Title: "Bio", Type: TypeText, Required: true},
			{Name: "achievements", Title: "Key Achievements", Type: TypeArray, OfType: TypeString},
			{Name: "image", Title: "Profile Image", Type: TypeImage},
			{Name: "linkedin", Title: "LinkedIn URL", Type: TypeURL},
			{Name: "email", Title: "Email", Type: TypeEmail},
			{Name: "featured", Title: "Featured Alumni", Type: TypeBoolean},
		},
	}
}

func homeContent() DocumentType {
	return DocumentType{
		Name:      "homeContent",
		Title:     "Home Page Content",
		Singleton: true,
		Fields: []Field{
			{Name: "heroTitle", Title: "Hero Title", Type: TypeString},
			{Name: "heroSubtitle", Title: "Hero Subtitle", Type: TypeString},
			{Name: "heroDescription", Title: "Hero Description", Type: TypeText},
			{Name: "heroImage", Title: "Hero Image", Type: TypeImage},
			{Name: "stats", Title: "Statistics", Type: TypeArray, Of: []Field{
				{Name: "label", Title: "Label", Type: TypeString},
				{Name: "value", Title: "Value", Type: TypeString},
				{Name: "icon", Title: "Icon Name", Type: TypeString, AllowedValues: iconValues()},
			}},
		},
	}
}

func aboutContent() DocumentType {
	return DocumentType{
		Name:      "aboutContent",
		Title:     "About Page Content",
		Singleton: true,
		Fields: []Field{
			{Name: "mission", Title: "Mission", Type: TypeText},
			{Name: "vision", Title: "Vision", Type: TypeText},
			{Name: "communityDescription", Title: "Community Description", Type: TypeText},
			{Name: "activities", Title: "Activities", Type: TypeArray, Of: []Field{
				{Name: "title", Title: "Title", Type: TypeString},
				{Name: "description", Title: "Description", Type: TypeText},
			}},
		},
	}
}

func joinContent() DocumentType {
	return DocumentType{
		Name:      "joinContent",
		Title:     "Join Page Content",
		Singleton: true,
		Fields: []Field{
			{Name: "benefits", Title: "Membership Benefits", Type: TypeArray, Of: []Field{
				{Name: "title", Title: "Title", Type: TypeString},
				{Name: "description", Title: "Description", Type: TypeText},
				{Name: "icon", Title: "Icon Name", Type: TypeString, AllowedValues: iconValues()},
			}},
			{Name: "contactEmail", Title: "Contact Email", Type: TypeString},
			{Name: "officeLocation", Title: "Office Location", Type: TypeString},
			{Name: "officeHours", Title: "Office Hours", Type: TypeString},
		},
	}
}
