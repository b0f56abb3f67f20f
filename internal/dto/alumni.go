package dto

// AlumniCard is the rendered form of one alumni profile.
type AlumniCard struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	GraduationYear  int      `json:"graduationYear"`
	Degree          string   `json:"degree"`
	CurrentPosition string   `json:"currentPosition"`
	Company         string   `json:"company"`
	Bio             string   `json:"bio"`
	Achievements    []string `json:"achievements,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	LinkedIn        string   `json:"linkedin,omitempty"`
	Email           string   `json:"email,omitempty"`
}

// GraduatingClass reports the member count for one graduation year.
type GraduatingClass struct {
	Year    int `json:"year"`
	Members int `json:"members"`
}

// AlumniPageResponse assembles the alumni page: headline stats, the
// featured subset, the four most recent classes and the success stories.
type AlumniPageResponse struct {
	Stats          []StatCard        `json:"stats"`
	Featured       []AlumniCard      `json:"featured"`
	RecentClasses  []GraduatingClass `json:"recentClasses"`
	SuccessStories []AlumniCard      `json:"successStories"`
}
