package dto

// MemberCard is the rendered form of one committee member.
type MemberCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Year       string `json:"year,omitempty"`
	Email      string `json:"email,omitempty"`
	Bio        string `json:"bio,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
}

// CommitteePageResponse groups the roster into the three display slots.
// At most one faculty advisor is shown even if several exist.
type CommitteePageResponse struct {
	FacultyAdvisor *MemberCard  `json:"facultyAdvisor,omitempty"`
	ExecutiveBoard []MemberCard `json:"executiveBoard"`
	TeamMembers    []MemberCard `json:"teamMembers"`
}
