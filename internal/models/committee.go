package models

import "github.com/cuet-cad-club/clubsite-api/pkg/sanity"

// MemberRole partitions committee members into display groups.
type MemberRole string

const (
	RoleFaculty   MemberRole = "faculty"
	RoleExecutive MemberRole = "executive"
	RoleMember    MemberRole = "member"
)

// CommitteeMember is a committee roster document.
type CommitteeMember struct {
	ID         string           `json:"_id"`
	Name       string           `json:"name"`
	Position   string           `json:"position"`
	Role       MemberRole       `json:"role"`
	Department string           `json:"department"`
	Year       string           `json:"year,omitempty"`
	Email      string           `json:"email,omitempty"`
	Bio        string           `json:"bio,omitempty"`
	Image      *sanity.ImageRef `json:"image,omitempty"`
	LinkedIn   string           `json:"linkedin,omitempty"`
	Order      *int             `json:"order,omitempty"`
}

// DisplayOrder returns the member's display rank, treating a missing
// order as 0 so unranked members sort ahead of explicitly ranked ones.
func (m CommitteeMember) DisplayOrder() int {
	if m.Order == nil {
		return 0
	}
	return *m.Order
}
