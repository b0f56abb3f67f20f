package service

import (
	"sort"
	"time"

	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

// The page transformations live here as shared pure functions so each page
// applies the same rules and the rules can be tested in isolation. All of
// them are total: empty input yields empty output, never a panic.

// PartitionEvents splits events into upcoming (open or coming-soon) and
// past (completed). Cancelled events fall through both predicates and are
// intentionally shown nowhere. Server order (date descending) is kept.
func PartitionEvents(events []models.Event) (upcoming, past []models.Event) {
	upcoming = make([]models.Event, 0, len(events))
	past = make([]models.Event, 0, len(events))
	for _, event := range events {
		switch {
		case event.Status.Upcoming():
			upcoming = append(upcoming, event)
		case event.Status.Past():
			past = append(past, event)
		}
	}
	return upcoming, past
}

// PartitionWorkshops splits workshops by comparing nextSession against the
// reference time. Sessionless workshops count as past.
func PartitionWorkshops(workshops []models.Workshop, now time.Time) (upcoming, past []models.Workshop) {
	upcoming = make([]models.Workshop, 0, len(workshops))
	past = make([]models.Workshop, 0, len(workshops))
	for _, workshop := range workshops {
		if workshop.UpcomingAt(now) {
			upcoming = append(upcoming, workshop)
		} else {
			past = append(past, workshop)
		}
	}
	return upcoming, past
}

// CommitteeGroups is the role partition of the committee roster.
type CommitteeGroups struct {
	FacultyAdvisor *models.CommitteeMember
	ExecutiveBoard []models.CommitteeMember
	TeamMembers    []models.CommitteeMember
}

// GroupCommittee partitions members by role. Only the first faculty match
// fills the advisor slot; the executive and member groups are stable-sorted
// by display order (missing order sorts as 0, ties keep collection order).
func GroupCommittee(members []models.CommitteeMember) CommitteeGroups {
	groups := CommitteeGroups{
		ExecutiveBoard: make([]models.CommitteeMember, 0, len(members)),
		TeamMembers:    make([]models.CommitteeMember, 0, len(members)),
	}
	for i, member := range members {
		switch member.Role {
		case models.RoleFaculty:
			if groups.FacultyAdvisor == nil {
				groups.FacultyAdvisor = &members[i]
			}
		case models.RoleExecutive:
			groups.ExecutiveBoard = append(groups.ExecutiveBoard, member)
		case models.RoleMember:
			groups.TeamMembers = append(groups.TeamMembers, member)
		}
	}
	sortByDisplayOrder(groups.ExecutiveBoard)
	sortByDisplayOrder(groups.TeamMembers)
	return groups
}

func sortByDisplayOrder(members []models.CommitteeMember) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].DisplayOrder() < members[j].DisplayOrder()
	})
}

// GroupAlumniByYear partitions profiles by graduation year. Every profile
// lands in exactly one bucket.
func GroupAlumniByYear(alumni []models.AlumniProfile) map[int][]models.AlumniProfile {
	byYear := make(map[int][]models.AlumniProfile, len(alumni))
	for _, profile := range alumni {
		byYear[profile.GraduationYear] = append(byYear[profile.GraduationYear], profile)
	}
	return byYear
}

// RecentYears selects up to max distinct years in descending order.
func RecentYears(byYear map[int][]models.AlumniProfile, max int) []int {
	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	if max >= 0 && len(years) > max {
		years = years[:max]
	}
	return years
}

// FeaturedAlumni returns the profiles flagged for highlighting.
func FeaturedAlumni(alumni []models.AlumniProfile) []models.AlumniProfile {
	featured := make([]models.AlumniProfile, 0, len(alumni))
	for _, profile := range alumni {
		if profile.Featured {
			featured = append(featured, profile)
		}
	}
	return featured
}

// FeaturedLeaders picks the homepage leadership slots: the first faculty
// member, then executives whose position is exactly "President" or
// "General Secretary", capped at max, in that priority order.
func FeaturedLeaders(members []models.CommitteeMember, max int) []models.CommitteeMember {
	if max <= 0 {
		return nil
	}
	leaders := make([]models.CommitteeMember, 0, max)
	for _, member := range members {
		if member.Role == models.RoleFaculty {
			leaders = append(leaders, member)
			break
		}
	}
	for _, member := range members {
		if len(leaders) >= max {
			break
		}
		if member.Role != models.RoleExecutive {
			continue
		}
		if member.Position == "President" || member.Position == "General Secretary" {
			leaders = append(leaders, member)
		}
	}
	if len(leaders) > max {
		leaders = leaders[:max]
	}
	return leaders
}
