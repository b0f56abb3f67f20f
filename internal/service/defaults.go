package service

import "github.com/cuet-cad-club/clubsite-api/internal/dto"

// Fallback literals. Whenever a singleton document (or a field on it) is
// absent, these defaults are substituted field by field so the site always
// looks complete before an editor populates the CMS.

const (
	defaultHeroTitle       = "CUET CAD Club"
	defaultHeroSubtitle    = "Where Design Meets Innovation"
	defaultHeroDescription = "Join Bangladesh's premier student organization for Computer-Aided Design excellence"

	defaultMission   = "To provide students with hands-on CAD experience and industry-relevant skills through workshops, projects, and mentorship."
	defaultVision    = "To be the leading student organization fostering design innovation and technical excellence at CUET and beyond."
	defaultCommunity = "A diverse community of passionate students from all departments, united by a love for design and engineering."

	defaultLeaderMessage = "Dedicated to advancing CAD excellence and fostering innovation within our community."

	defaultContactEmail   = "cadclub@cuet.ac.bd"
	defaultOfficeLocation = "Club Room 204, Student Center"
	defaultOfficeHours    = "Saturdays, 2 PM - 5 PM"

	defaultTotalAlumni = "500+"
)

func defaultStats() []dto.StatCard {
	return []dto.StatCard{
		{Icon: "Users", Label: "Active Members", Value: "150+"},
		{Icon: "Lightbulb", Label: "Projects", Value: "50+"},
		{Icon: "Calendar", Label: "Events Yearly", Value: "20+"},
		{Icon: "Wrench", Label: "Workshops", Value: "30+"},
	}
}

func defaultUpdates() []dto.UpdateCard {
	return []dto.UpdateCard{
		{
			Title:       "3D Modeling Workshop",
			Date:        "Dec 15, 2025",
			Description: "Learn advanced SolidWorks techniques from industry professionals.",
			Badge:       "Workshop",
		},
		{
			Title:       "CAD Competition 2025",
			Date:        "Jan 10, 2026",
			Description: "Annual design competition with exciting prizes and recognition.",
			Badge:       "Competition",
		},
		{
			Title:       "New Resources Added",
			Date:        "Dec 1, 2025",
			Description: "Check out our updated tutorial library for AutoCAD and Fusion 360.",
			Badge:       "Resources",
		},
	}
}

func defaultActivities() []dto.ActivityCard {
	return []dto.ActivityCard{
		{
			Title:       "Workshops & Training",
			Description: "Regular hands-on sessions covering AutoCAD, SolidWorks, Fusion 360, and other industry-standard tools.",
		},
		{
			Title:       "Project Development",
			Description: "Collaborative projects that solve real-world problems and build portfolios for future careers.",
		},
		{
			Title:       "Competitions",
			Description: "Annual design challenges and participation in national/international CAD competitions.",
		},
		{
			Title:       "Industry Connections",
			Description: "Networking events with professionals, guest lectures, and industry visit opportunities.",
		},
	}
}

func defaultBenefits() []dto.BenefitCard {
	return []dto.BenefitCard{
		{
			Icon:        "Users",
			Title:       "Community Access",
			Description: "Join a network of passionate designers and engineers from all departments.",
		},
		{
			Icon:        "Award",
			Title:       "Skill Development",
			Description: "Free workshops, tutorials, and hands-on training with industry-standard software.",
		},
		{
			Icon:        "Lightbulb",
			Title:       "Project Opportunities",
			Description: "Work on real-world projects and build an impressive portfolio for your career.",
		},
	}
}
