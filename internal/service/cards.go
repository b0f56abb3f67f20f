package service

import (
	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
	"github.com/cuet-cad-club/clubsite-api/pkg/sanity"
)

// ImageResolver derives a CDN URL from an asset reference. The content
// store client satisfies this; tests substitute a stub.
type ImageResolver interface {
	ImageURL(image *sanity.ImageRef) string
}

// noImages resolves every reference to the empty string. Used when a
// service is built without a resolver.
type noImages struct{}

func (noImages) ImageURL(*sanity.ImageRef) string { return "" }

func eventCard(event models.Event, images ImageResolver) dto.EventCard {
	card := dto.EventCard{
		ID:               event.ID,
		Title:            event.Title,
		Slug:             event.Slug.Current,
		Date:             event.Date,
		EndDate:          event.EndDate,
		Location:         event.Location,
		Description:      event.Description,
		Status:           string(event.Status),
		StatusLabel:      event.Status.Label(),
		ImageURL:         images.ImageURL(event.Image),
		RegistrationLink: event.RegistrationLink,
	}
	for i := range event.Gallery {
		if url := images.ImageURL(&event.Gallery[i]); url != "" {
			card.GalleryURLs = append(card.GalleryURLs, url)
		}
	}
	return card
}

func eventCards(events []models.Event, images ImageResolver) []dto.EventCard {
	cards := make([]dto.EventCard, 0, len(events))
	for _, event := range events {
		cards = append(cards, eventCard(event, images))
	}
	return cards
}

func workshopCards(workshops []models.Workshop, images ImageResolver) []dto.WorkshopCard {
	cards := make([]dto.WorkshopCard, 0, len(workshops))
	for _, workshop := range workshops {
		cards = append(cards, dto.WorkshopCard{
			ID:               workshop.ID,
			Title:            workshop.Title,
			Slug:             workshop.Slug.Current,
			Level:            string(workshop.Level),
			LevelLabel:       workshop.Level.Label(),
			Description:      workshop.Description,
			DurationHours:    workshop.Duration,
			Instructor:       workshop.Instructor,
			LearningOutcomes: workshop.LearningOutcomes,
			Prerequisites:    workshop.Prerequisites,
			Software:         workshop.Software,
			ImageURL:         images.ImageURL(workshop.Image),
			AvailableSpots:   workshop.AvailableSpots,
			NextSession:      workshop.NextSession,
		})
	}
	return cards
}

func memberCard(member models.CommitteeMember, images ImageResolver) dto.MemberCard {
	return dto.MemberCard{
		ID:         member.ID,
		Name:       member.Name,
		Position:   member.Position,
		Department: member.Department,
		Year:       member.Year,
		Email:      member.Email,
		Bio:        member.Bio,
		ImageURL:   images.ImageURL(member.Image),
		LinkedIn:   member.LinkedIn,
	}
}

func memberCards(members []models.CommitteeMember, images ImageResolver) []dto.MemberCard {
	cards := make([]dto.MemberCard, 0, len(members))
	for _, member := range members {
		cards = append(cards, memberCard(member, images))
	}
	return cards
}

func alumniCards(alumni []models.AlumniProfile, images ImageResolver) []dto.AlumniCard {
	cards := make([]dto.AlumniCard, 0, len(alumni))
	for _, profile := range alumni {
		cards = append(cards, dto.AlumniCard{
			ID:              profile.ID,
			Name:            profile.Name,
			GraduationYear:  profile.GraduationYear,
			Degree:          profile.Degree,
			CurrentPosition: profile.CurrentPosition,
			Company:         profile.Company,
			Bio:             profile.Bio,
			Achievements:    profile.Achievements,
			ImageURL:        images.ImageURL(profile.Image),
			LinkedIn:        profile.LinkedIn,
			Email:           profile.Email,
		})
	}
	return cards
}
