package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

// Querier abstracts the content store client so repositories can be
// exercised against a fake in tests.
type Querier interface {
	Query(ctx context.Context, label, groq string, dest interface{}) error
}

// Fixed projections and server-side orderings per content kind. Pages are
// free to re-derive their own order from the fetched collection; no other
// query shape is ever sent.
const (
	eventsQuery = `*[_type == "event"] | order(date desc) {
  _id, title, slug, date, endDate, location, description, status, image, gallery, registrationLink
}`

	workshopsQuery = `*[_type == "workshop"] | order(nextSession desc) {
  _id, title, slug, level, description, duration, instructor, learningOutcomes, prerequisites, software, image, availableSpots, nextSession
}`

	committeeQuery = `*[_type == "committeeMember"] | order(order asc, name asc) {
  _id, name, position, role, department, year, email, bio, image, linkedin, order
}`

	alumniQuery = `*[_type == "alumniProfile"] | order(graduationYear desc) {
  _id, name, graduationYear, degree, currentPosition, company, bio, achievements, image, linkedin, email, featured
}`

	homeContentQuery = `*[_type == "homeContent"][0] {
  heroTitle, heroSubtitle, heroDescription, heroImage, stats
}`

	aboutContentQuery = `*[_type == "aboutContent"][0] {
  mission, vision, communityDescription, activities
}`

	joinContentQuery = `*[_type == "joinContent"][0] {
  benefits, contactEmail, officeLocation, officeHours
}`
)

// ContentRepository reads typed documents from the remote content store.
// All reads are a single round trip; results are never written back.
type ContentRepository struct {
	client Querier
	logger *zap.Logger
}

// NewContentRepository constructs a content repository.
func NewContentRepository(client Querier, logger *zap.Logger) *ContentRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentRepository{client: client, logger: logger}
}

// Events returns all event documents, newest first.
func (r *ContentRepository) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.client.Query(ctx, "events", eventsQuery, &events); err != nil {
		r.logger.Warn("fetch events failed", zap.Error(err))
		return nil, err
	}
	return events, nil
}

// Workshops returns all workshop documents ordered by next session, newest first.
func (r *ContentRepository) Workshops(ctx context.Context) ([]models.Workshop, error) {
	var workshops []models.Workshop
	if err := r.client.Query(ctx, "workshops", workshopsQuery, &workshops); err != nil {
		r.logger.Warn("fetch workshops failed", zap.Error(err))
		return nil, err
	}
	return workshops, nil
}

// CommitteeMembers returns the committee roster ordered by display rank, then name.
func (r *ContentRepository) CommitteeMembers(ctx context.Context) ([]models.CommitteeMember, error) {
	var members []models.CommitteeMember
	if err := r.client.Query(ctx, "committee", committeeQuery, &members); err != nil {
		r.logger.Warn("fetch committee failed", zap.Error(err))
		return nil, err
	}
	return members, nil
}

// AlumniProfiles returns all alumni profiles, most recent graduates first.
func (r *ContentRepository) AlumniProfiles(ctx context.Context) ([]models.AlumniProfile, error) {
	var alumni []models.AlumniProfile
	if err := r.client.Query(ctx, "alumni", alumniQuery, &alumni); err != nil {
		r.logger.Warn("fetch alumni failed", zap.Error(err))
		return nil, err
	}
	return alumni, nil
}

// HomeContent returns the singleton homepage document, or nil when absent.
func (r *ContentRepository) HomeContent(ctx context.Context) (*models.HomeContent, error) {
	var content *models.HomeContent
	if err := r.client.Query(ctx, "homeContent", homeContentQuery, &content); err != nil {
		r.logger.Warn("fetch home content failed", zap.Error(err))
		return nil, err
	}
	return content, nil
}

// AboutContent returns the singleton about-page document, or nil when absent.
func (r *ContentRepository) AboutContent(ctx context.Context) (*models.AboutContent, error) {
	var content *models.AboutContent
	if err := r.client.Query(ctx, "aboutContent", aboutContentQuery, &content); err != nil {
		r.logger.Warn("fetch about content failed", zap.Error(err))
		return nil, err
	}
	return content, nil
}

// JoinContent returns the singleton join-page document, or nil when absent.
func (r *ContentRepository) JoinContent(ctx context.Context) (*models.JoinContent, error) {
	var content *models.JoinContent
	if err := r.client.Query(ctx, "joinContent", joinContentQuery, &content); err != nil {
		r.logger.Warn("fetch join content failed", zap.Error(err))
		return nil, err
	}
	return content, nil
}
