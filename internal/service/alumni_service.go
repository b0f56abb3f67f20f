package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

type alumniLister interface {
	AlumniProfiles(ctx context.Context) ([]models.AlumniProfile, error)
}

// AlumniServiceConfig tunes the alumni page composition.
type AlumniServiceConfig struct {
	RecentYearsMax    int
	SuccessStoriesMax int
}

// AlumniService assembles the alumni page view model.
type AlumniService struct {
	repo   alumniLister
	cache  *CacheService
	images ImageResolver
	logger *zap.Logger
	cfg    AlumniServiceConfig
}

// NewAlumniService constructs an alumni service with sane defaults.
func NewAlumniService(repo alumniLister, cache *CacheService, images ImageResolver, logger *zap.Logger, cfg AlumniServiceConfig) *AlumniService {
	if cfg.RecentYearsMax <= 0 {
		cfg.RecentYearsMax = 4
	}
	if cfg.SuccessStoriesMax <= 0 {
		cfg.SuccessStoriesMax = 6
	}
	if images == nil {
		images = noImages{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlumniService{repo: repo, cache: cache, images: images, logger: logger, cfg: cfg}
}

const alumniCacheKey = "page:alumni"

// Page returns the assembled alumni page and whether it came from cache.
func (s *AlumniService) Page(ctx context.Context) (*dto.AlumniPageResponse, bool, error) {
	if s.cache.Enabled() {
		var cached dto.AlumniPageResponse
		if hit, err := s.cache.Get(ctx, alumniCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	alumni, err := s.repo.AlumniProfiles(ctx)
	if err != nil {
		return nil, false, err
	}

	byYear := GroupAlumniByYear(alumni)
	years := RecentYears(byYear, s.cfg.RecentYearsMax)
	classes := make([]dto.GraduatingClass, 0, len(years))
	for _, year := range years {
		classes = append(classes, dto.GraduatingClass{Year: year, Members: len(byYear[year])})
	}

	stories := alumni
	if len(stories) > s.cfg.SuccessStoriesMax {
		stories = stories[:s.cfg.SuccessStoriesMax]
	}

	page := &dto.AlumniPageResponse{
		Stats:          alumniStats(len(alumni)),
		Featured:       alumniCards(FeaturedAlumni(alumni), s.images),
		RecentClasses:  classes,
		SuccessStories: alumniCards(stories, s.images),
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, alumniCacheKey, page, 0); err != nil {
			s.logger.Warn("alumni cache write failed", zap.Error(err))
		}
	}
	return page, false, nil
}

// alumniStats builds the headline strip. The total falls back to a
// placeholder figure until any profile exists.
func alumniStats(total int) []dto.StatCard {
	totalValue := defaultTotalAlumni
	if total > 0 {
		totalValue = fmt.Sprintf("%d+", total)
	}
	return []dto.StatCard{
		{Icon: "Calendar", Label: "Total Alumni", Value: totalValue},
		{Icon: "Award", Label: "Employed", Value: "95%"},
		{Icon: "Award", Label: "Industry Awards", Value: "50+"},
		{Icon: "Users", Label: "Countries", Value: "25+"},
	}
}
