package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

type aboutContentGetter interface {
	AboutContent(ctx context.Context) (*models.AboutContent, error)
}

// AboutService assembles the about page view model.
type AboutService struct {
	content aboutContentGetter
	cache   *CacheService
	logger  *zap.Logger
}

// NewAboutService constructs an about service.
func NewAboutService(content aboutContentGetter, cache *CacheService, logger *zap.Logger) *AboutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AboutService{content: content, cache: cache, logger: logger}
}

const aboutCacheKey = "page:about"

// Page returns the about page view model. Missing fields fall back
// individually; an upstream failure degrades to the full fallback copy.
func (s *AboutService) Page(ctx context.Context) (page *dto.AboutPageResponse, cacheHit, degraded bool) {
	if s.cache.Enabled() {
		var cached dto.AboutPageResponse
		if hit, err := s.cache.Get(ctx, aboutCacheKey, &cached); err == nil && hit {
			return &cached, true, false
		}
	}

	content, err := s.content.AboutContent(ctx)
	if err != nil {
		s.logger.Warn("about content unavailable, serving fallback copy", zap.Error(err))
		content = nil
		degraded = true
	}

	page = &dto.AboutPageResponse{
		Mission:    defaultMission,
		Vision:     defaultVision,
		Community:  defaultCommunity,
		Activities: defaultActivities(),
	}
	if content != nil {
		if content.Mission != "" {
			page.Mission = content.Mission
		}
		if content.Vision != "" {
			page.Vision = content.Vision
		}
		if content.CommunityDescription != "" {
			page.Community = content.CommunityDescription
		}
		if len(content.Activities) > 0 {
			activities := make([]dto.ActivityCard, 0, len(content.Activities))
			for _, activity := range content.Activities {
				activities = append(activities, dto.ActivityCard{
					Title:       activity.Title,
					Description: activity.Description,
				})
			}
			page.Activities = activities
		}
	}

	if !degraded && s.cache.Enabled() {
		if err := s.cache.Set(ctx, aboutCacheKey, page, 0); err != nil {
			s.logger.Warn("about cache write failed", zap.Error(err))
		}
	}
	return page, false, degraded
}
