package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

type workshopLister interface {
	Workshops(ctx context.Context) ([]models.Workshop, error)
}

// WorkshopsService assembles the workshops page view model.
type WorkshopsService struct {
	repo   workshopLister
	cache  *CacheService
	images ImageResolver
	logger *zap.Logger
	now    func() time.Time
}

// NewWorkshopsService constructs a workshops service.
func NewWorkshopsService(repo workshopLister, cache *CacheService, images ImageResolver, logger *zap.Logger) *WorkshopsService {
	if images == nil {
		images = noImages{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkshopsService{repo: repo, cache: cache, images: images, logger: logger, now: time.Now}
}

const workshopsCacheKey = "page:workshops"

// Page returns the partitioned workshops page and whether it came from cache.
func (s *WorkshopsService) Page(ctx context.Context) (*dto.WorkshopsPageResponse, bool, error) {
	if s.cache.Enabled() {
		var cached dto.WorkshopsPageResponse
		if hit, err := s.cache.Get(ctx, workshopsCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	workshops, err := s.repo.Workshops(ctx)
	if err != nil {
		return nil, false, err
	}

	upcoming, past := PartitionWorkshops(workshops, s.now())
	page := &dto.WorkshopsPageResponse{
		Upcoming: workshopCards(upcoming, s.images),
		Past:     workshopCards(past, s.images),
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, workshopsCacheKey, page, 0); err != nil {
			s.logger.Warn("workshops cache write failed", zap.Error(err))
		}
	}
	return page, false, nil
}
