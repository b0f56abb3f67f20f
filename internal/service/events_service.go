package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

type eventLister interface {
	Events(ctx context.Context) ([]models.Event, error)
}

// EventsService assembles the events page view model.
type EventsService struct {
	repo   eventLister
	cache  *CacheService
	images ImageResolver
	logger *zap.Logger
}

// NewEventsService constructs an events service.
func NewEventsService(repo eventLister, cache *CacheService, images ImageResolver, logger *zap.Logger) *EventsService {
	if images == nil {
		images = noImages{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventsService{repo: repo, cache: cache, images: images, logger: logger}
}

const eventsCacheKey = "page:events"

// Page returns the partitioned events page and whether it came from cache.
// An upstream failure propagates; it is never presented as an empty page.
func (s *EventsService) Page(ctx context.Context) (*dto.EventsPageResponse, bool, error) {
	if s.cache.Enabled() {
		var cached dto.EventsPageResponse
		if hit, err := s.cache.Get(ctx, eventsCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	events, err := s.repo.Events(ctx)
	if err != nil {
		return nil, false, err
	}

	upcoming, past := PartitionEvents(events)
	page := &dto.EventsPageResponse{
		Upcoming: eventCards(upcoming, s.images),
		Past:     eventCards(past, s.images),
	}

	s.persist(ctx, eventsCacheKey, page)
	return page, false, nil
}

func (s *EventsService) persist(ctx context.Context, key string, value interface{}) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Set(ctx, key, value, 0); err != nil {
		s.logger.Warn("events cache write failed", zap.String("key", key), zap.Error(err))
	}
}
