package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

type committeeLister interface {
	CommitteeMembers(ctx context.Context) ([]models.CommitteeMember, error)
}

// CommitteeService assembles the committee page view model.
type CommitteeService struct {
	repo   committeeLister
	cache  *CacheService
	images ImageResolver
	logger *zap.Logger
}

// NewCommitteeService constructs a committee service.
func NewCommitteeService(repo committeeLister, cache *CacheService, images ImageResolver, logger *zap.Logger) *CommitteeService {
	if images == nil {
		images = noImages{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommitteeService{repo: repo, cache: cache, images: images, logger: logger}
}

const committeeCacheKey = "page:committee"

// Page returns the role-grouped committee page and whether it came from cache.
func (s *CommitteeService) Page(ctx context.Context) (*dto.CommitteePageResponse, bool, error) {
	if s.cache.Enabled() {
		var cached dto.CommitteePageResponse
		if hit, err := s.cache.Get(ctx, committeeCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	members, err := s.repo.CommitteeMembers(ctx)
	if err != nil {
		return nil, false, err
	}

	groups := GroupCommittee(members)
	page := &dto.CommitteePageResponse{
		ExecutiveBoard: memberCards(groups.ExecutiveBoard, s.images),
		TeamMembers:    memberCards(groups.TeamMembers, s.images),
	}
	if groups.FacultyAdvisor != nil {
		card := memberCard(*groups.FacultyAdvisor, s.images)
		page.FacultyAdvisor = &card
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, committeeCacheKey, page, 0); err != nil {
			s.logger.Warn("committee cache write failed", zap.Error(err))
		}
	}
	return page, false, nil
}
