package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
)

type homeContentGetter interface {
	HomeContent(ctx context.Context) (*models.HomeContent, error)
}

// HomeServiceConfig tunes homepage composition.
type HomeServiceConfig struct {
	FeaturedLeadersMax int
}

// HomeService assembles the homepage view model from two independent
// queries. Either query may fail or resolve after the other; each section
// is consistent on its own, so a failure only degrades its own section.
type HomeService struct {
	content   homeContentGetter
	committee committeeLister
	cache     *CacheService
	images    ImageResolver
	logger    *zap.Logger
	cfg       HomeServiceConfig
}

// NewHomeService constructs a home service.
func NewHomeService(content homeContentGetter, committee committeeLister, cache *CacheService, images ImageResolver, logger *zap.Logger, cfg HomeServiceConfig) *HomeService {
	if cfg.FeaturedLeadersMax <= 0 {
		cfg.FeaturedLeadersMax = 3
	}
	if images == nil {
		images = noImages{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeService{content: content, committee: committee, cache: cache, images: images, logger: logger, cfg: cfg}
}

const homeCacheKey = "page:home"

// Page returns the homepage view model. The page is always renderable:
// an absent singleton fills from fallback copy field by field, and an
// upstream failure is reported through degraded rather than an error.
func (s *HomeService) Page(ctx context.Context) (page *dto.HomePageResponse, cacheHit, degraded bool) {
	if s.cache.Enabled() {
		var cached dto.HomePageResponse
		if hit, err := s.cache.Get(ctx, homeCacheKey, &cached); err == nil && hit {
			return &cached, true, false
		}
	}

	content, err := s.content.HomeContent(ctx)
	if err != nil {
		s.logger.Warn("home content unavailable, serving fallback copy", zap.Error(err))
		content = nil
		degraded = true
	}

	members, err := s.committee.CommitteeMembers(ctx)
	if err != nil {
		s.logger.Warn("committee unavailable, omitting leadership section", zap.Error(err))
		members = nil
		degraded = true
	}

	page = &dto.HomePageResponse{
		Hero:    s.hero(content),
		Stats:   statCards(content),
		Updates: defaultUpdates(),
		Leaders: leaderCards(FeaturedLeaders(members, s.cfg.FeaturedLeadersMax)),
	}

	if !degraded && s.cache.Enabled() {
		if err := s.cache.Set(ctx, homeCacheKey, page, 0); err != nil {
			s.logger.Warn("home cache write failed", zap.Error(err))
		}
	}
	return page, false, degraded
}

// hero applies field-level fallbacks: only missing subfields fall back,
// never the whole record at once.
func (s *HomeService) hero(content *models.HomeContent) dto.Hero {
	hero := dto.Hero{
		Title:       defaultHeroTitle,
		Subtitle:    defaultHeroSubtitle,
		Description: defaultHeroDescription,
	}
	if content == nil {
		return hero
	}
	if content.HeroTitle != "" {
		hero.Title = content.HeroTitle
	}
	if content.HeroSubtitle != "" {
		hero.Subtitle = content.HeroSubtitle
	}
	if content.HeroDescription != "" {
		hero.Description = content.HeroDescription
	}
	hero.ImageURL = s.images.ImageURL(content.HeroImage)
	return hero
}

func statCards(content *models.HomeContent) []dto.StatCard {
	if content == nil || len(content.Stats) == 0 {
		return defaultStats()
	}
	cards := make([]dto.StatCard, 0, len(content.Stats))
	for _, stat := range content.Stats {
		cards = append(cards, dto.StatCard{
			Icon:  string(models.ParseIcon(stat.Icon)),
			Label: stat.Label,
			Value: stat.Value,
		})
	}
	return cards
}

func leaderCards(leaders []models.CommitteeMember) []dto.LeaderCard {
	cards := make([]dto.LeaderCard, 0, len(leaders))
	for _, leader := range leaders {
		message := leader.Bio
		if message == "" {
			message = defaultLeaderMessage
		}
		cards = append(cards, dto.LeaderCard{
			ID:         leader.ID,
			Name:       leader.Name,
			Position:   leader.Position,
			Department: leader.Department,
			Year:       leader.Year,
			Message:    message,
		})
	}
	return cards
}
