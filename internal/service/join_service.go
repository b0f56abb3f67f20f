package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
)

type joinContentGetter interface {
	JoinContent(ctx context.Context) (*models.JoinContent, error)
}

// JoinService assembles the join page view model and accepts
// membership applications.
type JoinService struct {
	content   joinContentGetter
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	enabled   bool
}

// NewJoinService constructs a join service. enabled gates application
// submission without affecting the page itself.
func NewJoinService(content joinContentGetter, cache *CacheService, validate *validator.Validate, logger *zap.Logger, enabled bool) *JoinService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &JoinService{content: content, cache: cache, validator: validate, logger: logger, enabled: enabled}
	svc.validator.RegisterValidation("student_id", func(fl validator.FieldLevel) bool { //nolint:errcheck
		id := fl.Field().String()
		if len(id) < 4 || len(id) > 32 {
			return false
		}
		for _, r := range id {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	return svc
}

const joinCacheKey = "page:join"

// ApplicationsEnabled reports whether submissions are accepted.
func (s *JoinService) ApplicationsEnabled() bool {
	return s.enabled
}

// Page returns the join page view model. Missing fields fall back
// individually; an upstream failure degrades to the full fallback copy.
func (s *JoinService) Page(ctx context.Context) (page *dto.JoinPageResponse, cacheHit, degraded bool) {
	if s.cache.Enabled() {
		var cached dto.JoinPageResponse
		if hit, err := s.cache.Get(ctx, joinCacheKey, &cached); err == nil && hit {
			return &cached, true, false
		}
	}

	content, err := s.content.JoinContent(ctx)
	if err != nil {
		s.logger.Warn("join content unavailable, serving fallback copy", zap.Error(err))
		content = nil
		degraded = true
	}

	page = &dto.JoinPageResponse{
		Benefits: defaultBenefits(),
		Contact: dto.ContactInfo{
			Email:          defaultContactEmail,
			OfficeLocation: defaultOfficeLocation,
			OfficeHours:    defaultOfficeHours,
		},
	}
	if content != nil {
		if len(content.Benefits) > 0 {
			benefits := make([]dto.BenefitCard, 0, len(content.Benefits))
			for _, benefit := range content.Benefits {
				benefits = append(benefits, dto.BenefitCard{
					Icon:        string(models.ParseIcon(benefit.Icon)),
					Title:       benefit.Title,
					Description: benefit.Description,
				})
			}
			page.Benefits = benefits
		}
		if content.ContactEmail != "" {
			page.Contact.Email = content.ContactEmail
		}
		if content.OfficeLocation != "" {
			page.Contact.OfficeLocation = content.OfficeLocation
		}
		if content.OfficeHours != "" {
			page.Contact.OfficeHours = content.OfficeHours
		}
	}

	if !degraded && s.cache.Enabled() {
		if err := s.cache.Set(ctx, joinCacheKey, page, 0); err != nil {
			s.logger.Warn("join cache write failed", zap.Error(err))
		}
	}
	return page, false, degraded
}

// SubmitApplication validates the application and acknowledges it with a
// tracking reference. Applications are logged for the membership team;
// there is no application store.
func (s *JoinService) SubmitApplication(req dto.ApplicationRequest) (dto.ApplicationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ApplicationResponse{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}
	reference := uuid.NewString()
	s.logger.Info("membership application received",
		zap.String("reference", reference),
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("student_id", req.StudentID),
		zap.String("department", req.Department),
		zap.String("year", req.Year))
	return dto.ApplicationResponse{
		Reference: reference,
		Message:   "Thank you for applying. The membership team will contact you by email.",
	}, nil
}
