package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/models"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
)

type fakeHomeRepo struct {
	content    *models.HomeContent
	contentErr error
	members    []models.CommitteeMember
	membersErr error
}

func (f *fakeHomeRepo) HomeContent(context.Context) (*models.HomeContent, error) {
	return f.content, f.contentErr
}

func (f *fakeHomeRepo) CommitteeMembers(context.Context) ([]models.CommitteeMember, error) {
	return f.members, f.membersErr
}

func TestHomeServiceAbsentContentUsesFallbackCopy(t *testing.T) {
	repo := &fakeHomeRepo{}
	svc := NewHomeService(repo, repo, nil, nil, zap.NewNop(), HomeServiceConfig{})

	page, cacheHit, degraded := svc.Page(context.Background())

	assert.False(t, cacheHit)
	assert.False(t, degraded)
	assert.Equal(t, "CUET CAD Club", page.Hero.Title)
	assert.Equal(t, "Where Design Meets Innovation", page.Hero.Subtitle)
	require.Len(t, page.Stats, 4)
	assert.Equal(t, "Active Members", page.Stats[0].Label)
	assert.NotEmpty(t, page.Updates)
	assert.Empty(t, page.Leaders)
}

func TestHomeServiceMergesFieldsIndividually(t *testing.T) {
	repo := &fakeHomeRepo{content: &models.HomeContent{
		HeroTitle: "Design Studio",
		Stats:     []models.Stat{{Label: "Members", Value: "200+", Icon: "Sparkles"}},
	}}
	svc := NewHomeService(repo, repo, nil, nil, zap.NewNop(), HomeServiceConfig{})

	page, _, _ := svc.Page(context.Background())

	assert.Equal(t, "Design Studio", page.Hero.Title)
	assert.Equal(t, "Where Design Meets Innovation", page.Hero.Subtitle)
	require.Len(t, page.Stats, 1)
	assert.Equal(t, "Users", page.Stats[0].Icon)
	assert.Equal(t, "200+", page.Stats[0].Value)
}

func TestHomeServiceDegradesWhenContentUnavailable(t *testing.T) {
	repo := &fakeHomeRepo{
		contentErr: appErrors.ErrUpstream,
		members: []models.CommitteeMember{
			{ID: "fa", Name: "Dr. Rahman", Role: models.RoleFaculty},
		},
	}
	svc := NewHomeService(repo, repo, nil, nil, zap.NewNop(), HomeServiceConfig{})

	page, _, degraded := svc.Page(context.Background())

	assert.True(t, degraded)
	assert.Equal(t, "CUET CAD Club", page.Hero.Title)
	require.Len(t, page.Leaders, 1)
	assert.Equal(t, "Dr. Rahman", page.Leaders[0].Name)
}

func TestHomeServiceLeaderMessageFallsBackToDefault(t *testing.T) {
	repo := &fakeHomeRepo{members: []models.CommitteeMember{
		{ID: "fa", Role: models.RoleFaculty, Bio: "Loves parametric design."},
		{ID: "pr", Role: models.RoleExecutive, Position: "President"},
	}}
	svc := NewHomeService(repo, repo, nil, nil, zap.NewNop(), HomeServiceConfig{})

	page, _, _ := svc.Page(context.Background())

	require.Len(t, page.Leaders, 2)
	assert.Equal(t, "Loves parametric design.", page.Leaders[0].Message)
	assert.Equal(t, defaultLeaderMessage, page.Leaders[1].Message)
}
