package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/models"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
)

type fakeJoinRepo struct {
	content *models.JoinContent
	err     error
}

func (f *fakeJoinRepo) JoinContent(context.Context) (*models.JoinContent, error) {
	return f.content, f.err
}

func TestJoinServiceAbsentContentUsesFallbackCopy(t *testing.T) {
	svc := NewJoinService(&fakeJoinRepo{}, nil, nil, zap.NewNop(), true)

	page, _, degraded := svc.Page(context.Background())

	assert.False(t, degraded)
	require.Len(t, page.Benefits, 3)
	assert.Equal(t, "Community Access", page.Benefits[0].Title)
	assert.Equal(t, "cadclub@cuet.ac.bd", page.Contact.Email)
	assert.Equal(t, "Club Room 204, Student Center", page.Contact.OfficeLocation)
	assert.Equal(t, "Saturdays, 2 PM - 5 PM", page.Contact.OfficeHours)
}

func TestJoinServiceMergesFieldsIndividually(t *testing.T) {
	repo := &fakeJoinRepo{content: &models.JoinContent{
		ContactEmail: "hello@cadclub.example",
	}}
	svc := NewJoinService(repo, nil, nil, zap.NewNop(), true)

	page, _, _ := svc.Page(context.Background())

	assert.Equal(t, "hello@cadclub.example", page.Contact.Email)
	assert.Equal(t, "Club Room 204, Student Center", page.Contact.OfficeLocation)
	require.Len(t, page.Benefits, 3)
}

func TestJoinServiceNormalisesBenefitIcons(t *testing.T) {
	repo := &fakeJoinRepo{content: &models.JoinContent{
		Benefits: []models.Benefit{{Title: "Mentorship", Icon: "Rocket"}},
	}}
	svc := NewJoinService(repo, nil, nil, zap.NewNop(), true)

	page, _, _ := svc.Page(context.Background())

	require.Len(t, page.Benefits, 1)
	assert.Equal(t, "Users", page.Benefits[0].Icon)
}

func TestJoinServiceDegradesOnUpstreamFailure(t *testing.T) {
	svc := NewJoinService(&fakeJoinRepo{err: appErrors.ErrUpstream}, nil, nil, zap.NewNop(), true)

	page, _, degraded := svc.Page(context.Background())

	assert.True(t, degraded)
	require.Len(t, page.Benefits, 3)
	assert.Equal(t, "cadclub@cuet.ac.bd", page.Contact.Email)
}

func TestJoinServiceSubmitApplication(t *testing.T) {
	svc := NewJoinService(&fakeJoinRepo{}, nil, nil, zap.NewNop(), true)

	valid := dto.ApplicationRequest{
		Name:       "Ayesha Karim",
		Email:      "ayesha@example.com",
		StudentID:  "2104001",
		Department: "Mechanical Engineering",
		Year:       "3rd",
		Motivation: "I want to learn SolidWorks.",
	}

	ack, err := svc.SubmitApplication(valid)
	require.NoError(t, err)
	assert.NotEmpty(t, ack.Reference)
	assert.NotEmpty(t, ack.Message)

	again, err := svc.SubmitApplication(valid)
	require.NoError(t, err)
	assert.NotEqual(t, ack.Reference, again.Reference)
}

func TestJoinServiceSubmitApplicationValidation(t *testing.T) {
	svc := NewJoinService(&fakeJoinRepo{}, nil, nil, zap.NewNop(), true)

	tests := []struct {
		name   string
		mutate func(*dto.ApplicationRequest)
	}{
		{"missing name", func(r *dto.ApplicationRequest) { r.Name = "" }},
		{"bad email", func(r *dto.ApplicationRequest) { r.Email = "not-an-email" }},
		{"student id too short", func(r *dto.ApplicationRequest) { r.StudentID = "12" }},
		{"student id not numeric", func(r *dto.ApplicationRequest) { r.StudentID = "21O4001" }},
		{"missing motivation", func(r *dto.ApplicationRequest) { r.Motivation = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ApplicationRequest{
				Name:       "Ayesha Karim",
				Email:      "ayesha@example.com",
				StudentID:  "2104001",
				Department: "Mechanical Engineering",
				Year:       "3rd",
				Motivation: "I want to learn SolidWorks.",
			}
			tt.mutate(&req)

			_, err := svc.SubmitApplication(req)
			appErr := appErrors.FromError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
		})
	}
}
