package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/models"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
)

func TestExportServiceAlumniCSV(t *testing.T) {
	alumni := &fakeAlumniRepo{alumni: []models.AlumniProfile{
		{
			Name:            "Tanvir Hasan",
			GraduationYear:  2021,
			Degree:          "BSc in ME",
			CurrentPosition: "Design Engineer",
			Company:         "Walton",
			Achievements:    []string{"Best Capstone", "CAD Cup Winner"},
		},
	}}
	svc := NewExportService(&fakeContentRepo{}, alumni, zap.NewNop(), true)

	data, err := svc.AlumniCSV(context.Background())

	require.NoError(t, err)
	body := string(data)
	assert.True(t, strings.HasPrefix(body, "Name,Graduation Year,Degree,Position,Company,Achievements"))
	assert.Contains(t, body, "Tanvir Hasan,2021,BSc in ME,Design Engineer,Walton,Best Capstone; CAD Cup Winner")
}

func TestExportServiceEventsPDF(t *testing.T) {
	date := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	events := &fakeContentRepo{events: []models.Event{
		{Title: "CAD Fest", Date: date, Location: "Auditorium", Status: models.EventStatusOpen},
	}}
	svc := NewExportService(events, &fakeAlumniRepo{}, zap.NewNop(), true)

	data, err := svc.EventsPDF(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportServiceDisabled(t *testing.T) {
	svc := NewExportService(&fakeContentRepo{}, &fakeAlumniRepo{}, zap.NewNop(), false)

	_, err := svc.AlumniCSV(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrDisabled)

	_, err = svc.EventsPDF(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrDisabled)
}

func TestExportServicePropagatesUpstreamError(t *testing.T) {
	svc := NewExportService(&fakeContentRepo{eventsErr: appErrors.ErrUpstream}, &fakeAlumniRepo{err: appErrors.ErrUpstream}, zap.NewNop(), true)

	_, err := svc.AlumniCSV(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrUpstream)

	_, err = svc.EventsPDF(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrUpstream)
}

func TestEventDateRange(t *testing.T) {
	start := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	assert.Equal(t, "Feb 14, 2026", eventDateRange(models.Event{Date: start}))
	assert.Equal(t, "Feb 14, 2026", eventDateRange(models.Event{Date: start, EndDate: &start}))
	assert.Equal(t, "Feb 14, 2026 - Feb 16, 2026", eventDateRange(models.Event{Date: start, EndDate: &end}))
}
