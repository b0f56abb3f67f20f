package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cuet-cad-club/clubsite-api/internal/models"
	"github.com/cuet-cad-club/clubsite-api/pkg/errors"
	"github.com/cuet-cad-club/clubsite-api/pkg/export"
)

// ExportService renders club content as downloadable CSV and PDF files.
type ExportService struct {
	events  eventLister
	alumni  alumniLister
	logger  *zap.Logger
	enabled bool
}

// NewExportService constructs an export service.
func NewExportService(events eventLister, alumni alumniLister, logger *zap.Logger, enabled bool) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{events: events, alumni: alumni, logger: logger, enabled: enabled}
}

// Enabled reports whether exports are switched on.
func (s *ExportService) Enabled() bool {
	return s.enabled
}

// AlumniCSV renders the alumni directory as CSV.
func (s *ExportService) AlumniCSV(ctx context.Context) ([]byte, error) {
	if !s.enabled {
		return nil, errors.ErrDisabled
	}
	alumni, err := s.alumni.AlumniProfiles(ctx)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   "Alumni Directory",
		Columns: []string{"Name", "Graduation Year", "Degree", "Position", "Company", "Achievements"},
		Rows:    make([][]string, 0, len(alumni)),
	}
	for _, profile := range alumni {
		table.Rows = append(table.Rows, []string{
			profile.Name,
			fmt.Sprintf("%d", profile.GraduationYear),
			profile.Degree,
			profile.CurrentPosition,
			profile.Company,
			strings.Join(profile.Achievements, "; "),
		})
	}

	data, err := export.CSV(table)
	if err != nil {
		s.logger.Error("alumni csv render failed", zap.Error(err))
		return nil, errors.Wrap(err, errors.ErrInternal.Code, errors.ErrInternal.Status, "failed to render alumni export")
	}
	return data, nil
}

// EventsPDF renders the event calendar as a tabular PDF.
func (s *ExportService) EventsPDF(ctx context.Context) ([]byte, error) {
	if !s.enabled {
		return nil, errors.ErrDisabled
	}
	events, err := s.events.Events(ctx)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   "CUET CAD Club Event Calendar",
		Columns: []string{"Date", "Title", "Location", "Status"},
		Rows:    make([][]string, 0, len(events)),
	}
	for _, event := range events {
		table.Rows = append(table.Rows, []string{
			eventDateRange(event),
			event.Title,
			event.Location,
			event.Status.Label(),
		})
	}

	data, err := export.PDF(table)
	if err != nil {
		s.logger.Error("events pdf render failed", zap.Error(err))
		return nil, errors.Wrap(err, errors.ErrInternal.Code, errors.ErrInternal.Status, "failed to render event calendar")
	}
	return data, nil
}

func eventDateRange(event models.Event) string {
	start := event.Date.Format("Jan 2, 2006")
	if event.EndDate == nil || event.EndDate.Equal(event.Date) {
		return start
	}
	return start + " - " + event.EndDate.Format("Jan 2, 2006")
}
