package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuet-cad-club/clubsite-api/internal/models"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
)

// fakeQuerier replays a canned JSON result per query label, mimicking the
// content store client contract: a nil result leaves dest untouched.
type fakeQuerier struct {
	results map[string]string
	err     error
	labels  []string
	queries []string
}

func (f *fakeQuerier) Query(_ context.Context, label, groq string, dest interface{}) error {
	f.labels = append(f.labels, label)
	f.queries = append(f.queries, groq)
	if f.err != nil {
		return f.err
	}
	raw, ok := f.results[label]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), dest)
}

func TestContentRepositoryEvents(t *testing.T) {
	querier := &fakeQuerier{results: map[string]string{
		"events": `[{"_id":"e1","title":"CAD Fest","status":"open","slug":{"current":"cad-fest"}}]`,
	}}
	repo := NewContentRepository(querier, nil)

	events, err := repo.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "CAD Fest", events[0].Title)
	assert.Equal(t, models.EventStatusOpen, events[0].Status)
	assert.Equal(t, "cad-fest", events[0].Slug.Current)
	assert.Contains(t, querier.queries[0], `_type == "event"`)
	assert.Contains(t, querier.queries[0], "order(date desc)")
}

func TestContentRepositoryCommitteeQueryOrdering(t *testing.T) {
	querier := &fakeQuerier{}
	repo := NewContentRepository(querier, nil)

	_, err := repo.CommitteeMembers(context.Background())

	require.NoError(t, err)
	assert.Contains(t, querier.queries[0], "order(order asc, name asc)")
}

func TestContentRepositorySingletonAbsent(t *testing.T) {
	repo := NewContentRepository(&fakeQuerier{}, nil)

	home, err := repo.HomeContent(context.Background())
	require.NoError(t, err)
	assert.Nil(t, home)

	about, err := repo.AboutContent(context.Background())
	require.NoError(t, err)
	assert.Nil(t, about)

	join, err := repo.JoinContent(context.Background())
	require.NoError(t, err)
	assert.Nil(t, join)
}

func TestContentRepositorySingletonPresent(t *testing.T) {
	querier := &fakeQuerier{results: map[string]string{
		"homeContent": `{"heroTitle":"Design Studio","stats":[{"label":"Members","value":"150+","icon":"Users"}]}`,
	}}
	repo := NewContentRepository(querier, nil)

	home, err := repo.HomeContent(context.Background())

	require.NoError(t, err)
	require.NotNil(t, home)
	assert.Equal(t, "Design Studio", home.HeroTitle)
	require.Len(t, home.Stats, 1)
	assert.Equal(t, "150+", home.Stats[0].Value)
}

func TestContentRepositoryPropagatesError(t *testing.T) {
	repo := NewContentRepository(&fakeQuerier{err: appErrors.ErrUpstream}, nil)

	events, err := repo.Events(context.Background())
	assert.Nil(t, events)
	assert.ErrorIs(t, err, appErrors.ErrUpstream)

	home, err := repo.HomeContent(context.Background())
	assert.Nil(t, home)
	assert.ErrorIs(t, err, appErrors.ErrUpstream)
}

func TestContentRepositoryLabelsPerKind(t *testing.T) {
	querier := &fakeQuerier{}
	repo := NewContentRepository(querier, nil)
	ctx := context.Background()

	_, _ = repo.Events(ctx)
	_, _ = repo.Workshops(ctx)
	_, _ = repo.CommitteeMembers(ctx)
	_, _ = repo.AlumniProfiles(ctx)

	assert.Equal(t, []string{"events", "workshops", "committee", "alumni"}, querier.labels)
}
