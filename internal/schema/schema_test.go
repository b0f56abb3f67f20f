package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeByName(t *testing.T, types []DocumentType, name string) DocumentType {
	t.Helper()
	for _, dt := range types {
		if dt.Name == name {
			return dt
		}
	}
	t.Fatalf("document type %q not declared", name)
	return DocumentType{}
}

func fieldByName(t *testing.T, dt DocumentType, name string) Field {
	t.Helper()
	for _, f := range dt.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not declared on %q", name, dt.Name)
	return Field{}
}

func TestTypesDeclaresAllContentKinds(t *testing.T) {
	types := Types()

	require.Len(t, types, 7)
	names := make([]string, 0, len(types))
	for _, dt := range types {
		names = append(names, dt.Name)
	}
	assert.ElementsMatch(t, []string{
		"homeContent", "aboutContent", "joinContent",
		"event", "workshop", "committeeMember", "alumniProfile",
	}, names)
}

func TestSingletonFlags(t *testing.T) {
	types := Types()

	assert.True(t, typeByName(t, types, "homeContent").Singleton)
	assert.True(t, typeByName(t, types, "aboutContent").Singleton)
	assert.True(t, typeByName(t, types, "joinContent").Singleton)
	assert.False(t, typeByName(t, types, "event").Singleton)
	assert.False(t, typeByName(t, types, "alumniProfile").Singleton)
}

func TestEventStatusValues(t *testing.T) {
	status := fieldByName(t, typeByName(t, Types(), "event"), "status")

	assert.True(t, status.Required)
	assert.Equal(t, []string{"open", "coming-soon", "completed", "cancelled"}, status.AllowedValues)
}

func TestGraduationYearBoundsTrackReferenceTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	year := fieldByName(t, typeByName(t, TypesAt(now), "alumniProfile"), "graduationYear")

	require.NotNil(t, year.Min)
	require.NotNil(t, year.Max)
	assert.Equal(t, float64(1900), *year.Min)
	assert.Equal(t, float64(2036), *year.Max)
}

func TestWorkshopDurationNonNegative(t *testing.T) {
	duration := fieldByName(t, typeByName(t, Types(), "workshop"), "duration")

	require.NotNil(t, duration.Min)
	assert.Equal(t, float64(0), *duration.Min)
	assert.True(t, duration.Required)
}

func TestIconFieldsShareClosedSet(t *testing.T) {
	types := Types()
	statIcon := fieldByName(t, typeByName(t, types, "homeContent"), "stats").Of[2]
	benefitIcon := fieldByName(t, typeByName(t, types, "joinContent"), "benefits").Of[2]

	assert.Equal(t, statIcon.AllowedValues, benefitIcon.AllowedValues)
	assert.Contains(t, statIcon.AllowedValues, "Users")
	assert.Contains(t, statIcon.AllowedValues, "Award")
}
