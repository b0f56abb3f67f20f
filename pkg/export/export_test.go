package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRendersHeaderAndRows(t *testing.T) {
	table := Table{
		Title:   "ignored for csv",
		Columns: []string{"Name", "Year"},
		Rows: [][]string{
			{"Tanvir", "2021"},
			{"Nabila, Jr.", "2022"},
		},
	}

	data, err := CSV(table)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Year", lines[0])
	assert.Equal(t, "Tanvir,2021", lines[1])
	assert.Equal(t, `"Nabila, Jr.",2022`, lines[2])
}

func TestCSVRejectsEmptyColumns(t *testing.T) {
	_, err := CSV(Table{})
	assert.Error(t, err)
}

func TestCSVRejectsRaggedRows(t *testing.T) {
	table := Table{
		Columns: []string{"Name", "Year"},
		Rows:    [][]string{{"only one cell"}},
	}

	_, err := CSV(table)
	assert.ErrorContains(t, err, "row 0")
}

func TestPDFProducesDocument(t *testing.T) {
	table := Table{
		Title:   "Event Calendar",
		Columns: []string{"Date", "Title"},
		Rows:    [][]string{{"Feb 14, 2026", "CAD Fest"}},
	}

	data, err := PDF(table)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestPDFRejectsEmptyColumns(t *testing.T) {
	_, err := PDF(Table{Title: "x"})
	assert.Error(t, err)
}
