package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/birdgroups/internal/report"
)

func testSummary() *report.Summary {
	return &report.Summary{Sections: []report.Section{
		{
			Group: "Geese", Classified: true, Observations: 1, Individuals: 4,
			Species: []report.SpeciesTally{{CommonName: "Brant", Observations: 1, Individuals: 4}},
		},
		{Group: "Owls", Classified: true},
		{
			Group: "NOT_IN_GROUPS", Observations: 2, Individuals: 2,
			Species: []report.SpeciesTally{
				{CommonName: "Common Loon", Observations: 1, Uncounted: 1},
				{CommonName: "", Observations: 1, Individuals: 2},
			},
		},
	}}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testSummary(), false))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Fields(line))
	}

	assert.Equal(t, [][]string{
		{"GROUP", "/", "SPECIES", "RECORDS", "INDIVIDUALS"},
		{"Geese", "1", "4"},
		{"Brant", "1", "4"},
		{"NOT_IN_GROUPS", "2", "2"},
		{"Common", "Loon", "1", "0+"},
		{"(no", "name)", "1", "2"},
		{},
		{"Total:", "3", "records,", "1", "in", "groups"},
	}, rows)

	assert.True(t, strings.HasPrefix(lines[2], "  Brant"), "species rows are indented")
	assert.Equal(t, strings.Index(lines[0], "RECORDS"), strings.Index(lines[1], "1"), "columns are aligned")
}

func TestWriteTextShowEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testSummary(), true))
	assert.Contains(t, buf.String(), "\nOwls ")
}
