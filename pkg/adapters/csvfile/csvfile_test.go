package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/abcu-edu/advising-assistant/pkg/adapters/csvfile"
	"github.com/abcu-edu/advising-assistant/pkg/ports"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

func TestRowsReadsCourses(t *testing.T) {
	path := writeTempCSV(t,
		"CS101,Intro to Computer Science\n"+
			"CS200,Data Structures,CS101\n"+
			"CS300,Algorithms,CS200,MATH201\n")
	source := csvfile.New(csvfile.Config{Path: path})

	rows, err := source.Rows(context.Background())
	assert.NoError(t, err)

	want := []ports.RawRow{
		{Position: 1, Code: "CS101", Title: "Intro to Computer Science"},
		{Position: 2, Code: "CS200", Title: "Data Structures", Prerequisites: []string{"CS101"}},
		{Position: 3, Code: "CS300", Title: "Algorithms", Prerequisites: []string{"CS200", "MATH201"}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsDropsTrailingEmptyFields(t *testing.T) {
	path := writeTempCSV(t, "CS101,Intro,,\nCS200,Data Structures,CS101,,\n")
	source := csvfile.New(csvfile.Config{Path: path})

	rows, err := source.Rows(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Empty(t, rows[0].Prerequisites, "trailing empty fields are not prerequisites")
	assert.Equal(t, []string{"CS101"}, rows[1].Prerequisites)
}

func TestRowsSkipsBlankLinesKeepsLineNumbers(t *testing.T) {
	path := writeTempCSV(t, "CS101,Intro\n\n\nCS200,Data Structures\n")
	source := csvfile.New(csvfile.Config{Path: path})

	rows, err := source.Rows(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, 4, rows[1].Position, "positions are file line numbers, not row indexes")
}

func TestRowsMalformedLine(t *testing.T) {
	path := writeTempCSV(t, "CS101,Intro\nJUSTACODE\n")
	source := csvfile.New(csvfile.Config{Path: path})

	_, err := source.Rows(context.Background())
	var loadErr *ports.LoadError
	assert.ErrorAs(t, err, &loadErr, "a line without a title is malformed")
	assert.Equal(t, 2, loadErr.Row)
}

func TestRowsMissingFile(t *testing.T) {
	source := csvfile.New(csvfile.Config{Path: filepath.Join(t.TempDir(), "nope.csv")})

	_, err := source.Rows(context.Background())
	assert.ErrorIs(t, err, ports.ErrSourceUnavailable)
}
