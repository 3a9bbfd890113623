package menu_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abcu-edu/advising-assistant/pkg/application"
	"github.com/abcu-edu/advising-assistant/pkg/domain"
	"github.com/abcu-edu/advising-assistant/pkg/menu"
	"github.com/abcu-edu/advising-assistant/pkg/ports"
	"github.com/abcu-edu/advising-assistant/pkg/utils"
)

type scriptSource struct {
	rows []ports.RawRow
	err  error
}

func (s *scriptSource) Rows(ctx context.Context) ([]ports.RawRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *scriptSource) Name() string { return "file courses.csv" }

func runSession(t *testing.T, source ports.RowSource, input string) string {
	t.Helper()
	logger := &utils.SilentLogger{}
	catalog := domain.NewCatalog(logger)
	commands := application.NewCommandHandler(catalog, logger)
	queries := application.NewQueryHandler(catalog, logger)

	var out bytes.Buffer
	session := menu.NewSession(strings.NewReader(input), &out, source, commands, queries)
	err := session.Run(context.Background())
	assert.NoError(t, err)
	return out.String()
}

func demoSource() *scriptSource {
	return &scriptSource{rows: []ports.RawRow{
		{Position: 1, Code: "CS300", Title: "Algorithms", Prerequisites: []string{"CS200", "MATH201"}},
		{Position: 2, Code: "CS101", Title: "Intro"},
	}}
}

func TestSessionLoadListDetailsExit(t *testing.T) {
	out := runSession(t, demoSource(), "1\n2\n3\ncs300\n9\n")

	assert.Contains(t, out, "SUCCESS: 2 courses loaded from file courses.csv")
	// List is sorted by code.
	listPos := strings.Index(out, "CS101")
	assert.Greater(t, listPos, -1)
	assert.Less(t, listPos, strings.Index(out, "CS300  Algorithms"))
	// Details for a lower-cased query.
	assert.Contains(t, out, "CS300: Algorithms")
	assert.Contains(t, out, "Prerequisites: CS200, MATH201")
}

func TestSessionNoPrereqsPrintsNone(t *testing.T) {
	out := runSession(t, demoSource(), "1\n3\nCS101\n9\n")
	assert.Contains(t, out, "Prerequisites: None")
}

func TestSessionInvalidSelectionReprompts(t *testing.T) {
	out := runSession(t, demoSource(), "7\n9\n")
	assert.Contains(t, out, "Invalid selection.")
	assert.Equal(t, 2, strings.Count(out, "Selection: "), "loop re-prompts after a bad choice")
}

func TestSessionErrorsAreNotFatal(t *testing.T) {
	out := runSession(t, demoSource(), "2\n1\n3\nCS999\n9\n")

	// Listing before load renders one error line and the loop continues.
	assert.Contains(t, out, "ERROR: "+ports.ErrNotLoaded.Error())
	assert.Contains(t, out, "SUCCESS: 2 courses loaded")
	assert.Contains(t, out, "ERROR: "+ports.ErrCourseNotFound.Error())
}

func TestSessionSourceUnavailable(t *testing.T) {
	out := runSession(t, &scriptSource{err: ports.ErrSourceUnavailable}, "1\n9\n")
	assert.Contains(t, out, "ERROR: "+ports.ErrSourceUnavailable.Error())
}

func TestSessionEOFExits(t *testing.T) {
	out := runSession(t, demoSource(), "")
	assert.Contains(t, out, "Selection: ")
}
