// Package csvfile reads course rows from a comma-separated text file:
// field 1 is the course code, field 2 the title, fields 3..N the
// prerequisite codes.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/abcu-edu/advising-assistant/pkg/ports"
)

// Config defines the configuration for a csvfile Source.
type Config struct {
	Path string
}

// Source implements ports.RowSource over a CSV file on disk. The file is
// opened per Rows call and closed before Rows returns.
type Source struct {
	config Config
}

func New(config Config) *Source {
	return &Source{config: config}
}

func (s *Source) Name() string {
	return fmt.Sprintf("file %s", s.config.Path)
}

// Rows reads every non-empty line of the file. Lines with fewer than two
// fields are malformed; trailing or blank prerequisite fields are dropped
// silently. Row positions are 1-based line numbers.
func (s *Source) Rows(ctx context.Context) ([]ports.RawRow, error) {
	f, err := os.Open(s.config.Path)
	if err != nil {
		return nil, errors.Wrapf(ports.ErrSourceUnavailable, "cannot open %s", s.config.Path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // prerequisite count varies per line

	var rows []ports.RawRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if perr, ok := err.(*csv.ParseError); ok {
				return nil, &ports.LoadError{Row: perr.Line, Err: perr.Err}
			}
			return nil, errors.Wrapf(err, "reading %s", s.config.Path)
		}
		line, _ := r.FieldPos(0)
		if len(record) == 1 && record[0] == "" {
			continue // whitespace-only line
		}
		if len(record) < 2 {
			return nil, &ports.LoadError{
				Row: line,
				Err: fmt.Errorf("expected at least code and title, got %d field(s)", len(record)),
			}
		}
		var prereqs []string
		for _, p := range record[2:] {
			if p != "" {
				prereqs = append(prereqs, p)
			}
		}
		rows = append(rows, ports.RawRow{
			Position:      line,
			Code:          record[0],
			Title:         record[1],
			Prerequisites: prereqs,
		})
	}
	return rows, nil
}
