// Package postgres reads course rows from a relational database. The
// prerequisites column holds a single comma-delimited string decoded the same
// way as the CSV prerequisite fields.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/abcu-edu/advising-assistant/pkg/domain"
	"github.com/abcu-edu/advising-assistant/pkg/ports"
)

const selectCourses = `SELECT code, title, prerequisites FROM courses`

// Config defines the configuration for a postgres Source.
type Config struct {
	URL string
}

// Source implements ports.RowSource over a Postgres connection pool.
type Source struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, config Config) (*Source, error) {
	pool, err := pgxpool.New(ctx, config.URL)
	if err != nil {
		return nil, errors.Wrap(ports.ErrSourceUnavailable, err.Error())
	}
	return &Source{pool: pool}, nil
}

func (s *Source) Name() string {
	return "database"
}

func (s *Source) Close() {
	s.pool.Close()
}

// Rows runs the fixed course query and returns one raw row per result row.
// Row positions are 1-based in result order.
func (s *Source) Rows(ctx context.Context) ([]ports.RawRow, error) {
	rows, err := s.pool.Query(ctx, selectCourses)
	if err != nil {
		return nil, errors.Wrap(ports.ErrSourceUnavailable, err.Error())
	}
	defer rows.Close()

	var raw []ports.RawRow
	position := 0
	for rows.Next() {
		var code, title, prereqs string
		if err := rows.Scan(&code, &title, &prereqs); err != nil {
			return nil, &ports.LoadError{Row: position + 1, Err: err}
		}
		position++
		raw = append(raw, ports.RawRow{
			Position:      position,
			Code:          code,
			Title:         title,
			Prerequisites: domain.ParsePrereqList(prereqs),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating course rows")
	}
	return raw, nil
}
