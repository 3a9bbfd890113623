// Package menu implements the interactive advising console: a numbered menu
// over the catalog's load, list, and lookup operations.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/abcu-edu/advising-assistant/pkg/application"
	"github.com/abcu-edu/advising-assistant/pkg/domain"
	"github.com/abcu-edu/advising-assistant/pkg/ports"
)

// Session owns one interactive run of the menu: the input/output streams, the
// row source to load from, and the command/query handlers.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	source   ports.RowSource
	commands *application.CommandHandler
	queries  *application.QueryHandler
}

func NewSession(in io.Reader, out io.Writer, source ports.RowSource,
	commands *application.CommandHandler, queries *application.QueryHandler) *Session {
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		source:   source,
		commands: commands,
		queries:  queries,
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "=============================")
	fmt.Fprintln(s.out, "ABCU Advising Assistant")
	fmt.Fprintf(s.out, "1. Load Data from %s\n", s.source.Name())
	fmt.Fprintln(s.out, "2. Print Course List")
	fmt.Fprintln(s.out, "3. Print Course Details")
	fmt.Fprintln(s.out, "9. Exit")
	fmt.Fprintln(s.out, "=============================")
	fmt.Fprint(s.out, "Selection: ")
}

// Run drives the menu loop until the user exits or input ends. Every error
// from a menu action is rendered as a single line and the loop continues; no
// error is fatal to the session.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.printMenu()
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		choice := strings.TrimSpace(s.in.Text())

		var err error
		switch choice {
		case "1":
			err = s.load(ctx)
		case "2":
			err = s.printCourseList(ctx)
		case "3":
			err = s.printCourseDetails(ctx)
		case "9":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid selection.")
		}
		if err != nil {
			fmt.Fprintf(s.out, "ERROR: %v\n", err)
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Session) load(ctx context.Context) error {
	if err := s.commands.ExecuteCommand(ctx, &application.LoadCatalogCommand{Source: s.source}); err != nil {
		return err
	}
	result, err := s.queries.ExecuteQuery(ctx, &application.GetStatusQuery{})
	if err != nil {
		return err
	}
	status := result.(domain.CatalogStatus)
	fmt.Fprintf(s.out, "SUCCESS: %d courses loaded from %s\n", status.CourseCount, s.source.Name())
	return nil
}

func (s *Session) printCourseList(ctx context.Context) error {
	result, err := s.queries.ExecuteQuery(ctx, &application.ListCoursesQuery{})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, listing := range result.([]application.CourseListing) {
		fmt.Fprintf(w, "%s\t%s\n", listing.Code, listing.Title)
	}
	return w.Flush()
}

func (s *Session) printCourseDetails(ctx context.Context) error {
	fmt.Fprint(s.out, "What course code? ")
	if !s.in.Scan() {
		return s.in.Err()
	}
	code := strings.TrimSpace(s.in.Text())

	result, err := s.queries.ExecuteQuery(ctx, &application.GetCourseQuery{Code: code})
	if err != nil {
		return err
	}
	course := result.(domain.Course)
	fmt.Fprintf(s.out, "\n%s: %s\n", course.Code(), course.Title())
	prereqs := course.Prerequisites()
	if len(prereqs) == 0 {
		fmt.Fprintln(s.out, "Prerequisites: None")
	} else {
		fmt.Fprintf(s.out, "Prerequisites: %s\n", strings.Join(prereqs, ", "))
	}
	return nil
}
