package domain

import (
	"strings"

	"github.com/abcu-edu/advising-assistant/pkg/ports"
)

// Course is one immutable course record: code, title, and the codes of its
// prerequisites. Invalid courses cannot be constructed.
type Course struct {
	code          string
	title         string
	prerequisites []string
}

// NewCourse validates and builds a Course. It fails with a ValidationError
// when code or title is empty. The prerequisite list is accepted as-is: it may
// be empty and may contain duplicates.
func NewCourse(code, title string, prereqs []string) (Course, error) {
	if code == "" {
		return Course{}, &ports.ValidationError{Field: "code"}
	}
	if title == "" {
		return Course{}, &ports.ValidationError{Field: "title"}
	}
	c := Course{code: code, title: title}
	if len(prereqs) > 0 {
		c.prerequisites = make([]string, len(prereqs))
		copy(c.prerequisites, prereqs)
	}
	return c, nil
}

func (c Course) Code() string  { return c.code }
func (c Course) Title() string { return c.title }

// Prerequisites returns a copy of the prerequisite codes in their original order.
func (c Course) Prerequisites() []string {
	if len(c.prerequisites) == 0 {
		return nil
	}
	out := make([]string, len(c.prerequisites))
	copy(out, c.prerequisites)
	return out
}

// ParsePrereqList splits a comma-delimited prerequisites column into codes,
// dropping blank entries. Both the CSV and database sources store
// prerequisites this way.
func ParsePrereqList(s string) []string {
	var prereqs []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prereqs = append(prereqs, p)
		}
	}
	return prereqs
}
