package domain

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abcu-edu/advising-assistant/pkg/ports"
	"github.com/abcu-edu/advising-assistant/pkg/utils"
)

// bucketCount is prime so course codes spread evenly over the table instead
// of clustering the way a power-of-two size would.
const bucketCount = 17

// entry is one link of a bucket's collision chain. key holds the normalized
// (upper-cased) course code.
type entry struct {
	key    string
	course Course
}

// CatalogStatus is the observed state of a Catalog.
type CatalogStatus struct {
	Loaded      bool
	CourseCount int
}

// Catalog is the in-memory course index: a fixed-size hash table with chained
// collision resolution, keyed by the upper-cased course code. Lookups and
// insertion are case-insensitive on the code.
//
// A Catalog is not safe for concurrent use; callers wanting shared access
// must serialize Load, Get, and SortedCodes externally.
type Catalog struct {
	buckets [bucketCount][]entry
	// order records normalized keys in insertion order; SortedCodes sorts a
	// copy of it on demand rather than keeping it sorted on insert.
	order  []string
	loaded bool
	logger utils.Logger
}

// NewCatalog creates an empty catalog. Queries fail with ErrNotLoaded until
// the first successful Load.
func NewCatalog(logger utils.Logger) *Catalog {
	if logger == nil {
		logger = &utils.SilentLogger{}
	}
	return &Catalog{logger: logger}
}

// normalize upper-cases a course code for hashing and comparison.
func normalize(code string) string {
	return strings.ToUpper(code)
}

// bucketFor computes the polynomial rolling hash (x31) of a normalized key.
// The uint32 accumulator wraps on overflow; that is expected, not an error.
func bucketFor(key string) int {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = h*31 + uint32(key[i])
	}
	return int(h % bucketCount)
}

// Reset discards every bucket's chain and the insertion-order key list and
// marks the catalog as not loaded. Idempotent.
func (c *Catalog) Reset() {
	for i := range c.buckets {
		c.buckets[i] = nil
	}
	c.order = nil
	c.loaded = false
}

// Insert appends the course to the tail of its bucket's chain. Entries are
// never overwritten or deduplicated: a second course with the same code stays
// in the chain behind the first, and Get returns the first match.
func (c *Catalog) Insert(course Course) {
	key := normalize(course.Code())
	i := bucketFor(key)
	c.buckets[i] = append(c.buckets[i], entry{key: key, course: course})
	c.order = append(c.order, key)
}

// Load replaces the catalog's entire contents with the rows supplied by
// source. On success the catalog is marked loaded and prior contents are gone.
//
// Load is atomic: every row is parsed and validated before the old contents
// are discarded, so a row failure (reported as a LoadError carrying the row's
// 1-based position) leaves the catalog exactly as it was.
func (c *Catalog) Load(ctx context.Context, source ports.RowSource) error {
	rows, err := source.Rows(ctx)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Failed to read rows from %s: %v", source.Name(), err))
		return err
	}

	staged := make([]Course, 0, len(rows))
	for _, row := range rows {
		course, err := NewCourse(row.Code, row.Title, row.Prerequisites)
		if err != nil {
			loadErr := &ports.LoadError{Row: row.Position, Err: err}
			c.logger.Error(fmt.Sprintf("Load from %s failed: %v", source.Name(), loadErr))
			return loadErr
		}
		staged = append(staged, course)
	}

	c.Reset()
	for _, course := range staged {
		c.Insert(course)
	}
	c.loaded = true
	c.logger.Info(fmt.Sprintf("Loaded %d courses from %s", len(staged), source.Name()))
	return nil
}

// Get retrieves a course by code, case-insensitively. It fails with
// ErrNotLoaded before any successful Load and with ErrCourseNotFound when no
// entry matches. The bucket chain is scanned in insertion order, so the first
// of two duplicate codes wins.
func (c *Catalog) Get(code string) (Course, error) {
	if !c.loaded {
		return Course{}, ports.ErrNotLoaded
	}
	key := normalize(code)
	for _, e := range c.buckets[bucketFor(key)] {
		if e.key == key {
			return e.course, nil
		}
	}
	c.logger.Warn(fmt.Sprintf("Course %s not found", key))
	return Course{}, ports.ErrCourseNotFound
}

// SortedCodes returns every stored normalized code in lexicographic order.
// The sort happens on each call; stored data is left untouched.
func (c *Catalog) SortedCodes() ([]string, error) {
	if !c.loaded {
		return nil, ports.ErrNotLoaded
	}
	codes := make([]string, len(c.order))
	copy(codes, c.order)
	sort.Strings(codes)
	return codes, nil
}

// Status reports whether the catalog has been loaded and how many entries it
// holds.
func (c *Catalog) Status() CatalogStatus {
	return CatalogStatus{Loaded: c.loaded, CourseCount: len(c.order)}
}
