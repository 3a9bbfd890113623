package application

import (
	"context"
	"fmt"

	"github.com/abcu-edu/advising-assistant/pkg/domain"
	"github.com/abcu-edu/advising-assistant/pkg/utils"
)

// QueryHandler handles execution of queries against the catalog.
type QueryHandler struct {
	catalog *domain.Catalog
	logger  utils.Logger
}

// NewQueryHandler creates a new QueryHandler instance.
func NewQueryHandler(catalog *domain.Catalog, logger utils.Logger) *QueryHandler {
	return &QueryHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Query defines the interface for all queries.
type Query interface {
	Execute(ctx context.Context, handler *QueryHandler) (interface{}, error)
}

// GetCourseQuery retrieves one course by code, case-insensitively.
type GetCourseQuery struct {
	Code string
}

// Execute executes the GetCourseQuery.
func (q *GetCourseQuery) Execute(ctx context.Context, handler *QueryHandler) (interface{}, error) {
	handler.logger.Info(fmt.Sprintf("Executing GetCourseQuery for code %s", q.Code))
	course, err := handler.catalog.Get(q.Code)
	if err != nil {
		handler.logger.Warn(fmt.Sprintf("Failed to get course %s: %v", q.Code, err))
		return nil, err
	}
	return course, nil
}

// CourseListing is one line of the sorted course list.
type CourseListing struct {
	Code  string
	Title string
}

// ListCoursesQuery retrieves every course as (code, title) pairs in
// lexicographic code order.
type ListCoursesQuery struct{}

// Execute executes the ListCoursesQuery.
func (q *ListCoursesQuery) Execute(ctx context.Context, handler *QueryHandler) (interface{}, error) {
	handler.logger.Info("Executing ListCoursesQuery")
	codes, err := handler.catalog.SortedCodes()
	if err != nil {
		return nil, err
	}
	listings := make([]CourseListing, 0, len(codes))
	for _, code := range codes {
		course, err := handler.catalog.Get(code)
		if err != nil {
			return nil, err
		}
		listings = append(listings, CourseListing{Code: course.Code(), Title: course.Title()})
	}
	return listings, nil
}

// GetStatusQuery retrieves the catalog status.
type GetStatusQuery struct{}

// Execute executes the GetStatusQuery.
func (q *GetStatusQuery) Execute(ctx context.Context, handler *QueryHandler) (interface{}, error) {
	status := handler.catalog.Status()
	return status, nil
}

// ExecuteQuery executes a query and returns its result.
func (h *QueryHandler) ExecuteQuery(ctx context.Context, query Query) (interface{}, error) {
	return query.Execute(ctx, h)
}
