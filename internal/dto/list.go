package dto

import (
	"fmt"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
)

// DateLayout is the wire format of document and entry dates.
const DateLayout = "2006-01-02"

// ListParams defines query parameters for paged list endpoints.
type ListParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

func (p ListParams) ToDomain() domain.ListParams {
	return domain.ListParams{Limit: p.Limit, NextToken: p.NextToken}
}

// DocumentListParams adds the document filters to ListParams. Filters a
// document type does not carry are rejected by the service.
type DocumentListParams struct {
	ListParams
	VendorID     *int64 `form:"vendorID" binding:"omitempty,gt=0"`
	DepartmentID *int64 `form:"departmentID" binding:"omitempty,gt=0"`
}

func (p DocumentListParams) ToDomain() domain.ListParams {
	params := p.ListParams.ToDomain()
	params.VendorID = p.VendorID
	params.DepartmentID = p.DepartmentID
	return params
}

// ListResponse wraps one page of results.
type ListResponse[T any] struct {
	Items     []T     `json:"items"`
	NextToken *string `json:"nextToken,omitempty"`
}

// ParseDate parses an optional YYYY-MM-DD value, falling back to the day of now.
func ParseDate(value *string, now time.Time) (time.Time, error) {
	if value == nil || *value == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, *value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *value)
	}
	return t, nil
}

// NewListResponse builds a page, rendering an empty page as [] rather than null.
func NewListResponse[T any](items []T, nextToken *string) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, NextToken: nextToken}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
