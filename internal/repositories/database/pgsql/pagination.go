package pgsql

import (
	"strings"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/Yousifhashim249/ERP-project/internal/utils/pagination"
)

// pageCursor is the keyset position a list query resumes after. Both fields
// are nil on the first page.
type pageCursor struct {
	date         *time.Time
	id           *int64
	limit        int
	vendorID     *int64
	departmentID *int64
}

func newPageCursor(params domain.ListParams) (pageCursor, error) {
	c := pageCursor{
		limit:        pagination.NormalizeLimit(params.Limit),
		vendorID:     params.VendorID,
		departmentID: params.DepartmentID,
	}
	if params.NextToken == nil || strings.TrimSpace(*params.NextToken) == "" {
		return c, nil
	}
	date, id, err := pagination.DecodeToken(*params.NextToken)
	if err != nil {
		return c, apperrors.NewValidationError("invalid nextToken: %v", err)
	}
	c.date, c.id = &date, &id
	return c, nil
}

// fetch is the row count to ask for: one more than the page so we know
// whether another page exists.
func (c pageCursor) fetch() int {
	return c.limit + 1
}

// args are the positional parameters of pageQuery.
func (c pageCursor) args() []any {
	return []any{c.date, c.id, c.fetch(), c.vendorID, c.departmentID}
}

// trimPage cuts the extra row off and returns the token for the next page.
func trimPage[T any](items []T, c pageCursor, key func(T) (time.Time, int64)) ([]T, *string) {
	if len(items) <= c.limit {
		return items, nil
	}
	items = items[:c.limit]
	date, id := key(items[len(items)-1])
	token := pagination.EncodeToken(date, id)
	return items, &token
}
