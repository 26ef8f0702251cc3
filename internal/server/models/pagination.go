package models

import (
	"fmt"
	"strconv"

	"qanda-service/internal/common"
)

// Pagination bounds a listing query. A nil Limit means unbounded; Offset
// rows are skipped first.
type Pagination struct {
	Limit  *int64
	Offset int64
}

// ParsePagination extracts pagination from raw query parameters.
//
// Contract: offset is required whenever limit is given; limit alone is
// rejected with ErrMissingParameters. Both absent means all rows from the
// start. Non-numeric values, a negative offset, or a non-positive limit
// fail with ErrParse.
func ParsePagination(params map[string]string) (Pagination, error) {
	p := Pagination{}

	rawLimit, hasLimit := params["limit"]
	rawOffset, hasOffset := params["offset"]

	if !hasLimit && !hasOffset {
		return p, nil
	}
	if hasLimit && !hasOffset {
		return p, common.ErrMissingParameters
	}

	offset, err := strconv.ParseInt(rawOffset, 10, 64)
	if err != nil || offset < 0 {
		return p, fmt.Errorf("%w: offset %q", common.ErrParse, rawOffset)
	}
	p.Offset = offset

	if hasLimit {
		limit, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil || limit < 1 {
			return p, fmt.Errorf("%w: limit %q", common.ErrParse, rawLimit)
		}
		p.Limit = &limit
	}

	return p, nil
}
