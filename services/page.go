package services

import (
	"strings"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/repositories"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// NewPage validates a pagination window. An empty sort means newest first.
func NewPage(skip, limit int, sort string) (repositories.Page, error) {
	if skip < 0 {
		return repositories.Page{}, apperr.InvalidRequestError("skip must be >= 0, got %d", skip)
	}
	if limit < 1 || limit > MaxLimit {
		return repositories.Page{}, apperr.InvalidRequestError("limit must be between 1 and %d, got %d", MaxLimit, limit)
	}

	order := repositories.SortOrder(strings.ToLower(sort))
	switch order {
	case "":
		order = repositories.SortDesc
	case repositories.SortAsc, repositories.SortDesc:
	default:
		return repositories.Page{}, apperr.InvalidRequestError("sort must be asc or desc, got %q", sort)
	}
	return repositories.Page{Skip: skip, Limit: limit, Sort: order}, nil
}

// DefaultPage is the first page, newest first.
func DefaultPage() repositories.Page {
	return repositories.Page{Skip: 0, Limit: DefaultLimit, Sort: repositories.SortDesc}
}
