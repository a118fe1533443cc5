// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"

	"github.com/taibuivan/etnoflora/internal/platform/validate"
	"github.com/taibuivan/etnoflora/pkg/pagination"
)

// # Service Layer

// Service orchestrates the record engine for the three user-facing flows:
// submission (normalize → validate → insert as pending), curation (replace,
// status transitions, delete) and public search (approved records only).
//
// It is stateless between calls; mutual exclusion on a record is delegated to
// the store's atomic single-document update, last write wins.
type Service struct {
	repo  Repository
	cache *SearchCache
}

// NewService constructs a new reference [Service]. The cache may be nil,
// which disables search result caching.
func NewService(repo Repository, cache *SearchCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// SearchResult is the paginated outcome of a public search.
type SearchResult struct {
	Items []*Reference    `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// # Submission Flow

/*
Submit normalizes raw form input into a record, validates it, and persists it
with status pending.

Description: The input may be an already-nested object or a flat
bracket-indexed form payload; both are accepted. A client-supplied status is
ignored — every submission starts pending.

Parameters:
  - context: context.Context
  - raw: map[string]any (decoded form/JSON payload)

Returns:
  - *Reference: The stored record with its generated identifier
  - error: Validation failures (apperr VALIDATION_ERROR) or store errors
*/
func (service *Service) Submit(context context.Context, raw map[string]any) (*Reference, error) {
	record := NormalizeRecord(raw)
	record.Status = StatusPending

	if err := Validate(record).Err(); err != nil {
		return nil, err
	}

	stored, err := service.repo.Insert(context, record)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context)
	return stored, nil
}

// # Curation Flow

/*
Get fetches a single record by identifier.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Reference: The hydrated record
  - error: Not found or store errors
*/
func (service *Service) Get(context context.Context, id string) (*Reference, error) {
	return service.repo.GetByID(context, id)
}

/*
Update normalizes and validates raw input, then replaces the editable fields
of an existing record wholesale. Communities and plants are replaced as a
unit — there is no partial nested-array patching. The curation status is
preserved; use [Service.SetStatus] to change it.

Parameters:
  - context: context.Context
  - id: string
  - raw: map[string]any

Returns:
  - *Reference: The record after replacement
  - error: Validation, not found, or store errors
*/
func (service *Service) Update(context context.Context, id string, raw map[string]any) (*Reference, error) {
	record := NormalizeRecord(raw)

	if err := Validate(record).Err(); err != nil {
		return nil, err
	}

	stored, err := service.repo.Replace(context, id, record)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context)
	return stored, nil
}

/*
SetStatus transitions a record to a new curation status.

Description: The status is validated against the enum before any write; an
unknown value is a validation error, never a silent coercion. The transition
touches only the status field and the update timestamp.

Parameters:
  - context: context.Context
  - id: string
  - status: string (client-supplied status value)

Returns:
  - *Reference: The record after the transition
  - error: Validation, not found, or store errors
*/
func (service *Service) SetStatus(context context.Context, id string, status string) (*Reference, error) {
	v := &validate.Validator{}
	v.Required(FieldStatus, status).OneOf(FieldStatus, status, StatusValues()...)
	if err := v.Err(); err != nil {
		return nil, err
	}

	stored, err := service.repo.SetStatus(context, id, Status(status))
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context)
	return stored, nil
}

/*
Delete removes a record permanently.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Not found or store errors
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context)
	return nil
}

/*
Count returns the total number of stored records regardless of status.

Parameters:
  - context: context.Context

Returns:
  - int: Total record count
  - error: Store errors
*/
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

// # Search Flow

/*
Search runs the status-gated public search and paginates the result.

Description: Only approved records are reachable. Pages are memoized in the
search cache for a short TTL; a cache miss or failure falls through to the
store. The total and the page are read independently, so the total may lag
the page under concurrent writes.

Parameters:
  - context: context.Context
  - filter: SearchFilter
  - params: pagination.Params

Returns:
  - *SearchResult: The matching page plus pagination metadata
  - error: Store errors
*/
func (service *Service) Search(context context.Context, filter SearchFilter, params pagination.Params) (*SearchResult, error) {
	if cached, ok := service.cache.Get(context, filter, params.Page, params.Limit); ok {
		return cached, nil
	}

	items, total, err := service.repo.Search(context, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Items: items,
		Meta:  pagination.NewMeta(params.Page, params.Limit, total),
	}

	service.cache.Put(context, filter, params.Page, params.Limit, result)
	return result, nil
}
