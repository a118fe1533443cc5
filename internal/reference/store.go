// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

// # Search Params

// SearchFilter holds the optional textual filters for the public search.
//
// Community and Plant match as case-insensitive substrings (Plant across both
// scientific and vernacular names); State and Municipality match exactly,
// case-insensitively. Empty fields contribute no predicate.
type SearchFilter struct {
	Community    string
	Plant        string
	State        string
	Municipality string
}

// IsZero reports whether no filter field is set.
func (f SearchFilter) IsZero() bool {
	return f == SearchFilter{}
}

// # Record Data Access

// Repository defines the data access contract for bibliographic records.
//
// Every operation either returns the requested data or fails with a domain
// error carrying a client-safe message; raw driver errors never leak past
// this boundary. A zero-match replace, status update, or delete is a
// not-found error, never a silent no-op.
type Repository interface {

	/*
		Insert persists a new record and returns it with its store-generated
		identifier and creation timestamps filled in.

		Parameters:
		  - context: context.Context
		  - record: *Reference

		Returns:
		  - *Reference: The stored record
		  - error: Store execution failures
	*/
	Insert(context context.Context, record *Reference) (*Reference, error)

	/*
		GetByID fetches a single record by its identifier.

		Parameters:
		  - context: context.Context
		  - id: string (hex identifier)

		Returns:
		  - *Reference: The hydrated record
		  - error: dberr.ErrNotFound if missing
	*/
	GetByID(context context.Context, id string) (*Reference, error)

	/*
		Replace overwrites the editable fields of an existing record wholesale.
		The identifier, creation timestamp, and curation status are preserved;
		the update timestamp is refreshed.

		Parameters:
		  - context: context.Context
		  - id: string
		  - record: *Reference (replacement content)

		Returns:
		  - *Reference: The stored record after replacement
		  - error: Not found or store execution failures
	*/
	Replace(context context.Context, id string, record *Reference) (*Reference, error)

	/*
		SetStatus patches only the curation status of a record, refreshing the
		update timestamp and nothing else.

		Parameters:
		  - context: context.Context
		  - id: string
		  - status: Status (must be a valid enum value — callers validate first)

		Returns:
		  - *Reference: The record after the transition
		  - error: Not found or store execution failures
	*/
	SetStatus(context context.Context, id string, status Status) (*Reference, error)

	// Delete removes a record permanently. Missing ids are a not-found error.
	Delete(context context.Context, id string) error

	// Count returns the total number of stored records regardless of status.
	Count(context context.Context) (int, error)

	/*
		Search returns the approved records matching the filter, newest first.
		The total count and the requested page are read independently; minor
		skew between them under concurrent writes is accepted.

		Parameters:
		  - context: context.Context
		  - filter: SearchFilter
		  - limit, offset: int (pagination bounds)

		Returns:
		  - []*Reference: Matching page of records
		  - int: Total matching count for pagination metadata
		  - error: Store execution failures
	*/
	Search(context context.Context, filter SearchFilter, limit, offset int) ([]*Reference, int, error)
}
