// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level document store errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/etnoflora/internal/platform/apperr"
)

// ErrNotFound is a standard error returned when a queried document doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a store error and wraps it into a meaningful [apperr.AppError].
// It hides internal driver details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// 2. Context cancellation propagates as-is so callers can distinguish
	// a client disconnect from a store failure.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	// 3. Duplicate key mapping (unique index violations)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("A record with the same unique value already exists")
	}

	// 4. Unknown driver errors become Internal Server Errors
	return apperr.Internal(err)
}
