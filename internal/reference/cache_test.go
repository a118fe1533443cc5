// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/etnoflora/internal/reference"
)

/*
TestSearchCache_NilIsDisabled verifies the cache contract when Redis is not
configured: a nil cache is valid, misses every read, and swallows every write.
*/
func TestSearchCache_NilIsDisabled(t *testing.T) {
	assert.Nil(t, reference.NewSearchCache(nil))

	var cache *reference.SearchCache
	ctx := context.Background()
	filter := reference.SearchFilter{Plant: "aroeira"}

	result, ok := cache.Get(ctx, filter, 1, 20)
	assert.False(t, ok)
	assert.Nil(t, result)

	// No-ops, must not panic.
	cache.Put(ctx, filter, 1, 20, &reference.SearchResult{})
	cache.Invalidate(ctx)
}
