// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestSearchPageKey_DistinctTuplesDistinctKeys verifies the cache key is an
injective encoding of the filter/pagination tuple. Filter values are user
input, so a value containing a would-be separator must not make two different
searches share a cached page.
*/
func TestSearchPageKey_DistinctTuplesDistinctKeys(t *testing.T) {
	base := searchPageKey(1, SearchFilter{Community: "a", Plant: "b"}, 1, 20)

	distinct := []string{
		// A single value spelling out what used to be two joined fields.
		searchPageKey(1, SearchFilter{Community: "a|b"}, 1, 20),
		searchPageKey(1, SearchFilter{Community: `a","Plant":"b`}, 1, 20),
		// Same values in different fields.
		searchPageKey(1, SearchFilter{Community: "b", Plant: "a"}, 1, 20),
		// Same filter, different generation or page window.
		searchPageKey(2, SearchFilter{Community: "a", Plant: "b"}, 1, 20),
		searchPageKey(1, SearchFilter{Community: "a", Plant: "b"}, 2, 20),
		searchPageKey(1, SearchFilter{Community: "a", Plant: "b"}, 1, 50),
	}

	for _, key := range distinct {
		assert.NotEqual(t, base, key)
	}
}

/*
TestSearchPageKey_Deterministic verifies equal tuples derive equal keys, so
cached pages are actually found again.
*/
func TestSearchPageKey_Deterministic(t *testing.T) {
	filter := SearchFilter{Community: "Kalunga", State: "Goiás"}

	assert.Equal(t,
		searchPageKey(3, filter, 2, 20),
		searchPageKey(3, filter, 2, 20),
	)
}
