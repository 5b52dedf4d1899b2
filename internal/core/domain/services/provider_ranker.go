package services

import (
	"cmp"
	"slices"
	"strings"
)

// RankKey holds the fields provider listings are ordered by.
type RankKey struct {
	Rating float64
	Name   string
}

// ProviderRanker orders provider listings by rating, best first, then by
// display name so equal ratings have a stable, predictable order.
type ProviderRanker struct{}

func NewProviderRanker() ProviderRanker {
	return ProviderRanker{}
}

func (ProviderRanker) Compare(a, b RankKey) int {
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// Rank sorts items in place.
func Rank[T any](ranker ProviderRanker, items []T, key func(T) RankKey) {
	slices.SortStableFunc(items, func(a, b T) int {
		return ranker.Compare(key(a), key(b))
	})
}
