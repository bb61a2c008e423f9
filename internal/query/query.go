// Package query implements the three-stage filter -> sort -> paginate
// pipeline applied uniformly across every entity collection.
package query

import (
	"sort"
	"strings"

	"github.com/coolcare_patna/backend/internal/models"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Apply runs the pipeline over items. Every predicate must pass
// (conjunctive); a nil less func skips sorting; pagination is
// offset-based and an out-of-range page yields an empty slice, not an
// error. The input slice is never mutated.
func Apply[T any](items []T, preds []func(T) bool, less func(a, b T) bool, desc bool, page, limit int) ([]T, models.Pagination) {
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if matchesAll(it, preds) {
			filtered = append(filtered, it)
		}
	}

	if less != nil {
		cmp := less
		if desc {
			cmp = func(a, b T) bool { return less(b, a) }
		}
		sort.SliceStable(filtered, func(i, j int) bool { return cmp(filtered[i], filtered[j]) })
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pg := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
	return filtered[start:end], pg
}

func matchesAll[T any](item T, preds []func(T) bool) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// MatchAnyField reports whether needle is a case-insensitive substring
// of at least one of the given fields. An empty needle matches.
func MatchAnyField(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// ContainsFold reports whether the set contains target, compared
// case-insensitively after trimming.
func ContainsFold(set []string, target string) bool {
	for _, s := range set {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}

// InRange checks v against optional inclusive bounds.
func InRange(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}
