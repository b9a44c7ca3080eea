// Package query derives filtered and sorted views of a moment collection.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/and161185/moment-keeper/internal/model"
)

// DefaultSort is used when no sort mode was requested.
const DefaultSort = model.SortNewest

// ParseSortMode maps a user supplied mode to a SortMode.
// Empty input selects DefaultSort; ok is false for unknown names.
func ParseSortMode(s string) (mode model.SortMode, ok bool) {
	switch model.SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultSort, true
	case model.SortNewest:
		return model.SortNewest, true
	case model.SortOldest:
		return model.SortOldest, true
	case model.SortAlphabetical:
		return model.SortAlphabetical, true
	default:
		return DefaultSort, false
	}
}

// Options tunes Apply. The zero value compares titles with English collation.
type Options struct {
	Lang language.Tag
}

// Apply returns the moments matching q, ordered by mode, in a new slice.
// The input is never mutated. Unknown modes keep collection order.
func Apply(moments []model.Moment, q string, mode model.SortMode) []model.Moment {
	return Options{}.Apply(moments, q, mode)
}

// Apply is the configurable form of the package level Apply.
func (o Options) Apply(moments []model.Moment, q string, mode model.SortMode) []model.Moment {
	out := Filter(moments, q)

	switch mode {
	case model.SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	case model.SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case model.SortAlphabetical:
		tag := o.Lang
		if tag == language.Und {
			tag = language.English
		}
		c := collate.New(tag)
		sort.SliceStable(out, func(i, j int) bool { return c.CompareString(out[i].Title, out[j].Title) < 0 })
	}
	return out
}

// Filter keeps moments whose title, description or any tag contains q,
// compared under Unicode case folding. An empty q keeps everything.
func Filter(moments []model.Moment, q string) []model.Moment {
	out := make([]model.Moment, 0, len(moments))
	fold := cases.Fold()
	needle := fold.String(q)
	for _, m := range moments {
		if needle == "" || matches(fold, m, needle) {
			out = append(out, m)
		}
	}
	return out
}

func matches(fold cases.Caser, m model.Moment, needle string) bool {
	if strings.Contains(fold.String(m.Title), needle) || strings.Contains(fold.String(m.Description), needle) {
		return true
	}
	for _, t := range m.Tags {
		if strings.Contains(fold.String(t), needle) {
			return true
		}
	}
	return false
}
