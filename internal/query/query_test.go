package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/and161185/moment-keeper/internal/model"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func ids(ms []model.Moment) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func fixture() []model.Moment {
	return []model.Moment{
		{ID: "1", Title: "Our First Date", Date: day(2020, 6, 12), Description: "That cute cafe downtown", Tags: []string{"first date", "cafe"}},
		{ID: "2", Title: "Weekend Getaway", Date: day(2021, 8, 23), Description: "Mountains", Tags: []string{"vacation"}},
		{ID: "3", Title: "Été à Paris", Date: day(2022, 7, 15), Description: "Croissants", Tags: []string{"Воспоминание"}},
		{ID: "4", Title: "Beach Day", Date: day(2021, 8, 23), Description: "Sun", Tags: nil},
	}
}

func TestApply_EmptyInput(t *testing.T) {
	t.Parallel()
	for _, mode := range []model.SortMode{model.SortNewest, model.SortOldest, model.SortAlphabetical} {
		got := Apply(nil, "anything", mode)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestFilter_CaseInsensitiveAcrossFields(t *testing.T) {
	t.Parallel()
	ms := fixture()

	cases := []struct {
		q    string
		want []string
	}{
		{"", []string{"1", "2", "3", "4"}},
		{"CAFE", []string{"1"}},
		{"mountains", []string{"2"}},
		{"VACATION", []string{"2"}},
		{"ÉTÉ", []string{"3"}},
		{"воспоминание", []string{"3"}},
		{"day", []string{"4"}},
		{"date", []string{"1"}},
		{"nope", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.q, func(t *testing.T) {
			require.Equal(t, tc.want, ids(Filter(ms, tc.q)))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()
	ms := fixture()
	for _, q := range []string{"", "a", "CAFE", "été", "zzz"} {
		once := Filter(ms, q)
		twice := Filter(once, q)
		require.Equal(t, once, twice, "query %q", q)
	}
}

func TestApply_DateSortsAreStable(t *testing.T) {
	t.Parallel()
	ms := fixture()

	require.Equal(t, []string{"3", "2", "4", "1"}, ids(Apply(ms, "", model.SortNewest)))
	require.Equal(t, []string{"1", "2", "4", "3"}, ids(Apply(ms, "", model.SortOldest)))
}

func TestApply_AlphabeticalIsLocaleAware(t *testing.T) {
	t.Parallel()
	ms := []model.Moment{
		{ID: "z", Title: "Zebra"},
		{ID: "e", Title: "Émile"},
		{ID: "a", Title: "apple"},
		{ID: "s1", Title: "Same"},
		{ID: "b", Title: "banana"},
		{ID: "s2", Title: "Same"},
	}
	// byte order would put "Zebra" before "apple" and "Émile" last
	require.Equal(t, []string{"a", "b", "e", "s1", "s2", "z"}, ids(Apply(ms, "", model.SortAlphabetical)))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	ms := fixture()
	before := fixture()

	out := Apply(ms, "", model.SortAlphabetical)
	require.Equal(t, before, ms)

	out[0].Title = "changed"
	require.Equal(t, before, ms)
}

func TestApply_UnknownModeKeepsOrder(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(Apply(fixture(), "", model.SortMode("random"))))
}

func TestParseSortMode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want model.SortMode
		ok   bool
	}{
		{"", model.SortNewest, true},
		{"newest", model.SortNewest, true},
		{" Oldest ", model.SortOldest, true},
		{"ALPHABETICAL", model.SortAlphabetical, true},
		{"random", model.SortNewest, false},
	}
	for _, tc := range cases {
		got, ok := ParseSortMode(tc.in)
		require.Equal(t, tc.want, got, tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
	}
}
