package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mindcare/internal/model"
)

func ids(resources []model.Resource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.ID)
	}
	return out
}

func TestListAll(t *testing.T) {
	lib := New()

	got, err := lib.List(Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(got))
	assert.Equal(t, 6, lib.Total())

	all, err := lib.List(Filter{Category: "all", Type: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"query matches title", Filter{Query: "pomodoro"}, []string{"1"}},
		{"query is case-insensitive", Filter{Query: "  ANXIETY "}, []string{"2"}},
		{"query matches description", Filter{Query: "hygiene"}, []string{"5"}},
		{"query matches tag", Filter{Query: "focus"}, []string{"1", "6"}},
		{"category", Filter{Category: "mindfulness"}, []string{"3", "6"}},
		{"type", Filter{Type: "guide"}, []string{"1", "5"}},
		{"category and type", Filter{Category: "mindfulness", Type: "exercise"}, []string{"3", "6"}},
		{"all three", Filter{Query: "focus", Category: "mindfulness", Type: "exercise"}, []string{"6"}},
		{"no match", Filter{Query: "quantum"}, []string{}},
	}
	lib := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lib.List(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestListRejectsUnknownFilters(t *testing.T) {
	lib := New()

	_, err := lib.List(Filter{Category: "cooking"})
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	_, err = lib.List(Filter{Type: "podcast"})
	assert.ErrorIs(t, err, model.ErrUnknownResourceType)
}

func TestListReturnsCopies(t *testing.T) {
	lib := New()

	got, err := lib.List(Filter{Query: "pomodoro"})
	require.NoError(t, err)
	got[0].Tags[0] = "changed"

	again, err := lib.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "productivity", again.Tags[0])
}

func TestGet(t *testing.T) {
	lib := New()

	r, err := lib.Get("6")
	require.NoError(t, err)
	assert.True(t, r.Premium)

	_, err = lib.Get("99")
	assert.ErrorIs(t, err, model.ErrResourceNotFound)
}
