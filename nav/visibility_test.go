package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func keysOf(links []Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Key)
	}
	return out
}

func TestVisibleLinks_HiddenThenAffordance(t *testing.T) {
	links := []Link{
		{Key: "b", IsHidden: true},
		{Key: "more", IsShowMoreLink: true},
	}

	assert.Empty(t, VisibleLinks(links, false))
	assert.Equal(t, []string{"b", "more"}, keysOf(VisibleLinks(links, true)))
}

func TestVisibleLinks_AffordanceBeforeHidden(t *testing.T) {
	links := []Link{
		{Key: "more", IsShowMoreLink: true},
		{Key: "b", IsHidden: true},
	}

	// The affordance only sees hidden links that precede it.
	assert.Empty(t, VisibleLinks(links, false))
	assert.Equal(t, []string{"more", "b"}, keysOf(VisibleLinks(links, true)))
}

func TestVisibleLinks_PlainLinksAlwaysShown(t *testing.T) {
	links := []Link{{Key: "a"}, {Key: "b", IsHidden: true}, {Key: "c"}}

	assert.Equal(t, []string{"a", "c"}, keysOf(VisibleLinks(links, false)))
	assert.Equal(t, []string{"a", "b", "c"}, keysOf(VisibleLinks(links, true)))
}

func TestVisibilityFilter_TracksHidden(t *testing.T) {
	f := NewVisibilityFilter(false)
	assert.False(t, f.HasHiddenLink())
	assert.True(t, f.Show(&Link{Key: "a"}))
	assert.False(t, f.Show(&Link{Key: "b", IsHidden: true}))
	assert.True(t, f.HasHiddenLink())
	assert.True(t, f.Show(&Link{Key: "more", IsShowMoreLink: true}))
}

func TestVisibleLinks_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		links := make([]Link, n)
		for i := range links {
			links[i] = Link{
				Key:            fmt.Sprintf("k%d", i),
				IsHidden:       rapid.Bool().Draw(t, "hidden"),
				IsShowMoreLink: rapid.Bool().Draw(t, "more"),
			}
		}
		showMore := rapid.Bool().Draw(t, "showMore")

		first := keysOf(VisibleLinks(links, showMore))
		second := keysOf(VisibleLinks(links, showMore))
		assert.Equal(t, first, second)
		if showMore {
			assert.Len(t, first, n)
		}
	})
}

func TestGroupHeaderVisible(t *testing.T) {
	plain := Group{Name: "g", Links: []Link{{Key: "a"}}}
	allHidden := Group{Name: "h", Links: []Link{{Key: "b", IsHidden: true}}}
	empty := Group{Name: "e"}

	tests := []struct {
		name     string
		index    int
		group    Group
		showMore bool
		want     bool
	}{
		{"first group never has a header", 0, plain, true, false},
		{"later group with a visible link", 1, plain, false, true},
		{"all hidden without show more", 1, allHidden, false, false},
		{"all hidden with show more", 2, allHidden, true, true},
		{"empty group", 1, empty, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupHeaderVisible(tt.index, tt.group, tt.showMore))
		})
	}
}

func TestGroupHeaderVisible_ExistenceOnly(t *testing.T) {
	// The affordance is hidden by the ordering rule, but the header check
	// does not simulate that rule.
	g := Group{Name: "g", Links: []Link{
		{Key: "more", IsShowMoreLink: true},
		{Key: "b", IsHidden: true},
	}}
	assert.Empty(t, VisibleLinks(g.Links, false))
	assert.True(t, GroupHeaderVisible(1, g, false))
}
