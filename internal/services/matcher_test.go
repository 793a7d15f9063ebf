package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hopa-consensus/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeFinder does substring search over a fixed title list.
type fakeFinder struct {
	titles []string
	err    error
	calls  []string
}

func (f *fakeFinder) FindTitlesContaining(_ context.Context, keyword string) (TitleSet, error) {
	f.calls = append(f.calls, keyword)
	if f.err != nil {
		return nil, f.err
	}
	set := NewTitleSet()
	for _, t := range f.titles {
		if strings.Contains(strings.ToLower(t), strings.ToLower(strings.TrimSpace(keyword))) {
			set[t] = struct{}{}
		}
	}
	return set, nil
}

func TestMatcher(t *testing.T) {
	logger.Log = zap.NewNop()
	catalog := []string{"小组研讨评分表", "研讨会报名", "甲方案", "乙方案", "年会评分"}

	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{"intersection wins", []string{"研讨", "评分"}, []string{"小组研讨评分表"}},
		{"union when no title has every keyword", []string{"甲", "乙"}, []string{"乙方案", "甲方案"}},
		{"single keyword", []string{"研讨"}, []string{"小组研讨评分表", "研讨会报名"}},
		{"nothing matches", []string{"火箭"}, []string{}},
		{"no keywords", nil, []string{}},
		{"blank keywords ignored", []string{" ", "甲"}, []string{"甲方案"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(&fakeFinder{titles: catalog})
			got, err := m.Match(context.Background(), tt.keywords)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestMatcherSkipsFinderForBlankKeywords(t *testing.T) {
	logger.Log = zap.NewNop()
	finder := &fakeFinder{}
	_, err := NewMatcher(finder).Match(context.Background(), []string{"", "  "})
	require.NoError(t, err)
	assert.Empty(t, finder.calls)
}

func TestMatcherPropagatesStoreError(t *testing.T) {
	logger.Log = zap.NewNop()
	boom := errors.New("db down")
	_, err := NewMatcher(&fakeFinder{err: boom}).Match(context.Background(), []string{"研讨"})
	assert.ErrorIs(t, err, boom)
}

func TestMatcherAgainstStore(t *testing.T) {
	store := NewTemplateStore(openTestDB(t))
	for _, title := range []string{"小组研讨评分表", "研讨会报名", "甲方案", "乙方案"} {
		seedTemplate(t, store, title)
	}

	m := NewMatcher(store)

	got, err := m.Match(context.Background(), []string{"研讨", "评分"})
	require.NoError(t, err)
	assert.Equal(t, []string{"小组研讨评分表"}, got.Sorted())

	got, err = m.Match(context.Background(), []string{"甲", "乙"})
	require.NoError(t, err)
	assert.Equal(t, []string{"乙方案", "甲方案"}, got.Sorted())
}

func TestTitleSetSorted(t *testing.T) {
	set := NewTitleSet("b", "a", "c", "a")
	assert.Equal(t, []string{"a", "b", "c"}, set.Sorted())
	assert.True(t, set.Contains("b"))
	assert.False(t, set.Contains("d"))
}
