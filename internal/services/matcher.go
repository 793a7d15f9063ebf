package services

import (
	"context"
	"sort"
	"strings"

	"hopa-consensus/pkg/logger"

	"go.uber.org/zap"
)

// TitleSet is an unordered set of template titles.
type TitleSet map[string]struct{}

func NewTitleSet(titles ...string) TitleSet {
	set := make(TitleSet, len(titles))
	for _, t := range titles {
		set[t] = struct{}{}
	}
	return set
}

func (s TitleSet) Contains(title string) bool {
	_, ok := s[title]
	return ok
}

// Sorted returns the titles in lexicographic order, the tie-break used when
// several templates match equally.
func (s TitleSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s TitleSet) intersect(other TitleSet) TitleSet {
	out := make(TitleSet)
	for t := range s {
		if other.Contains(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

func (s TitleSet) union(other TitleSet) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// TitleFinder is the slice of the store the matcher needs.
type TitleFinder interface {
	FindTitlesContaining(ctx context.Context, keyword string) (TitleSet, error)
}

// Matcher resolves keywords into candidate template titles.
type Matcher struct {
	finder TitleFinder
}

func NewMatcher(finder TitleFinder) *Matcher {
	return &Matcher{finder: finder}
}

// Match returns the titles containing every keyword; when no title contains
// them all it returns the titles containing any keyword. Blank keywords are
// ignored and an empty result means no match.
func (m *Matcher) Match(ctx context.Context, keywords []string) (TitleSet, error) {
	var perKeyword []TitleSet
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		titles, err := m.finder.FindTitlesContaining(ctx, kw)
		if err != nil {
			return nil, err
		}
		logger.Log.Debug("keyword matched titles",
			zap.String("keyword", kw),
			zap.Strings("titles", titles.Sorted()),
		)
		perKeyword = append(perKeyword, titles)
	}

	if len(perKeyword) == 0 {
		return NewTitleSet(), nil
	}

	intersection := perKeyword[0]
	for _, titles := range perKeyword[1:] {
		intersection = intersection.intersect(titles)
	}
	if len(intersection) > 0 {
		logger.Log.Info("templates matched every keyword", zap.Strings("titles", intersection.Sorted()))
		return intersection, nil
	}

	union := NewTitleSet()
	for _, titles := range perKeyword {
		union.union(titles)
	}
	logger.Log.Info("no template matched every keyword, falling back to union", zap.Strings("titles", union.Sorted()))
	return union, nil
}
