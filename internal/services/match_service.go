package services

import (
	"context"
	"errors"

	"hopa-consensus/pkg/logger"

	"go.uber.org/zap"
)

// MatchResult is the template chosen for a requirement.
type MatchResult struct {
	Document   *TemplateDocument
	Keywords   []string
	Candidates []string // sorted; Document is the first one that could be loaded
}

// DocumentLoader exports a template document by title.
type DocumentLoader interface {
	Document(ctx context.Context, title string) (*TemplateDocument, error)
}

// MatchService runs keyword extraction, title matching and export for one request.
type MatchService struct {
	extractor *KeywordExtractor
	matcher   *Matcher
	loader    DocumentLoader
}

func NewMatchService(extractor *KeywordExtractor, matcher *Matcher, loader DocumentLoader) *MatchService {
	return &MatchService{extractor: extractor, matcher: matcher, loader: loader}
}

// Match returns the best template for requirement. "No result" outcomes are
// reported as ErrNoKeywords, ErrNoMatch or ErrNoTemplateLoaded.
func (s *MatchService) Match(ctx context.Context, requirement string) (*MatchResult, error) {
	keywords, err := s.extractor.Extract(ctx, requirement)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return nil, errors.Join(ErrNoKeywords, err)
		}
		return nil, err
	}

	titles, err := s.matcher.Match(ctx, keywords)
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, ErrNoMatch
	}

	candidates := titles.Sorted()
	for _, title := range candidates {
		doc, err := s.loader.Document(ctx, title)
		if err != nil {
			if errors.Is(err, ErrTemplateNotFound) {
				logger.Log.Warn("matched template disappeared", zap.String("title", title))
				continue
			}
			return nil, err
		}

		logger.Log.Info("consensus template selected",
			zap.String("title", title),
			zap.Strings("keywords", keywords),
			zap.Int("candidates", len(candidates)),
		)
		return &MatchResult{Document: doc, Keywords: keywords, Candidates: candidates}, nil
	}

	return nil, ErrNoTemplateLoaded
}
