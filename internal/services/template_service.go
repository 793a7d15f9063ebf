package services

import (
	"context"
	"fmt"

	"hopa-consensus/internal/models"
	"hopa-consensus/pkg/logger"

	"go.uber.org/zap"
)

// TemplateService is the template catalog: ingestion, document lookup and removal.
type TemplateService struct {
	store      *TemplateStore
	serializer *TemplateSerializer
	cache      *TemplateCache
}

func NewTemplateService(store *TemplateStore, serializer *TemplateSerializer, cache *TemplateCache) *TemplateService {
	return &TemplateService{store: store, serializer: serializer, cache: cache}
}

// IngestError names the document that stopped a batch.
type IngestError struct {
	Index int // 0-based position in the batch
	Title string
	Err   error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("document %d (%q): %v", e.Index, e.Title, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// CreateTemplate stores one document atomically and returns the new template id.
func (s *TemplateService) CreateTemplate(ctx context.Context, doc *TemplateDocument) (uint, error) {
	tpl, err := s.serializer.Import(doc)
	if err != nil {
		return 0, err
	}
	if err := s.store.CreateWithChildren(ctx, tpl); err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx, tpl.Title)
	logger.Log.Info("consensus template saved",
		zap.Uint("template_id", tpl.ID),
		zap.String("title", tpl.Title),
		zap.Int("questions", len(tpl.Questions)),
	)
	return tpl.ID, nil
}

// Ingest stores documents in order, each in its own transaction. It stops at
// the first failure and returns the ids created before it.
func (s *TemplateService) Ingest(ctx context.Context, docs []TemplateDocument) ([]uint, error) {
	ids := make([]uint, 0, len(docs))
	for i := range docs {
		id, err := s.CreateTemplate(ctx, &docs[i])
		if err != nil {
			return ids, &IngestError{Index: i, Title: docs[i].Title, Err: err}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Document returns the exported document of the template titled title.
func (s *TemplateService) Document(ctx context.Context, title string) (*TemplateDocument, error) {
	if doc, ok := s.cache.Get(ctx, title); ok {
		return doc, nil
	}

	tpl, err := s.store.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	doc, err := s.serializer.Export(tpl)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, doc)
	return doc, nil
}

// DocumentByID exports a template by id, bypassing the title cache.
func (s *TemplateService) DocumentByID(ctx context.Context, id uint) (*TemplateDocument, error) {
	tpl, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.serializer.Export(tpl)
}

func (s *TemplateService) Delete(ctx context.Context, id uint) error {
	title, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, title)
	logger.Log.Info("consensus template deleted", zap.Uint("template_id", id), zap.String("title", title))
	return nil
}

func (s *TemplateService) List(ctx context.Context, page, limit int, search string) ([]models.ConsensusTemplate, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.store.List(ctx, page, limit, search)
}
