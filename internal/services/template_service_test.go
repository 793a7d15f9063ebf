package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hopa-consensus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestTemplateService(t *testing.T, cache *TemplateCache) (*TemplateService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewTemplateService(NewTemplateStore(db), newTestSerializer(), cache), db
}

func TestTemplateServiceCreateAndDocument(t *testing.T) {
	svc, _ := newTestTemplateService(t, NewTemplateCache(nil, 0))
	ctx := context.Background()

	doc := sampleDocument()
	id, err := svc.CreateTemplate(ctx, doc)
	require.NoError(t, err)
	assert.NotZero(t, id)

	exported, err := svc.Document(ctx, doc.Title)
	require.NoError(t, err)
	stripIDs(exported)
	assert.Equal(t, doc, exported)

	byID, err := svc.DocumentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, doc.Title, byID.Title)
}

func TestTemplateServiceDocumentUsesCache(t *testing.T) {
	mr, client := setupTestRedis(t)
	svc, db := newTestTemplateService(t, NewTemplateCache(client, time.Hour))
	ctx := context.Background()

	_, err := svc.CreateTemplate(ctx, sampleDocument())
	require.NoError(t, err)

	first, err := svc.Document(ctx, "小组研讨评分表")
	require.NoError(t, err)
	assert.True(t, mr.Exists(TemplateCacheKeyPrefix+"小组研讨评分表"))

	// second read is served from the cache, not the changed row
	require.NoError(t, db.Model(&models.ConsensusTemplate{}).Where("title = ?", "小组研讨评分表").Update("description", "changed").Error)
	second, err := svc.Document(ctx, "小组研讨评分表")
	require.NoError(t, err)
	assert.Equal(t, first.Description, second.Description)
}

func TestTemplateServiceDeleteInvalidatesCache(t *testing.T) {
	mr, client := setupTestRedis(t)
	svc, _ := newTestTemplateService(t, NewTemplateCache(client, time.Hour))
	ctx := context.Background()

	id, err := svc.CreateTemplate(ctx, sampleDocument())
	require.NoError(t, err)
	_, err = svc.Document(ctx, "小组研讨评分表")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	assert.False(t, mr.Exists(TemplateCacheKeyPrefix+"小组研讨评分表"))

	_, err = svc.Document(ctx, "小组研讨评分表")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, id), ErrTemplateNotFound)
}

func TestTemplateServiceIngestStopsAtFirstFailure(t *testing.T) {
	svc, db := newTestTemplateService(t, nil)
	ctx := context.Background()

	docs := []TemplateDocument{
		{Title: "第一"},
		{Title: "第二", Questions: []QuestionDocument{{Type: models.QuestionTypeScale, Question: "打分"}}},
		{Title: "第三"},
	}

	ids, err := svc.Ingest(ctx, docs)
	require.Error(t, err)
	assert.Len(t, ids, 1)

	var ingestErr *IngestError
	require.True(t, errors.As(err, &ingestErr))
	assert.Equal(t, 1, ingestErr.Index)
	assert.Equal(t, "第二", ingestErr.Title)

	var missing *MissingFieldError
	assert.True(t, errors.As(err, &missing))
	assert.True(t, IsClientError(err))

	var count int64
	db.Model(&models.ConsensusTemplate{}).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&models.Question{}).Count(&count)
	assert.Zero(t, count)
}

func TestTemplateServiceStoresSourceDocument(t *testing.T) {
	svc, db := newTestTemplateService(t, nil)

	id, err := svc.CreateTemplate(context.Background(), sampleDocument())
	require.NoError(t, err)

	var tpl models.ConsensusTemplate
	require.NoError(t, db.First(&tpl, id).Error)

	var source TemplateDocument
	require.NoError(t, json.Unmarshal(tpl.Source, &source))
	assert.Equal(t, sampleDocument(), &source)
}

func TestTemplateServiceListDefaults(t *testing.T) {
	svc, _ := newTestTemplateService(t, nil)
	ctx := context.Background()

	for _, title := range []string{"甲", "乙", "丙"} {
		_, err := svc.CreateTemplate(ctx, &TemplateDocument{Title: title})
		require.NoError(t, err)
	}

	templates, total, err := svc.List(ctx, 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, templates, 3)
}
