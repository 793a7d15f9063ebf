package services

import (
	"context"
	"errors"
	"strings"

	"hopa-consensus/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TemplateStore is the persistence side of the template catalog.
// It holds no state besides the gorm handle and is safe for concurrent readers.
type TemplateStore struct {
	db *gorm.DB
}

func NewTemplateStore(db *gorm.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func orderColumn(table string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Table: table, Name: "order"}}
}

// GetByTitle returns the template with exactly this title and all of its rows.
// When titles repeat the oldest template wins.
func (s *TemplateStore) GetByTitle(ctx context.Context, title string) (*models.ConsensusTemplate, error) {
	var tpl models.ConsensusTemplate
	err := s.db.WithContext(ctx).
		Where("title = ?", title).
		Order("id").
		First(&tpl).Error
	return s.withQuestions(ctx, &tpl, err)
}

// GetByID returns the template and all of its rows.
func (s *TemplateStore) GetByID(ctx context.Context, id uint) (*models.ConsensusTemplate, error) {
	var tpl models.ConsensusTemplate
	err := s.db.WithContext(ctx).First(&tpl, id).Error
	return s.withQuestions(ctx, &tpl, err)
}

func (s *TemplateStore) withQuestions(ctx context.Context, tpl *models.ConsensusTemplate, err error) (*models.ConsensusTemplate, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	if tpl.Questions, err = s.ListQuestions(ctx, tpl.ID); err != nil {
		return nil, err
	}
	return tpl, nil
}

// FindTitlesContaining matches the trimmed keyword as a literal substring of
// titles. Both sides are folded by the database's LOWER, so the folding is
// whatever the backend supports: ASCII on SQLite, the collation on Postgres.
func (s *TemplateStore) FindTitlesContaining(ctx context.Context, keyword string) (TitleSet, error) {
	keyword = strings.TrimSpace(keyword)

	var titles []string
	err := s.db.WithContext(ctx).
		Model(&models.ConsensusTemplate{}).
		Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+likeEscaper.Replace(keyword)+"%").
		Distinct().
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}

	return NewTitleSet(titles...), nil
}

// ListQuestions returns the questions of one template by display order, payload rows attached.
func (s *TemplateStore) ListQuestions(ctx context.Context, templateID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Preload("Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(orderColumn("options")).Order("options.id")
		}).
		Preload("ScaleSetting").
		Preload("RangeSetting").
		Where("template_id = ?", templateID).
		Order(orderColumn("questions")).
		Order("questions.id").
		Find(&questions).Error
	return questions, err
}

// CreateWithChildren saves the template and every nested row in one transaction.
func (s *TemplateStore) CreateWithChildren(ctx context.Context, tpl *models.ConsensusTemplate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(tpl).Error
	})
}

// Delete removes a template together with its questions and payload rows.
// It returns the deleted title so callers can drop cached documents.
func (s *TemplateStore) Delete(ctx context.Context, id uint) (string, error) {
	var title string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tpl models.ConsensusTemplate
		if err := tx.First(&tpl, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTemplateNotFound
			}
			return err
		}
		title = tpl.Title

		questionIDs := tx.Model(&models.Question{}).Select("id").Where("template_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.ScaleSetting{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.RangeSetting{}).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tpl).Error
	})
	return title, err
}

// List returns a page of templates without their questions, newest first.
func (s *TemplateStore) List(ctx context.Context, page, limit int, search string) ([]models.ConsensusTemplate, int64, error) {
	var templates []models.ConsensusTemplate
	var total int64

	db := s.db.WithContext(ctx).Model(&models.ConsensusTemplate{})
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		db = db.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Omit("source").Order("created_at desc").Order("id desc").Offset(offset).Limit(limit).Find(&templates).Error; err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}
