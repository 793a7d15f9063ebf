package models

import (
	"time"

	"gorm.io/datatypes"
)

// ConsensusTemplate is a questionnaire used to run one kind of consensus activity.
// Title is the matching key; it is indexed but repeated titles are tolerated.
type ConsensusTemplate struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"index;size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Source      datatypes.JSON `json:"source,omitempty" swaggertype:"object"` // document the template was ingested from
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Questions   []Question     `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// Question belongs to exactly one template. Which payload row applies is decided by Type.
type Question struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	TemplateID   uint          `gorm:"index;not null" json:"template_id"`
	QuestionText string        `gorm:"type:text;not null" json:"question_text"`
	QuestionType QuestionType  `gorm:"size:20;not null" json:"question_type"`
	Order        int           `gorm:"column:order;not null" json:"order"`
	Unit         *string       `gorm:"size:50" json:"unit,omitempty"`
	Options      []Option      `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	ScaleSetting *ScaleSetting `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"scale_setting,omitempty"`
	RangeSetting *RangeSetting `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"range_setting,omitempty"`
}

// Option is one answer of a single or multiple choice question.
type Option struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	Text       string `gorm:"size:300;not null" json:"text"`
	Order      int    `gorm:"column:order;not null;default:0" json:"order"`
}

type ScaleSetting struct {
	ID         uint `gorm:"primarykey" json:"id"`
	QuestionID uint `gorm:"uniqueIndex;not null" json:"question_id"`
	MinValue   int  `gorm:"not null" json:"min_value"`
	MaxValue   int  `gorm:"not null" json:"max_value"`
}

// RangeSetting stores both boundaries in the integer encoding chosen by Unit
// (epoch seconds for dates, minutes since midnight for clock times).
type RangeSetting struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	QuestionID     uint    `gorm:"uniqueIndex;not null" json:"question_id"`
	MinPlaceholder int64   `gorm:"not null" json:"min_placeholder"`
	MaxPlaceholder int64   `gorm:"not null" json:"max_placeholder"`
	Unit           *string `gorm:"size:20" json:"unit,omitempty"`
}

// AllConsensusModels lists every table owned by the template catalog, parents first.
func AllConsensusModels() []interface{} {
	return []interface{}{
		&ConsensusTemplate{},
		&Question{},
		&Option{},
		&ScaleSetting{},
		&RangeSetting{},
	}
}
