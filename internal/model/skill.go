package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill represents a single skill tile on the public site.
// SvgIcon holds raw SVG markup and is stored verbatim.
type Skill struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name     string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	SvgIcon  string    `json:"svgIcon" gorm:"type:text;not null"`
	Category string    `json:"category" gorm:"size:50;not null;default:'Technical'"`
	Order    int       `json:"order" gorm:"column:display_order;not null;default:0;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
