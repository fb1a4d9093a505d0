package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the singleton owner profile shown on the public site.
// At most one row ever exists; it is lazily created on first read and never deleted.
type Profile struct {
	ID       uuid.UUID `json:"-" gorm:"type:char(36);primaryKey"`
	Email    string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name     string    `json:"name" gorm:"size:100;not null"`
	Tagline  string    `json:"tagline" gorm:"size:200"`
	Location string    `json:"location" gorm:"size:100"`
	Summary  string    `json:"summary" gorm:"size:1000"`

	// Social links, stored as absolute URLs after handle normalization.
	Linkedin   string `json:"linkedin" gorm:"size:500"`
	Github     string `json:"github" gorm:"size:500"`
	Twitter    string `json:"twitter" gorm:"size:500"`
	Instagram  string `json:"instagram" gorm:"size:500"`
	Codeforces string `json:"codeforces" gorm:"size:100"`
	Leetcode   string `json:"leetcode" gorm:"size:100"`

	// Upload references: absolute URL or "/uploads/..." path.
	ProfilePhoto string `json:"profilePhoto" gorm:"size:1000"`
	CVUrl        string `json:"cvUrl" gorm:"column:cv_url;size:1000"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
