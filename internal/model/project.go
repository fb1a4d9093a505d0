package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechStack is a comma-joined list of technologies. It accepts either a JSON
// string or an array of strings on input and always persists the joined form.
type TechStack string

// UnmarshalJSON accepts "Go, Redis" or ["Go", "Redis"].
func (t *TechStack) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TechStack(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*t = TechStack(strings.Join(items, ", "))
	return nil
}

// Project represents a portfolio project card.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"uniqueIndex;size:200;not null"`
	Description string    `json:"description" gorm:"size:1000;not null"`
	TechStack   string    `json:"techStack" gorm:"size:500;not null"`
	ImageUrl    string    `json:"imageUrl" gorm:"size:1000"`
	LiveUrl     string    `json:"liveUrl" gorm:"size:500"`
	GithubUrl   string    `json:"githubUrl" gorm:"size:500"`
	Featured    bool      `json:"featured" gorm:"not null;default:false;index"`
	Order       int       `json:"order" gorm:"column:display_order;not null;default:0;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
