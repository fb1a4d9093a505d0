package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate represents a certification or award.
type Certificate struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title         string    `json:"title" gorm:"uniqueIndex;size:200;not null"`
	Issuer        string    `json:"issuer" gorm:"size:200;not null"`
	IssueDate     time.Time `json:"issueDate" gorm:"not null;index"`
	CredentialID  string    `json:"credentialId" gorm:"size:100"`
	CredentialUrl string    `json:"credentialUrl" gorm:"size:500"`
	ImageUrl      string    `json:"imageUrl" gorm:"size:1000"`
	Order         int       `json:"order" gorm:"column:display_order;not null;default:0;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
