package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a contact-form submission. Created by the public contact
// endpoint; only the admin mutates the read/replied flags or deletes it.
type Message struct {
	ID      uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name    string    `json:"name" gorm:"size:100;not null"`
	Email   string    `json:"email" gorm:"size:255;not null"`
	Subject string    `json:"subject" gorm:"size:200;not null"`
	Content string    `json:"content" gorm:"size:2000;not null"`
	Read    bool      `json:"read" gorm:"not null;default:false"`
	Replied bool      `json:"replied" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
