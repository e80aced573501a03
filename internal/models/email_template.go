package models

import "time"

// EmailTemplate is a stored, reusable email. CategoryID is a plain
// nullable reference with no foreign-key constraint: a template may
// outlive its category. Tags is a comma-separated string of free-form
// labels.
type EmailTemplate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Subject    string    `gorm:"size:200;not null" json:"subject"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CategoryID *uint     `gorm:"index" json:"category_id"`
	Tags       string    `gorm:"size:500" json:"tags"`
	IsPublic   bool      `gorm:"default:false" json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (EmailTemplate) TableName() string { return "email_templates" }
