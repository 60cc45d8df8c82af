package models

import "time"

type JobPosting struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"not null;index" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Requirements string `gorm:"type:text" json:"requirements"`
	CompanyID    uint   `gorm:"not null;index" json:"company_id"`

	Company       Company        `gorm:"foreignKey:CompanyID" json:"-"`
	BaseQuestions []BaseQuestion `gorm:"foreignKey:JobPostingID" json:"-"`
	Interviews    []Interview    `gorm:"foreignKey:JobPostingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
