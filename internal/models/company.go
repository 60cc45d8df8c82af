package models

import "time"

type Company struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Users       []User       `gorm:"foreignKey:CompanyID" json:"-"`
	JobPostings []JobPosting `gorm:"foreignKey:CompanyID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
