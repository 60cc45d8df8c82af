package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `json:"full_name"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsSuperuser  bool   `gorm:"default:false" json:"is_superuser"`
	CompanyID    *uint  `gorm:"index" json:"company_id,omitempty"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
