package model

import (
	"time"
)

type User struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	Username          *string   `gorm:"type:varchar(50);uniqueIndex:idx_username" json:"username"`
	Email             *string   `gorm:"type:varchar(120);uniqueIndex:idx_email" json:"email"`
	InstagramUsername *string   `gorm:"type:varchar(80)" json:"instagram_username"`
	FacebookUsername  *string   `gorm:"type:varchar(80)" json:"facebook_username"`
	TiktokUsername    *string   `gorm:"type:varchar(80)" json:"tiktok_username"`
	IsActive          bool      `gorm:"type:tinyint(1);default:1" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Profiles []SocialProfile `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
