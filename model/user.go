package model

import "time"

// User is a security-desk account. Only role "security" is issued today.
type User struct {
	ID       string `gorm:"primaryKey;column:id;size:36" json:"id"`
	Name     string `gorm:"column:name;size:255" json:"name"`
	Email    string `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password;size:100" json:"-"`
	Role     string `gorm:"column:role;size:50;not null;default:security" json:"role"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
