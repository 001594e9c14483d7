package model

import "time"

type DeptUser struct {
	ID           string `gorm:"primaryKey;column:id;size:36" json:"id"`
	Name         string `gorm:"column:name;size:255" json:"name"`
	Email        string `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password     string `gorm:"column:password;size:100" json:"-"`
	PhoneNumber  string `gorm:"column:phone_number;size:50" json:"phoneNumber"`
	DepartmentID string `gorm:"column:department_id;size:36;not null" json:"dept"`
	Role         string `gorm:"column:role;size:50;not null;default:Dept_User" json:"role"`

	ResetToken       string     `gorm:"column:reset_token;size:64" json:"-"`
	ResetTokenExpiry *time.Time `gorm:"column:reset_token_expiry" json:"-"`

	Department Department `gorm:"foreignKey:DepartmentID;references:ID" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null" json:"updatedAt"`
}

func (DeptUser) TableName() string {
	return "dept_users"
}
