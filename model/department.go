package model

import "time"

type Department struct {
	ID          string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	Name        string    `gorm:"column:name;size:255;uniqueIndex;not null" json:"name"`
	CreatedByID string    `gorm:"column:created_by_id;size:36;not null" json:"createdBy"`
	CreatedAt   time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"type:timestamp;not null" json:"updatedAt"`
}

func (Department) TableName() string {
	return "departments"
}
