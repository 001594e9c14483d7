package model

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Form struct {
	ID           string `gorm:"primaryKey;column:id;size:36" json:"id"`
	Name         string `gorm:"column:name;size:255;not null" json:"name"`
	Email        string `gorm:"column:email;size:255;not null" json:"email"`
	Phone        string `gorm:"column:phone;size:50;not null" json:"phone"`
	Reason       string `gorm:"column:reason;size:500;not null" json:"reason"`
	ProfilePhoto string `gorm:"column:profile_photo;size:500" json:"profilePhoto"`
	File         string `gorm:"column:file;size:500" json:"file"`

	Status string `gorm:"column:status;size:20;not null;default:Pending" json:"status"`

	// Weak references into the directory tables.
	DepartmentID   string `gorm:"column:department_id;size:36" json:"department"`
	PersonToMeetID string `gorm:"column:person_to_meet_id;size:36" json:"personToMeet"`

	Date     string `gorm:"column:date;size:10" json:"date"`      // yyyy-MM-dd
	TimeFrom string `gorm:"column:time_from;size:5" json:"timeFrom"` // HH:mm
	TimeTo   string `gorm:"column:time_to;size:5" json:"timeTo"`
	Gate     string `gorm:"column:gate;size:50" json:"gate"`

	// Set by approval only. The qr_code_* columns are the window the barcode
	// was bound to at approval time and never change afterwards.
	BarcodeID      *string `gorm:"column:barcode_id;size:20;uniqueIndex" json:"barcodeId,omitempty"`
	QRCode         string  `gorm:"column:qr_code;size:500" json:"qrCode,omitempty"`
	QRCodeDate     string  `gorm:"column:qr_code_date;size:10" json:"qrCodeDate,omitempty"`
	QRCodeTimeFrom string  `gorm:"column:qr_code_time_from;size:5" json:"qrCodeTimeFrom,omitempty"`
	QRCodeTimeTo   string  `gorm:"column:qr_code_time_to;size:5" json:"qrCodeTimeTo,omitempty"`

	LatestScan *time.Time `gorm:"column:latest_scan" json:"latestScan,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null" json:"updatedAt"`
}

func (Form) TableName() string {
	return "forms"
}
