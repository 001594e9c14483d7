package model

import "time"

// ScanRecord is the entry/exit log. One row per barcode for the lifetime of
// the credential: the first scan creates it with EntryTime set, every later
// scan only moves ExitTime forward. The scanned_* columns are a snapshot of
// the form at first-scan time so the log survives later form edits.
type ScanRecord struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"id"`
	BarcodeID string `gorm:"column:barcode_id;size:20;uniqueIndex;not null" json:"barcodeId"`

	ScannedName         string `gorm:"column:scanned_name;size:255" json:"name"`
	ScannedEmail        string `gorm:"column:scanned_email;size:255" json:"email"`
	ScannedPhone        string `gorm:"column:scanned_phone;size:50" json:"phone"`
	ScannedReason       string `gorm:"column:scanned_reason;size:500" json:"reason"`
	ScannedProfilePhoto string `gorm:"column:scanned_profile_photo;size:500" json:"profilePhoto"`
	ScannedFile         string `gorm:"column:scanned_file;size:500" json:"file"`
	ScannedStatus       string `gorm:"column:scanned_status;size:20" json:"status"`
	DepartmentID        string `gorm:"column:department_id;size:36" json:"department"`
	PersonToMeetID      string `gorm:"column:person_to_meet_id;size:36" json:"personToMeet"`
	ScannedDate         string `gorm:"column:scanned_date;size:10" json:"date"`
	ScannedTimeFrom     string `gorm:"column:scanned_time_from;size:5" json:"timeFrom"`
	ScannedTimeTo       string `gorm:"column:scanned_time_to;size:5" json:"timeTo"`
	ScannedGate         string `gorm:"column:scanned_gate;size:50" json:"gate"`

	ScannedAt time.Time  `gorm:"column:scanned_at;not null" json:"scannedAt"`
	EntryTime time.Time  `gorm:"column:entry_time;not null" json:"entryTime"`
	ExitTime  *time.Time `gorm:"column:exit_time" json:"exitTime"`
}

func (ScanRecord) TableName() string {
	return "scanned_data"
}

// Snapshot copies the visit request into the scan log columns.
func Snapshot(f *Form) ScanRecord {
	barcodeID := ""
	if f.BarcodeID != nil {
		barcodeID = *f.BarcodeID
	}
	return ScanRecord{
		BarcodeID:           barcodeID,
		ScannedName:         f.Name,
		ScannedEmail:        f.Email,
		ScannedPhone:        f.Phone,
		ScannedReason:       f.Reason,
		ScannedProfilePhoto: f.ProfilePhoto,
		ScannedFile:         f.File,
		ScannedStatus:       f.Status,
		DepartmentID:        f.DepartmentID,
		PersonToMeetID:      f.PersonToMeetID,
		ScannedDate:         f.Date,
		ScannedTimeFrom:     f.TimeFrom,
		ScannedTimeTo:       f.TimeTo,
		ScannedGate:         f.Gate,
	}
}
