package core

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"securityscan.com/securityscan/model"
)

type ScanStatus string

const (
	ScanStatusFirst  ScanStatus = "FirstScan"
	ScanStatusRescan ScanStatus = "ReScan"
)

type ScanResult struct {
	Status ScanStatus
	Record model.ScanRecord
	Form   model.Form
}

// ValidateWindow checks a credential's bound window against now. Date and
// time-of-day are compared as strings in server-local time; gates and server
// are assumed to share a timezone.
func ValidateWindow(form *model.Form, now time.Time) error {
	currentDate := now.Format("2006-01-02")
	currentTime := now.Format("15:04")

	if form.QRCodeDate != currentDate {
		return ErrNotValidToday
	}
	if currentTime < form.QRCodeTimeFrom {
		return ErrNotYetValid
	}
	if currentTime > form.QRCodeTimeTo {
		return ErrExpired
	}
	return nil
}

// Scan records a credential presentation. The first scan of a barcode creates
// the log entry with entryTime = now; every later scan only moves exitTime
// forward. Both paths stamp the form's latestScan.
func Scan(db *gorm.DB, barcodeID string, now time.Time) (*ScanResult, error) {
	var form model.Form
	if err := db.First(&form, "barcode_id = ?", barcodeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBarcodeNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := ValidateWindow(&form, now); err != nil {
		return nil, err
	}

	result := &ScanResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		var record model.ScanRecord
		err := tx.First(&record, "barcode_id = ?", barcodeID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = model.Snapshot(&form)
			record.ScannedAt = now
			record.EntryTime = now
			record.ExitTime = nil
			if err := tx.Create(&record).Error; err != nil {
				// The unique key on barcode_id turns a concurrent first scan
				// into a create failure; treat it as a re-scan.
				if fetchErr := tx.First(&record, "barcode_id = ?", barcodeID).Error; fetchErr != nil {
					return err
				}
				return recordExit(tx, &record, now, result)
			}
			result.Status = ScanStatusFirst
			result.Record = record
		case err != nil:
			return err
		default:
			return recordExit(tx, &record, now, result)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := db.Model(&model.Form{}).Where("id = ?", form.ID).Update("latest_scan", now).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	form.LatestScan = &now
	result.Form = form

	return result, nil
}

func recordExit(tx *gorm.DB, record *model.ScanRecord, now time.Time, result *ScanResult) error {
	if err := tx.Model(record).Update("exit_time", now).Error; err != nil {
		return err
	}
	record.ExitTime = &now
	result.Status = ScanStatusRescan
	result.Record = *record
	return nil
}
