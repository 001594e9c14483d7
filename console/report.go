package console

import (
	"errors"

	"gorm.io/gorm"

	"securityscan.com/securityscan/model"
)

func GetPendingForms(db *gorm.DB) ([]model.Form, error) {
	var forms []model.Form
	err := db.Where("status = ?", model.StatusPending).Order("created_at").Find(&forms).Error
	return forms, err
}

func FindFormByBarcode(db *gorm.DB, barcodeID string) (*model.Form, error) {
	var form model.Form
	err := db.Where("barcode_id = ?", barcodeID).First(&form).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	return &form, err
}

func GetOpenScans(db *gorm.DB) ([]model.ScanRecord, error) {
	var records []model.ScanRecord
	err := db.Where("exit_time IS NULL").Order("entry_time").Find(&records).Error
	return records, err
}
