package core

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"securityscan.com/securityscan/infrastructure/filesystem"
	"securityscan.com/securityscan/model"
)

// UpdateStatus moves a visit request out of Pending. Pending is the only
// state transitions leave from; Approved and Rejected are terminal.
//
// Approval allocates the next barcode number, binds the request's visit
// window to the credential, renders and stores the QR artifact, then commits
// everything with a conditional update on status = Pending so two racing
// approvals can never both issue a credential. The write order means a
// storage failure after allocation leaves a gap in the sequence; gaps are
// acceptable, duplicates are not.
func UpdateStatus(ctx context.Context, db *gorm.DB, storage filesystem.Storage, formID string, status string) (*model.Form, error) {
	if status != model.StatusApproved && status != model.StatusRejected {
		return nil, ErrInvalidStatus
	}

	var form model.Form
	if err := db.First(&form, "id = ?", formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := checkTransition(&form, status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}

	if status == model.StatusApproved {
		count, err := NextSequence(db, BarcodeCounter)
		if err != nil {
			return nil, err
		}
		barcodeID := FormatBarcodeID(count)

		qrCodeURL, err := EncodeBarcode(ctx, storage, BarcodePayload{
			BarcodeID: barcodeID,
			VisitDate: form.Date,
			TimeFrom:  form.TimeFrom,
			TimeTo:    form.TimeTo,
		})
		if err != nil {
			return nil, err
		}

		updates["barcode_id"] = barcodeID
		updates["qr_code"] = qrCodeURL
		updates["qr_code_date"] = form.Date
		updates["qr_code_time_from"] = form.TimeFrom
		updates["qr_code_time_to"] = form.TimeTo
	}

	res := db.Model(&model.Form{}).
		Where("id = ? AND status = ?", formID, model.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		// Lost a race: someone finalized the form between our read and write.
		if err := db.First(&form, "id = ?", formID).Error; err == nil {
			if err := checkTransition(&form, status); err != nil {
				return nil, err
			}
		}
		return nil, ErrAlreadyFinalized
	}

	if err := db.First(&form, "id = ?", formID).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &form, nil
}

func checkTransition(form *model.Form, status string) error {
	if form.Status == status {
		return fmt.Errorf("%w: %s", ErrAlreadyInStatus, form.Status)
	}
	if form.Status != model.StatusPending {
		return fmt.Errorf("%w: %s", ErrAlreadyFinalized, form.Status)
	}
	return nil
}
