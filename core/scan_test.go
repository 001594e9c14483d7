package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/utils"
)

func newApprovedForm(t *testing.T, db *gorm.DB, barcodeID string) *model.Form {
	t.Helper()
	form := &model.Form{
		ID:             "f-" + barcodeID,
		Name:           "Alice",
		Email:          "alice@example.com",
		Phone:          "0400000000",
		Reason:         "Interview",
		Date:           "2024-06-10",
		TimeFrom:       "09:00",
		TimeTo:         "17:00",
		Gate:           "Gate 1",
		Status:         model.StatusApproved,
		BarcodeID:      utils.Ptr(barcodeID),
		QRCode:         "http://localhost:5002/uploads/qrCodes/qrCode_" + barcodeID + ".png",
		QRCodeDate:     "2024-06-10",
		QRCodeTimeFrom: "09:00",
		QRCodeTimeTo:   "17:00",
	}
	require.NoError(t, db.Create(form).Error)
	return form
}

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestValidateWindow(t *testing.T) {
	form := &model.Form{
		QRCodeDate:     "2024-06-10",
		QRCodeTimeFrom: "09:00",
		QRCodeTimeTo:   "17:00",
	}

	tests := []struct {
		name     string
		now      time.Time
		expected error
	}{
		{"at opening", at(9, 0), nil},
		{"mid window", at(12, 30), nil},
		{"at closing", at(17, 0), nil},
		{"before opening", at(8, 59), ErrNotYetValid},
		{"after closing", at(17, 1), ErrExpired},
		{"wrong day", time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), ErrNotValidToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindow(form, tt.now)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestScanFirstThenRescan(t *testing.T) {
	db := newTestDB(t)
	newApprovedForm(t, db, "VIS0000000001")

	entry := at(9, 5)
	first, err := Scan(db, "VIS0000000001", entry)
	require.NoError(t, err)

	assert.Equal(t, ScanStatusFirst, first.Status)
	assert.Equal(t, entry, first.Record.EntryTime.UTC())
	assert.Nil(t, first.Record.ExitTime)
	require.NotNil(t, first.Form.LatestScan)

	exit := at(16, 0)
	second, err := Scan(db, "VIS0000000001", exit)
	require.NoError(t, err)

	assert.Equal(t, ScanStatusRescan, second.Status)
	require.NotNil(t, second.Record.ExitTime)
	assert.Equal(t, exit, second.Record.ExitTime.UTC())
	assert.Equal(t, entry, second.Record.EntryTime.UTC())

	// One log row per credential, however many times it is presented.
	var count int64
	require.NoError(t, db.Model(&model.ScanRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestScanRepeatedExitMovesForward(t *testing.T) {
	db := newTestDB(t)
	newApprovedForm(t, db, "VIS0000000001")

	_, err := Scan(db, "VIS0000000001", at(9, 5))
	require.NoError(t, err)
	_, err = Scan(db, "VIS0000000001", at(12, 0))
	require.NoError(t, err)

	last, err := Scan(db, "VIS0000000001", at(16, 45))
	require.NoError(t, err)
	require.NotNil(t, last.Record.ExitTime)
	assert.Equal(t, at(16, 45), last.Record.ExitTime.UTC())
}

func TestScanSnapshotsFormFields(t *testing.T) {
	db := newTestDB(t)
	form := newApprovedForm(t, db, "VIS0000000001")

	result, err := Scan(db, "VIS0000000001", at(10, 0))
	require.NoError(t, err)

	assert.Equal(t, form.Name, result.Record.ScannedName)
	assert.Equal(t, form.Email, result.Record.ScannedEmail)
	assert.Equal(t, form.Gate, result.Record.ScannedGate)
	assert.Equal(t, form.Date, result.Record.ScannedDate)
}

func TestScanUnknownBarcode(t *testing.T) {
	db := newTestDB(t)

	_, err := Scan(db, "VIS0000000099", at(10, 0))
	assert.ErrorIs(t, err, ErrBarcodeNotFound)
}

func TestScanOutsideWindowRecordsNothing(t *testing.T) {
	db := newTestDB(t)
	newApprovedForm(t, db, "VIS0000000001")

	_, err := Scan(db, "VIS0000000001", at(18, 0))
	assert.ErrorIs(t, err, ErrExpired)

	var count int64
	require.NoError(t, db.Model(&model.ScanRecord{}).Count(&count).Error)
	assert.Zero(t, count)

	var form model.Form
	require.NoError(t, db.First(&form, "id = ?", "f-VIS0000000001").Error)
	assert.Nil(t, form.LatestScan)
}
