package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"securityscan.com/securityscan/infrastructure/filesystem"
	"securityscan.com/securityscan/model"
)

func newPendingForm(t *testing.T, db *gorm.DB) *model.Form {
	t.Helper()
	form := &model.Form{
		ID:       "f-1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "0400000000",
		Reason:   "Interview",
		Date:     "2024-06-10",
		TimeFrom: "09:00",
		TimeTo:   "17:00",
		Gate:     "Gate 1",
		Status:   model.StatusPending,
	}
	require.NoError(t, db.Create(form).Error)
	return form
}

func testStorage(t *testing.T) filesystem.Storage {
	t.Helper()
	return filesystem.NewLocalStorage(t.TempDir(), "http://localhost:5002")
}

func TestUpdateStatusApprovesAndIssuesCredential(t *testing.T) {
	db := newTestDB(t)
	storage := testStorage(t)
	newPendingForm(t, db)

	form, err := UpdateStatus(context.Background(), db, storage, "f-1", model.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, model.StatusApproved, form.Status)
	require.NotNil(t, form.BarcodeID)
	assert.Equal(t, "VIS0000000001", *form.BarcodeID)
	assert.Contains(t, form.QRCode, "qrCodes/qrCode_VIS0000000001.png")

	// The credential window is frozen from the request.
	assert.Equal(t, "2024-06-10", form.QRCodeDate)
	assert.Equal(t, "09:00", form.QRCodeTimeFrom)
	assert.Equal(t, "17:00", form.QRCodeTimeTo)
}

func TestUpdateStatusRejectsWithoutCredential(t *testing.T) {
	db := newTestDB(t)
	newPendingForm(t, db)

	form, err := UpdateStatus(context.Background(), db, testStorage(t), "f-1", model.StatusRejected)
	require.NoError(t, err)

	assert.Equal(t, model.StatusRejected, form.Status)
	assert.Nil(t, form.BarcodeID)
	assert.Empty(t, form.QRCode)
}

func TestUpdateStatusSequentialApprovals(t *testing.T) {
	db := newTestDB(t)
	storage := testStorage(t)

	for _, id := range []string{"f-1", "f-2"} {
		require.NoError(t, db.Create(&model.Form{
			ID: id, Name: "n", Email: "e@example.com", Phone: "p", Reason: "r",
			Date: "2024-06-10", TimeFrom: "09:00", TimeTo: "17:00",
			Status: model.StatusPending,
		}).Error)
	}

	first, err := UpdateStatus(context.Background(), db, storage, "f-1", model.StatusApproved)
	require.NoError(t, err)
	second, err := UpdateStatus(context.Background(), db, storage, "f-2", model.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, "VIS0000000001", *first.BarcodeID)
	assert.Equal(t, "VIS0000000002", *second.BarcodeID)
}

func TestUpdateStatusRepeatedApproval(t *testing.T) {
	db := newTestDB(t)
	storage := testStorage(t)
	newPendingForm(t, db)

	_, err := UpdateStatus(context.Background(), db, storage, "f-1", model.StatusApproved)
	require.NoError(t, err)

	_, err = UpdateStatus(context.Background(), db, storage, "f-1", model.StatusApproved)
	assert.ErrorIs(t, err, ErrAlreadyInStatus)

	// No second credential was allocated for the retry path.
	var form model.Form
	require.NoError(t, db.First(&form, "id = ?", "f-1").Error)
	assert.Equal(t, "VIS0000000001", *form.BarcodeID)
}

func TestUpdateStatusFinalStatesAreTerminal(t *testing.T) {
	db := newTestDB(t)
	storage := testStorage(t)
	newPendingForm(t, db)

	_, err := UpdateStatus(context.Background(), db, storage, "f-1", model.StatusApproved)
	require.NoError(t, err)

	_, err = UpdateStatus(context.Background(), db, storage, "f-1", model.StatusRejected)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)

	var form model.Form
	require.NoError(t, db.First(&form, "id = ?", "f-1").Error)
	assert.Equal(t, model.StatusApproved, form.Status)
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	newPendingForm(t, db)

	_, err := UpdateStatus(context.Background(), db, testStorage(t), "f-1", "Maybe")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusFormNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateStatus(context.Background(), db, testStorage(t), "missing", model.StatusApproved)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestUpdateStatusStorageFailureLeavesFormPending(t *testing.T) {
	db := newTestDB(t)
	newPendingForm(t, db)

	_, err := UpdateStatus(context.Background(), db, failingStorage{}, "f-1", model.StatusApproved)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	var form model.Form
	require.NoError(t, db.First(&form, "id = ?", "f-1").Error)
	assert.Equal(t, model.StatusPending, form.Status)
	assert.Nil(t, form.BarcodeID)
}
