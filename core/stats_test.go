package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"securityscan.com/securityscan/model"
)

func createScanAt(t *testing.T, db *gorm.DB, barcodeID string, scannedAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.ScanRecord{
		BarcodeID: barcodeID,
		ScannedAt: scannedAt,
		EntryTime: scannedAt,
	}).Error)
}

func TestRequestRegistrationCounts(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	forms := []model.Form{
		// Pending with a window still open today.
		{ID: "open", Status: model.StatusPending, Date: "2024-06-12", TimeTo: "17:00"},
		// Pending on a future day.
		{ID: "future", Status: model.StatusPending, Date: "2024-06-20", TimeTo: "10:00"},
		// Pending but the window already elapsed.
		{ID: "elapsed", Status: model.StatusPending, Date: "2024-06-12", TimeTo: "11:00"},
		// Finalized requests never count as new.
		{ID: "approved", Status: model.StatusApproved, Date: "2024-06-20", TimeTo: "17:00"},
	}
	for i := range forms {
		forms[i].Name, forms[i].Email, forms[i].Phone, forms[i].Reason = "n", "e@example.com", "p", "r"
		require.NoError(t, db.Create(&forms[i]).Error)
	}

	counts, err := RequestRegistrationCounts(db, now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), counts.TotalVisitors)
	assert.Equal(t, int64(2), counts.NewRequests)
}

func TestTodayVisitorCountUsesDayBoundaries(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	createScanAt(t, db, "VIS0000000001", time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))
	createScanAt(t, db, "VIS0000000002", time.Date(2024, 6, 12, 23, 59, 0, 0, time.UTC))
	createScanAt(t, db, "VIS0000000003", time.Date(2024, 6, 11, 23, 59, 0, 0, time.UTC))
	createScanAt(t, db, "VIS0000000004", time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC))

	count, err := TodayVisitorCount(db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDayAndMonthWiseCounts(t *testing.T) {
	db := newTestDB(t)
	// Wednesday; ISO week runs Monday 2024-06-10 through Sunday 2024-06-16.
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	createScanAt(t, db, "VIS0000000001", time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))  // Monday
	createScanAt(t, db, "VIS0000000002", time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)) // Monday
	createScanAt(t, db, "VIS0000000003", time.Date(2024, 6, 16, 9, 0, 0, 0, time.UTC))  // Sunday
	createScanAt(t, db, "VIS0000000004", time.Date(2024, 6, 9, 9, 0, 0, 0, time.UTC))   // previous week
	createScanAt(t, db, "VIS0000000005", time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC))   // March, same year
	createScanAt(t, db, "VIS0000000006", time.Date(2023, 6, 12, 9, 0, 0, 0, time.UTC))  // previous year

	dayCounts, monthCounts, err := DayAndMonthWiseCounts(db, now)
	require.NoError(t, err)

	require.Len(t, dayCounts, 7)
	assert.Equal(t, "Sunday", dayCounts[0].Day)
	assert.Equal(t, 1, dayCounts[0].Count)
	assert.Equal(t, "Monday", dayCounts[1].Day)
	assert.Equal(t, 2, dayCounts[1].Count)
	for _, d := range dayCounts[2:] {
		assert.Zero(t, d.Count, d.Day)
	}

	require.Len(t, monthCounts, 12)
	assert.Equal(t, "March", monthCounts[2].Month)
	assert.Equal(t, 1, monthCounts[2].Count)
	assert.Equal(t, "June", monthCounts[5].Month)
	assert.Equal(t, 4, monthCounts[5].Count)
}
