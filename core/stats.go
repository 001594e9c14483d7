package core

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/utils"
)

type VisitorCounts struct {
	TotalVisitors int64 `json:"totalVisitors"`
	NewRequests   int64 `json:"newRequests"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

var dayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// RequestRegistrationCounts returns the total request count and the number of
// Pending requests whose visit window has not yet elapsed. The window end is
// date + timeTo read as UTC, matching how the submission dates are stored.
func RequestRegistrationCounts(db *gorm.DB, now time.Time) (VisitorCounts, error) {
	var counts VisitorCounts

	if err := db.Model(&model.Form{}).Count(&counts.TotalVisitors).Error; err != nil {
		return counts, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	var pending []model.Form
	if err := db.Select("date", "time_to").
		Where("status = ?", model.StatusPending).
		Find(&pending).Error; err != nil {
		return counts, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	for _, form := range pending {
		end, err := time.Parse("2006-01-02 15:04", form.Date+" "+form.TimeTo)
		if err != nil {
			continue
		}
		if end.After(now.UTC()) {
			counts.NewRequests++
		}
	}

	return counts, nil
}

// TodayVisitorCount counts scans that happened within the local calendar day
// containing now.
func TodayVisitorCount(db *gorm.DB, now time.Time) (int64, error) {
	start := utils.StartOfDay(now)
	end := start.Add(24 * time.Hour)

	var count int64
	err := db.Model(&model.ScanRecord{}).
		Where("scanned_at >= ? AND scanned_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return count, nil
}

// DayAndMonthWiseCounts buckets scans by weekday over the current ISO week
// (Monday through Sunday) and by month over the current year. Every bucket is
// present in the output, zero when empty.
func DayAndMonthWiseCounts(db *gorm.DB, now time.Time) ([]DayCount, []MonthCount, error) {
	weekStart := utils.StartOfISOWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	yearStart := utils.StartOfYear(now)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var weekScans []model.ScanRecord
	if err := db.Select("scanned_at").
		Where("scanned_at >= ? AND scanned_at < ?", weekStart, weekEnd).
		Find(&weekScans).Error; err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	var yearScans []model.ScanRecord
	if err := db.Select("scanned_at").
		Where("scanned_at >= ? AND scanned_at < ?", yearStart, yearEnd).
		Find(&yearScans).Error; err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	dayTotals := make(map[time.Weekday]int)
	for _, s := range weekScans {
		dayTotals[s.ScannedAt.Weekday()]++
	}

	monthTotals := make(map[time.Month]int)
	for _, s := range yearScans {
		monthTotals[s.ScannedAt.Month()]++
	}

	dayCounts := make([]DayCount, len(dayNames))
	for i, name := range dayNames {
		dayCounts[i] = DayCount{Day: name, Count: dayTotals[time.Weekday(i)]}
	}

	monthCounts := make([]MonthCount, len(monthNames))
	for i, name := range monthNames {
		monthCounts[i] = MonthCount{Month: name, Count: monthTotals[time.Month(i+1)]}
	}

	return dayCounts, monthCounts, nil
}
