package form

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/web/common"
)

var exportHeader = []string{
	"Barcode ID", "Name", "Email", "Phone", "Reason", "Department",
	"Person To Meet", "Visit Date", "Gate", "Scanned At", "Entry Time", "Exit Time",
}

// Export streams the scan log as an Excel workbook for front-desk reporting.
func (ep *Endpoint) Export(c *gin.Context) {
	var records []model.ScanRecord
	if err := ep.base.DB().Order("scanned_at DESC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No scanned records found."))
		return
	}

	dir, err := loadDirectory(ep.base.DB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scans"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, record := range records {
		dto := dir.decorateScan(record)
		exitTime := ""
		if record.ExitTime != nil {
			exitTime = record.ExitTime.Format(time.RFC3339)
		}
		values := []interface{}{
			record.BarcodeID, record.ScannedName, record.ScannedEmail,
			record.ScannedPhone, record.ScannedReason, dto.DepartmentName,
			dto.PersonToMeetName, record.ScannedDate, record.ScannedGate,
			record.ScannedAt.Format(time.RFC3339), record.EntryTime.Format(time.RFC3339), exitTime,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("scan-log-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
	}
}
