package form

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/utils"
	"securityscan.com/securityscan/web/common"
)

func (ep *Endpoint) AllScans(c *gin.Context) {
	ep.listScans(c, 0)
}

func (ep *Endpoint) Last5Scans(c *gin.Context) {
	ep.listScans(c, 5)
}

func (ep *Endpoint) listScans(c *gin.Context, limit int) {
	query := ep.base.DB().Order("scanned_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []model.ScanRecord
	if err := query.Find(&records).Error; err != nil {
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

	dtos := utils.Map(records, dir.decorateScan)
	c.JSON(http.StatusOK, common.NewSuccessResponse(dtos))
}

func (ep *Endpoint) SearchScans(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Search query is required"))
		return
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var records []model.ScanRecord
	err := ep.base.DB().
		Where("LOWER(scanned_name) LIKE ? OR LOWER(scanned_email) LIKE ? OR scanned_phone LIKE ? OR LOWER(barcode_id) LIKE ?",
			pattern, pattern, pattern, pattern).
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No users found"))
		return
	}

	dir, err := loadDirectory(ep.base.DB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	dtos := utils.Map(records, dir.decorateScan)
	c.JSON(http.StatusOK, common.NewSearchResponse(dtos, int64(len(dtos))))
}
