package form

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/web/common"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, base common.Handler) {
	endpoint := &Endpoint{base: base}

	r.POST("/submit", endpoint.Submit)
	r.GET("/allForms", endpoint.All)
	r.GET("/getForm/:formId", endpoint.Get)
	r.PATCH("/statusUpdate/:formId", endpoint.UpdateStatus)
	r.POST("/scan", endpoint.Scan)

	r.GET("/getAllScannedData", endpoint.AllScans)
	r.GET("/last5records", endpoint.Last5Scans)
	r.GET("/reqRegCount", endpoint.RequestRegistrationCounts)
	r.GET("/todayVistedUsers", endpoint.TodayVisitors)
	r.GET("/stats", endpoint.Stats)

	r.GET("/searchRegUser", endpoint.SearchRequests)
	r.GET("/searchScannedUser", endpoint.SearchScans)
	r.GET("/export", endpoint.Export)
}

// writeCoreError maps lifecycle errors onto the HTTP surface. The scan window
// messages are the exact strings gate devices display to the guard.
func writeCoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrFormNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Form not found"))
	case errors.Is(err, core.ErrBarcodeNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse("QR code not found."))
	case errors.Is(err, core.ErrNotValidToday):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("QR code is not valid for today."))
	case errors.Is(err, core.ErrNotYetValid):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Still you have time to enter."))
	case errors.Is(err, core.ErrExpired):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("QR code is expired."))
	case errors.Is(err, core.ErrInvalidStatus),
		errors.Is(err, core.ErrAlreadyInStatus),
		errors.Is(err, core.ErrAlreadyFinalized):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, common.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
	}
}
