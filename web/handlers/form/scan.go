package form

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/web/common"
)

func (ep *Endpoint) Scan(c *gin.Context) {
	barcodeID := c.Query("barcodeId")
	if barcodeID == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("barcodeId is required as a query parameter."))
		return
	}

	result, err := core.Scan(ep.base.DB(), barcodeID, time.Now())
	if err != nil {
		writeCoreError(c, err)
		return
	}

	if ep.base.Slack != nil {
		notice := fmt.Sprintf("%s %s at gate %s (%s)", result.Status, barcodeID, result.Form.Gate, result.Form.Name)
		if err := ep.base.Slack.Info(notice); err != nil {
			log.Printf("failed to post scan notice to slack: %v", err)
		}
	}

	message := "QR code scanned successfully."
	if result.Status == core.ScanStatusRescan {
		message = "QR code scanned again."
	}

	c.JSON(http.StatusOK, common.NewMessageResponse(message, ScanResponseDTO{
		Status: result.Status,
		Form:   result.Form,
		Record: result.Record,
	}))
}
