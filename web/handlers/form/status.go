package form

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/infrastructure/communication"
	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/web/common"
)

type StatusUpdateDTO struct {
	Status string `json:"status" binding:"required"`
}

func (ep *Endpoint) UpdateStatus(c *gin.Context) {
	formID := c.Param("formId")

	var dto StatusUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	form, err := core.UpdateStatus(c.Request.Context(), ep.base.DB(), ep.base.Storage, formID, dto.Status)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	go ep.notifyDecision(*form)

	message := fmt.Sprintf("Form %s successfully", strings.ToLower(form.Status))
	c.JSON(http.StatusOK, common.NewMessageResponse(message, form))
}

// notifyDecision emails the requester and the person being visited, and drops
// a note in the ops channel. Delivery problems are logged, never surfaced.
func (ep *Endpoint) notifyDecision(form model.Form) {
	ctx := context.Background()
	details := ep.visitDetails(&form)

	if ep.base.Slack != nil {
		if err := ep.base.Slack.Info(fmt.Sprintf("visit request %s %s (%s)", form.ID, form.Status, details.BarcodeID)); err != nil {
			log.Printf("failed to post status notice to slack: %v", err)
		}
	}

	if ep.base.Mailer == nil {
		return
	}

	var email *communication.EmailInfo
	if form.Status == model.StatusApproved {
		email = communication.BuildApprovalEmail(form.Email, details, ep.fetchQRCode(ctx, details.BarcodeID))
	} else {
		email = communication.BuildRejectionEmail(form.Email, details)
	}
	if err := ep.base.Mailer.Send(ctx, email); err != nil {
		log.Printf("failed to send decision email to requester: %v", err)
	}

	if form.Status == model.StatusApproved && details.PersonEmail != "" {
		visitorNote := communication.BuildSubmissionEmail(details.PersonEmail, details, ep.base.Config.DeptDashboardURL)
		visitorNote.Subject = "Visitor Approved - " + details.BarcodeID
		if err := ep.base.Mailer.Send(ctx, visitorNote); err != nil {
			log.Printf("failed to send approval email to person to meet: %v", err)
		}
	}
}

// fetchQRCode reads the stored credential artifact back so approval mail can
// attach it. Best effort only.
func (ep *Endpoint) fetchQRCode(ctx context.Context, barcodeID string) []byte {
	if barcodeID == "" {
		return nil
	}
	var buf bytes.Buffer
	key := fmt.Sprintf("qrCodes/qrCode_%s.png", url.PathEscape(barcodeID))
	if err := ep.base.Storage.Read(ctx, key, &buf); err != nil {
		log.Printf("failed to read qr artifact %s: %v", key, err)
		return nil
	}
	return buf.Bytes()
}
