package form

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/infrastructure/communication"
	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/utils"
	"securityscan.com/securityscan/web/common"
)

func (ep *Endpoint) Submit(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	phone := strings.TrimSpace(c.PostForm("phone"))
	reason := strings.TrimSpace(c.PostForm("reason"))
	department := strings.TrimSpace(c.PostForm("department"))
	personToMeet := strings.TrimSpace(c.PostForm("personToMeet"))
	date := strings.TrimSpace(c.PostForm("date"))
	timeFrom := strings.TrimSpace(c.PostForm("timeFrom"))
	timeTo := strings.TrimSpace(c.PostForm("timeTo"))
	gate := strings.TrimSpace(c.PostForm("gate"))

	photoHeader, photoErr := c.FormFile("profilePhoto")
	fileHeader, fileErr := c.FormFile("file")

	if name == "" || email == "" || phone == "" || reason == "" ||
		department == "" || personToMeet == "" || date == "" ||
		timeFrom == "" || timeTo == "" || gate == "" ||
		photoErr != nil || fileErr != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("All required fields must be filled!"))
		return
	}

	if err := utils.ValidateVisitDate(date); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}
	for _, clock := range []string{timeFrom, timeTo} {
		if err := utils.ValidateClock(clock); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}
	}

	ctx := c.Request.Context()

	photoURL, err := ep.saveUpload(ctx, photoHeader, "images", "profilePhoto")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}
	fileURL, err := ep.saveUpload(ctx, fileHeader, "documents", "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	form := model.Form{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Phone:          phone,
		Reason:         reason,
		ProfilePhoto:   photoURL,
		File:           fileURL,
		Status:         model.StatusPending,
		DepartmentID:   department,
		PersonToMeetID: personToMeet,
		Date:           date,
		TimeFrom:       timeFrom,
		TimeTo:         timeTo,
		Gate:           gate,
	}

	if err := ep.base.DB().Create(&form).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	// Notification delivery never blocks or fails the submission.
	go ep.notifySubmission(form)

	c.JSON(http.StatusCreated, common.NewMessageResponse("Form submitted successfully!", form))
}

var allowedUploadExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

func (ep *Endpoint) saveUpload(ctx context.Context, header *multipart.FileHeader, folder string, field string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedUploadExts[ext]
	if !ok {
		return "", fmt.Errorf("only JPG, JPEG, and PNG files are allowed for %s", field)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", field, err)
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s-%d%s", folder, field, time.Now().UnixNano(), ext)
	url, err := ep.base.Storage.Save(ctx, key, contentType, src)
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", field, err)
	}
	return url, nil
}

func (ep *Endpoint) notifySubmission(form model.Form) {
	if ep.base.Mailer == nil {
		return
	}
	ctx := context.Background()

	details := ep.visitDetails(&form)

	var admin model.Admin
	if err := ep.base.DB().First(&admin).Error; err == nil && admin.Email != "" {
		email := communication.BuildSubmissionEmail(admin.Email, details, ep.base.Config.AdminDashboardURL)
		if err := ep.base.Mailer.Send(ctx, email); err != nil {
			log.Printf("failed to send submission email to admin: %v", err)
		}
	}

	if details.PersonEmail != "" {
		email := communication.BuildSubmissionEmail(details.PersonEmail, details, ep.base.Config.DeptDashboardURL)
		email.Subject = "You Have a Visitor Scheduled"
		if err := ep.base.Mailer.Send(ctx, email); err != nil {
			log.Printf("failed to send submission email to person to meet: %v", err)
		}
	}
}

// visitDetails resolves the weak directory references for mail rendering.
func (ep *Endpoint) visitDetails(form *model.Form) *communication.VisitDetails {
	details := &communication.VisitDetails{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		Reason:       form.Reason,
		Department:   "N/A",
		PersonToMeet: "N/A",
		Date:         form.Date,
		TimeFrom:     form.TimeFrom,
		TimeTo:       form.TimeTo,
		Gate:         form.Gate,
		ProfilePhoto: form.ProfilePhoto,
		File:         form.File,
		QRCodeURL:    form.QRCode,
	}
	if form.BarcodeID != nil {
		details.BarcodeID = *form.BarcodeID
	}

	if dept, err := core.ResolveDepartment(ep.base.DB(), form.DepartmentID); err == nil && dept != nil {
		details.Department = dept.Name
	}
	if person, err := core.ResolvePerson(ep.base.DB(), form.PersonToMeetID); err == nil && person != nil {
		details.PersonToMeet = person.Name
		details.PersonEmail = person.Email
	}

	return details
}
