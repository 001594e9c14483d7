package communication

import "fmt"

// VisitDetails is the flattened, directory-resolved view of a visit request
// used to render notification mail.
type VisitDetails struct {
	Name         string
	Email        string
	Phone        string
	Reason       string
	Department   string
	PersonToMeet string
	PersonEmail  string
	Date         string
	TimeFrom     string
	TimeTo       string
	Gate         string
	ProfilePhoto string
	File         string
	BarcodeID    string
	QRCodeURL    string
}

func visitDetailsHTML(v *VisitDetails, heading string, dashboardURL string) string {
	html := `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px; background-color: #f9f9f9;">`
	html += fmt.Sprintf(`<h2 style="text-align: center; color: #333;">%s</h2>`, heading)
	html += fmt.Sprintf("<p><strong>Name:</strong> %s</p>", v.Name)
	html += fmt.Sprintf("<p><strong>Email:</strong> %s</p>", v.Email)
	html += fmt.Sprintf("<p><strong>Phone:</strong> %s</p>", v.Phone)
	html += fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", v.Reason)
	html += fmt.Sprintf("<p><strong>Department:</strong> %s</p>", v.Department)
	html += fmt.Sprintf("<p><strong>Person To Meet:</strong> %s</p>", v.PersonToMeet)
	html += fmt.Sprintf("<p><strong>Date:</strong> %s</p>", v.Date)
	html += fmt.Sprintf("<p><strong>Entry Time:</strong> %s</p>", v.TimeFrom)
	html += fmt.Sprintf("<p><strong>Exit Time:</strong> %s</p>", v.TimeTo)
	html += fmt.Sprintf("<p><strong>Gate:</strong> %s</p>", v.Gate)
	if v.ProfilePhoto != "" {
		html += fmt.Sprintf(`<p><strong>Profile Photo:</strong> <a href="%s" target="_blank">View Photo</a></p>`, v.ProfilePhoto)
	}
	if v.File != "" {
		html += fmt.Sprintf(`<p><strong>Attached File:</strong> <a href="%s" target="_blank">Download File</a></p>`, v.File)
	}
	if dashboardURL != "" {
		html += fmt.Sprintf(`<div style="text-align: center; margin-top: 20px;"><a href="%s" style="background-color: #007BFF; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px; font-size: 16px;">View in Dashboard</a></div>`, dashboardURL)
	}
	html += "</div>"
	return html
}

// BuildSubmissionEmail notifies a recipient (admin or the person to meet)
// about a new visit request.
func BuildSubmissionEmail(to string, v *VisitDetails, dashboardURL string) *EmailInfo {
	return &EmailInfo{
		To:      []string{to},
		Subject: "New Form Submission - Action Required",
		HTML:    visitDetailsHTML(v, "New Form Submission", dashboardURL),
	}
}

// BuildApprovalEmail tells the requester their visit is approved; the QR
// credential rides along as an attachment when available.
func BuildApprovalEmail(to string, v *VisitDetails, qrPNG []byte) *EmailInfo {
	info := &EmailInfo{
		To:      []string{to},
		Subject: fmt.Sprintf("Visit Approved - %s", v.BarcodeID),
		HTML: visitDetailsHTML(v, "Your Visit Has Been Approved", "") +
			fmt.Sprintf(`<p>Present credential <strong>%s</strong> at gate %s between %s and %s on %s.</p>`,
				v.BarcodeID, v.Gate, v.TimeFrom, v.TimeTo, v.Date),
	}
	if len(qrPNG) > 0 {
		info.Attachments = []Attachment{{
			Filename:    fmt.Sprintf("qrCode_%s.png", v.BarcodeID),
			ContentType: "image/png",
			Content:     qrPNG,
		}}
	}
	return info
}

// BuildRejectionEmail tells the requester their visit was declined.
func BuildRejectionEmail(to string, v *VisitDetails) *EmailInfo {
	return &EmailInfo{
		To:      []string{to},
		Subject: "Visit Request Update",
		HTML: fmt.Sprintf(`<div style="font-family: Arial, sans-serif;"><p>Dear %s,</p>`+
			`<p>Your visit request for %s has been rejected. Please contact %s for details.</p></div>`,
			v.Name, v.Date, v.Department),
	}
}

// BuildPasswordResetEmail carries a reset link valid for a short window.
func BuildPasswordResetEmail(to string, resetURL string) *EmailInfo {
	return &EmailInfo{
		To:      []string{to},
		Subject: "Password Reset Request",
		HTML: fmt.Sprintf(`<div style="font-family: Arial, sans-serif;">`+
			`<p>You requested a password reset. The link below is valid for 15 minutes.</p>`+
			`<div style="text-align: center; margin-top: 20px;"><a href="%s" `+
			`style="background-color: #007BFF; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px;">Reset Password</a></div></div>`,
			resetURL),
	}
}
