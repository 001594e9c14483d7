package communication

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmailBuffer(t *testing.T) {
	info := &EmailInfo{
		From:    "SecurityScan <no-reply@example.com>",
		To:      []string{"alice@example.com"},
		Subject: "Visit Approved - VIS0000000001",
		Text:    "Your visit has been approved.",
		HTML:    "<p>Your visit has been approved.</p>",
		Attachments: []Attachment{
			{Filename: "qrCode_VIS0000000001.png", ContentType: "image/png", Content: []byte{0x89, 0x50, 0x4e, 0x47}},
		},
	}

	buf, err := BuildEmailBuffer(info)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "From: SecurityScan <no-reply@example.com>")
	assert.Contains(t, raw, "To: alice@example.com")
	assert.Contains(t, raw, "Subject: Visit Approved - VIS0000000001")
	assert.Contains(t, raw, "multipart/mixed")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/plain; charset=UTF-8")
	assert.Contains(t, raw, "text/html; charset=UTF-8")
	assert.Contains(t, raw, `filename="qrCode_VIS0000000001.png"`)
	// PNG magic bytes, base64 encoded.
	assert.Contains(t, raw, "iVBORw==")
}

func TestBuildApprovalEmailAttachesCredential(t *testing.T) {
	details := &VisitDetails{
		Name:      "Alice",
		BarcodeID: "VIS0000000001",
		Date:      "2024-06-10",
		TimeFrom:  "09:00",
		TimeTo:    "17:00",
	}

	email := BuildApprovalEmail("alice@example.com", details, []byte{1, 2, 3})
	assert.Equal(t, []string{"alice@example.com"}, email.To)
	assert.Contains(t, email.Subject, "VIS0000000001")
	require.Len(t, email.Attachments, 1)
	assert.Equal(t, "qrCode_VIS0000000001.png", email.Attachments[0].Filename)

	// No artifact, no attachment.
	email = BuildApprovalEmail("alice@example.com", details, nil)
	assert.Empty(t, email.Attachments)
}

func TestBuildRejectionEmail(t *testing.T) {
	email := BuildRejectionEmail("alice@example.com", &VisitDetails{Name: "Alice", Date: "2024-06-10"})
	assert.Equal(t, []string{"alice@example.com"}, email.To)
	assert.True(t, strings.Contains(email.HTML, "Alice"))
}
