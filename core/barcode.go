package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"securityscan.com/securityscan/infrastructure/filesystem"
)

const barcodePrefix = "VIS"

// FormatBarcodeID renders an allocated sequence number as a credential id,
// e.g. 7 -> "VIS0000000007".
func FormatBarcodeID(count int64) string {
	return fmt.Sprintf("%s%010d", barcodePrefix, count)
}

// BarcodePayload is what gets encoded into the scannable image. Gate devices
// only need BarcodeID; the window fields let offline scanners sanity-check.
type BarcodePayload struct {
	BarcodeID string `json:"barcodeId"`
	VisitDate string `json:"visitDate"`
	TimeFrom  string `json:"timeFrom"`
	TimeTo    string `json:"timeTo"`
}

// EncodeBarcode renders the payload to a QR PNG, persists it under a
// deterministic key and returns the dereferenceable URL.
func EncodeBarcode(ctx context.Context, storage filesystem.Storage, payload BarcodePayload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}

	key := fmt.Sprintf("qrCodes/qrCode_%s.png", payload.BarcodeID)
	url, err := storage.Save(ctx, key, "image/png", bytes.NewReader(png))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return url, nil
}
