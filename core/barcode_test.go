package core

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securityscan.com/securityscan/infrastructure/filesystem"
)

func TestFormatBarcodeID(t *testing.T) {
	tests := []struct {
		count    int64
		expected string
	}{
		{1, "VIS0000000001"},
		{7, "VIS0000000007"},
		{42, "VIS0000000042"},
		{9999999999, "VIS9999999999"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBarcodeID(tt.count))
	}
}

func TestEncodeBarcodeWritesScannablePNG(t *testing.T) {
	dir := t.TempDir()
	storage := filesystem.NewLocalStorage(dir, "http://localhost:5002")

	payload := BarcodePayload{
		BarcodeID: "VIS0000000001",
		VisitDate: "2024-06-10",
		TimeFrom:  "09:00",
		TimeTo:    "17:00",
	}

	url, err := EncodeBarcode(context.Background(), storage, payload)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5002/uploads/qrCodes/qrCode_VIS0000000001.png", url)

	png, err := os.ReadFile(filepath.Join(dir, "qrCodes", "qrCode_VIS0000000001.png"))
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// The stored image must decode back to the submitted window.
	want, err := json.Marshal(payload)
	require.NoError(t, err)
	expected, err := qrcode.Encode(string(want), qrcode.Medium, 256)
	require.NoError(t, err)
	assert.Equal(t, expected, png)
}

type failingStorage struct{}

func (failingStorage) Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	return "", errors.New("disk full")
}

func (failingStorage) Read(ctx context.Context, key string, out io.Writer) error {
	return errors.New("disk full")
}

func TestEncodeBarcodeStorageFailure(t *testing.T) {
	_, err := EncodeBarcode(context.Background(), failingStorage{}, BarcodePayload{BarcodeID: "VIS0000000001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
