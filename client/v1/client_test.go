package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /forms/getForm/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Form fetched successfully!",
			"data": map[string]any{
				"id":     "f-1",
				"name":   "Alice",
				"status": "Pending",
			},
		})
	})

	mux.HandleFunc("PATCH /forms/statusUpdate/", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Approved", payload["status"])
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Form approved successfully",
			"data": map[string]any{
				"id":        "f-1",
				"status":    "Approved",
				"barcodeId": "VIS0000000001",
			},
		})
	})

	mux.HandleFunc("POST /forms/scan", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("barcodeId") == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"error": "barcodeId is required as a query parameter."})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message": "QR code scanned successfully.",
			"data": map[string]any{
				"status": "FirstScan",
				"form":   map[string]any{"id": "f-1", "barcodeId": "VIS0000000001"},
				"record": map[string]any{"barcodeId": "VIS0000000001"},
			},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFormEndpointGet(t *testing.T) {
	server := newTestServer(t)
	client := NewSecurityScanClient(server.URL, "test-token")

	resp, err := client.Forms.Get("f-1")
	require.NoError(t, err)
	assert.Equal(t, "f-1", resp.Data.ID)
	assert.Equal(t, "Pending", resp.Data.Status)
}

func TestFormEndpointUpdateStatus(t *testing.T) {
	server := newTestServer(t)
	client := NewSecurityScanClient(server.URL, "test-token")

	resp, err := client.Forms.UpdateStatus("f-1", "Approved")
	require.NoError(t, err)
	assert.Equal(t, "Approved", resp.Data.Status)
	require.NotNil(t, resp.Data.BarcodeID)
	assert.Equal(t, "VIS0000000001", *resp.Data.BarcodeID)
}

func TestFormEndpointScan(t *testing.T) {
	server := newTestServer(t)
	client := NewSecurityScanClient(server.URL, "test-token")

	resp, err := client.Forms.Scan("VIS0000000001")
	require.NoError(t, err)
	assert.Equal(t, "FirstScan", resp.Data.Status)
	assert.Equal(t, "VIS0000000001", resp.Data.Record.BarcodeID)
}

func TestTransportErrorStatus(t *testing.T) {
	server := newTestServer(t)
	client := NewSecurityScanClient(server.URL, "test-token")

	_, err := client.Transport.Post("/forms/scan", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
