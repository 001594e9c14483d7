package v1

import (
	"encoding/json"
	"fmt"
	"time"
)

type APIResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type FormDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Reason       string `json:"reason"`
	Department   string `json:"department"`
	PersonToMeet string `json:"personToMeet"`
	Date         string `json:"date"` // yyyy-MM-dd
	TimeFrom     string `json:"timeFrom"`
	TimeTo       string `json:"timeTo"`
	Gate         string `json:"gate"`
	Status       string `json:"status"`

	BarcodeID *string `json:"barcodeId,omitempty"`
	QRCode    string  `json:"qrCode,omitempty"`
}

type ScanRecordDTO struct {
	ID        uint       `json:"id"`
	BarcodeID string     `json:"barcodeId"`
	ScannedAt time.Time  `json:"scannedAt"`
	EntryTime time.Time  `json:"entryTime"`
	ExitTime  *time.Time `json:"exitTime,omitempty"`
}

type ScanResultDTO struct {
	Status string        `json:"status"`
	Form   FormDTO       `json:"form"`
	Record ScanRecordDTO `json:"record"`
}

type FormEndpoint struct {
	transport *Transport
}

func (ep *FormEndpoint) Get(formID string) (*APIResponse[FormDTO], error) {
	resp, err := ep.transport.Get(fmt.Sprintf("/forms/getForm/%s", formID), nil)
	if err != nil {
		return nil, err
	}

	var result APIResponse[FormDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (ep *FormEndpoint) UpdateStatus(formID string, status string) (*APIResponse[FormDTO], error) {
	payload := map[string]string{"status": status}

	resp, err := ep.transport.Patch(fmt.Sprintf("/forms/statusUpdate/%s", formID), payload, nil)
	if err != nil {
		return nil, err
	}

	var result APIResponse[FormDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (ep *FormEndpoint) Scan(barcodeID string) (*APIResponse[ScanResultDTO], error) {
	resp, err := ep.transport.Post("/forms/scan", nil, map[string]string{"barcodeId": barcodeID})
	if err != nil {
		return nil, err
	}

	var result APIResponse[ScanResultDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
