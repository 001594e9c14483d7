package core

import "errors"

// Sentinel errors surfaced by the visit lifecycle. Handlers map these to HTTP
// status codes with errors.Is; nothing in core retries or swallows them.
var (
	ErrFormNotFound    = errors.New("form not found")
	ErrBarcodeNotFound = errors.New("qr code not found")

	ErrInvalidStatus    = errors.New("invalid status value, must be 'Approved' or 'Rejected'")
	ErrAlreadyInStatus  = errors.New("form is already in the requested status")
	ErrAlreadyFinalized = errors.New("form status has already been finalized")

	ErrNotValidToday = errors.New("qr code is not valid for today")
	ErrNotYetValid   = errors.New("still you have time to enter")
	ErrExpired       = errors.New("qr code is expired")

	ErrEncodingFailed     = errors.New("failed to encode qr code")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
