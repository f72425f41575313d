package models

import "errors"

// Error kinds surfaced by the store, the AI client and the parser. Handlers
// translate these to HTTP statuses with errors.Is.
var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrMalformedDocument = errors.New("malformed document")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrNetwork           = errors.New("network error")
	ErrInvalidResponse   = errors.New("invalid response")
	ErrUnknown           = errors.New("unknown error")
)
