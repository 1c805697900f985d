package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrDuplicateID = errors.New("player id already in use")
	ErrInvalidID   = errors.New("player id must be non-negative")
	ErrMalformedID = errors.New("malformed player id")

	// Document loading errors
	ErrFileAccess    = errors.New("cannot read players file")
	ErrMalformedXML  = errors.New("malformed players xml")
	ErrNoRootElement = errors.New("players xml has no root element")

	// Storage errors
	ErrDocumentNotFound = errors.New("roster document not found")
)
