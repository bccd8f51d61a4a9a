package domain

import "errors"

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrDeleteUnsupported = errors.New("collection does not support delete")
	ErrBackend           = errors.New("backend request failed")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrNothingToExport   = errors.New("no data to download")
)
