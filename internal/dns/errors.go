package dns

import "errors"

var (
	ErrTruncated       = errors.New("dns: truncated message")
	ErrBadLabelType    = errors.New("dns: bad label type")
	ErrBadPointer      = errors.New("dns: bad compression pointer")
	ErrCompressionLoop = errors.New("dns: compression loop")
	ErrNameTooLong     = errors.New("dns: name too long")
	ErrLabelTooLong    = errors.New("dns: label too long")
	ErrRdataLength     = errors.New("dns: rdata length mismatch")
	ErrResourceLimit   = errors.New("dns: decode resource limit exceeded")
)
