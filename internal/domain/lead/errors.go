package lead

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrNotLeadOwner      = errors.New("lead belongs to another vendor")
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrSameStatus        = errors.New("lead already in this status")
	ErrLeadClosed        = errors.New("lead is closed")
	ErrLostReasonMissing = errors.New("lost reason is required")
	ErrTierRestricted    = errors.New("pipeline stage requires a paid tier")
	ErrStatusConflict    = errors.New("lead status changed concurrently")
	ErrEmptyNote         = errors.New("note text is empty")
)
