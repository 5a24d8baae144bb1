package extract

import (
	"errors"
	"fmt"
)

// AcquisitionReason classifies terminal acquisition failures.
type AcquisitionReason string

const (
	ReasonUnsupportedFormat AcquisitionReason = "unsupported_format"
	ReasonCorruptDocument   AcquisitionReason = "corrupt_document"
	ReasonEmptyDocument     AcquisitionReason = "empty_document"
)

// AcquisitionError is the only error the pipeline returns to callers:
// the document is unreadable and no heuristic work is possible.
// Every other uncertainty degrades confidence instead.
type AcquisitionError struct {
	Reason AcquisitionReason
	Err    error
}

func (e *AcquisitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("acquisition failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("acquisition failed (%s)", e.Reason)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// NewAcquisitionError wraps err with a terminal failure reason.
func NewAcquisitionError(reason AcquisitionReason, err error) *AcquisitionError {
	return &AcquisitionError{Reason: reason, Err: err}
}

// IsAcquisitionError reports whether err is (or wraps) an AcquisitionError.
func IsAcquisitionError(err error) (*AcquisitionError, bool) {
	var ae *AcquisitionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
