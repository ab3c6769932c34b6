package domain

import "errors"

// FaultKind is the closed error taxonomy shared by every protocol binding.
// The values double as the error_type label on the error counter.
type FaultKind string

const (
	FaultValidation         FaultKind = "validation_error"
	FaultPaymentFailed      FaultKind = "payment_failed"
	FaultNotificationFailed FaultKind = "notification_failed"
	FaultConnection         FaultKind = "connection_error"
	FaultInternal           FaultKind = "internal_error"
)

type Fault struct {
	Kind    FaultKind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return f.Message + ": " + f.Err.Error()
	}
	return f.Message
}

func (f *Fault) Unwrap() error { return f.Err }

func NewValidation(msg string) *Fault {
	return &Fault{Kind: FaultValidation, Message: msg}
}

// NewUnavailable wraps a downstream connectivity failure (connection refused,
// timeout). Callers treat it as a retryable "service unavailable" outcome.
func NewUnavailable(err error) *Fault {
	return &Fault{Kind: FaultConnection, Message: "service unavailable", Err: err}
}

func NewPaymentFailed() *Fault {
	return &Fault{Kind: FaultPaymentFailed, Message: "payment processing failed"}
}

// NewInternal wraps an unanticipated failure. The wrapped error is for
// server-side logs only; clients see the generic message.
func NewInternal(err error) *Fault {
	return &Fault{Kind: FaultInternal, Message: "internal error", Err: err}
}

// KindOf classifies any error into the taxonomy. Errors that are not Faults
// are internal by definition.
func KindOf(err error) FaultKind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return FaultInternal
}
