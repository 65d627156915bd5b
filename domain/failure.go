package domain

import "errors"

// FailureKind classifies service-level failures so the transport layer can
// map them to status codes without inspecting message strings.
type FailureKind string

const (
	KindNotFound         FailureKind = "not_found"
	KindConflict         FailureKind = "conflict"
	KindInvalidArgument  FailureKind = "invalid_argument"
	KindInvalidReference FailureKind = "invalid_reference"
	KindInvalidState     FailureKind = "invalid_state"
	KindForbidden        FailureKind = "forbidden"
	KindUnavailable      FailureKind = "unavailable"
	KindInternal         FailureKind = "internal"
)

type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func NewFailure(kind FailureKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

// KindOf extracts the failure kind from an error chain. Unclassified errors
// (driver errors, unexpected storage failures) are reported as internal so
// their details never leak to the client.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindInternal
}
