package errors

import "strings"

// IsTxRejection reports whether err classifies a transaction as invalid, as opposed to
// a processing or configuration failure.
func IsTxRejection(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		return tErr.Code().IsTxRejection()
	}

	return false
}

// RejectionReason returns a short lower-case label for a rejection error, suitable for
// metric labels and CLI output. Non-rejection errors map to "error", nil maps to "".
func RejectionReason(err error) string {
	if err == nil {
		return ""
	}

	var tErr *Error
	if !As(err, &tErr) || !tErr.Code().IsTxRejection() {
		return "error"
	}

	return strings.ToLower(strings.TrimPrefix(tErr.Code().String(), "TX_"))
}
