package errors

import (
	"database/sql/driver"
	stderrors "errors"
	"net"
	"strings"
)

// connectivityHints catches driver failures that only surface as text once
// the ORM has wrapped them.
var connectivityHints = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"no such host",
	"dial tcp",
	"dial unix",
	"i/o timeout",
	"failed to connect",
}

// IsConnectivity reports whether err means the backing store could not be
// reached at all, as opposed to a query that reached it and failed.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}

	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == ErrorCode_CONNECTIVITY
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}
	if stderrors.Is(err, driver.ErrBadConn) {
		return true
	}

	msg := err.Error()
	for _, hint := range connectivityHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

// ClassifyStoreError wraps a raw store error into the taxonomy: an
// unreachable backend becomes a connectivity error, everything else a
// failed query.
func ClassifyStoreError(err error) AppError {
	if IsConnectivity(err) {
		return ErrConnectivity(err)
	}
	return ErrQueryFailed(err)
}
