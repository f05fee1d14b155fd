package infra

import (
	"errors"
	"log/slog"

	"band-booking/internal/pkg/errs"
)

type GatewayErrorKind string

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// conflicts are an expected outcome of racing bookings
	if kind == KindConflict {
		slogger.Warn("Gateway error: "+msg, logArgs...)
	} else {
		slogger.Error("Gateway error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindConflict          GatewayErrorKind = "CONFLICT"
	KindUnavailable       GatewayErrorKind = "UNAVAILABLE"
	KindMalformedResponse GatewayErrorKind = "MALFORMED_RESPONSE"
	KindDBFailure         GatewayErrorKind = "DB_FAILURE"
)
