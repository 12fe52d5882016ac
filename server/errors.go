// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/function"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// ErrBadRequest marks request bodies that cannot be decoded.
var ErrBadRequest = errors.New("server: bad request")

// argumentErrors are rejected as 400: the caller chose an invalid argument.
var argumentErrors = []error{
	ErrBadRequest,
	function.ErrBadArgument,
	function.ErrBadRange,
	function.ErrBadNormalization,
	function.ErrUnknownStorage,
	function.ErrBadDimension,
	function.ErrNotOneDim,
	function.ErrInvalidCount,
}

// numericErrors are reported as 422: well-formed input the math rejects.
var numericErrors = []error{
	value.ErrEmpty,
	value.ErrNotComparable,
	value.ErrDimensionMismatch,
	value.ErrOutOfRange,
	value.ErrJagged,
	value.ErrNotTwoDim,
	value.ErrConversion,
	value.ErrUndefined,
	value.ErrDivisionByZero,
	value.ErrNotNumeric,
	value.ErrNotInteger,
	function.ErrTooLarge,
}

// StatusCode maps a call error onto an HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	case errors.Is(err, factory.ErrUnknownFunction):
		return http.StatusNotFound
	}
	var de *typed.DispatchError
	if errors.As(err, &de) {
		return http.StatusBadRequest
	}
	for _, target := range argumentErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	for _, target := range numericErrors {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}

	return http.StatusInternalServerError
}

// writeError writes {"error": msg} with the mapped status and logs 5xx.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error("server: call failed", slog.Any("err", err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
