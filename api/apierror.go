// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound     = &Error{Status: http.StatusNotFound}
	ErrUnauthorized = &Error{Status: http.StatusUnauthorized}
	ErrForbidden    = &Error{Status: http.StatusForbidden}
)

// Error is a non-2xx response from the MAAS API. MAAS reports errors as
// plain text, which is kept as the Message.
type Error struct {
	Status  int
	Message string
}

func newError(status int, body string) *Error {
	msg := strings.Join(strings.Fields(body), " ")
	const maxLen = 200
	if r := []rune(msg); len(r) > maxLen {
		msg = string(r[:maxLen]) + "..."
	}
	return &Error{Status: status, Message: msg}
}

// AsServerError returns an api *Error from the provided error.  If the provided error
// is not an api Error nil is returned instead.
func AsServerError(in error) *Error {
	var serverErr *Error
	if !errors.As(in, &serverErr) {
		return nil
	}
	return serverErr
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	status := fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	if e.Message == "" {
		return status
	}
	return fmt.Sprintf("%s: %s", status, e.Message)
}

// Errors are considered the same iff they are both api.Errors and their statuses are the same.
func (e *Error) Is(target error) bool {
	tApiErr := AsServerError(target)
	return tApiErr != nil && tApiErr.Status == e.Status
}
