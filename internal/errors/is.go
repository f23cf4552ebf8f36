// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package errors

import "context"

// IsNotFoundError returns a boolean indicating whether the error is known to
// report a missing profile or record.
func IsNotFoundError(err error) bool {
	return Match(T(RecordNotFound), err)
}

// IsStoreCorruptError returns a boolean indicating whether the error reports
// a profile store that exists but could not be decoded.
func IsStoreCorruptError(err error) bool {
	return Match(T(StoreCorrupt), err)
}

// IsRemoteCallError returns a boolean indicating whether the error came from
// the remote API or the transport used to reach it.
func IsRemoteCallError(err error) bool {
	return Match(T(External), err)
}

// IsUsageError returns a boolean indicating whether the error reports an
// invalid argument supplied by the user.
func IsUsageError(err error) bool {
	return Match(T(Parameter), err)
}

// IsInterruptedError returns a boolean indicating whether the error reports
// an operation stopped by the user, either as an Interrupted Err or as a
// canceled context anywhere in the chain.
func IsInterruptedError(err error) bool {
	if err == nil {
		return false
	}
	return Match(T(Canceled), err) || Is(err, context.Canceled)
}
