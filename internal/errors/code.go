// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package errors

// Code specifies a code for the error.
type Code uint32

// String will return the Code's Info.Message
func (c Code) String() string {
	return c.Info().Message
}

// Info will look up the Code's Info.  If the Info is not found, it will return
// Info for an Unknown Code.
func (c Code) Info() Info {
	if info, ok := errorCodeInfo[c]; ok {
		return info
	}
	return errorCodeInfo[Unknown]
}

const (
	Unknown Code = 0 // Unknown will be equal to a zero value for Codes

	// General function errors are reserved Codes 100-999
	InvalidParameter   Code = 100 // InvalidParameter represents an invalid parameter for an operation.
	InvalidAddress     Code = 101 // InvalidAddress represents an invalid server address for an operation
	InvalidCredentials Code = 102 // InvalidCredentials represents an API key that is malformed or was rejected
	Internal           Code = 103 // Internal represents a programming or environment error
	Interrupted        Code = 104 // Interrupted represents an operation stopped by the user

	// Store errors are reserved Codes from 1000-1999
	StoreCorrupt   Code = 1000 // StoreCorrupt represents a profile store that exists but cannot be decoded
	StoreLocked    Code = 1001 // StoreLocked represents a failure to obtain the store's exclusive lock
	StoreClosed    Code = 1002 // StoreClosed represents an operation on a store handle that was already closed
	RecordNotFound Code = 1100 // RecordNotFound represents that a profile was not found matching the name

	// Remote API errors are reserved Codes from 2000-2999
	RemoteCall   Code = 2000 // RemoteCall represents a failure reaching or talking to the remote API
	Unauthorized Code = 2001 // Unauthorized represents a request the remote API refused for the given credentials

	// I/O errors are reserved Codes from 3000-3999
	Io Code = 3000 // Io represents an error reading or writing local files
)
