// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package errors

// Kind specifies the kind of error (unknown, parameter, integrity, etc).
type Kind uint32

const (
	Other Kind = iota
	Parameter
	Integrity
	Search
	External
	Canceled
)

func (e Kind) String() string {
	return map[Kind]string{
		Other:     "unknown",
		Parameter: "parameter violation",
		Integrity: "integrity violation",
		Search:    "search issue",
		External:  "external system issue",
		Canceled:  "canceled",
	}[e]
}

// Info contains details of the specific error code
type Info struct {
	// Kind specifies the kind of error (unknown, parameter, integrity, etc).
	Kind Kind

	// Message provides a default message for the error code
	Message string
}

// errorCodeInfo provides a map of unique Codes (IDs) to their
// corresponding Kind and a default Message.
var errorCodeInfo = map[Code]Info{
	Unknown: {
		Message: "unknown",
		Kind:    Other,
	},
	InvalidParameter: {
		Message: "invalid parameter",
		Kind:    Parameter,
	},
	InvalidAddress: {
		Message: "invalid address",
		Kind:    Parameter,
	},
	InvalidCredentials: {
		Message: "invalid credentials",
		Kind:    Parameter,
	},
	Internal: {
		Message: "internal error",
		Kind:    Other,
	},
	Interrupted: {
		Message: "interrupted",
		Kind:    Canceled,
	},
	StoreCorrupt: {
		Message: "profile store is corrupt",
		Kind:    Integrity,
	},
	StoreLocked: {
		Message: "profile store is locked",
		Kind:    Integrity,
	},
	StoreClosed: {
		Message: "profile store is closed",
		Kind:    Integrity,
	},
	RecordNotFound: {
		Message: "record not found",
		Kind:    Search,
	},
	RemoteCall: {
		Message: "remote call failed",
		Kind:    External,
	},
	Unauthorized: {
		Message: "unauthorized",
		Kind:    External,
	},
	Io: {
		Message: "error during io operation",
		Kind:    Other,
	},
}
