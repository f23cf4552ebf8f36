// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

const (
	// CommandSuccess is the exit code of a command that completed.
	CommandSuccess = 0
	// CommandInterrupted is the exit code when the user interrupted the
	// command.
	CommandInterrupted = 1
	// CommandUserError is the exit code for usage errors and every other
	// failure reported to the user.
	CommandUserError = 2
)

const (
	// FlagNameDebug is the global flag that shows full error detail.
	FlagNameDebug = "debug"
	// FlagNameInsecure is the login flag that disables TLS verification.
	FlagNameInsecure = "insecure"
)

const (
	EnvMaasCLIProfiles  = `MAAS_CLI_PROFILES`
	EnvMaasCLINoColor   = `MAAS_CLI_NO_COLOR`
	EnvMaasCLILogLevel  = `MAAS_CLI_LOG_LEVEL`
	EnvMaasCLILogFormat = `MAAS_CLI_LOG_FORMAT`
)
