// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"fmt"
	"io"
	"strings"

	"github.com/alburnum/maas/internal/cmd/base/logging"
	"github.com/hashicorp/go-hclog"
)

// ProcessLogLevelAndFormat resolves the log level and format. Flag values
// win over config values; the level defaults to warn.
func ProcessLogLevelAndFormat(flagLogLevel, flagLogFormat, configLogLevel, configLogFormat string) (hclog.Level, logging.LogFormat, error) {
	logFormat := logging.UnspecifiedFormat

	// If the flag wasn't set, check config; if not set use warn
	logLevel := strings.ToLower(strings.TrimSpace(flagLogLevel))
	if logLevel == "" {
		logLevel = strings.ToLower(strings.TrimSpace(configLogLevel))
		if logLevel == "" {
			logLevel = "warn"
		}
	}

	// Set level based off text value
	var level hclog.Level
	switch logLevel {
	case "trace":
		level = hclog.Trace
	case "debug":
		level = hclog.Debug
	case "notice", "info":
		level = hclog.Info
	case "warn", "warning":
		level = hclog.Warn
	case "err", "error":
		level = hclog.Error
	case "off":
		level = hclog.Off
	default:
		return level, logFormat, fmt.Errorf("unknown log level: %s", logLevel)
	}

	if flagLogFormat != "" {
		var err error
		logFormat, err = logging.ParseLogFormat(flagLogFormat)
		if err != nil {
			return level, logFormat, err
		}
	}
	if logFormat == logging.UnspecifiedFormat {
		var err error
		logFormat, err = logging.ParseLogFormat(configLogFormat)
		if err != nil {
			return level, logFormat, err
		}
	}

	return level, logFormat, nil
}

// SetupLogging builds the client logger writing to w. A debug run logs at
// debug level whatever the configuration says.
func SetupLogging(w io.Writer, debug bool, cfg *Config) (hclog.Logger, error) {
	flagLevel := ""
	if debug {
		flagLevel = "debug"
	}
	logLevel, logFormat, err := ProcessLogLevelAndFormat(flagLevel, "", cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "maas",
		Output: w,
		Level:  logLevel,
		// Note that if logFormat is either unspecified or standard, then
		// the resulting logger's format will be standard.
		JSONFormat: logFormat == logging.JSONFormat,
	}), nil
}
