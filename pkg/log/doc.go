/*
Package log provides structured logging for Hutch using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper
functions for common logging patterns. All logs include timestamps and
support filtering by severity level.

# Usage

Initialize once at startup:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

Then log through the global logger or a child logger:

	logger := log.WithComponent("pagination")
	logger.Debug().Int("limit", limit).Msg("applying window")

Child logger helpers attach the fields this service filters on:

  - WithComponent("status"): which package emitted the entry
  - WithResource("metadata"): which API resource was being shaped
  - WithVersion("1.1"): negotiated wire-format version
  - WithInstanceID(id): instance the request addressed

Diagnostic logging in this codebase is additive only: no code path may
change behavior based on whether a log line was emitted or at what level.
*/
package log
