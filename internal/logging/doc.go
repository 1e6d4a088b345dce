// Package logging provides structured logging with per-module log level configuration.
//
// Records are written with log/slog to standard error, leaving standard
// output for command output such as help text. When enabled, records are
// also sent to the systemd journal through
// [github.com/coreos/go-systemd/v22/journal] if journald is reachable.
//
// Initialize once at startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "warn",      // debug, info, warn, error
//		Format: "text",      // text or json
//		Journal: true,
//		Modules: map[string]string{
//			"led": "debug",  // per-module override
//		},
//	})
//
// Then get a logger per module:
//
//	logger := logging.GetLogger("led")
//	logger.Debug("Writing nuc_led command", "command", line)
//
// Loggers obtained before Initialize are cached and pick up the configured
// level when Initialize runs.
//
// Journal entries carry SYSLOG_IDENTIFIER=nucled:
//
//	journalctl -t nucled
//	journalctl -t nucled MODULE=led
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//	journal = true
//	led = "debug"
package logging
