package shared

import "log/slog"

// StatusLogLevel derives the log severity for a request outcome from
// its HTTP status: 5xx at error, 4xx at warn, everything else at info.
// The request logger and the error dispatcher share this rule so a
// request never logs at two different severities for one status.
func StatusLogLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
