package verifier

import (
	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/models"
)

// statusLogger renders sync status transitions into the log. It stands in
// for a presentation layer: terminal statuses log at error level, resumable
// and attention-requiring ones at warn level.
type statusLogger struct {
	logger *logger.Logger
}

func newStatusLogger(log *logger.Logger) *statusLogger {
	return &statusLogger{logger: log}
}

// StatusDidChange implements [service.Delegate].
func (s *statusLogger) StatusDidChange(status models.SyncStatus) {
	switch status {
	case models.SyncError, models.SyncStatusNetworkError:
		s.logger.Error().
			Str("status", string(status)).
			Msg("revocation-list synchronization failed")
	case models.SyncPaused, models.SyncNoConnection, models.SyncUserInteractionRequired:
		s.logger.Warn().
			Str("status", string(status)).
			Msg("revocation-list synchronization interrupted")
	default:
		s.logger.Info().
			Str("status", string(status)).
			Msg("revocation-list synchronization status changed")
	}
}
