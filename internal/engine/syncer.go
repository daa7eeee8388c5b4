package engine

import (
	"context"

	"github.com/driftline/syncer/internal/crypto"
	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/models"
)

// Syncer drives one sync cycle through the fixed command order: verify,
// apply, build conflict sets, resolve conflicts. Scheduling of cycles,
// retry, and backoff belong to the caller.
type Syncer struct {
	commands []SyncerCommand
	log      *logger.Logger
}

// NewSyncer assembles the pipeline around the injected resolver and
// cryptographer.
func NewSyncer(resolver ConflictResolver, cryptographer crypto.Cryptographer, log *logger.Logger) *Syncer {
	return &Syncer{
		commands: []SyncerCommand{
			NewModelChangingRunner(NewVerifyUpdatesCommand(log), log),
			NewModelChangingRunner(NewApplyUpdatesCommand(log), log),
			NewModelChangingRunner(NewBuildConflictSetsCommand(log), log),
			NewModelChangingRunner(NewResolveConflictsCommand(resolver, cryptographer, log), log),
		},
		log: log,
	}
}

// SyncShare runs the pipeline once over the session's downloaded batch. A
// command-level failure aborts the cycle; dirty entries are flushed to the
// backing store on success. The caller reads
// session.Status().ConflictsResolved() to decide whether another iteration
// is warranted.
func (s *Syncer) SyncShare(ctx context.Context, session *sessions.SyncSession) models.SyncerError {
	for _, cmd := range s.commands {
		s.log.Debug().
			Str("func", "Syncer.SyncShare").
			Str("command", cmd.Name()).
			Msg("running command")

		if result := cmd.Execute(ctx, session); !result.IsOK() {
			s.log.Error().
				Str("func", "Syncer.SyncShare").
				Str("command", cmd.Name()).
				Stringer("result", result).
				Msg("cycle aborted")
			return result
		}
	}

	if dir, ok := session.Directory(); ok {
		if err := dir.SaveChanges(ctx); err != nil {
			s.log.Err(err).
				Str("func", "Syncer.SyncShare").
				Msg("flushing directory changes failed")
			return models.DirectoryLookupFailed
		}
	}

	return models.SyncerOK
}
