// Package engine implements the per-cycle command pipeline of the sync
// engine: update verification, update application, conflict-set
// construction, and conflict resolution, dispatched per concurrency group
// over the syncable directory.
package engine

import (
	"context"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/models"
)

// SyncerCommand is one stage of the sync-cycle pipeline. Commands are
// stateless between invocations; all per-cycle state lives in the session.
type SyncerCommand interface {
	// Name identifies the command in logs.
	Name() string

	// Execute runs the command to completion against the session and
	// reports the result to the outer sync loop.
	Execute(ctx context.Context, session *sessions.SyncSession) models.SyncerError
}

// ModelChangingCommand is implemented by commands whose mutations must be
// issued on the worker owning each affected group. Execution is two-phase:
// an optional model-neutral phase touching only globally-safe state, then
// one group-restricted phase per group the command declares.
type ModelChangingCommand interface {
	Name() string

	// ModelNeutralExecute runs once, unrestricted by group, before any
	// per-group phase. A non-nil error is a hard stop for the command.
	ModelNeutralExecute(ctx context.Context, session *sessions.SyncSession) error

	// GroupsToChange declares which groups the per-group phase must visit
	// for this session.
	GroupsToChange(session *sessions.SyncSession) []models.Group

	// ModelChangingExecute runs the group phase. It is only invoked while
	// the session's restriction is narrowed to exactly this group, on the
	// group's worker.
	ModelChangingExecute(ctx context.Context, session *sessions.SyncSession, group models.Group) models.SyncerError
}

// modelChangingRunner adapts a [ModelChangingCommand] to [SyncerCommand],
// providing the restriction-and-dispatch loop shared by all pipeline
// commands.
type modelChangingRunner struct {
	cmd ModelChangingCommand
	log *logger.Logger
}

// NewModelChangingRunner wraps cmd with the two-phase dispatch contract.
func NewModelChangingRunner(cmd ModelChangingCommand, log *logger.Logger) SyncerCommand {
	return &modelChangingRunner{cmd: cmd, log: log}
}

func (r *modelChangingRunner) Name() string { return r.cmd.Name() }

// Execute implements [SyncerCommand]. Each applicable group is visited in
// turn: the status restriction is narrowed to the group, the work is handed
// to the group's worker, and the restriction is released even on early
// return. Per-group failures are reported through the return code and are
// not retried here; retry and backoff belong to the outer scheduler.
func (r *modelChangingRunner) Execute(ctx context.Context, session *sessions.SyncSession) models.SyncerError {
	if err := r.cmd.ModelNeutralExecute(ctx, session); err != nil {
		r.log.Err(err).
			Str("func", "modelChangingRunner.Execute").
			Str("command", r.cmd.Name()).
			Msg("model-neutral phase failed")
		return models.ModelNeutralStepFailed
	}

	result := models.SyncerOK
	for _, group := range r.cmd.GroupsToChange(session) {
		worker := session.Worker(group)
		if worker == nil {
			r.log.Warn().
				Str("func", "modelChangingRunner.Execute").
				Str("command", r.cmd.Name()).
				Stringer("group", group).
				Msg("no worker for group, skipping")
			continue
		}

		groupResult := worker.DoWorkAndWaitUntilDone(func() models.SyncerError {
			release := session.Status().RestrictToGroup(group)
			defer release()
			return r.cmd.ModelChangingExecute(ctx, session, group)
		})
		if !groupResult.IsOK() {
			r.log.Error().
				Str("func", "modelChangingRunner.Execute").
				Str("command", r.cmd.Name()).
				Stringer("group", group).
				Stringer("result", groupResult).
				Msg("group phase failed")
			result = groupResult
		}
	}

	return result
}
