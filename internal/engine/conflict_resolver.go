package engine

//go:generate mockgen -source=conflict_resolver.go -destination=../mock/conflict_resolver_mock.go -package=mock

import (
	"errors"
	"fmt"

	"github.com/driftline/syncer/internal/crypto"
	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/internal/syncable"
)

// ErrUnknownResolverPolicy is returned when the configured resolver policy
// names no known strategy.
var ErrUnknownResolverPolicy = errors.New("unknown conflict resolver policy")

// Resolver policy names accepted by [NewConflictResolver]. They match the
// RESOLVER_POLICY configuration values.
const (
	PolicyServerWins = "server-wins"
	PolicyClientWins = "client-wins"
	PolicyIgnore     = "ignore"
)

// ConflictResolver reconciles all conflicts recorded for one group in one
// pass. The concrete strategy is injected per session.
type ConflictResolver interface {
	// ResolveConflicts walks the progress snapshot and attempts to resolve
	// each conflicting entry, reporting whether any resolution made forward
	// progress. Encrypted payloads whose key is missing from the
	// cryptographer are left in conflict.
	ResolveConflicts(
		trans *syncable.WriteTransaction,
		cryptographer crypto.Cryptographer,
		progress *sessions.ConflictProgress,
		status *sessions.StatusController,
	) bool
}

// NewConflictResolver builds the resolver for the configured policy.
func NewConflictResolver(policy string, log *logger.Logger) (ConflictResolver, error) {
	switch policy {
	case PolicyServerWins:
		return &serverWinsResolver{log: log}, nil
	case PolicyClientWins:
		return &clientWinsResolver{log: log}, nil
	case PolicyIgnore:
		return &ignoreResolver{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownResolverPolicy, policy)
	}
}

// serverWinsResolver discards the local edit and applies the server shadow.
type serverWinsResolver struct {
	log *logger.Logger
}

func (r *serverWinsResolver) ResolveConflicts(
	trans *syncable.WriteTransaction,
	cryptographer crypto.Cryptographer,
	progress *sessions.ConflictProgress,
	status *sessions.StatusController,
) bool {
	resolved := false
	for _, id := range progress.ConflictingItemIDs() {
		entry := syncable.GetMutableEntryByID(trans, id)
		if !entry.Good() || !entry.IsInConflict() {
			progress.EraseConflictingItem(id)
			continue
		}
		if !cryptographer.CanDecrypt(entry.ServerSpecifics()) {
			r.log.Warn().
				Str("func", "serverWinsResolver.ResolveConflicts").
				Stringer("id", id).
				Msg("missing key for server payload, leaving in conflict")
			continue
		}

		entry.ApplyServerShadow()
		entry.PutIsUnsynced(false)
		progress.EraseConflictingItem(id)
		resolved = true
	}

	progress.ClearConflictSets()
	return resolved
}

// clientWinsResolver keeps the local edit and schedules it for commit,
// discarding the server shadow.
type clientWinsResolver struct {
	log *logger.Logger
}

func (r *clientWinsResolver) ResolveConflicts(
	trans *syncable.WriteTransaction,
	cryptographer crypto.Cryptographer,
	progress *sessions.ConflictProgress,
	status *sessions.StatusController,
) bool {
	resolved := false
	for _, id := range progress.ConflictingItemIDs() {
		entry := syncable.GetMutableEntryByID(trans, id)
		if !entry.Good() || !entry.IsInConflict() {
			progress.EraseConflictingItem(id)
			continue
		}
		if !cryptographer.CanDecrypt(entry.Specifics()) {
			r.log.Warn().
				Str("func", "clientWinsResolver.ResolveConflicts").
				Stringer("id", id).
				Msg("missing key for local payload, leaving in conflict")
			continue
		}

		entry.OverwriteServerShadowFromLocal()
		progress.EraseConflictingItem(id)
		resolved = true
	}

	progress.ClearConflictSets()
	return resolved
}

// ignoreResolver leaves every conflict standing. Useful when an operator
// wants conflicts surfaced instead of auto-resolved.
type ignoreResolver struct{}

func (r *ignoreResolver) ResolveConflicts(
	trans *syncable.WriteTransaction,
	cryptographer crypto.Cryptographer,
	progress *sessions.ConflictProgress,
	status *sessions.StatusController,
) bool {
	return false
}
