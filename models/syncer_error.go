package models

// SyncerError is the result code a pipeline command reports to the outer
// sync loop. Entity-level verification failures are not SyncerErrors; they
// are recorded per entity and the batch continues.
type SyncerError int

const (
	// SyncerErrorUnset means the command has not produced a result yet.
	SyncerErrorUnset SyncerError = iota

	// SyncerOK means the command ran to completion.
	SyncerOK

	// DirectoryLookupFailed means the entry store handle could not be
	// obtained. ResolveConflictsCommand treats this as "nothing to do";
	// for other commands it is a hard failure.
	DirectoryLookupFailed

	// ModelNeutralStepFailed means the cross-group setup phase of a
	// two-phase command reported failure.
	ModelNeutralStepFailed

	// GroupStepFailed means the per-group phase of a two-phase command
	// reported failure for at least one group.
	GroupStepFailed
)

var syncerErrorNames = map[SyncerError]string{
	SyncerErrorUnset:       "UNSET",
	SyncerOK:               "SYNCER_OK",
	DirectoryLookupFailed:  "DIRECTORY_LOOKUP_FAILED",
	ModelNeutralStepFailed: "MODEL_NEUTRAL_STEP_FAILED",
	GroupStepFailed:        "GROUP_STEP_FAILED",
}

func (e SyncerError) String() string {
	if name, ok := syncerErrorNames[e]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsOK reports whether the command completed without a cycle-level failure.
func (e SyncerError) IsOK() bool { return e == SyncerOK }
