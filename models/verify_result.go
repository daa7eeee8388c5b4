package models

// VerifyResult classifies one downloaded entity after verification.
type VerifyResult int

const (
	// VerifyUndecided means no verification rule has decided the outcome
	// yet. It never leaves the verifier.
	VerifyUndecided VerifyResult = iota

	// VerifyFail marks an update that must not be applied: malformed ID,
	// missing name, or a unique-client-tag consistency violation.
	VerifyFail

	// VerifyInconsistent marks an update that disagrees with prior updates
	// for the same entry (datatype or folder-ness changed under us).
	VerifyInconsistent

	// VerifyCorrupt marks an update whose payload could not be understood
	// at all.
	VerifyCorrupt

	// VerifySkip marks an update that is deliberately ignored, e.g. a
	// tombstone for a datatype this GetUpdates round never asked for.
	VerifySkip

	// VerifyUndelete marks an update that resurrects a locally deleted
	// entry.
	VerifyUndelete

	// VerifySuccess marks an update that passed every check and may be
	// applied.
	VerifySuccess
)

var verifyResultNames = map[VerifyResult]string{
	VerifyUndecided:    "VERIFY_UNDECIDED",
	VerifyFail:         "VERIFY_FAIL",
	VerifyInconsistent: "VERIFY_INCONSISTENT",
	VerifyCorrupt:      "VERIFY_CORRUPT",
	VerifySkip:         "VERIFY_SKIP",
	VerifyUndelete:     "VERIFY_UNDELETE",
	VerifySuccess:      "VERIFY_SUCCESS",
}

func (r VerifyResult) String() string {
	if name, ok := verifyResultNames[r]; ok {
		return name
	}
	return "VERIFY_UNKNOWN"
}
