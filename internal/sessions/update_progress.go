package sessions

import "github.com/driftline/syncer/models"

// VerifiedUpdate is one downloaded entity together with its verification
// outcome.
type VerifiedUpdate struct {
	Result models.VerifyResult
	Entity models.SyncEntity
}

// UpdateProgress is the per-group buffer of verified updates for one sync
// cycle. The apply stage consumes it in arrival order.
type UpdateProgress struct {
	verified []VerifiedUpdate
}

// NewUpdateProgress builds an empty buffer.
func NewUpdateProgress() *UpdateProgress {
	return &UpdateProgress{verified: make([]VerifiedUpdate, 0, 16)}
}

// AddVerifyResult appends one verification outcome.
func (p *UpdateProgress) AddVerifyResult(result models.VerifyResult, entity models.SyncEntity) {
	p.verified = append(p.verified, VerifiedUpdate{Result: result, Entity: entity})
}

// VerifiedUpdatesSize returns the number of buffered outcomes.
func (p *UpdateProgress) VerifiedUpdatesSize() int {
	return len(p.verified)
}

// VerifiedUpdates returns the buffered outcomes in arrival order.
func (p *UpdateProgress) VerifiedUpdates() []VerifiedUpdate {
	return p.verified
}
