package syncable

// BaseTransaction is the common core of read and write transactions. A
// transaction pins the directory's lock for its whole lifetime; entry
// handles obtained through it are only valid until Close.
type BaseTransaction struct {
	dir    *Directory
	closed bool
}

// Directory returns the directory this transaction is open against.
func (t *BaseTransaction) Directory() *Directory { return t.dir }

// ReadTransaction holds the directory's shared lock. Multiple read
// transactions may be open concurrently.
type ReadTransaction struct {
	BaseTransaction
}

// NewReadTransaction opens a read transaction, blocking until the shared
// lock is available.
func NewReadTransaction(dir *Directory) *ReadTransaction {
	dir.mu.RLock()
	return &ReadTransaction{BaseTransaction{dir: dir}}
}

// Close releases the shared lock. Closing twice is a no-op.
func (t *ReadTransaction) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.dir.mu.RUnlock()
}

// WriteTransaction holds the directory's exclusive lock. It is the sole
// mutation mechanism: a command may only change entries while it holds one,
// and its scope is exactly one command invocation.
type WriteTransaction struct {
	BaseTransaction
}

// NewWriteTransaction opens a write transaction, blocking until the
// exclusive lock is available.
func NewWriteTransaction(dir *Directory) *WriteTransaction {
	dir.mu.Lock()
	return &WriteTransaction{BaseTransaction{dir: dir}}
}

// Close releases the exclusive lock. Closing twice is a no-op.
func (t *WriteTransaction) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.dir.mu.Unlock()
}
