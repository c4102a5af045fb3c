package interfaces

// SnapshotStore defines the contract for persisting the stock table
type SnapshotStore interface {
	// Write serializes the full stock table to path.
	Write(path string, stock map[string]int) error

	// Read deserializes the snapshot at path. A missing file is not an
	// error: the caller gets an empty table back.
	Read(path string) (map[string]int, error)
}

// AuditSink receives one human-readable entry per stock mutation. Sinks are
// caller-owned; the table never creates or shares one on its own.
type AuditSink interface {
	Append(entry string)
}
