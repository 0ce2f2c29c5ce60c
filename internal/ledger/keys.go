package ledger

// Key layout on the remote store. The index lives under a single well-known
// key and every record under a fixed prefix plus its id. Clients and the
// gateway agree on this layout; the store itself treats keys as opaque.
const (
	// IndexKey holds the ordered JSON array of all record ids ever
	// created. Append-only from the client's perspective.
	IndexKey = "artworks:index"

	// RecordKeyPrefix prefixes every record key.
	RecordKeyPrefix = "artworks:record:"
)

// RecordKey returns the ledger key for the artwork with the given id.
func RecordKey(id string) string {
	return RecordKeyPrefix + id
}
