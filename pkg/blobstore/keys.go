package blobstore

// Key layout:
//
//	blob:{id}:meta  → msgpack-encoded Meta
//	blob:{id}:data  → raw blob bytes
//
// The meta/data split keeps Stat and List cheap: listing scans only the
// ":meta" suffix and never touches blob contents. Lexicographic ordering
// of keys gives List its ID ordering.

const (
	keyPrefix  = "blob:"
	metaSuffix = ":meta"
	dataSuffix = ":data"
)

// metaKey builds the storage key for a blob's metadata record.
func metaKey(id string) []byte {
	return []byte(keyPrefix + id + metaSuffix)
}

// dataKey builds the storage key for a blob's contents.
func dataKey(id string) []byte {
	return []byte(keyPrefix + id + dataSuffix)
}
