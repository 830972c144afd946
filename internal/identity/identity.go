// Package identity derives deterministic node/edge identifiers from FQNs,
// so two indexing runs over an unchanged tree produce identical IDs.
// Grounded on the teacher's internal/utils.GenerateUUID, which only ever
// generated random v4 UUIDs; the teacher's schema mapper expects a
// deterministic variant this package supplies.
package identity

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// namespace fixes the UUIDv5 namespace for this indexer; changing it would
// change every node ID across every run.
var namespace = uuid.MustParse("6f9c3b1a-6e0a-4a3a-9d6f-2c1b9a7e4d10")

// NodeID derives a stable UUIDv5 from a node's FQN.
func NodeID(fqn string) string {
	return uuid.NewSHA1(namespace, []byte(fqn)).String()
}

// EdgeID derives a stable UUIDv5 from an edge's (kind, from, to) triple, so
// the same relationship always gets the same ID across runs.
func EdgeID(kind, fromFQN, toFQN string) string {
	return uuid.NewSHA1(namespace, []byte(kind+"\x00"+fromFQN+"\x00"+toFQN)).String()
}

// ChecksumOf hashes file content for the parsed-file cache key, so a file
// whose content changed never matches an entry stored for its old content.
func ChecksumOf(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
