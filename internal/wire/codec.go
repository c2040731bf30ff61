// Package wire decodes the binary MerkleTreeLeaf and chain extra-data
// formats carried by a CT log's get-entries response, per RFC 6962 §4.6
// and §3.2. It is pure and deterministic: identical inputs yield
// identical outputs, and it does no I/O and no X.509 parsing — the
// bytes it recovers are handed to the certparse package by the caller.
package wire

import "golang.org/x/crypto/cryptobyte"

// EntryType distinguishes the two MerkleTreeLeaf payload variants.
type EntryType uint16

const (
	EntryTypeX509    EntryType = 0
	EntryTypePrecert EntryType = 1
)

// MerkleLeaf is the decoded body of a MerkleTreeLeaf: a version/type
// discriminated envelope around a timestamp and a DER certificate (or,
// for precert leaves, a TBSCertificate).
type MerkleLeaf struct {
	TimestampMs uint64
	EntryType   EntryType
	// CertBytes is the exact cert_length-bounded slice: a full DER
	// certificate for X509 leaves, a TBSCertificate for precert
	// leaves.
	CertBytes []byte
}

// DecodeMerkleTreeLeaf parses the leaf_input field of a get-entries
// response entry. See spec.md §4.A for the exact byte layout.
func DecodeMerkleTreeLeaf(leafInput []byte) (*MerkleLeaf, error) {
	s := cryptobyte.String(leafInput)

	var version uint8
	if !s.ReadUint8(&version) {
		return nil, errBufferRead("truncated before version")
	}
	if version != 0 {
		return nil, errUnsupportedVersion(version)
	}

	var leafType uint8
	if !s.ReadUint8(&leafType) {
		return nil, errBufferRead("truncated before leaf type")
	}
	if leafType != 0 {
		return nil, errUnsupportedLeaf(leafType)
	}

	var timestampMs uint64
	if !s.ReadUint64(&timestampMs) {
		return nil, errBufferRead("truncated before timestamp")
	}

	var entryType uint16
	if !s.ReadUint16(&entryType) {
		return nil, errBufferRead("truncated before entry type")
	}

	switch EntryType(entryType) {
	case EntryTypeX509:
		// no issuer-key hash to skip
	case EntryTypePrecert:
		var issuerKeyHash [32]byte
		if !s.CopyBytes(issuerKeyHash[:]) {
			return nil, errBufferRead("truncated before issuer key hash")
		}
	default:
		return nil, errUnsupportedEntry(entryType)
	}

	var cert cryptobyte.String
	if !s.ReadUint24LengthPrefixed(&cert) {
		return nil, errBufferRead("truncated certificate body")
	}

	return &MerkleLeaf{
		TimestampMs: timestampMs,
		EntryType:   EntryType(entryType),
		CertBytes:   []byte(cert),
	}, nil
}

// DecodeChain parses the extra_data field of a get-entries response
// entry and returns the ordered chain of issuer certificate DER bytes.
// entryType must be the value decoded from the corresponding leaf_input.
func DecodeChain(entryType EntryType, extraData []byte) ([][]byte, error) {
	s := cryptobyte.String(extraData)

	if entryType == EntryTypePrecert {
		// PrecertChainEntry.pre_certificate: the TBS precert blob,
		// already summarized by the leaf's own certificate bytes and
		// issuer-key hash. We skip it rather than re-parse it.
		var precert cryptobyte.String
		if !s.ReadUint24LengthPrefixed(&precert) {
			return nil, errBufferRead("truncated precertificate blob")
		}
	}

	var chainBlock cryptobyte.String
	if !s.ReadUint24LengthPrefixed(&chainBlock) {
		return nil, errBufferRead("truncated chain block")
	}

	var chain [][]byte
	for !chainBlock.Empty() {
		var cert cryptobyte.String
		if !chainBlock.ReadUint24LengthPrefixed(&cert) {
			return nil, errBufferRead("truncated chain entry")
		}
		chain = append(chain, []byte(cert))
	}

	return chain, nil
}
