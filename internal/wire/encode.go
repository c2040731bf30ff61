package wire

import "golang.org/x/crypto/cryptobyte"

// EncodeMerkleTreeLeaf builds the leaf_input bytes for a synthetic
// entry. It is the inverse of DecodeMerkleTreeLeaf and exists primarily
// to let tests (in this package and others) construct fixtures without
// hand-assembling byte slices.
func EncodeMerkleTreeLeaf(timestampMs uint64, entryType EntryType, certOrTBS []byte, issuerKeyHash [32]byte) []byte {
	b := &cryptobyte.Builder{}
	b.AddUint8(0)
	b.AddUint8(0)
	b.AddUint64(timestampMs)
	b.AddUint16(uint16(entryType))
	if entryType == EntryTypePrecert {
		b.AddBytes(issuerKeyHash[:])
	}
	b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(certOrTBS)
	})
	return b.BytesOrPanic()
}

// EncodeChain builds the extra_data bytes for a synthetic entry.
// precertTBS is only included (and only meaningful) when entryType is
// EntryTypePrecert.
func EncodeChain(entryType EntryType, precertTBS []byte, chain [][]byte) []byte {
	b := &cryptobyte.Builder{}
	if entryType == EntryTypePrecert {
		b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(precertTBS)
		})
	}
	b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, cert := range chain {
			b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddBytes(cert)
			})
		}
	})
	return b.BytesOrPanic()
}
