// Package hash provides content-addressed digests for AutoLang source
// fragments: the L1 (content), L2 (signature) and L3 (combined) hashes
// described by the incremental compiler's data model.
package hash

import (
	"encoding/hex"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Size is the width in bytes of a Digest. The spec requires only a
// collision-resistant 128-bit hash, so two independently seeded 64-bit
// xxhash sums are concatenated rather than truncating a cryptographic
// digest.
const Size = 16

// Digest is a content identity: an L1, L2 or L3 hash.
type Digest [Size]byte

// IsZero reports whether d is the default (unset) digest.
func (d Digest) IsZero() bool { return d == Digest{} }

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Combine derives an L3 digest from an L1 and L2 digest, per the spec's
// `L3 = hash(L1 ‖ L2)`.
func Combine(l1, l2 Digest) Digest {
	return Of(l1[:], l2[:])
}

var lowPool = sync.Pool{New: func() interface{} { return xxhash.NewWithSeed(0) }}
var highPool = sync.Pool{New: func() interface{} { return xxhash.NewWithSeed(0x5ca1ab1e) }}

// Of hashes the concatenation of data into a Digest.
func Of(data ...[]byte) Digest {
	d, _ := Hash(func(w io.Writer) error {
		for _, b := range data {
			if _, err := w.Write(b); err != nil {
				return err
			}
		}
		return nil
	})
	return d
}

// OfString hashes the concatenation of strings into a Digest.
func OfString(strs ...string) Digest {
	d, _ := Hash(func(w io.Writer) error {
		for _, s := range strs {
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
		return nil
	})
	return d
}

// Hash calls f twice against two independently seeded hashers, writing
// the pooled low/high halves into a 128-bit Digest.
func Hash(f func(w io.Writer) error) (Digest, error) {
	lo := lowPool.Get().(*xxhash.Digest)
	hi := highPool.Get().(*xxhash.Digest)
	defer lowPool.Put(lo)
	defer highPool.Put(hi)
	lo.Reset()
	hi.Reset()

	var d Digest
	if err := f(lo); err != nil {
		return d, err
	}
	if err := f(hi); err != nil {
		return d, err
	}
	loSum := lo.Sum64()
	hiSum := hi.Sum64()
	for i := 0; i < 8; i++ {
		d[i] = byte(loSum >> (8 * uint(i)))
		d[8+i] = byte(hiSum >> (8 * uint(i)))
	}
	return d, nil
}
