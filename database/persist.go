package database

import (
	"fmt"
	"io"

	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/hash"
	"github.com/auto-stack/autolang/internal/autocachepb"
)

// ToCache serialises db's file table, fragment hashes and dependency
// edges into the wire shape spec §6 names. Opaque blobs are supplied
// by the caller (interned types, bytecode) since the Database itself
// treats their contents as implementation-defined.
func (db *Database) ToCache(blobs map[string][]byte) *autocachepb.Cache {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := &autocachepb.Cache{
		Magic:         autocachepb.Magic,
		FormatVersion: autocachepb.FormatVersion,
	}

	for id, f := range db.Files.Snapshot() {
		out.Files = append(out.Files, &autocachepb.FileEntry{
			FileId: digestBytes(hash.Digest(id)),
			Path:   f.Path,
			L1:     digestBytes(f.Content),
		})
	}

	for id, frag := range db.Fragments {
		out.Fragments = append(out.Fragments, &autocachepb.FragmentEntry{
			Id:         toPbFragId(id),
			L1:         digestBytes(frag.L1),
			L2:         digestBytes(frag.L2),
			L3:         digestBytes(frag.L3),
			SpanStart:  int32(frag.Span.Start),
			SpanEnd:    int32(frag.Span.End),
			Unparsable: frag.Unparsable,
		})
	}

	for src, dsts := range db.DepGraph.Forward {
		for dst := range dsts {
			out.Deps = append(out.Deps, &autocachepb.DepEdge{
				Src: toPbFragId(src),
				Dst: toPbFragId(dst),
			})
		}
	}

	for k, v := range blobs {
		out.Blobs = append(out.Blobs, &autocachepb.Blob{Key: k, Data: v})
	}

	return out
}

// Save marshals db's cache representation and writes it to w.
func (db *Database) Save(w io.Writer, blobs map[string][]byte) error {
	b, err := proto.Marshal(db.ToCache(blobs))
	if err != nil {
		return errors.Wrap(err, "marshal cache")
	}
	_, err = w.Write(b)
	return errors.Wrap(err, "write cache")
}

// LoadCache reads and validates a persisted cache from r. A format
// version mismatch discards the cache entirely rather than attempting
// to migrate it, per spec §6.
func LoadCache(r io.Reader) (*autocachepb.Cache, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read cache")
	}
	c := &autocachepb.Cache{}
	if err := proto.Unmarshal(raw, c); err != nil {
		return nil, errors.Wrap(err, "unmarshal cache")
	}
	if c.Magic != autocachepb.Magic {
		return nil, errors.Errorf("not an autolang cache file (bad magic %q)", c.Magic)
	}
	if c.FormatVersion != autocachepb.FormatVersion {
		return nil, &VersionMismatchError{Got: c.FormatVersion, Want: autocachepb.FormatVersion}
	}
	return c, nil
}

// VersionMismatchError signals a cache written by an incompatible
// format version; callers should discard the cache and recompile from
// source rather than attempt to read c's sections further.
type VersionMismatchError struct {
	Got, Want uint32
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("cache format version %d unsupported (want %d)", e.Got, e.Want)
}

// PriorHashes reindexes a loaded Cache into the (FileId -> L1) and
// (FragId -> HashTriple) lookup tables describing the saved compile.
// CompileSource does not take these tables as input; it always hashes
// and indexes the text it is given.
func PriorHashes(c *autocachepb.Cache) (files map[hash.FileId]hash.Digest, frags map[fragment.FragId]HashTriple) {
	files = make(map[hash.FileId]hash.Digest, len(c.Files))
	for _, fe := range c.Files {
		files[hash.FileId(toDigest(fe.FileId))] = toDigest(fe.L1)
	}
	frags = make(map[fragment.FragId]HashTriple, len(c.Fragments))
	for _, fr := range c.Fragments {
		frags[fromPbFragId(fr.Id)] = HashTriple{
			L1: toDigest(fr.L1),
			L2: toDigest(fr.L2),
			L3: toDigest(fr.L3),
		}
	}
	return files, frags
}

func toPbFragId(id fragment.FragId) *autocachepb.FragId {
	return &autocachepb.FragId{
		FileId:        digestBytes(hash.Digest(id.File)),
		Kind:          int32(id.Kind),
		Name:          id.Name,
		Disambiguator: int32(id.Disambiguator),
	}
}

func fromPbFragId(id *autocachepb.FragId) fragment.FragId {
	return fragment.FragId{
		File:          hash.FileId(toDigest(id.GetFileId())),
		Kind:          fragment.Kind(id.GetKind()),
		Name:          id.GetName(),
		Disambiguator: int(id.GetDisambiguator()),
	}
}

func digestBytes(d hash.Digest) []byte {
	b := make([]byte, hash.Size)
	copy(b, d[:])
	return b
}

func toDigest(b []byte) hash.Digest {
	var d hash.Digest
	copy(d[:], b)
	return d
}
