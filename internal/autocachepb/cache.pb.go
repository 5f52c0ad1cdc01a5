// Package autocachepb holds the wire messages for the persisted
// compile-cache format (spec §6 "Persisted state layout"). It is
// written in the classic protoc-gen-go style (struct tags plus the
// three-method v1 Message interface) rather than generated by protoc,
// so the fields below are the source of truth, not a .proto file.
package autocachepb

import (
	"fmt"

	"github.com/golang/protobuf/proto"
)

// Magic is the fixed header every cache file starts with.
const Magic = "AUTO-CACHE\x00"

// FormatVersion is bumped whenever the wire shape below changes. A
// mismatch discards the cache rather than migrating it (spec §6).
const FormatVersion uint32 = 1

// FragId mirrors fragment.FragId on the wire: a file id, a fragment
// kind, a qualified name and a disambiguator.
type FragId struct {
	FileId        []byte `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Kind          int32  `protobuf:"varint,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Name          string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Disambiguator int32  `protobuf:"varint,4,opt,name=disambiguator,proto3" json:"disambiguator,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *FragId) Reset()         { *m = FragId{} }
func (m *FragId) String() string { return fmt.Sprintf("FragId(%x/%d/%s#%d)", m.GetFileId(), m.GetKind(), m.GetName(), m.GetDisambiguator()) }
func (*FragId) ProtoMessage()    {}

func (m *FragId) GetFileId() []byte {
	if m != nil {
		return m.FileId
	}
	return nil
}

func (m *FragId) GetKind() int32 {
	if m != nil {
		return m.Kind
	}
	return 0
}

func (m *FragId) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *FragId) GetDisambiguator() int32 {
	if m != nil {
		return m.Disambiguator
	}
	return 0
}

// FileEntry is one row of the persisted file index: `(FileId, path, L1)`.
type FileEntry struct {
	FileId []byte `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Path   string `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	L1     []byte `protobuf:"bytes,3,opt,name=l1,proto3" json:"l1,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *FileEntry) Reset()         { *m = FileEntry{} }
func (m *FileEntry) String() string { return fmt.Sprintf("FileEntry(%s)", m.GetPath()) }
func (*FileEntry) ProtoMessage()    {}

func (m *FileEntry) GetFileId() []byte {
	if m != nil {
		return m.FileId
	}
	return nil
}

func (m *FileEntry) GetPath() string {
	if m != nil {
		return m.Path
	}
	return ""
}

func (m *FileEntry) GetL1() []byte {
	if m != nil {
		return m.L1
	}
	return nil
}

// FragmentEntry is one row of the persisted fragment index:
// `(FragId, L1, L2, L3, kind, span)`.
type FragmentEntry struct {
	Id         *FragId `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	L1         []byte  `protobuf:"bytes,2,opt,name=l1,proto3" json:"l1,omitempty"`
	L2         []byte  `protobuf:"bytes,3,opt,name=l2,proto3" json:"l2,omitempty"`
	L3         []byte  `protobuf:"bytes,4,opt,name=l3,proto3" json:"l3,omitempty"`
	SpanStart  int32   `protobuf:"varint,5,opt,name=span_start,json=spanStart,proto3" json:"span_start,omitempty"`
	SpanEnd    int32   `protobuf:"varint,6,opt,name=span_end,json=spanEnd,proto3" json:"span_end,omitempty"`
	Unparsable bool    `protobuf:"varint,7,opt,name=unparsable,proto3" json:"unparsable,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *FragmentEntry) Reset() { *m = FragmentEntry{} }
func (m *FragmentEntry) String() string {
	return fmt.Sprintf("FragmentEntry(%s)", m.GetId())
}
func (*FragmentEntry) ProtoMessage() {}

func (m *FragmentEntry) GetId() *FragId {
	if m != nil {
		return m.Id
	}
	return nil
}

func (m *FragmentEntry) GetL1() []byte {
	if m != nil {
		return m.L1
	}
	return nil
}

func (m *FragmentEntry) GetL2() []byte {
	if m != nil {
		return m.L2
	}
	return nil
}

func (m *FragmentEntry) GetL3() []byte {
	if m != nil {
		return m.L3
	}
	return nil
}

// DepEdge is a packed `(src-FragId, dst-FragId)` dependency pair: src
// depends on dst.
type DepEdge struct {
	Src *FragId `protobuf:"bytes,1,opt,name=src,proto3" json:"src,omitempty"`
	Dst *FragId `protobuf:"bytes,2,opt,name=dst,proto3" json:"dst,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *DepEdge) Reset()         { *m = DepEdge{} }
func (m *DepEdge) String() string { return fmt.Sprintf("DepEdge(%s -> %s)", m.GetSrc(), m.GetDst()) }
func (*DepEdge) ProtoMessage()    {}

func (m *DepEdge) GetSrc() *FragId {
	if m != nil {
		return m.Src
	}
	return nil
}

func (m *DepEdge) GetDst() *FragId {
	if m != nil {
		return m.Dst
	}
	return nil
}

// Blob is an opaque interned value keyed by name: an interned type or
// a bytecode blob, per spec §6's "implementation-defined" clause.
type Blob struct {
	Key  string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Data []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Blob) Reset()         { *m = Blob{} }
func (m *Blob) String() string { return fmt.Sprintf("Blob(%s, %d bytes)", m.Key, len(m.Data)) }
func (*Blob) ProtoMessage()    {}

// Cache is the top-level persisted message: magic header, format
// version, and the four index sections spec §6 names.
type Cache struct {
	Magic         string           `protobuf:"bytes,1,opt,name=magic,proto3" json:"magic,omitempty"`
	FormatVersion uint32           `protobuf:"varint,2,opt,name=format_version,json=formatVersion,proto3" json:"format_version,omitempty"`
	Files         []*FileEntry     `protobuf:"bytes,3,rep,name=files,proto3" json:"files,omitempty"`
	Fragments     []*FragmentEntry `protobuf:"bytes,4,rep,name=fragments,proto3" json:"fragments,omitempty"`
	Deps          []*DepEdge       `protobuf:"bytes,5,rep,name=deps,proto3" json:"deps,omitempty"`
	Blobs         []*Blob          `protobuf:"bytes,6,rep,name=blobs,proto3" json:"blobs,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Cache) Reset()         { *m = Cache{} }
func (m *Cache) String() string { return fmt.Sprintf("Cache(version=%d, %d files, %d fragments)", m.FormatVersion, len(m.Files), len(m.Fragments)) }
func (*Cache) ProtoMessage()    {}

func (m *Cache) GetFiles() []*FileEntry {
	if m != nil {
		return m.Files
	}
	return nil
}

func (m *Cache) GetFragments() []*FragmentEntry {
	if m != nil {
		return m.Fragments
	}
	return nil
}

func (m *Cache) GetDeps() []*DepEdge {
	if m != nil {
		return m.Deps
	}
	return nil
}

func (m *Cache) GetBlobs() []*Blob {
	if m != nil {
		return m.Blobs
	}
	return nil
}

var (
	_ proto.Message = (*Cache)(nil)
	_ proto.Message = (*FileEntry)(nil)
	_ proto.Message = (*FragmentEntry)(nil)
	_ proto.Message = (*DepEdge)(nil)
	_ proto.Message = (*FragId)(nil)
	_ proto.Message = (*Blob)(nil)
)
