// Package lspsvr exposes a subset of QueryEngine queries over gRPC, so
// an IDE integration can ask for completions, references and symbol
// locations without linking the compiler directly (spec §6 IDE
// integration, generalising gapil/langsvr's resolver-wrapping server
// to a gRPC transport since this module has no in-process editor
// plugin to drive a same-process API).
//
// The message types below are written in the classic protoc-gen-go
// style (struct tags plus the three-method v1 Message interface)
// rather than produced by protoc; see service_grpc.pb.go for the
// hand-authored service plumbing built on top of them.
package lspsvr

import (
	"fmt"

	"github.com/golang/protobuf/proto"
)

// Location names a span within a source file.
type Location struct {
	Path  string `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Start int32  `protobuf:"varint,2,opt,name=start,proto3" json:"start,omitempty"`
	End   int32  `protobuf:"varint,3,opt,name=end,proto3" json:"end,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Location) Reset()         { *m = Location{} }
func (m *Location) String() string { return fmt.Sprintf("Location(%s@%d..%d)", m.Path, m.Start, m.End) }
func (*Location) ProtoMessage()    {}

// CompletionsRequest asks for every known symbol whose name starts
// with Prefix.
type CompletionsRequest struct {
	Prefix string `protobuf:"bytes,1,opt,name=prefix,proto3" json:"prefix,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CompletionsRequest) Reset()         { *m = CompletionsRequest{} }
func (m *CompletionsRequest) String() string { return fmt.Sprintf("CompletionsRequest(%q)", m.Prefix) }
func (*CompletionsRequest) ProtoMessage()    {}

// CompletionsResponse lists the matching symbol names, sorted.
type CompletionsResponse struct {
	Names []string `protobuf:"bytes,1,rep,name=names,proto3" json:"names,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CompletionsResponse) Reset()         { *m = CompletionsResponse{} }
func (m *CompletionsResponse) String() string { return fmt.Sprintf("CompletionsResponse(%d names)", len(m.Names)) }
func (*CompletionsResponse) ProtoMessage()    {}

// FindReferencesRequest asks for every fragment that depends on the
// named symbol's fragment.
type FindReferencesRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *FindReferencesRequest) Reset()         { *m = FindReferencesRequest{} }
func (m *FindReferencesRequest) String() string { return fmt.Sprintf("FindReferencesRequest(%q)", m.Name) }
func (*FindReferencesRequest) ProtoMessage()    {}

// FindReferencesResponse lists every reference site found.
type FindReferencesResponse struct {
	Locations []*Location `protobuf:"bytes,1,rep,name=locations,proto3" json:"locations,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *FindReferencesResponse) Reset()         { *m = FindReferencesResponse{} }
func (m *FindReferencesResponse) String() string { return fmt.Sprintf("FindReferencesResponse(%d locations)", len(m.Locations)) }
func (*FindReferencesResponse) ProtoMessage()    {}

// SymbolLocationRequest asks where a qualified name is declared.
type SymbolLocationRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *SymbolLocationRequest) Reset()         { *m = SymbolLocationRequest{} }
func (m *SymbolLocationRequest) String() string { return fmt.Sprintf("SymbolLocationRequest(%q)", m.Name) }
func (*SymbolLocationRequest) ProtoMessage()    {}

// SymbolLocationResponse carries the declaration site, or Found=false
// if the name is unknown.
type SymbolLocationResponse struct {
	Found    bool      `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Location *Location `protobuf:"bytes,2,opt,name=location,proto3" json:"location,omitempty"`

	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *SymbolLocationResponse) Reset() { *m = SymbolLocationResponse{} }
func (m *SymbolLocationResponse) String() string {
	return fmt.Sprintf("SymbolLocationResponse(found=%v)", m.Found)
}
func (*SymbolLocationResponse) ProtoMessage() {}

var (
	_ proto.Message = (*Location)(nil)
	_ proto.Message = (*CompletionsRequest)(nil)
	_ proto.Message = (*CompletionsResponse)(nil)
	_ proto.Message = (*FindReferencesRequest)(nil)
	_ proto.Message = (*FindReferencesResponse)(nil)
	_ proto.Message = (*SymbolLocationRequest)(nil)
	_ proto.Message = (*SymbolLocationResponse)(nil)
)
