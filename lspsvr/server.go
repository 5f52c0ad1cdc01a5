package lspsvr

import (
	"context"
	"net"
	"sort"
	"strings"

	"google.golang.org/grpc"

	"github.com/auto-stack/autolang/database"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/session"
)

// Server implements AutoLangQueryServer over a single live
// CompileSession, the same query surface a REPL shares with an IDE
// integration (spec §2's "share cached work" goal for the session
// layer). Queries run against the session's live Database rather than
// a Snapshot, so completions and references reflect the most recent
// CompileSource call.
type Server struct {
	UnimplementedAutoLangQueryServer

	session *session.CompileSession
}

// NewServer wraps sess for gRPC queries.
func NewServer(sess *session.CompileSession) *Server {
	return &Server{session: sess}
}

// Completions lists every known symbol name with the given prefix,
// sorted, mirroring database.SymbolTable.Names's own ordering.
func (s *Server) Completions(ctx context.Context, req *CompletionsRequest) (*CompletionsResponse, error) {
	db := s.session.Database()
	var names []string
	for _, name := range db.Symbols.Names() {
		if strings.HasPrefix(name, req.Prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return &CompletionsResponse{Names: names}, nil
}

// FindReferences lists every fragment that depends on req.Name's
// owning fragment, walking the Database's reverse dependency edges.
func (s *Server) FindReferences(ctx context.Context, req *FindReferencesRequest) (*FindReferencesResponse, error) {
	db := s.session.Database()
	id, ok := db.Symbols.Lookup(req.Name)
	if !ok {
		return &FindReferencesResponse{}, nil
	}

	var locs []*Location
	for ref := range db.DepGraph.Reverse[id] {
		frag, ok := db.Fragments[ref]
		if !ok {
			continue
		}
		locs = append(locs, fragLocation(db, ref, frag))
	}
	return &FindReferencesResponse{Locations: locs}, nil
}

// SymbolLocation reports where req.Name is declared.
func (s *Server) SymbolLocation(ctx context.Context, req *SymbolLocationRequest) (*SymbolLocationResponse, error) {
	db := s.session.Database()
	id, ok := db.Symbols.Lookup(req.Name)
	if !ok {
		return &SymbolLocationResponse{Found: false}, nil
	}
	frag, ok := db.Fragments[id]
	if !ok {
		return &SymbolLocationResponse{Found: false}, nil
	}
	return &SymbolLocationResponse{Found: true, Location: fragLocation(db, id, frag)}, nil
}

func fragLocation(db *database.Database, id fragment.FragId, frag *fragment.Fragment) *Location {
	path := id.File.String()
	if f := db.Files.Get(id.File); f != nil {
		path = f.Path
	}
	return &Location{Path: path, Start: int32(frag.Span.Start), End: int32(frag.Span.End)}
}

// Serve starts a gRPC server on address, registering srv, and blocks
// until the listener fails (mirroring core/net/grpcutil.Serve's
// listen-then-block shape, minus the gzip/max-message tuning this
// module's small query payloads don't need).
func Serve(address string, srv *Server) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	defer listener.Close()

	grpcServer := grpc.NewServer()
	RegisterAutoLangQueryServer(grpcServer, srv)
	return grpcServer.Serve(listener)
}
