// Package fragment splits a parsed file into fragments — the smallest
// recompilation unit — and tracks their structural identity, content
// and signature hashes, and reverse dependency edges.
package fragment

import (
	"fmt"

	"github.com/auto-stack/autolang/hash"
)

// Kind identifies what sort of declaration a fragment lowers.
type Kind int

const (
	Function Kind = iota
	Type
	Impl
	Spec
	Alias
	Ext
	TopLevelStmt
)

func (k Kind) String() string {
	switch k {
	case Function:
		return "function"
	case Type:
		return "type"
	case Impl:
		return "impl"
	case Spec:
		return "spec"
	case Alias:
		return "alias"
	case Ext:
		return "ext"
	case TopLevelStmt:
		return "top-level-stmt"
	default:
		return "unknown"
	}
}

// FragId is a fragment's structural identity: stable across edits that
// do not rename the item. Two distinct fragments never share a FragId
// (spec §3 invariant).
type FragId struct {
	File          hash.FileId
	Kind          Kind
	Name          string // qualified name; synthetic for TopLevelStmt
	Disambiguator int    // distinguishes same-named overloads/repeats
}

func (id FragId) String() string {
	return fmt.Sprintf("%s:%s/%s#%d", id.File, id.Kind, id.Name, id.Disambiguator)
}
