package fragment

import (
	"strings"

	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/hash"
	"github.com/auto-stack/autolang/lexer"
)

// contentDigest computes L1 from a fragment's source slice as the hash
// of its canonical token stream: the lexer already discards whitespace
// and comments as trivia, so reordering either changes nothing here
// (spec §8 invariant 2), while any token-affecting edit does.
func contentDigest(src string) hash.Digest {
	toks := lexer.All(src)
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
		b.WriteByte(0)
	}
	return hash.OfString(b.String())
}

// typeRefSig writes t's canonical signature form: structural shape only,
// no source spans (Open Question decision: spans excluded from L2).
func typeRefSig(b *strings.Builder, t *ast.TypeRef) {
	if t == nil {
		b.WriteString("_")
		return
	}
	if t.May {
		b.WriteString("?")
	}
	if t.List {
		b.WriteString("[")
	}
	if t.Name != nil {
		b.WriteString(t.Name.Value)
	}
	if len(t.Arguments) > 0 {
		b.WriteString("<")
		for i, a := range t.Arguments {
			if i > 0 {
				b.WriteString(",")
			}
			typeRefSig(b, a)
		}
		b.WriteString(">")
	}
	if t.List {
		b.WriteString("]")
	}
}

func genericsSig(b *strings.Builder, gs []*ast.Identifier) {
	b.WriteString("<")
	for i, g := range gs {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(g.Value)
	}
	b.WriteString(">")
}

func genericsNames(gs []*ast.Identifier) []string {
	if len(gs) == 0 {
		return nil
	}
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Value
	}
	return out
}

// functionSig derives L2 for a function from (generics, parameter
// types, return type) — explicitly excluding parameter names and the
// body, per spec §3.
func functionSig(fn *ast.Function) hash.Digest {
	var b strings.Builder
	genericsSig(&b, fn.Generics)
	b.WriteString("(")
	for i, p := range fn.Parameters {
		if i > 0 {
			b.WriteString(",")
		}
		typeRefSig(&b, p.Type)
	}
	b.WriteString(")->")
	typeRefSig(&b, fn.ReturnType)
	return hash.OfString(b.String())
}

// tagSig derives L2 for a tag declaration from (generics, entry names
// and payload types).
func tagSig(decl *ast.TagDecl) hash.Digest {
	var b strings.Builder
	genericsSig(&b, decl.Generics)
	for i, e := range decl.Entries {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(e.Name.Value)
		b.WriteString(":")
		typeRefSig(&b, e.Payload)
	}
	return hash.OfString(b.String())
}

// aliasSig derives L2 for a type alias from (generics, target type).
func aliasSig(decl *ast.AliasDecl) hash.Digest {
	var b strings.Builder
	genericsSig(&b, decl.Generics)
	typeRefSig(&b, decl.Target)
	return hash.OfString(b.String())
}
