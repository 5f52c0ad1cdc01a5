// Package types implements AutoLang's open type lattice: primitives,
// composite constructors, user-declared types, and the Unknown top
// type, plus Robinson unification over them (see unify.go).
package types

import (
	"fmt"
	"strings"
)

// Type is implemented by every member of the lattice.
type Type interface {
	typeNode()
	String() string
}

// Primitive is a builtin scalar type, de-duplicated by name the way
// a builtin-type registry interns its singletons.
type Primitive struct{ Name string }

func (*Primitive) typeNode()      {}
func (p *Primitive) String() string { return p.Name }

var primitiveCache = map[string]*Primitive{}

// Prim returns the interned Primitive for name, creating it on first
// use so every reference to e.g. "int" shares one identity.
func Prim(name string) *Primitive {
	if p, ok := primitiveCache[name]; ok {
		return p
	}
	p := &Primitive{Name: name}
	primitiveCache[name] = p
	return p
}

var (
	Int    = Prim("int")
	Uint   = Prim("uint")
	Usize  = Prim("usize")
	Byte   = Prim("byte")
	Float  = Prim("float")
	Double = Prim("double")
	Bool   = Prim("bool")
	Char   = Prim("char")
	Str    = Prim("str")
	Cstr   = Prim("cstr")
	Void   = Prim("void")
)

// Unknown is the universal wildcard: the absorbing top type with no
// occurs-check identity (spec §4.C).
type Unknown struct{}

func (Unknown) typeNode()      {}
func (Unknown) String() string { return "?" }

// TheUnknown is the single shared Unknown instance.
var TheUnknown = Unknown{}

// Array is a fixed (or unspecified-length) array of Elem.
type Array struct {
	Elem   Type
	Len    int
	HasLen bool
}

func (*Array) typeNode() {}
func (a *Array) String() string {
	if a.HasLen {
		return fmt.Sprintf("array(%s, %d)", a.Elem, a.Len)
	}
	return fmt.Sprintf("array(%s, ?)", a.Elem)
}

// Ptr is a pointer to Of.
type Ptr struct{ Of Type }

func (*Ptr) typeNode()        {}
func (p *Ptr) String() string { return "*" + p.Of.String() }

// List is a dynamically sized list of Elem.
type List struct{ Elem Type }

func (*List) typeNode()        {}
func (l *List) String() string { return "[" + l.Elem.String() + "]" }

// May is AutoLang's optional/error tagged union, surface syntax `?T`.
type May struct{ Of Type }

func (*May) typeNode()        {}
func (m *May) String() string { return "?" + m.Of.String() }

// Tuple is a fixed-arity product type.
type Tuple struct{ Elems []Type }

func (*Tuple) typeNode() {}
func (t *Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Function is a callable signature.
type Function struct {
	Params []Type
	Ret    Type
}

func (*Function) typeNode() {}
func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "void"
	if f.Ret != nil {
		ret = f.Ret.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") " + ret
}

// UserType is a user declaration (tag or alias target), identified by
// its declaration's name; two UserTypes are the same iff Decl matches,
// per spec §4.C ("UserType(d1) ~ UserType(d2) iff same declaration
// identity").
type UserType struct {
	Decl string // qualified declaration name
	Args []Type // bound type parameters, if any were declared
}

func (*UserType) typeNode() {}
func (u *UserType) String() string {
	if len(u.Args) == 0 {
		return u.Decl
	}
	parts := make([]string, len(u.Args))
	for i, a := range u.Args {
		parts[i] = a.String()
	}
	return u.Decl + "<" + strings.Join(parts, ", ") + ">"
}

// GenericInstance is a generic user type applied to concrete type
// arguments, e.g. `Opt<int>`.
type GenericInstance struct {
	Base *UserType
	Args []Type
}

func (*GenericInstance) typeNode() {}
func (g *GenericInstance) String() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	return g.Base.Decl + "<" + strings.Join(parts, ", ") + ">"
}

// Tag is a discriminated-union/enum-like type, one of whose Entries is
// selected at a time; Payload is nil for a payload-less entry.
type Tag struct {
	Decl    string
	Args    []Type
	Entries map[string]Type // entry name -> payload type (nil means none)
	Order   []string         // entry names in declaration order, for exhaustiveness checks
}

func (*Tag) typeNode() {}
func (t *Tag) String() string {
	if len(t.Args) == 0 {
		return t.Decl
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Decl + "<" + strings.Join(parts, ", ") + ">"
}

// IsUnknown reports whether t is the Unknown top type.
func IsUnknown(t Type) bool {
	_, ok := t.(Unknown)
	return ok
}
