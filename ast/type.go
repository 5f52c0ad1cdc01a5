package ast

// TypeRef represents a reference to a type in signature position, e.g.
// `int`, `?int`, `Opt<int>`, `[int]`.
type TypeRef struct {
	Base
	May       bool // true for the `?T` may/optional sugar
	List      bool // true for the `[T]` list sugar
	Name      *Identifier
	Arguments []*TypeRef // generic type arguments, e.g. the `int` in `Opt<int>`
}

func (TypeRef) isNode() {}

// Parameter is a single function parameter: «name type».
type Parameter struct {
	Base
	Name *Identifier
	Type *TypeRef
}

func (Parameter) isNode() {}

// Function represents `fn name<generics>(params) returnType { body }`.
type Function struct {
	Base
	Name       *Identifier
	Generics   []*Identifier
	Parameters []*Parameter
	ReturnType *TypeRef // nil means Unknown, to be inferred
	Body       *Block
}

func (Function) isNode() {}
func (*Function) isItem() {}

// TagEntry is one variant of a TagDecl, e.g. `some(T)` or `none`.
type TagEntry struct {
	Base
	Name    *Identifier
	Payload *TypeRef // nil for a payload-less entry
}

func (TagEntry) isNode() {}

// TagDecl represents `tag Name<generics> { entries }`, AutoLang's
// discriminated-union/enum-like construct.
type TagDecl struct {
	Base
	Name     *Identifier
	Generics []*Identifier
	Entries  []*TagEntry
}

func (TagDecl) isNode() {}
func (*TagDecl) isItem() {}

// AliasDecl represents `alias Name<generics> = Type`.
type AliasDecl struct {
	Base
	Name     *Identifier
	Generics []*Identifier
	Target   *TypeRef
}

func (AliasDecl) isNode() {}
func (*AliasDecl) isItem() {}
