package types

import "fmt"

// MismatchError is returned when two types cannot be unified.
type MismatchError struct {
	Expected, Found Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, found %s", e.Expected, e.Found)
}

// InfiniteTypeError is returned when a type's own definition refers to
// itself with no indirection to break the cycle.
type InfiniteTypeError struct {
	Decl string
}

func (e *InfiniteTypeError) Error() string {
	return fmt.Sprintf("infinite type: %s refers to itself with no indirection", e.Decl)
}

// Warning is a non-fatal note attached to an otherwise-successful
// unification, e.g. an implicit int/uint widening.
type Warning struct {
	Message string
}

// Unify attempts to unify a and b, returning the resulting type (the
// more specific of the two), any warnings (e.g. implicit numeric
// conversion), and an error if they cannot unify. Unification is
// commutative up to warning emission (spec §8 invariant 4): Unify(a,b)
// and Unify(b,a) always agree on success/failure and on the resulting
// type.
func Unify(a, b Type) (Type, []Warning, error) {
	if IsUnknown(a) {
		return b, nil, nil
	}
	if IsUnknown(b) {
		return a, nil, nil
	}

	switch at := a.(type) {
	case *Primitive:
		bt, ok := b.(*Primitive)
		if !ok {
			return nil, nil, &MismatchError{a, b}
		}
		if at.Name == bt.Name {
			return at, nil, nil
		}
		if w, ok := widen(at, bt); ok {
			return w.result, []Warning{{Message: w.message}}, nil
		}
		return nil, nil, &MismatchError{a, b}

	case *Array:
		bt, ok := b.(*Array)
		if !ok {
			return nil, nil, &MismatchError{a, b}
		}
		elem, warns, err := Unify(at.Elem, bt.Elem)
		if err != nil {
			return nil, warns, err
		}
		switch {
		case at.HasLen && bt.HasLen:
			if at.Len != bt.Len {
				return nil, warns, &MismatchError{a, b}
			}
			return &Array{Elem: elem, Len: at.Len, HasLen: true}, warns, nil
		case at.HasLen:
			return &Array{Elem: elem, Len: at.Len, HasLen: true}, warns, nil
		case bt.HasLen:
			return &Array{Elem: elem, Len: bt.Len, HasLen: true}, warns, nil
		default:
			return &Array{Elem: elem}, warns, nil
		}

	case *List:
		bt, ok := b.(*List)
		if !ok {
			return nil, nil, &MismatchError{a, b}
		}
		elem, warns, err := Unify(at.Elem, bt.Elem)
		if err != nil {
			return nil, warns, err
		}
		return &List{Elem: elem}, warns, nil

	case *Ptr:
		bt, ok := b.(*Ptr)
		if !ok {
			return nil, nil, &MismatchError{a, b}
		}
		of, warns, err := Unify(at.Of, bt.Of)
		if err != nil {
			return nil, warns, err
		}
		return &Ptr{Of: of}, warns, nil

	case *May:
		bt, ok := b.(*May)
		if !ok {
			return nil, nil, &MismatchError{a, b}
		}
		of, warns, err := Unify(at.Of, bt.Of)
		if err != nil {
			return nil, warns, err
		}
		return &May{Of: of}, warns, nil

	case *Tuple:
		bt, ok := b.(*Tuple)
		if !ok || len(at.Elems) != len(bt.Elems) {
			return nil, nil, &MismatchError{a, b}
		}
		elems := make([]Type, len(at.Elems))
		var warns []Warning
		for i := range at.Elems {
			e, w, err := Unify(at.Elems[i], bt.Elems[i])
			if err != nil {
				return nil, warns, err
			}
			elems[i] = e
			warns = append(warns, w...)
		}
		return &Tuple{Elems: elems}, warns, nil

	case *Function:
		bt, ok := b.(*Function)
		if !ok || len(at.Params) != len(bt.Params) {
			return nil, nil, &MismatchError{a, b}
		}
		params := make([]Type, len(at.Params))
		var warns []Warning
		for i := range at.Params {
			p, w, err := Unify(at.Params[i], bt.Params[i])
			if err != nil {
				return nil, warns, err
			}
			params[i] = p
			warns = append(warns, w...)
		}
		ret, w, err := Unify(at.Ret, bt.Ret)
		if err != nil {
			return nil, warns, err
		}
		warns = append(warns, w...)
		return &Function{Params: params, Ret: ret}, warns, nil

	case *UserType:
		bt, ok := b.(*UserType)
		if !ok || at.Decl != bt.Decl {
			return nil, nil, &MismatchError{a, b}
		}
		return at, nil, nil

	case *GenericInstance:
		bt, ok := b.(*GenericInstance)
		if !ok || at.Base.Decl != bt.Base.Decl || len(at.Args) != len(bt.Args) {
			return nil, nil, &MismatchError{a, b}
		}
		args := make([]Type, len(at.Args))
		var warns []Warning
		for i := range at.Args {
			arg, w, err := Unify(at.Args[i], bt.Args[i])
			if err != nil {
				return nil, warns, err
			}
			args[i] = arg
			warns = append(warns, w...)
		}
		return &GenericInstance{Base: at.Base, Args: args}, warns, nil

	case *Tag:
		bt, ok := b.(*Tag)
		if !ok || at.Decl != bt.Decl {
			return nil, nil, &MismatchError{a, b}
		}
		return at, nil, nil

	default:
		return nil, nil, &MismatchError{a, b}
	}
}

type widening struct {
	result  Type
	message string
}

// widen implements the spec's "int ↔ uint and float ↔ double unify
// with an implicit-conversion warning; width-promoting direction
// preferred" rule.
func widen(a, b *Primitive) (widening, bool) {
	pair := func(x, y string) bool { return (a.Name == x && b.Name == y) || (a.Name == y && b.Name == x) }
	switch {
	case pair("int", "uint"):
		return widening{Int, "implicit conversion between int and uint"}, true
	case pair("float", "double"):
		return widening{Double, "implicit conversion between float and double"}, true
	default:
		return widening{}, false
	}
}

// OccursIn reports whether decl appears within t without any
// indirection (Ptr, List, May, Array) to break the cycle — used to
// detect a self-referential type declaration (spec §8: `type A { x A }`
// reports InfiniteType and does not hang).
func OccursIn(decl string, t Type, visiting map[string]bool) bool {
	switch v := t.(type) {
	case *UserType:
		if v.Decl == decl {
			return true
		}
	case *Tag:
		if v.Decl == decl {
			return true
		}
		if visiting[v.Decl] {
			return false
		}
		visiting[v.Decl] = true
		for _, payload := range v.Entries {
			if payload != nil && OccursIn(decl, payload, visiting) {
				return true
			}
		}
	case *Tuple:
		for _, e := range v.Elems {
			if OccursIn(decl, e, visiting) {
				return true
			}
		}
	}
	return false
}
