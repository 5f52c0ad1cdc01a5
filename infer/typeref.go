package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/types"
)

var primitiveNames = map[string]*types.Primitive{
	"int": types.Int, "uint": types.Uint, "usize": types.Usize,
	"byte": types.Byte, "float": types.Float, "double": types.Double,
	"bool": types.Bool, "char": types.Char, "str": types.Str,
	"cstr": types.Cstr, "void": types.Void,
}

// ResolveType converts a TypeRef written in source into a lattice
// Type, resolving generic parameter names through the current
// genericBindings and user declarations through Resolver.
func (c *Context) ResolveType(ref *ast.TypeRef) types.Type {
	if ref == nil {
		return types.TheUnknown
	}

	var base types.Type
	switch {
	case ref.Name == nil:
		base = types.TheUnknown
	default:
		name := ref.Name.Value
		if prim, ok := primitiveNames[name]; ok {
			base = prim
		} else if bound, ok := c.genericBindings[name]; ok {
			base = bound
		} else if decl, generics, ok := c.Resolver.LookupAliasTarget(name); ok {
			base = c.resolveAliasOrGenericParam(name, decl, generics, ref.Arguments)
		} else if tagDecl, ok := c.Resolver.LookupTagDecl(name); ok {
			base = c.tagType(tagDecl, ref.Arguments)
		} else {
			base = &types.UserType{Decl: name}
		}
	}

	if ref.List {
		base = &types.List{Elem: base}
	}
	if ref.May {
		base = &types.May{Of: base}
	}
	return base
}

func (c *Context) resolveAliasOrGenericParam(name string, target *ast.TypeRef, generics []string, args []*ast.TypeRef) types.Type {
	if len(generics) == 0 || len(args) == 0 {
		return c.ResolveType(target)
	}
	saved := c.genericBindings
	c.genericBindings = map[string]types.Type{}
	for k, v := range saved {
		c.genericBindings[k] = v
	}
	for i, g := range generics {
		if i < len(args) {
			c.genericBindings[g] = c.ResolveType(args[i])
		}
	}
	resolved := c.ResolveType(target)
	c.genericBindings = saved
	_ = name
	return resolved
}

func (c *Context) tagType(decl *ast.TagDecl, args []*ast.TypeRef) *types.Tag {
	generics := genericNames(decl.Generics)
	saved := c.genericBindings
	if len(generics) > 0 {
		c.genericBindings = map[string]types.Type{}
		for k, v := range saved {
			c.genericBindings[k] = v
		}
		for i, g := range generics {
			if i < len(args) {
				c.genericBindings[g] = c.ResolveType(args[i])
			}
		}
	}
	entries := map[string]types.Type{}
	order := make([]string, 0, len(decl.Entries))
	for _, e := range decl.Entries {
		order = append(order, e.Name.Value)
		if e.Payload != nil {
			entries[e.Name.Value] = c.ResolveType(e.Payload)
		} else {
			entries[e.Name.Value] = nil
		}
	}
	var boundArgs []types.Type
	for _, a := range args {
		boundArgs = append(boundArgs, c.ResolveType(a))
	}
	c.genericBindings = saved
	return &types.Tag{Decl: decl.Name.Value, Args: boundArgs, Entries: entries, Order: order}
}

func genericNames(gs []*ast.Identifier) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Value
	}
	return out
}
