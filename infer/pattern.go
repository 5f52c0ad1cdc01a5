package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/types"
)

// inferIs types a pattern-match expression: every arm's body is
// unified; exhaustiveness is checked against the scrutinee's tag
// variants, and arms dominated by an earlier catch-all are flagged as
// unreachable (spec §4.C, §8 Scenario 5).
func (c *Context) inferIs(n *ast.Is) types.Type {
	scrutinee := c.InferExpr(n.Scrutinee)
	tag, isTag := scrutinee.(*types.Tag)

	covered := map[string]bool{}
	sawCatchAll := false
	result := types.Type(types.TheUnknown)

	for _, arm := range n.Arms {
		if sawCatchAll {
			c.warnf(arm.Span(), "W0005", "unreachable pattern: arm is dominated by a preceding catch-all")
		}
		c.push()
		switch p := arm.Pattern.(type) {
		case *ast.WildcardPattern:
			sawCatchAll = true
		case *ast.BindPattern:
			c.bind(p.Name.Value, scrutinee)
			sawCatchAll = true
		case *ast.TagPattern:
			if isTag && p.Tag.Value != tag.Decl {
				c.errorf(p.Span(), "E0101", "pattern %s.%s does not match scrutinee type %s", p.Tag.Value, p.Entry.Value, tag.Decl)
			}
			if isTag {
				if covered[p.Entry.Value] {
					c.warnf(arm.Span(), "W0005", "unreachable pattern: %s.%s already covered", p.Tag.Value, p.Entry.Value)
				}
				covered[p.Entry.Value] = true
				if payload, ok := tag.Entries[p.Entry.Value]; ok && payload != nil && len(p.Bindings) > 0 {
					c.bind(p.Bindings[0].Value, payload)
				}
			}
			for _, extra := range p.Bindings[min(1, len(p.Bindings)):] {
				c.bind(extra.Value, types.TheUnknown)
			}
		}
		bodyType := c.InferExpr(arm.Body)
		c.pop()
		result = c.solve(Constraint{Kind: Equal, A: result, B: bodyType, Span: arm.Span()})
	}

	if isTag && !sawCatchAll {
		for _, entryName := range tag.Order {
			if !covered[entryName] {
				c.warnf(n.Span(), "W0004", "non-exhaustive match: missing '%s.%s'", tag.Decl, entryName)
			}
		}
	}

	return result
}
