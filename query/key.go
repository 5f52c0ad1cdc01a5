package query

import "github.com/auto-stack/autolang/fragment"

// Kind names one of the QueryEngine's supported query kinds (spec
// §4.D). Kinds are strings rather than an int enum so a query's name
// is self-describing in CycleError and cache-stats output.
type Kind string

const (
	KindInferFragment     Kind = "InferFragment"
	KindGetBytecode       Kind = "GetBytecode"
	KindGetSymbolLocation Kind = "GetSymbolLocation"
	KindFindReferences    Kind = "FindReferences"
	KindGetCompletions    Kind = "GetCompletions"
	KindInferExprType     Kind = "InferExprType"
	KindEvalResult        Kind = "EvalResult"
)

// Key identifies one memoised query: a kind, the fragment it is keyed
// to, and an optional Extra discriminator for queries that need more
// than a fragment id (GetSymbolLocation's qualified name,
// GetCompletions'/InferExprType's sub-expression path).
type Key struct {
	Kind  Kind
	Frag  fragment.FragId
	Extra string
}
