package parser

import (
	"testing"

	"github.com/auto-stack/autolang/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunctionWithParamsAndReturnType(t *testing.T) {
	f, errs := Parse(`fn add(a int, b int) int { return a + b }`, 20)
	require.Empty(t, errs.Errors)
	require.Len(t, f.Items, 1)
	fn, ok := f.Items[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Value)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].Name.Value)
	assert.Equal(t, "int", fn.Parameters[0].Type.Name.Value)
	assert.Equal(t, "int", fn.ReturnType.Name.Value)
	require.Len(t, fn.Body.Stmts, 1)
}

func TestParseFunctionMayReturnType(t *testing.T) {
	f, errs := Parse(`fn f() ?int { return 1 }`, 20)
	require.Empty(t, errs.Errors)
	fn := f.Items[0].(*ast.Function)
	require.NotNil(t, fn.ReturnType)
	assert.True(t, fn.ReturnType.May)
	assert.Equal(t, "int", fn.ReturnType.Name.Value)
}

func TestParseTagDeclWithPayloadEntries(t *testing.T) {
	f, errs := Parse(`tag Opt { some(int), none }`, 20)
	require.Empty(t, errs.Errors)
	decl, ok := f.Items[0].(*ast.TagDecl)
	require.True(t, ok)
	require.Len(t, decl.Entries, 2)
	assert.Equal(t, "some", decl.Entries[0].Name.Value)
	require.NotNil(t, decl.Entries[0].Payload)
	assert.Equal(t, "int", decl.Entries[0].Payload.Name.Value)
	assert.Equal(t, "none", decl.Entries[1].Name.Value)
	assert.Nil(t, decl.Entries[1].Payload)
}

func TestParseAliasDecl(t *testing.T) {
	f, errs := Parse(`alias Id = int`, 20)
	require.Empty(t, errs.Errors)
	decl, ok := f.Items[0].(*ast.AliasDecl)
	require.True(t, ok)
	assert.Equal(t, "Id", decl.Name.Value)
	assert.Equal(t, "int", decl.Target.Name.Value)
}

func TestParseUseWithAlias(t *testing.T) {
	f, errs := Parse(`use auto.may: May`, 20)
	require.Empty(t, errs.Errors)
	require.Len(t, f.Uses, 1)
	assert.Equal(t, []string{"auto", "may"}, f.Uses[0].Path)
	require.NotNil(t, f.Uses[0].Alias)
	assert.Equal(t, "May", f.Uses[0].Alias.Value)
}

func TestParseTopLevelExprStmt(t *testing.T) {
	f, errs := Parse(`1 + 2`, 20)
	require.Empty(t, errs.Errors)
	top, ok := f.Items[0].(*ast.TopLevelStmt)
	require.True(t, ok)
	bin, ok := top.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParseIfExpression(t *testing.T) {
	f, errs := Parse(`fn f() int { if true { return 1 } else { return 2 } }`, 20)
	require.Empty(t, errs.Errors)
	fn := f.Items[0].(*ast.Function)
	stmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	ifExpr, ok := stmt.Value.(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, ifExpr.Then)
	assert.NotNil(t, ifExpr.Else)
}

func TestParseIsExpressionWithTagPatternsAndWildcard(t *testing.T) {
	f, errs := Parse(`fn f(o Opt) int { return is o { Opt.some(x) => x, _ => 0 } }`, 20)
	require.Empty(t, errs.Errors)
	fn := f.Items[0].(*ast.Function)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	isExpr, ok := ret.Value.(*ast.Is)
	require.True(t, ok)
	require.Len(t, isExpr.Arms, 2)

	tp, ok := isExpr.Arms[0].Pattern.(*ast.TagPattern)
	require.True(t, ok)
	assert.Equal(t, "Opt", tp.Tag.Value)
	assert.Equal(t, "some", tp.Entry.Value)
	require.Len(t, tp.Bindings, 1)
	assert.Equal(t, "x", tp.Bindings[0].Value)

	_, ok = isExpr.Arms[1].Pattern.(*ast.WildcardPattern)
	assert.True(t, ok)
}

func TestParseMayPostfixOperator(t *testing.T) {
	f, errs := Parse(`fn f() int { return g().? }`, 20)
	require.Empty(t, errs.Errors)
	fn := f.Items[0].(*ast.Function)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	pf, ok := ret.Value.(*ast.Postfix)
	require.True(t, ok)
	assert.Equal(t, "?", pf.Op)
}

func TestParseListTypeAndArrayLiteral(t *testing.T) {
	f, errs := Parse(`fn f() [int] { return [1, 2, 3] }`, 20)
	require.Empty(t, errs.Errors)
	fn := f.Items[0].(*ast.Function)
	require.NotNil(t, fn.ReturnType)
	assert.True(t, fn.ReturnType.List)
	assert.Equal(t, "int", fn.ReturnType.Name.Value)

	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	arr, ok := ret.Value.(*ast.ArrayLit)
	require.True(t, ok)
	assert.Len(t, arr.Elems, 3)
}

func TestParseGenericTagDecl(t *testing.T) {
	f, errs := Parse(`tag Opt<T> { none, some(T) }`, 20)
	require.Empty(t, errs.Errors)
	decl := f.Items[0].(*ast.TagDecl)
	require.Len(t, decl.Generics, 1)
	assert.Equal(t, "T", decl.Generics[0].Value)
}

func TestParseErrorRecoversAtNextStatementBoundary(t *testing.T) {
	_, errs := Parse(`fn f() int { let x = ; return x }`, 20)
	require.NotEmpty(t, errs.Errors)
}

func TestParseErrorLimitStopsAccumulating(t *testing.T) {
	_, errs := Parse(`fn ( ( ( ( ( `, 2)
	assert.LessOrEqual(t, len(errs.Errors), 2)
}

func TestParseOperatorPrecedence(t *testing.T) {
	f, errs := Parse(`1 + 2 * 3`, 20)
	require.Empty(t, errs.Errors)
	top := f.Items[0].(*ast.TopLevelStmt)
	bin := top.Value.(*ast.BinaryOp)
	assert.Equal(t, "+", bin.Op)
	rhs, ok := bin.RHS.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Op)
}
