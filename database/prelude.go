package database

import (
	"strings"

	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/diag"
)

// preludeSymbols maps a fully-qualified module path (joined by '.') to
// the name it implicitly supplies to every module without an explicit
// `use` (spec §9 GLOSSARY "Prelude: an implicitly imported symbol set
// available to every module"). May is AutoLang's only prelude export
// today (the `?T`/May.val/May.err machinery infer/call.go and
// eval/call.go special-case directly), so it is the only entry.
var preludeSymbols = map[string]string{
	"auto.may": "May",
}

// checkRedundantUses reports auto_warning_W0002 for every `use`
// statement that names a path the prelude already supplies under the
// same alias (spec §8 Scenario 6: "use auto.may: May" against a
// prelude that already supplies May).
func checkRedundantUses(uses []*ast.Use) []*diag.Diagnostic {
	var warnings []*diag.Diagnostic
	for _, u := range uses {
		provided, ok := preludeSymbols[strings.Join(u.Path, ".")]
		if !ok {
			continue
		}
		alias := provided
		if u.Alias != nil {
			alias = u.Alias.Value
		}
		if alias != provided {
			continue
		}
		warnings = append(warnings, diag.New(diag.Warning, "auto_warning_W0002", u.Span(),
			"redundant import: prelude already supplies '%s'", provided))
	}
	return warnings
}
