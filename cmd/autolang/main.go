// Command autolang is AutoLang's command-line front end: script mode
// (run a file and exit) and an interactive REPL built on the session
// package's incremental CompileSession (spec §6). Grounded in spirit on
// core/app/run.go + core/app/verbs.go's flag-binding and verb-dispatch
// shape, trimmed to this module's two verbs and without the teacher's
// crash-reporting/analytics/status machinery, which has no analogue in
// a single-process compiler CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/auto-stack/autolang/autolog"
	"github.com/auto-stack/autolang/lspsvr"
	"github.com/auto-stack/autolang/session"
)

// Exit codes (spec §6 "Exit codes").
const (
	exitSuccess      = 0
	exitEvalError    = 1
	exitCompileError = 2
	exitIOError      = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 && args[0] == "lsp" {
		return runLsp(args[1:])
	}

	fs := flag.NewFlagSet("autolang", flag.ContinueOnError)
	errorLimit := fs.Int("error-limit", 20, "maximum number of parse diagnostics reported per compile")
	noColor := fs.Bool("no-color", false, "disable coloured diagnostic output")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: autolang [--error-limit N] [--no-color] [script] | autolang lsp --addr ADDR script")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitIOError
	}

	useColor := !*noColor && !color.NoColor
	ctx := autolog.Context(context.Background(), autolog.New(os.Stderr, useColor, autolog.Info))

	switch fs.NArg() {
	case 0:
		return runREPL(ctx, os.Stdin, os.Stdout, *errorLimit, useColor)
	case 1:
		return runScript(ctx, fs.Arg(0), *errorLimit, os.Stdout)
	default:
		fs.Usage()
		return exitIOError
	}
}

// runLsp compiles a script once, then serves QueryEngine-backed
// completions/references/symbol-location over gRPC until killed (spec
// §2's IDE-integration share-cached-work goal).
func runLsp(args []string) int {
	fs := flag.NewFlagSet("autolang lsp", flag.ContinueOnError)
	addr := fs.String("addr", "localhost:9090", "address to serve the gRPC query surface on")
	errorLimit := fs.Int("error-limit", 20, "maximum number of parse diagnostics reported per compile")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: autolang lsp [--addr ADDR] [--error-limit N] script")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitIOError
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitIOError
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOError
	}

	ctx := autolog.Context(context.Background(), autolog.New(os.Stderr, !color.NoColor, autolog.Info))
	sess := session.NewSession(*errorLimit)
	res := sess.CompileSource(ctx, fs.Arg(0), string(src))
	if len(res.ParseErrors.Errors) > 0 {
		for _, e := range res.ParseErrors.Errors {
			fmt.Fprintln(os.Stderr, e.Message)
		}
		return exitCompileError
	}

	srv := lspsvr.NewServer(sess)
	fmt.Fprintf(os.Stdout, "serving query surface on %s\n", *addr)
	if err := lspsvr.Serve(*addr, srv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOError
	}
	return exitSuccess
}
