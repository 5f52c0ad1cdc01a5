package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/auto-stack/autolang/session"
	"github.com/fatih/color"
)

// runREPL implements the interactive loop: `:stats`, `:reset`,
// `exit`/`quit`, and otherwise a line is appended to the running
// session and evaluated (spec §6 "REPL CLI").
func runREPL(ctx context.Context, in io.Reader, out io.Writer, errorLimit int, useColor bool) int {
	prompt := color.New(color.FgGreen)
	errColor := color.New(color.FgRed)

	repl := session.NewReplSession(errorLimit)
	scanner := bufio.NewScanner(in)

	writePrompt := func() {
		if useColor {
			prompt.Fprint(out, "auto> ")
		} else {
			fmt.Fprint(out, "auto> ")
		}
	}

	writePrompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			writePrompt()
			continue
		case "exit", "quit":
			return exitSuccess
		case ":stats":
			st := repl.Stats()
			fmt.Fprintf(out, "files=%d fragments=%d dirty=%d cache-entries=%d\n", st.Files, st.Fragments, st.Dirty, st.CacheEntries)
			writePrompt()
			continue
		case ":reset":
			repl.ResetRuntime()
			fmt.Fprintln(out, "runtime reset")
			writePrompt()
			continue
		}

		res, err := repl.Eval(ctx, line)
		if len(res.Compile.ParseErrors.Errors) > 0 {
			for _, e := range res.Compile.ParseErrors.Errors {
				printErr(out, errColor, useColor, e.Message)
			}
			writePrompt()
			continue
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "warning[%s]: %s\n", w.Code, w.Message)
		}
		if len(res.TypeErrors) > 0 {
			for _, e := range res.TypeErrors {
				printErr(out, errColor, useColor, fmt.Sprintf("error[%s]: %s", e.Code, e.Message))
			}
			writePrompt()
			continue
		}
		if err != nil {
			printErr(out, errColor, useColor, err.Error())
			writePrompt()
			continue
		}
		if res.Evaluated {
			fmt.Fprintln(out, res.Value.String())
		}
		writePrompt()
	}
	fmt.Fprintln(out)
	return exitSuccess
}

func printErr(out io.Writer, c *color.Color, useColor bool, msg string) {
	if useColor {
		c.Fprintln(out, msg)
	} else {
		fmt.Fprintln(out, msg)
	}
}
