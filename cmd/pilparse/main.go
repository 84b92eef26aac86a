// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/parser"
)

type opts struct {
	Entry      string
	DumpTokens bool
	DumpAST    bool
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("pilparse", pflag.ContinueOnError)
	flags.StringVar(&op.Entry, "entry", "auto", "Grammar entry point: pil, asm, or auto (guess from file extension).")
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Print the token stream instead of parsing.")
	flags.BoolVar(&op.DumpAST, "dump-ast", false, "Print the parsed tree on success.")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	targets := flags.Args()
	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "usage: pilparse [--entry pil|asm|auto] [--dump-tokens] [--dump-ast] FILE...")
		os.Exit(2)
	}

	reporter := exc.NewReporter(nil)
	for _, target := range targets {
		runFile(op, reporter, target)
	}

	for _, reported := range reporter.Reported() {
		fmt.Fprintln(os.Stderr, reported.Error())
	}
	if len(reporter.Reported()) > 0 {
		os.Exit(1)
	}
}

func runFile(op *opts, reporter exc.Reporter, target string) {
	contents, err := os.ReadFile(target)
	if err != nil {
		reporter.Report(exc.WrapUnknown(exc.Location{URI: target}, err))
		return
	}
	src := string(contents)

	if op.DumpTokens {
		dumpTokens(target, src)
		return
	}

	entry := op.Entry
	if entry == "auto" {
		entry = guessEntry(target)
	}

	switch entry {
	case "pil":
		file, e := parser.ParsePILFile(target, src)
		if e != nil {
			reporter.Report(e)
			return
		}
		if op.DumpAST {
			fmt.Printf("%#v\n", file)
		}
	case "asm":
		mod, e := parser.ParseASMModule(target, src)
		if e != nil {
			reporter.Report(e)
			return
		}
		if op.DumpAST {
			fmt.Printf("%#v\n", mod)
		}
	default:
		reporter.Report(exc.New(exc.Location{URI: target}, exc.CodeUnknownFatal,
			fmt.Sprintf("unknown entry point %q: expected pil, asm, or auto", entry)))
	}
}

// guessEntry maps a file's extension to a grammar entry point; unrecognized
// extensions default to the PIL grammar.
func guessEntry(target string) string {
	switch strings.ToLower(filepath.Ext(target)) {
	case ".asm":
		return "asm"
	default:
		return "pil"
	}
}

func dumpTokens(uri string, src string) {
	toks, e := parser.TokenizeForDebug(uri, src)
	if e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		return
	}
	for _, t := range toks {
		fmt.Printf("%d:%d %s %q\n", t.Ref.Line, t.Ref.Column, t.Type.String(), t.Text)
	}
}
