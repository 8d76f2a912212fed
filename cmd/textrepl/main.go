package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/treetex/syntax"
	"github.com/npillmayer/treetex/texlate"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'treetex.repl'.
func tracer() tracing.Trace {
	return tracing.Select("treetex.repl")
}

// main() starts an interactive CLI, where users may enter infix math
// expressions. The CLI will parse each line, translate the expression tree
// to TeX math markup and print out the result. It is intended as a sandbox
// for experimenting with the known-symbol and known-function tables.
//
// Please refer to packages "texlate" and "syntax".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	for _, key := range []string{"treetex.repl", "treetex.runtime", "treetex.texlate", "treetex.syntax"} {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	pterm.Info.Println("Welcome to TreeTeX") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	translator := texlate.NewTranslator()
	input := strings.Join(flag.Args(), " ")
	if input = strings.TrimSpace(input); input != "" {
		translateLine(translator, input)
	}
	//
	// set up REPL
	repl, err := readline.New("treetex> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		translateLine(translator, line)
	}
	println("Good bye!")
}

// translateLine runs one expression through the parse & translate pipeline
// and prints the markup (or the error).
func translateLine(translator *texlate.Translator, line string) {
	tree, err := syntax.Parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tracer().Debugf("tree = %v", tree)
	out, err := translator.Translate(tree)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(out.Text())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
