package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/paco/calc"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI ("C.REPL"), where users may enter
// arithmetic expressions. C.REPL will evaluate an expression and print out
// the result.
//
// Commands:
//
//    :tokens   print the token inventory of the calculator language
//    :quit     leave the shell (<ctrl>D works as well)
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	for _, key := range []string{"paco.lexer", "paco.comb", "paco.calc"} {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	pterm.Info.Println("Welcome to CREPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// evaluate any expression given on the command line
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		eval(input)
	}
	//
	// set up REPL and start receiving expressions
	repl, err := readline.New("crepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return
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
		if quit := execute(line); quit {
			break
		}
	}
	println("Good bye!")
}

// tracer traces with key 'paco.calc'.
func tracer() tracing.Trace {
	return tracing.Select("paco.calc")
}

// execute runs a single REPL line, either a command or an expression.
// It returns true if the user wants to quit.
func execute(line string) bool {
	switch line {
	case ":quit":
		return true
	case ":tokens":
		printTokenInventory()
		return false
	}
	eval(line)
	return false
}

func eval(input string) {
	v, err := calc.Eval(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(fmt.Sprintf("%s = %g", input, v))
}

// printTokenInventory displays the calculator tokenizer's label set and its
// spec fingerprint.
func printTokenInventory() {
	tz := calc.Tokenizer()
	for _, label := range tz.Labels() {
		pterm.Println(label)
	}
	pterm.Info.Println("signature " + tz.Signature())
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
