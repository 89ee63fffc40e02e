// Command map2parse parses map2 script files and prints their statement
// AST. Run with no arguments for an interactive prompt.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/peterh/liner"

	"github.com/shiro/map2-legacy/dump"
	"github.com/shiro/map2-legacy/parser"
)

var trace = flag.Bool("trace", false, "print the production trace while parsing")

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		repl()
		return
	}

	exit := 0
	for _, name := range flag.Args() {
		if err := parseFile(name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func parseFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	opts := &parser.ParserOptions{}
	if *trace {
		opts.Trace = os.Stderr
	}

	f, err := parser.Parse(string(data), name, opts)
	if err != nil {
		return err
	}

	fmt.Print(dump.File(f))
	fmt.Printf("%s: %s statements, %s\n",
		name,
		humanize.Comma(int64(len(f.Stmts))),
		humanize.Bytes(uint64(len(data))))
	return nil
}

func repl() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("map2> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		f, err := parser.Parse(input, "(repl)", nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Print(dump.File(f))
	}
}
