// Command redex parses rule files for the redex term-rewriting language and
// reprints them in canonical form. With --ast it dumps the parsed tree
// instead. Run without files it reads terms interactively.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/peterh/liner"

	"github.com/redex-lang/redex"
)

var cli struct {
	AST   bool     `help:"Dump the parsed syntax tree instead of reprinting."`
	Files []string `arg:"" optional:"" type:"existingfile" help:"Rule files to process."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Description("Formatter and REPL for redex rule files."))
	if len(cli.Files) == 0 {
		ctx.FatalIfErrorf(repl())
		return
	}
	for _, path := range cli.Files {
		code, err := os.ReadFile(path)
		ctx.FatalIfErrorf(err)
		file, err := redex.ReadFile(string(code))
		ctx.FatalIfErrorf(err, "%s", path)
		if cli.AST {
			repr.Println(file)
		} else {
			fmt.Println(file)
		}
	}
}

func repl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	for {
		src, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(src)
		term, err := redex.ReadTerm(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if cli.AST {
			repr.Println(term)
		} else {
			fmt.Println(term)
		}
	}
}
