// Command ajsonfmt reads JSON from a file or stdin and re-emits it,
// compact by default or pretty-printed with -pretty. Given -diff and
// two file arguments, it prints a compact diff between them instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/d1ced/ajson"
)

func parseFile(a *ajson.Arena, path string) *ajson.Node {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return ajson.Parse(a, a.Dup(src))
}

func main() {
	pretty := flag.Bool("pretty", false, "pretty-print the output")
	indent := flag.Int("indent", 2, "indent width for -pretty (<=0 means 2)")
	diffFlag := flag.Bool("diff", false, "compare two JSON files and print a compact diff")
	flag.Parse()

	if *diffFlag {
		args := flag.Args()
		if len(args) != 2 {
			log.Fatal("-diff requires exactly two file arguments")
		}
		a := ajson.NewArena()
		want := parseFile(a, args[0])
		got := parseFile(a, args[1])
		for _, n := range []*ajson.Node{want, got} {
			if n.IsError() {
				color.New(color.FgRed).Fprintln(os.Stderr, n.AsError().Error())
				os.Exit(1)
			}
		}
		fmt.Print(ajson.DiffCompact(a, want, got))
		return
	}

	var src []byte
	var err error
	if args := flag.Args(); len(args) > 0 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}

	a := ajson.NewArena()
	buf := a.Dup(src)
	root := ajson.Parse(a, buf)
	if root.IsError() {
		color.New(color.FgRed).Fprintln(os.Stderr, root.AsError().Error())
		os.Exit(1)
	}

	if *pretty {
		ajson.DumpPretty(os.Stdout, a, root, *indent)
	} else {
		ajson.DumpCompact(os.Stdout, a, root)
	}
	os.Stdout.Write([]byte{'\n'})
}
