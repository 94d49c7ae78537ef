package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/silky/morte"
)

const historyFile = ".morte_history"

var repl = flag.Bool("repl", false, "start an interactive session")

func usage() {
	fmt.Fprint(os.Stderr, "usage: morte [ -repl | file ]\n\n")
	fmt.Fprint(os.Stderr, "morte type checks a calculus-of-constructions term (from file or stdin),\n")
	fmt.Fprint(os.Stderr, "prints its type to stderr and its normal form to stdout.\n")
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if *repl {
		if len(args) != 0 {
			usage()
		}
		os.Exit(runRepl())
	}
	var src []byte
	var err error
	switch len(args) {
	case 0:
		src, err = io.ReadAll(os.Stdin)
	case 1:
		src, err = os.ReadFile(args[0])
	default:
		usage()
	}
	if err != nil {
		errExit(err)
	}
	e, err := morte.Parse(string(src))
	if err != nil {
		errExit(err)
	}
	t, err := morte.TypeOf(e)
	if err != nil {
		errExit(err)
	}
	fmt.Fprintln(os.Stderr, t)
	fmt.Println(morte.Normalize(e))
}

func runRepl() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println("morte. Ctrl+D exits, :quit exits, :type e shows only the type.")
	for {
		line, err := ln.Prompt("λ> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		ln.AppendHistory(line)

		typeOnly := false
		if strings.HasPrefix(input, ":") {
			cmd, rest, _ := strings.Cut(input, " ")
			switch cmd {
			case ":quit", ":q":
				return 0
			case ":type", ":t":
				typeOnly = true
				input = rest
			default:
				fmt.Printf("unknown command %q. Type :quit to exit.\n", cmd)
				continue
			}
		}

		e, err := morte.Parse(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		t, err := morte.TypeOf(e)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if typeOnly {
			fmt.Println(t)
			continue
		}
		fmt.Printf("%v : %v\n", morte.Normalize(e), t)
	}
}
