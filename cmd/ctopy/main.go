// Command ctopy translates a small C-family source file into its
// indentation-structured target-language equivalent.
package main

import (
	"flag"
	"fmt"
	"os"

	"ctopy/pkg/pathutil"
	"ctopy/pkg/translator"
)

func main() {
	inPath := flag.String("in", "", "input source file path")
	outPath := flag.String("out", "", "output file path (default: input with .py extension)")
	checkOnly := flag.Bool("check", false, "parse the input and report errors without writing output")
	verifyPython := flag.Bool("verify-python", false, "parse the emitted text as Python and fail if it is not syntactically valid")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file>")
		flag.Usage()
		os.Exit(2)
	}

	fullPath, _, err := pathutil.Resolve(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve input path %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	source, err := os.ReadFile(fullPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", fullPath, err)
		os.Exit(1)
	}

	output, err := translator.Translate(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "translation failed: %v\n", err)
		os.Exit(1)
	}

	if *verifyPython {
		if err := translator.ValidatePythonSyntax(output); err != nil {
			fmt.Fprintf(os.Stderr, "emitted text is not valid Python: %v\n", err)
			os.Exit(1)
		}
	}

	if *checkOnly {
		fmt.Println("ok")
		return
	}

	out := *outPath
	if out == "" {
		out = pathutil.DefaultOutputPath(fullPath)
	}

	if err := os.WriteFile(out, []byte(output), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output file %q: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("translated %d bytes -> %s\n", len(output), out)
}
