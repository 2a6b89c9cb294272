// Command cc86 compiles a subset of C to x86-64 assembly text.
//
// Usage:
//
//	cc86 <path-or-program>   # a path if it exists on disk, else inline source
//	cc86 -i <program-text>   # force the argument to be inline source
//	cc86 < file.c            # read source from stdin
//	cc86 -o out.s ...        # write assembly to a file instead of stdout
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/asayers/cc86/pkg/compiler"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		inline     string
		haveInline bool
		outPath    string
		configPath string
		haveConfig bool
		positional string
		havePos    bool
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-i":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "cc86: -i requires an argument")
				return 1
			}
			inline = args[i]
			haveInline = true
		case "-o":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "cc86: -o requires an argument")
				return 1
			}
			outPath = args[i]
		case "-config":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "cc86: -config requires an argument")
				return 1
			}
			configPath = args[i]
			haveConfig = true
		default:
			positional = args[i]
			havePos = true
		}
	}

	if !haveConfig {
		configPath = "cc86.yaml"
	}
	cfg, err := compiler.LoadConfig(configPath, haveConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cc86: config error:", err)
		return 1
	}

	src, err := resolveSource(inline, haveInline, positional, havePos)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cc86:", err)
		return 1
	}

	asm, err := compiler.Compile(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, compiler.FormatDiagnostic(os.Stderr, err, src, cfg.ColorMode()))
		return 1
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cc86: write error:", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	fmt.Fprint(out, asm)
	return 0
}

// resolveSource implements the two CLI shapes from the external
// interface plus the stdin fallback: -i always forces inline text; a
// bare positional argument is a path if it names an existing file, else
// treated as inline program text; with neither, source is read from
// stdin.
func resolveSource(inline string, haveInline bool, positional string, havePos bool) (string, error) {
	if haveInline {
		return inline, nil
	}
	if havePos {
		if info, err := os.Stat(positional); err == nil && !info.IsDir() {
			data, err := os.ReadFile(positional)
			if err != nil {
				return "", fmt.Errorf("read error: %w", err)
			}
			return string(data), nil
		}
		return positional, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read error: %w", err)
	}
	return string(data), nil
}
