// Command huffman builds a Huffman code for the characters of a text and
// shows the code, the encoded bits, or compression statistics.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	huffman "github.com/chronos-tachyon/huffmantree"
)

var (
	progressFlag = &cli.BoolFlag{
		Name:    "progress",
		Usage:   "Show a progress bar while reading the input file",
		EnvVars: []string{"HUFFMAN_PROGRESS"},
	}
	noColorFlag = &cli.BoolFlag{
		Name:    "no-color",
		Usage:   "Disable colored output",
		EnvVars: []string{"HUFFMAN_NO_COLOR", "NO_COLOR"},
	}
	canonicalFlag = &cli.BoolFlag{
		Name:    "canonical",
		Usage:   "Reassign codewords canonically, keeping their lengths",
		EnvVars: []string{"HUFFMAN_CANONICAL"},
	}
	colorFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "Alternate background colors between codewords",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the packed bit stream to `FILE` instead of printing bits",
	}
)

func main() {
	app := &cli.App{
		Name:      "huffman",
		Usage:     "Huffman-code the characters of a text",
		ArgsUsage: "[FILE]",
		Flags:     []cli.Flag{progressFlag, noColorFlag},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool(noColorFlag.Name) {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			codesCommand,
			encodeCommand,
			statsCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "huffman: %v\n", err)
		os.Exit(1)
	}
}

// input is the text named on the command line, with its code.
type input struct {
	text  []rune
	freqs huffman.Frequencies[rune]
	tree  *huffman.Tree[rune]
	codes *huffman.CodeTable[rune]
}

// loadInput reads the file named by the first argument, or stdin if there
// is none, and builds its code.
func loadInput(ctx *cli.Context) (*input, error) {
	data, err := readInput(ctx)
	if err != nil {
		return nil, err
	}

	in := &input{text: []rune(string(data))}
	in.freqs = huffman.Tally(in.text)
	in.tree, err = huffman.Build(in.freqs)
	if err != nil {
		return nil, err
	}
	in.codes = in.tree.CodeTable()
	if ctx.Bool(canonicalFlag.Name) {
		in.codes = huffman.Canonical(in.codes)
	}
	return in, nil
}

func readInput(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() == 0 {
		return io.ReadAll(os.Stdin)
	}

	path := ctx.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if ctx.Bool(progressFlag.Name) {
		fi, err := f.Stat()
		if err != nil {
			return nil, err
		}
		bar := pb.Full.Start64(fi.Size())
		bar.SetWriter(os.Stderr)
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
