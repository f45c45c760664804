package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	huffman "github.com/chronos-tachyon/huffmantree"
)

var codesCommand = &cli.Command{
	Name:      "codes",
	Usage:     "Print the codeword of every character",
	ArgsUsage: "[FILE]",
	Flags:     []cli.Flag{canonicalFlag},
	Action:    printCodes,
}

var encodeCommand = &cli.Command{
	Name:      "encode",
	Usage:     "Encode the text as a bit string or a packed stream",
	ArgsUsage: "[FILE]",
	Flags:     []cli.Flag{canonicalFlag, colorFlag, outputFlag},
	Action:    encodeText,
}

var statsCommand = &cli.Command{
	Name:      "stats",
	Usage:     "Compare the encoded size against 8 bits per character",
	ArgsUsage: "[FILE]",
	Flags:     []cli.Flag{canonicalFlag},
	Action:    printStats,
}

func printCodes(ctx *cli.Context) error {
	in, err := loadInput(ctx)
	if err != nil {
		return err
	}

	var stats [][]string
	for _, f := range in.freqs {
		hc, _ := in.codes.Lookup(f.Symbol)
		stats = append(stats, []string{
			strconv.QuoteRune(f.Symbol),
			strconv.FormatUint(uint64(f.Count), 10),
			string(hc),
			strconv.Itoa(hc.Len()),
		})
	}
	bits, err := in.codes.EncodedLen(in.freqs)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"SYMBOL", "COUNT", "CODEWORD", "BITS"})
	table.SetFooter([]string{"Total", strconv.FormatUint(uint64(in.tree.Weight()), 10), "", strconv.FormatUint(bits, 10)})
	table.AppendBulk(stats)
	table.Render()
	return nil
}

func encodeText(ctx *cli.Context) error {
	in, err := loadInput(ctx)
	if err != nil {
		return err
	}

	if path := ctx.String(outputFlag.Name); path != "" {
		return writePacked(in, path)
	}

	out := bufio.NewWriter(os.Stdout)
	colors := [2]*color.Color{
		color.New(color.FgBlack, color.BgHiRed),
		color.New(color.FgBlack, color.BgHiBlue),
	}
	for index, symbol := range in.text {
		hc, err := in.codes.Encode(symbol)
		if err != nil {
			return err
		}
		if ctx.Bool(colorFlag.Name) {
			colors[index%2].Fprint(out, string(hc))
		} else {
			out.WriteString(string(hc))
		}
	}
	out.WriteByte('\n')
	return out.Flush()
}

func writePacked(in *input, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	w := huffman.NewWriter(bw, in.codes)
	if _, err := w.WriteSymbols(in.text); err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %d symbols (%d bits) to %s\n", len(in.text), w.Bits(), path)
	return nil
}

func printStats(ctx *cli.Context) error {
	in, err := loadInput(ctx)
	if err != nil {
		return err
	}

	bits, err := in.codes.EncodedLen(in.freqs)
	if err != nil {
		return err
	}
	fixedBits := 8 * uint64(len(in.text))
	packedBytes := (bits + 7) / 8

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"METRIC", "VALUE"})
	table.AppendBulk([][]string{
		{"Symbols", strconv.Itoa(len(in.text))},
		{"Distinct symbols", strconv.Itoa(in.tree.NumSymbols())},
		{"Shortest codeword", strconv.Itoa(in.codes.MinSize())},
		{"Longest codeword", strconv.Itoa(in.codes.MaxSize())},
		{"Encoded bits", strconv.FormatUint(bits, 10)},
		{"Packed bytes", strconv.FormatUint(packedBytes, 10)},
		{"Fixed-width bits", strconv.FormatUint(fixedBits, 10)},
		{"Ratio", fmt.Sprintf("%.2f%%", float64(bits)/float64(fixedBits)*100)},
	})
	table.Render()
	return nil
}
