package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/huffmantree"
)

func TestWritePacked(t *testing.T) {
	text := []rune("mississippi river")
	freqs := huffman.Tally(text)
	tree, err := huffman.Build(freqs)
	require.NoError(t, err)
	in := &input{text: text, freqs: freqs, tree: tree, codes: huffman.Canonical(tree.CodeTable())}

	path := filepath.Join(t.TempDir(), "out.huff")
	require.NoError(t, writePacked(in, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	actual, err := huffman.NewReader(f, huffman.NewDecoder(in.codes)).ReadSymbols(len(text))
	require.NoError(t, err)
	require.Equal(t, text, actual)
}
