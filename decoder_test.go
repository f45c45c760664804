package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestDecoder() *Decoder[string] {
	tree, err := Build(textbookFrequencies())
	if err != nil {
		panic(err)
	}
	return NewDecoder(tree.CodeTable())
}

func TestTree_Decode(t *testing.T) {
	tree, err := Build(textbookFrequencies())
	require.NoError(t, err)

	actual, err := tree.Decode("01100100111")
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "a", "c", "e"}, actual)

	actual, err = tree.Decode("")
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestTree_DecodeMalformed(t *testing.T) {
	tree, err := Build(textbookFrequencies())
	require.NoError(t, err)

	for _, bits := range []Code{"0110", "11", "0x", "2"} {
		t.Run(string(bits), func(t *testing.T) {
			_, err := tree.Decode(bits)
			assert.ErrorIs(t, err, ErrMalformedStream)
		})
	}
}

func TestTree_DecodeSingleSymbol(t *testing.T) {
	tree, err := Build(Frequencies[string]{{"a", 7}})
	require.NoError(t, err)

	actual, err := tree.Decode("000")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a", "a"}, actual)

	_, err = tree.Decode("01")
	assert.ErrorIs(t, err, ErrMalformedStream)
}

func TestTree_DecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		freqs := randomFrequencies(rng, 1+rng.Intn(30))
		tree, err := Build(freqs)
		require.NoError(t, err)

		seq := make([]int, rng.Intn(200))
		for index := range seq {
			seq[index] = freqs[rng.Intn(len(freqs))].Symbol
		}

		bits, err := tree.EncodeSequence(seq)
		require.NoError(t, err)
		actual, err := tree.Decode(bits)
		require.NoError(t, err)
		if len(seq) == 0 {
			assert.Empty(t, actual)
		} else {
			assert.Equal(t, seq, actual, "trial %d", trial)
		}
	}
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		code Code
		ok   bool
		sym  string
		min  int
		max  int
	}

	testData := [...]testRow{
		{code: "", min: 1, max: 4},
		{code: "0", ok: true, sym: "f", min: 1, max: 1},
		{code: "1", min: 3, max: 4},
		{code: "10", min: 3, max: 3},
		{code: "11", min: 3, max: 4},
		{code: "100", ok: true, sym: "c", min: 3, max: 3},
		{code: "101", ok: true, sym: "d", min: 3, max: 3},
		{code: "110", min: 4, max: 4},
		{code: "111", ok: true, sym: "e", min: 3, max: 3},
		{code: "1100", ok: true, sym: "a", min: 4, max: 4},
		{code: "1101", ok: true, sym: "b", min: 4, max: 4},
		{code: "00", min: 0, max: 0},
		{code: "11011", min: 0, max: 0},
	}
	for _, row := range testData {
		t.Run(row.code.String(), func(t *testing.T) {
			sym, ok, min, max := d.Decode(row.code)
			if ok != row.ok {
				t.Errorf("expected ok %v, got %v", row.ok, ok)
			}
			if sym != row.sym {
				t.Errorf("expected symbol %q, got %q", row.sym, sym)
			}
			if min != row.min {
				t.Errorf("expected minimum size %d, got %d", row.min, min)
			}
			if max != row.max {
				t.Errorf("expected maximum size %d, got %d", row.max, max)
			}
		})
	}
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"\") = {-, 1, 4}\n",
		"\tDecode(\"0\") = {f, 1, 1}\n",
		"\tDecode(\"1\") = {-, 3, 4}\n",
		"\tDecode(\"10\") = {-, 3, 3}\n",
		"\tDecode(\"11\") = {-, 3, 4}\n",
		"\tDecode(\"100\") = {c, 3, 3}\n",
		"\tDecode(\"101\") = {d, 3, 3}\n",
		"\tDecode(\"110\") = {-, 4, 4}\n",
		"\tDecode(\"111\") = {e, 3, 3}\n",
		"\tDecode(\"1100\") = {a, 4, 4}\n",
		"\tDecode(\"1101\") = {b, 4, 4}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	assert.Equal(t, 6, d.NumSymbols())
	assert.Equal(t, 1, d.MinSize())
	assert.Equal(t, 4, d.MaxSize())
}
