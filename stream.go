package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Writer packs codewords into bytes, first bit in the most significant
// position.  Close pads the final byte with zero bits; since padding may
// itself spell out codewords, the reading side must know how many symbols
// to expect.
type Writer[S comparable] struct {
	bw    *bitio.Writer
	codes *CodeTable[S]
	bits  uint64
}

// NewWriter returns a Writer that encodes symbols with codes onto w.
func NewWriter[S comparable](w io.Writer, codes *CodeTable[S]) *Writer[S] {
	return &Writer[S]{bw: bitio.NewWriter(w), codes: codes}
}

// WriteSymbol writes the codeword for symbol.
func (w *Writer[S]) WriteSymbol(symbol S) error {
	hc, err := w.codes.Encode(symbol)
	if err != nil {
		return err
	}
	for index := 0; index < hc.Len(); index++ {
		if err := w.bw.WriteBool(hc.Bit(index)); err != nil {
			return err
		}
	}
	w.bits += uint64(hc.Len())
	return nil
}

// WriteSymbols writes the codewords for every symbol of seq, returning the
// number of symbols written.
func (w *Writer[S]) WriteSymbols(seq []S) (int, error) {
	for index, symbol := range seq {
		if err := w.WriteSymbol(symbol); err != nil {
			return index, err
		}
	}
	return len(seq), nil
}

// Bits returns the number of bits written so far, excluding padding.
func (w *Writer[S]) Bits() uint64 {
	return w.bits
}

// Close pads and flushes the final byte.  It does not close the underlying
// io.Writer.
func (w *Writer[S]) Close() error {
	return w.bw.Close()
}

// Reader unpacks symbols written by a Writer.
type Reader[S comparable] struct {
	br *bitio.Reader
	d  *Decoder[S]
}

// NewReader returns a Reader that decodes symbols from r using d.
func NewReader[S comparable](r io.Reader, d *Decoder[S]) *Reader[S] {
	return &Reader[S]{br: bitio.NewReader(r), d: d}
}

// ReadSymbol reads one symbol.  It returns io.EOF if the input ends before
// the first bit of a codeword, and an error wrapping both
// ErrMalformedStream and io.ErrUnexpectedEOF if it ends inside one.
func (r *Reader[S]) ReadSymbol() (S, error) {
	var zero S
	buf := make([]byte, 0, r.d.MaxSize())
	for {
		bit, err := r.br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(buf) == 0 {
					return zero, io.EOF
				}
				return zero, fmt.Errorf("%w: %w", ErrMalformedStream, io.ErrUnexpectedEOF)
			}
			return zero, err
		}

		if bit {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}

		symbol, ok, minSize, _ := r.d.Decode(Code(buf))
		if ok {
			return symbol, nil
		}
		if minSize == 0 {
			return zero, fmt.Errorf("%w: no codeword begins with %s", ErrMalformedStream, Code(buf))
		}
	}
}

// ReadSymbols reads exactly n symbols.  Input ending early is reported as
// io.ErrUnexpectedEOF.
func (r *Reader[S]) ReadSymbols(n int) ([]S, error) {
	out := make([]S, 0, n)
	for len(out) < n {
		symbol, err := r.ReadSymbol()
		if err == io.EOF {
			return out, io.ErrUnexpectedEOF
		}
		if err != nil {
			return out, err
		}
		out = append(out, symbol)
	}
	return out, nil
}
