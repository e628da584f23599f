package lzpi

import (
	"errors"
	"io"
)

// window is the LZSS sliding window: two consecutive rings, dictionary and
// lookahead, over one physical buffer. The lookahead tail always equals the
// dictionary head, so a match may run off the dictionary into the lookahead
// and shifting consumed bytes is pure cursor arithmetic.
type window struct {
	dictionary ring
	lookahead  ring
	bf         [bufferSize]byte
}

// shift moves n bytes from the front of the lookahead to the back of the
// dictionary, overwriting the oldest dictionary bytes once it is full.
// Precondition: n <= w.lookahead.size().
func (w *window) shift(n uint64) {
	c := w.dictionary.capacity()

	w.dictionary.hd += n
	if n > c {
		w.dictionary.tl += n - c
	}
	w.lookahead.tl += n
}

// read fills the lookahead from src up to its capacity. Short reads that are
// not end-of-file loop; eof reports that src is exhausted, with the lookahead
// holding whatever arrived before it.
func (w *window) read(src io.Reader) (eof bool, err error) {
	for {
		u := w.lookahead.capacity()
		if r := w.lookahead.run(); u > r {
			u = r
		}
		if u == 0 {
			return false, nil
		}

		p := ringMask(w.lookahead.hd)
		n, err := src.Read(w.bf[p : p+u])
		w.lookahead.hd += uint64(n)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}

			return false, err
		}
	}
}

// fill copies bytes from p into the lookahead up to its capacity, using the
// same run arithmetic as read, and returns the number of bytes consumed.
func (w *window) fill(p []byte) int {
	var n int

	for len(p) > 0 {
		u := w.lookahead.capacity()
		if r := w.lookahead.run(); u > r {
			u = r
		}
		if u == 0 {
			break
		}
		if l := uint64(len(p)); u > l {
			u = l
		}

		q := ringMask(w.lookahead.hd)
		copy(w.bf[q:q+u], p[:u])
		w.lookahead.hd += u
		p = p[u:]
		n += int(u)
	}

	return n
}
