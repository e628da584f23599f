package lzpi

// A token is one unit of the compressed stream. length 0 marks a literal and
// off carries the byte value itself; otherwise the token is a back-reference
// to a run of length+1 bytes starting off+1 bytes behind the dictionary head.
type token struct {
	off    byte
	length byte
}

// match searches the window for the longest match and applies the emit
// policy, shifting the window past the consumed bytes. Matches shorter than
// two bytes are emitted as literals. A two-byte match is also demoted to a
// literal when the byte after it repeats the first byte and the one after
// that repeats it again or continues the dictionary run: stepping one byte
// forward then tends to expose a longer match.
func (w *window) match() token {
	p := w.search()
	tl := w.lookahead.tl

	// Not worth encoding.
	if p.l < 2 ||
		p.l == 2 && w.lookahead.size() > 3 &&
			w.bf[ringMask(tl+2)] == w.bf[ringMask(tl)] &&
			(w.bf[ringMask(tl+3)] == w.bf[ringMask(tl)] ||
				w.bf[ringMask(tl+3)] == w.bf[ringMask(w.dictionary.tl+p.l)]) {
		m := token{off: w.bf[ringMask(tl)]}
		w.shift(1)

		return m
	}

	m := token{
		off:    byte(w.dictionary.size() - p.o - 1),
		length: byte(p.l - 1),
	}
	w.shift(p.l)

	return m
}
