package lzpi

// failureTable fills t over the lookahead: t[k] is the length of the longest
// proper prefix of the first k+1 lookahead bytes that is also a suffix of
// them. Indices are virtual and reach cells through ringMask. The table is
// not used when the lookahead holds fewer than two bytes.
func (w *window) failureTable(t *[WindowSize]byte) {
	if w.lookahead.size() < 2 {
		return
	}

	i := w.lookahead.tl
	j := i + 1
	t[0] = 0

	for j != w.lookahead.hd {
		switch {
		case w.bf[ringMask(i)] == w.bf[ringMask(j)]:
			i++
			t[j-w.lookahead.tl] = byte(i - w.lookahead.tl)
			j++
		case i == w.lookahead.tl:
			t[j-w.lookahead.tl] = 0
			j++
		default:
			i = w.lookahead.tl + uint64(t[i-w.lookahead.tl-1])
		}
	}
}

// pair is a longest-match search result: o is the match start relative to the
// dictionary tail, l the match length.
type pair struct {
	o uint64
	l uint64
}

// search finds the longest prefix of the lookahead occurring as a substring
// of the dictionary, allowing the match to overlap into the lookahead itself
// (run-length style). KMP over two virtual cursors: i scans the lookahead, j
// the dictionary; a mismatch after a partial match repositions i with the
// failure table instead of rescanning, and j never moves backward.
func (w *window) search() pair {
	var t [WindowSize]byte
	var p pair

	if w.lookahead.size() == 0 {
		return p
	}

	w.failureTable(&t)

	i := w.lookahead.tl
	j := w.dictionary.tl

	for j != w.lookahead.hd {
		l := i - w.lookahead.tl
		o := j - w.dictionary.tl - l

		// No start position remains once the candidate offset leaves the
		// dictionary.
		if o == w.dictionary.size() {
			break
		}

		switch {
		case w.bf[ringMask(i)] == w.bf[ringMask(j)]:
			j++
			i++
			if i == w.lookahead.hd {
				return pair{o, l + 1}
			}
		case i == w.lookahead.tl:
			j++
		default:
			i = w.lookahead.tl + uint64(t[l-1])
			if l > p.l {
				p = pair{o, l}
			}
		}
	}

	return p
}
