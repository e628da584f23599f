package lzpi

import (
	"errors"
	"io"
)

// decoder replays a token stream into a WindowSize output ring. The uint8
// cursor gives modular back-distance arithmetic for free; this ties the
// decoder to WindowSize being 256.
type decoder struct {
	out     [WindowSize]byte
	cursor  uint8
	control uint32
	rotor   uint32
}

// next decodes one token into buf and returns the number of bytes produced.
// A clean end of input at a token boundary returns io.EOF; end of input
// inside a group's framing returns ErrUnexpectedEOF.
func (d *decoder) next(br io.ByteReader, buf *[MaxMatch]byte) (int, error) {
	c, err := br.ReadByte()
	if err != nil {
		return 0, err
	}

	// At a group boundary the byte just read is the control byte and the
	// first token byte follows immediately.
	if d.rotor = rol(d.rotor); d.rotor&1 != 0 {
		d.control = uint32(c)
		if c, err = br.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrUnexpectedEOF
			}

			return 0, err
		}
	}

	if d.control&d.rotor == 0 {
		d.out[d.cursor] = c
		d.cursor++
		buf[0] = c

		return 1, nil
	}

	length, err := br.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrUnexpectedEOF
		}

		return 0, err
	}

	// The maximal distance wraps dist to 0: the cell at the cursor still
	// holds the byte emitted exactly WindowSize positions back, and is read
	// before being overwritten.
	dist := c + 1
	n := int(length) + 1
	for i := 0; i < n; i++ {
		b := d.out[d.cursor-dist]
		d.out[d.cursor] = b
		d.cursor++
		buf[i] = b
	}

	return n, nil
}

// Decompress reads the compressed stream from src until end-of-file and
// writes the decoded bytes to dst. Neither stream is closed or repositioned.
// The stream must end between tokens, and a final group may hold fewer than
// GroupSize tokens; ending right after a control byte or inside a
// back-reference is ErrUnexpectedEOF.
func Decompress(dst io.Writer, src io.Reader) error {
	if src == nil {
		return ErrNilReader
	}
	if dst == nil {
		return ErrNilWriter
	}

	br := toByteReader(src)
	bw, flusher := toByteWriter(dst)

	d := decoder{rotor: rotorInit}
	var buf [MaxMatch]byte

	for {
		n, err := d.next(br, &buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return err
		}
		if _, err := bw.Write(buf[:n]); err != nil {
			return err
		}
	}

	if flusher != nil {
		return flusher.Flush()
	}

	return nil
}

// A Reader is a streaming decompressor. It consumes the underlying reader
// token by token and serves the decoded bytes across Read calls of any size,
// returning io.EOF exactly at a clean token boundary.
//
//	r := lzpi.NewReader(src)
//	io.Copy(dst, r)
type Reader struct {
	br     io.ByteReader
	d      decoder
	buf    [MaxMatch]byte
	toRead []byte // decoded bytes not yet returned
	err    error
}

// NewReader returns a Reader decompressing from src. If src does not
// implement io.ByteReader it is wrapped in a bufio.Reader, so the Reader may
// consume more of src than it decodes.
func NewReader(src io.Reader) *Reader {
	r := &Reader{}
	r.d.rotor = rotorInit
	if src == nil {
		r.err = ErrNilReader
		return r
	}
	r.br = toByteReader(src)

	return r
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.toRead) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		n, err := r.d.next(r.br, &r.buf)
		r.toRead = r.buf[:n]
		r.err = err
	}

	n := copy(p, r.toRead)
	r.toRead = r.toRead[n:]

	return n, nil
}
