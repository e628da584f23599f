package lzpi

import (
	"bufio"
	"io"
)

// compressor accumulates up to GroupSize tokens and emits them under one
// control byte. After each rotation the rotor's bit 0 flags a group boundary
// and its high byte is the control-byte bit the next token claims.
type compressor struct {
	n       int
	control uint32
	rotor   uint32
	w       window
	group   [GroupSize]token
}

// encode writes the control byte and the payloads of the n buffered tokens
// to dst: one byte per literal, offset then length per back-reference.
func (c *compressor) encode(dst io.ByteWriter) error {
	if err := dst.WriteByte(byte(c.control)); err != nil {
		return err
	}

	for _, m := range c.group[:c.n] {
		if err := dst.WriteByte(m.off); err != nil {
			return err
		}
		if m.length == 0 {
			continue
		}
		if err := dst.WriteByte(m.length); err != nil {
			return err
		}
	}

	return nil
}

// step rotates the rotor, flushes the previous group at a boundary, then
// buffers one token matched from the window. Precondition: the lookahead is
// not empty.
func (c *compressor) step(dst io.ByteWriter) error {
	if c.rotor = rol(c.rotor); c.rotor&1 != 0 {
		if c.n > 0 {
			if err := c.encode(dst); err != nil {
				return err
			}
			c.n = 0
		}
		c.control = 0
	}

	c.group[c.n] = c.w.match()

	if c.group[c.n].length != 0 {
		c.control |= c.rotor
	}
	c.n++

	return nil
}

// drain compresses whatever remains in the lookahead after the input ended
// and flushes the final short group.
func (c *compressor) drain(dst io.ByteWriter) error {
	for c.w.lookahead.size() > 0 {
		if err := c.step(dst); err != nil {
			return err
		}
	}

	if c.n > 0 {
		return c.encode(dst)
	}

	return nil
}

// Compress reads src until end-of-file and writes its compressed form to dst.
// Neither stream is closed or repositioned. If dst does not implement
// io.ByteWriter it is wrapped in a bufio.Writer that is flushed before
// returning; otherwise flushing any caller-side buffer is the caller's job.
func Compress(dst io.Writer, src io.Reader) error {
	if src == nil {
		return ErrNilReader
	}
	if dst == nil {
		return ErrNilWriter
	}

	bw, flusher := toByteWriter(dst)

	c := compressor{rotor: rotorInit}

	for {
		eof, err := c.w.read(src)
		if err != nil {
			return err
		}
		if eof {
			break
		}
		if err := c.step(bw); err != nil {
			return err
		}
	}

	if err := c.drain(bw); err != nil {
		return err
	}

	if flusher != nil {
		return flusher.Flush()
	}

	return nil
}

// A Writer is a streaming compressor. Bytes written are compressed and
// forwarded to the underlying writer; Close drains the window and emits the
// final short group. The output is byte-identical to Compress over the same
// input. The first error is sticky.
//
//	w := lzpi.NewWriter(dst)
//	w.Write(data)
//	w.Close()
type Writer struct {
	c      compressor
	w      writeAndByteWriter
	bw     *bufio.Writer // set when NewWriter wrapped dst itself
	err    error
	closed bool
}

// NewWriter returns a Writer compressing into dst. If dst does not implement
// io.ByteWriter it is wrapped in a bufio.Writer, which Close flushes.
func NewWriter(dst io.Writer) *Writer {
	w := &Writer{}
	w.c.rotor = rotorInit
	if dst == nil {
		w.err = ErrNilWriter
		return w
	}
	w.w, w.bw = toByteWriter(dst)

	return w
}

// Write implements io.Writer. A token is emitted only while the lookahead is
// full, so every match sees maximal context; the tail shorter than the
// lookahead capacity stays buffered until Close or further writes.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, ErrWriterClosed
	}

	var n int
	for {
		n += w.c.w.fill(p[n:])
		if w.c.w.lookahead.capacity() != 0 {
			break
		}
		if err := w.c.step(w.w); err != nil {
			w.err = err
			return n, err
		}
	}

	return n, nil
}

// Close compresses the buffered tail, flushes the final group, and flushes
// the bufio.Writer if NewWriter added one. It does not close the underlying
// writer. Close after Close is a no-op.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.c.drain(w.w); err != nil {
		w.err = err
		return err
	}

	if w.bw != nil {
		if err := w.bw.Flush(); err != nil {
			w.err = err
			return err
		}
	}

	return nil
}
