package lzpi

import (
	"bufio"
	"io"
)

// writeAndByteWriter is the output side of the codec. Group serialization is
// byte-oriented, so the destination must take single-byte writes without
// per-call overhead.
type writeAndByteWriter interface {
	io.Writer
	io.ByteWriter
}

// toByteWriter returns dst as a writeAndByteWriter. When dst lacks WriteByte
// it is wrapped in a bufio.Writer, also returned as flusher; the caller must
// flush it after the last write.
func toByteWriter(dst io.Writer) (w writeAndByteWriter, flusher *bufio.Writer) {
	if w, ok := dst.(writeAndByteWriter); ok {
		return w, nil
	}

	bw := bufio.NewWriter(dst)

	return bw, bw
}

// toByteReader returns src as an io.ByteReader, wrapping it in a bufio.Reader
// when needed.
func toByteReader(src io.Reader) io.ByteReader {
	if br, ok := src.(io.ByteReader); ok {
		return br
	}

	return bufio.NewReader(src)
}
