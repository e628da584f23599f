/*
Package lzpi implements lzpi streaming compression and decompression.

Format: one control byte per group of up to 8 tokens; control bit k (LSB
first) describes the k-th token of the group. A clear bit is a literal
(1 byte), a set bit a back-reference (2 bytes: offset, then length-1).
A back-reference copies length bytes starting offset+1 positions behind the
current output cursor; the copy may overlap its own output for run-length
expansion. Window: 256 bytes of dictionary plus 256 bytes of lookahead in
one buffer. Offsets and lengths are single bytes, so runs reach 256 bytes
and distances 256 positions. The final group may hold fewer than 8 tokens;
the stream has no header, length prefix, or checksum.

The compressor searches the dictionary with Knuth-Morris-Pratt over the
lookahead and lets matches extend into the lookahead itself, so a run longer
than its distance encodes in a single token.

Use Compress(dst, src) / Decompress(dst, src) to transform a whole stream.
Use NewWriter(dst) for a push-style io.WriteCloser compressor.
Use NewReader(src) for a pull-style io.Reader decompressor.

The cmd/lzpi command wraps the codec as a stdin-to-stdout filter.

# Examples

Compress a stream:

	if err := lzpi.Compress(dst, src); err != nil {
		return err
	}

Decompress through an io.Reader, consuming src incrementally:

	r := lzpi.NewReader(src)
	if _, err := io.Copy(dst, r); err != nil {
		return err
	}

Round-trip a buffer:

	var enc, dec bytes.Buffer
	w := lzpi.NewWriter(&enc)
	w.Write(data)
	if err := w.Close(); err != nil {
		return err
	}
	if err := lzpi.Decompress(&dec, &enc); err != nil {
		return err
	}
	// dec holds data
*/
package lzpi
