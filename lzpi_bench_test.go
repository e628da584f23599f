package lzpi

import (
	"bytes"
	"io"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func BenchmarkCompress(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var buf bytes.Buffer
	if err := Compress(&buf, bytes.NewReader(data)); err != nil {
		b.Fatal(err)
	}
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Compress(io.Discard, bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchInput
	var enc bytes.Buffer
	if err := Compress(&enc, bytes.NewReader(data)); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Decompress(io.Discard, bytes.NewReader(enc.Bytes())); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriter(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := NewWriter(io.Discard)
		if _, err := w.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReader(b *testing.B) {
	data := benchInput
	var enc bytes.Buffer
	if err := Compress(&enc, bytes.NewReader(data)); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := io.Copy(io.Discard, NewReader(bytes.NewReader(enc.Bytes()))); err != nil {
			b.Fatal(err)
		}
	}
}

// Reference codecs on the same input, for ratio and throughput comparison.

func BenchmarkCompressGolangSnappy(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	buf := new(bytes.Buffer)
	w := snappy.NewBufferedWriter(buf)
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(io.Discard)
		w.Write(data)
		w.Close()
	}
}

func BenchmarkCompressKlauspostFlate(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	buf := new(bytes.Buffer)
	w, err := flate.NewWriter(buf, flate.DefaultCompression)
	if err != nil {
		b.Fatal(err)
	}
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(io.Discard)
		w.Write(data)
		w.Close()
	}
}

func BenchmarkCompressKlauspostZstd(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	buf := new(bytes.Buffer)
	w, err := zstd.NewWriter(buf)
	if err != nil {
		b.Fatal(err)
	}
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(io.Discard)
		w.Write(data)
		w.Close()
	}
}

func BenchmarkCompressPierrecLZ4(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	buf := new(bytes.Buffer)
	w := lz4.NewWriter(buf)
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(io.Discard)
		w.Write(data)
		w.Close()
	}
}
