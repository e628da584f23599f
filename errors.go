// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzpi

package lzpi

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrUnexpectedEOF is returned when the compressed stream ends inside a
	// group: between a control byte and its first token, or inside the two
	// bytes of a back-reference.
	ErrUnexpectedEOF = errors.New("unexpected end of input inside group")
	// ErrNilReader is returned when the source stream is nil.
	ErrNilReader = errors.New("reader is nil")
	// ErrNilWriter is returned when the destination stream is nil.
	ErrNilWriter = errors.New("writer is nil")
	// ErrWriterClosed is returned by Writer.Write after Close.
	ErrWriterClosed = errors.New("writer is closed")
)
