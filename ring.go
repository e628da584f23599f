package lzpi

// A ring is a pair of monotonically non-decreasing virtual cursors into the
// shared window buffer. The head is the next cell to write, the tail the
// oldest live byte; hd-tl is the number of live bytes. Cursors are 64-bit so
// they cannot wrap within any realistic stream.
type ring struct {
	hd uint64
	tl uint64
}

// size returns the number of live bytes.
func (r ring) size() uint64 {
	return r.hd - r.tl
}

// capacity returns the free space.
func (r ring) capacity() uint64 {
	return WindowSize - r.size()
}

// run returns the contiguous bytes writable at the physical head before the
// shared buffer wraps.
func (r ring) run() uint64 {
	return bufferSize - ringMask(r.hd)
}

// ringMask maps a virtual index to its physical position in the window
// buffer. The modulus is bufferSize because both rings share one buffer.
func ringMask(v uint64) uint64 {
	return v & (bufferSize - 1)
}
