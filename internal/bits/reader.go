// Package bits provides an MSB-first bitstream reader for the fixed-width
// fields of MPEG-4 configuration structures.
package bits

// Reader reads bits from a byte buffer, most significant bit first.
//
// Reads past the end of the buffer return zero and set a sticky error flag,
// so a parsing sequence can check Error once at the end instead of after
// every read.
type Reader struct {
	data []byte
	pos  int // bit offset from the start of data
	err  bool
}

// NewReader creates a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Error reports whether a read or flush ran past the end of the buffer.
func (r *Reader) Error() bool {
	return r.err
}

// BitsLeft returns the number of unread bits.
func (r *Reader) BitsLeft() int {
	return len(r.data)*8 - r.pos
}

// ShowBits returns the next n bits without consuming them. n must be 0-32.
// It returns 0 when fewer than n bits remain, without setting the error
// flag; peeking is not an error, consuming is.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 || r.err || int(n) > r.BitsLeft() {
		return 0
	}
	var v uint32
	for i := r.pos; i < r.pos+int(n); i++ {
		bit := (r.data[i/8] >> (7 - uint(i)%8)) & 1
		v = v<<1 | uint32(bit)
	}
	return v
}

// GetBits reads and returns the next n bits. n must be 0-32.
func (r *Reader) GetBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	if r.err || int(n) > r.BitsLeft() {
		r.err = true
		return 0
	}
	v := r.ShowBits(n)
	r.pos += int(n)
	return v
}

// Get1Bit reads and returns a single bit.
func (r *Reader) Get1Bit() uint8 {
	return uint8(r.GetBits(1))
}

// FlushBits discards n bits.
func (r *Reader) FlushBits(n uint) {
	if r.err || int(n) > r.BitsLeft() {
		r.err = true
		return
	}
	r.pos += int(n)
}
