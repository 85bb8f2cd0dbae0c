package compress

import (
	"encoding/binary"
	"math"
	"sync"
)

var lsbMask = [8]byte{
	0b00000001,
	0b00000011,
	0b00000111,
	0b00001111,
	0b00011111,
	0b00111111,
	0b01111111,
	0b11111111,
}

// n is in [1, 8].
func getLSB(x byte, n uint8) byte {
	return x & lsbMask[n-1]
}

var bitShifts = [10]uint8{7, 7, 7, 7, 7, 7, 7, 7, 7, 1}

var bufPool = sync.Pool{
	New: func() any {
		return new([11]byte)
	},
}

func encodeUVarint(x uint64) []byte {
	var i int = 0
	buf := bufPool.Get().(*[11]byte)
	for i = 0; i < len(bitShifts); i++ {
		buf[i] = getLSB(byte(x), bitShifts[i]) | 0b10000000
		x = x >> bitShifts[i]
		if x == 0 {
			break
		}
	}

	buf[i] = buf[i] & 0b01111111
	out := append(make([]byte, 0, i+1), buf[:i+1]...)
	bufPool.Put(buf)
	return out
}

func decodeUVarint(buf []byte) (uint64, int) {
	v, n := binary.Uvarint(buf)
	return v, n
}

// DecodeIndices reverses EncodeIndices. decoding stops at the first malformed varint or value above math.MaxInt.
func DecodeIndices(buf []byte) []int {
	var results []int
	for len(buf) > 0 {
		v, n := decodeUVarint(buf)
		if n <= 0 || v > math.MaxInt {
			break
		}

		results = append(results, int(v))
		buf = buf[n:]
	}
	return results
}

// EncodeIndices packs non-negative node indices as unsigned varints. graph snapshots store edge endpoints with it.
func EncodeIndices(arr []int) []byte {

	buf := make([]byte, 0, len(arr))
	for i := 0; i < len(arr); i++ {
		buf = append(buf, encodeUVarint(uint64(arr[i]))...)
	}
	return buf
}
