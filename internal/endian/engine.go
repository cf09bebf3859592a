// Package endian selects the byte order of encoded report payloads.
//
// Engine combines binary.ByteOrder and binary.AppendByteOrder so encoders can append
// fixed-width values directly to a buffer, and decoders can read them back, through one
// value. Payloads are little-endian unless the producer asks for big-endian output.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Engine reads and appends fixed-width integers in one byte order.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine.
func Little() Engine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() Engine {
	return binary.BigEndian
}

// Native returns the engine matching the host byte order.
func Native() Engine {
	var probe uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&probe))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBig reports whether e writes the most significant byte first.
func IsBig(e Engine) bool {
	return e == binary.BigEndian
}

// ForFlag returns the big-endian engine when big is set, little-endian otherwise.
func ForFlag(big bool) Engine {
	if big {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
