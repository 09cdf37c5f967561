package protocol

import "math"

// Positions leave the server XORed with the owning session's key. The XOR is
// applied to the IEEE-754 bit pattern so the round trip is exact. This only
// deters casual tampering; the key is broadcast alongside the data.

func keyMask(key uint32) uint64 {
	return uint64(key)<<32 | uint64(key)
}

func ObfuscateCoord(v float64, key uint32) uint64 {
	return math.Float64bits(v) ^ keyMask(key)
}

func RevealCoord(masked uint64, key uint32) float64 {
	return math.Float64frombits(masked ^ keyMask(key))
}
