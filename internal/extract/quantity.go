package extract

import (
	"strconv"
	"strings"
)

// Quantity parsing uses a fixed unit table rather than failing a whole
// listing on one malformed value: unparsable quantities normalize to 0.

// MemoryKi converts a memory quantity string to kibibytes.
//
//	"2Gi"   -> 2097152
//	"4096Mi"-> 4194304
//	"100"   -> 100
//	"bad"   -> 0
func MemoryKi(quantity string) int64 {
	switch {
	case strings.HasSuffix(quantity, "Ki"):
		return parseInt(strings.TrimSuffix(quantity, "Ki"))
	case strings.HasSuffix(quantity, "Mi"):
		return parseInt(strings.TrimSuffix(quantity, "Mi")) * 1024
	case strings.HasSuffix(quantity, "Gi"):
		return parseInt(strings.TrimSuffix(quantity, "Gi")) * 1024 * 1024
	default:
		return parseInt(quantity)
	}
}

// CPUMillis converts a CPU quantity string to millicores. Plain values are
// whole or fractional cores ("8" -> 8000, "0.5" -> 500); "m"-suffixed values
// are already millicores. Unparsable values normalize to 0.
func CPUMillis(quantity string) int64 {
	if strings.HasSuffix(quantity, "m") {
		return parseInt(strings.TrimSuffix(quantity, "m"))
	}
	cores, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return 0
	}
	return int64(cores * 1000)
}

func parseInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
