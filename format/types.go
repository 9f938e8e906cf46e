package format

import (
	"fmt"
	"strings"
)

type (
	CompressionType uint8
	Ordering        uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Ordering bits describe how a vocabulary was ordered before codes were assigned.
const (
	OrderFirstSeen Ordering = 0x0 // OrderFirstSeen keeps first-appearance order.
	OrderFrequency Ordering = 0x1 // OrderFrequency sorts by descending occurrence count.
	OrderReversed  Ordering = 0x2 // OrderReversed inverts the order, after any frequency sort.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompression parses a case-insensitive compression name such as "zstd".
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", name)
	}
}

// OrderingOf builds the ordering for the given pipeline flags.
func OrderingOf(frequency, reversed bool) Ordering {
	o := OrderFirstSeen
	if frequency {
		o |= OrderFrequency
	}
	if reversed {
		o |= OrderReversed
	}

	return o
}

// Frequency reports whether the frequency bit is set.
func (o Ordering) Frequency() bool {
	return o&OrderFrequency != 0
}

// Reversed reports whether the reversed bit is set.
func (o Ordering) Reversed() bool {
	return o&OrderReversed != 0
}

func (o Ordering) String() string {
	switch o {
	case OrderFirstSeen:
		return "FirstSeen"
	case OrderFrequency:
		return "Frequency"
	case OrderReversed:
		return "Reversed"
	case OrderFrequency | OrderReversed:
		return "Frequency+Reversed"
	default:
		return "Unknown"
	}
}
