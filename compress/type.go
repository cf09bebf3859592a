package compress

import (
	"fmt"
	"strings"
)

// Type identifies a compression algorithm. The value is stored in report envelope
// headers, so existing values must never be renumbered.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores the payload as is.
	TypeZstd Type = 0x2 // TypeZstd is Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 is S2 compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 is LZ4 block compression.
)

// Types returns every supported compression type.
func Types() []Type {
	return []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4}
}

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Valid reports whether t is a supported compression type.
func (t Type) Valid() bool {
	return t >= TypeNone && t <= TypeLZ4
}

// ParseType maps a name such as "zstd" to its Type. The empty string means TypeNone.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return TypeNone, nil
	case "zstd":
		return TypeZstd, nil
	case "s2":
		return TypeS2, nil
	case "lz4":
		return TypeLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type %q", name)
	}
}
