package snapshot

import (
	"errors"

	"github.com/arloliu/vecstat/compress"
)

const (
	// headerMagic identifies a vecstat snapshot ("VS" in little-endian).
	headerMagic uint16 = 0x5653
	// formatVersion is the current snapshot format version.
	formatVersion uint8 = 1
	// headerSize is the fixed size of the snapshot header in bytes.
	headerSize = 16

	// univariateRecordSize is the payload size of one univariate partition:
	// count, sum and centered sum of squares as float64.
	univariateRecordSize = 3 * 8
	// bivariateRecordSize is the payload size of one bivariate partition:
	// count, both sums and the three centered residual sums as float64.
	bivariateRecordSize = 6 * 8
)

// Flag byte layout. Bits 2 and 3 are reserved and must be zero.
const (
	flagBigEndian        uint8 = 1 << 0
	flagBivariate        uint8 = 1 << 1
	flagCompressionShift       = 4
	flagCompressionMask  uint8 = 0xF0
)

var (
	// ErrTooSmall indicates the input is shorter than the snapshot header.
	ErrTooSmall = errors.New("snapshot: data shorter than header")
	// ErrInvalidMagic indicates the input does not start with the snapshot magic.
	ErrInvalidMagic = errors.New("snapshot: invalid magic")
	// ErrInvalidVersion indicates an unsupported format version.
	ErrInvalidVersion = errors.New("snapshot: unsupported format version")
	// ErrInvalidFlag indicates a flag byte with reserved bits set or an
	// unknown compression type.
	ErrInvalidFlag = errors.New("snapshot: invalid flag")
	// ErrChecksumMismatch indicates the payload checksum does not match the header.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
	// ErrPayloadSize indicates the payload length is inconsistent with the
	// partition count in the header.
	ErrPayloadSize = errors.New("snapshot: payload size mismatch")
	// ErrKindMismatch indicates partitions of different kinds were mixed, or
	// a snapshot of one kind was decoded as the other.
	ErrKindMismatch = errors.New("snapshot: partition kind mismatch")
	// ErrSealed indicates an append after Finish.
	ErrSealed = errors.New("snapshot: encoder already finished")
)

// Kind identifies the partition kind stored in a snapshot.
type Kind uint8

const (
	// KindUnivariate marks a snapshot of univariate partitions.
	KindUnivariate Kind = iota
	// KindBivariate marks a snapshot of bivariate partitions.
	KindBivariate
)

func (k Kind) String() string {
	switch k {
	case KindUnivariate:
		return "Univariate"
	case KindBivariate:
		return "Bivariate"
	default:
		return "Unknown"
	}
}

// recordSize returns the payload bytes per partition of this kind.
func (k Kind) recordSize() int {
	if k == KindBivariate {
		return bivariateRecordSize
	}

	return univariateRecordSize
}

func encodeFlag(bigEndian bool, kind Kind, compression compress.CompressionType) uint8 {
	flag := uint8(compression) << flagCompressionShift
	if bigEndian {
		flag |= flagBigEndian
	}
	if kind == KindBivariate {
		flag |= flagBivariate
	}

	return flag
}

func decodeFlag(flag uint8) (bigEndian bool, kind Kind, compression compress.CompressionType, err error) {
	if flag&^(flagBigEndian|flagBivariate|flagCompressionMask) != 0 {
		return false, 0, 0, ErrInvalidFlag
	}

	bigEndian = flag&flagBigEndian != 0
	kind = KindUnivariate
	if flag&flagBivariate != 0 {
		kind = KindBivariate
	}
	compression = compress.CompressionType(flag >> flagCompressionShift)
	if _, err := compress.GetCodec(compression); err != nil {
		return false, 0, 0, ErrInvalidFlag
	}

	return bigEndian, kind, compression, nil
}
