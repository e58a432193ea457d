package snapshot

import (
	"math"

	"github.com/arloliu/vecstat/compress"
	"github.com/arloliu/vecstat/endian"
	"github.com/arloliu/vecstat/internal/hash"
	"github.com/arloliu/vecstat/stat"
)

// Decoder reads a snapshot produced by Encoder. NewDecoder validates the
// header, decompresses the payload and verifies its checksum, so the
// accessor methods cannot fail on corrupted input afterwards.
type Decoder struct {
	engine  endian.EndianEngine
	kind    Kind
	count   int
	payload []byte
}

// NewDecoder parses and validates a snapshot.
//
// Parameters:
//   - data: the encoded snapshot
//
// Returns:
//   - *Decoder: the decoder, ready to enumerate partitions
//   - error: ErrTooSmall, ErrInvalidMagic, ErrInvalidVersion, ErrInvalidFlag,
//     ErrPayloadSize or ErrChecksumMismatch on malformed input, or a codec
//     error if decompression fails
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < headerSize {
		return nil, ErrTooSmall
	}

	// The flag byte is position-fixed and endian-free; it tells us how to
	// read everything else.
	bigEndian, kind, compression, err := decodeFlag(data[3])
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	if bigEndian {
		engine = endian.GetBigEndianEngine()
	}

	if engine.Uint16(data[0:2]) != headerMagic {
		return nil, ErrInvalidMagic
	}
	if data[2] != formatVersion {
		return nil, ErrInvalidVersion
	}

	count := int(engine.Uint32(data[4:8]))
	checksum := engine.Uint64(data[8:16])

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, err
	}

	if len(payload) != count*kind.recordSize() {
		return nil, ErrPayloadSize
	}
	if hash.Checksum(payload) != checksum {
		return nil, ErrChecksumMismatch
	}

	return &Decoder{
		engine:  engine,
		kind:    kind,
		count:   count,
		payload: payload,
	}, nil
}

// Kind returns the partition kind stored in the snapshot.
func (d *Decoder) Kind() Kind {
	return d.kind
}

// Count returns the number of partitions stored in the snapshot.
func (d *Decoder) Count() int {
	return d.count
}

// Partitions returns the univariate partitions of the snapshot. It fails
// with ErrKindMismatch on a bivariate snapshot.
func (d *Decoder) Partitions() ([]stat.Partition, error) {
	if d.kind != KindUnivariate {
		return nil, ErrKindMismatch
	}

	parts := make([]stat.Partition, d.count)
	for i := range parts {
		rec := d.record(i, univariateRecordSize)
		parts[i] = stat.Partition{
			Count: d.float(rec, 0),
			Sum:   d.float(rec, 1),
			SSR:   d.float(rec, 2),
		}
	}

	return parts, nil
}

// BivariatePartitions returns the bivariate partitions of the snapshot. It
// fails with ErrKindMismatch on a univariate snapshot.
func (d *Decoder) BivariatePartitions() ([]stat.BivariatePartition, error) {
	if d.kind != KindBivariate {
		return nil, ErrKindMismatch
	}

	parts := make([]stat.BivariatePartition, d.count)
	for i := range parts {
		rec := d.record(i, bivariateRecordSize)
		parts[i] = stat.BivariatePartition{
			Count: d.float(rec, 0),
			SumX:  d.float(rec, 1),
			SumY:  d.float(rec, 2),
			SSRX:  d.float(rec, 3),
			SSRY:  d.float(rec, 4),
			SSRXY: d.float(rec, 5),
		}
	}

	return parts, nil
}

func (d *Decoder) record(i, size int) []byte {
	return d.payload[i*size : (i+1)*size]
}

func (d *Decoder) float(rec []byte, i int) float64 {
	return math.Float64frombits(d.engine.Uint64(rec[i*8 : i*8+8]))
}

// Unmarshal decodes a univariate snapshot in one call.
func Unmarshal(data []byte) ([]stat.Partition, error) {
	dec, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Partitions()
}

// UnmarshalBivariate decodes a bivariate snapshot in one call.
func UnmarshalBivariate(data []byte) ([]stat.BivariatePartition, error) {
	dec, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.BivariatePartitions()
}
