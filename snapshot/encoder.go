package snapshot

import (
	"math"

	"github.com/arloliu/vecstat/compress"
	"github.com/arloliu/vecstat/internal/hash"
	"github.com/arloliu/vecstat/stat"
)

// Encoder builds a snapshot incrementally. Partitions are appended with
// AddPartition or AddBivariate; the first append fixes the snapshot kind and
// subsequent appends of the other kind fail with ErrKindMismatch. Finish
// seals the snapshot and returns the encoded bytes.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	cfg     *encoderConfig
	kind    Kind
	sealed  bool
	payload []byte
	count   uint32
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: optional configuration (WithCompression, WithLittleEndian, WithBigEndian)
//
// Returns:
//   - *Encoder: the created encoder
//   - error: if an option fails validation
//
// Example:
//
//	enc, err := snapshot.NewEncoder(snapshot.WithCompression(compress.CompressionZstd))
//	if err != nil { ... }
//	for _, p := range parts {
//	    enc.AddPartition(p)
//	}
//	data, err := enc.Finish()
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// AddPartition appends a univariate partition to the snapshot.
func (e *Encoder) AddPartition(p stat.Partition) error {
	if err := e.setKind(KindUnivariate); err != nil {
		return err
	}

	e.payload = e.appendFloats(e.payload, p.Count, p.Sum, p.SSR)
	e.count++

	return nil
}

// AddBivariate appends a bivariate partition to the snapshot.
func (e *Encoder) AddBivariate(p stat.BivariatePartition) error {
	if err := e.setKind(KindBivariate); err != nil {
		return err
	}

	e.payload = e.appendFloats(e.payload, p.Count, p.SumX, p.SumY, p.SSRX, p.SSRY, p.SSRXY)
	e.count++

	return nil
}

// Finish seals the encoder and returns the encoded snapshot. The checksum is
// computed over the uncompressed payload before the codec runs, so a decoder
// can verify integrity after decompression regardless of the codec used.
// Finish may be called once; the encoder cannot be reused afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	e.sealed = true

	codec, err := compress.GetCodec(e.cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(e.payload)
	if err != nil {
		return nil, err
	}

	flag := encodeFlag(e.cfg.bigEndian, e.kind, e.cfg.compression)

	buf := make([]byte, 0, headerSize+len(compressed))
	buf = e.cfg.engine.AppendUint16(buf, headerMagic)
	buf = append(buf, formatVersion, flag)
	buf = e.cfg.engine.AppendUint32(buf, e.count)
	buf = e.cfg.engine.AppendUint64(buf, hash.Checksum(e.payload))
	buf = append(buf, compressed...)

	return buf, nil
}

// Count returns the number of partitions appended so far.
func (e *Encoder) Count() int {
	return int(e.count)
}

// Kind returns the snapshot kind. Before the first append it reports
// KindUnivariate.
func (e *Encoder) Kind() Kind {
	return e.kind
}

func (e *Encoder) setKind(kind Kind) error {
	if e.sealed {
		return ErrSealed
	}
	if e.count == 0 {
		e.kind = kind
		return nil
	}
	if e.kind != kind {
		return ErrKindMismatch
	}

	return nil
}

func (e *Encoder) appendFloats(buf []byte, values ...float64) []byte {
	for _, v := range values {
		buf = e.cfg.engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

// Marshal encodes univariate partitions as a snapshot in one call.
func Marshal(parts []stat.Partition, opts ...Option) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		if err := enc.AddPartition(p); err != nil {
			return nil, err
		}
	}

	return enc.Finish()
}

// MarshalBivariate encodes bivariate partitions as a snapshot in one call.
func MarshalBivariate(parts []stat.BivariatePartition, opts ...Option) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}
	enc.kind = KindBivariate
	for _, p := range parts {
		if err := enc.AddBivariate(p); err != nil {
			return nil, err
		}
	}

	return enc.Finish()
}
