// Package snapshot serializes statistical partitions into a compact binary
// format for transport and storage.
//
// A snapshot holds one or more partitions of the same kind, univariate or
// bivariate, each stored as raw float64 sums. Re-loading a snapshot and
// merging its partitions reproduces the exact accumulator state, so snapshots
// can be used to checkpoint long-running aggregations or to combine results
// across processes.
//
// # Format
//
// Every snapshot starts with a 16-byte header:
//
//	Offset  Size  Field
//	0       2     magic (0x5653)
//	2       1     format version
//	3       1     flag: endianness, partition kind, compression type
//	4       4     partition count
//	8       8     xxHash64 checksum of the uncompressed payload
//
// The flag byte is endian-free; the decoder reads it first and uses the
// endianness it declares to parse the remaining header fields and the
// payload. The payload is a flat sequence of float64 values, 3 per
// univariate partition or 6 per bivariate partition, optionally compressed
// with one of the codecs from the compress package.
//
// # Usage
//
// The Marshal and Unmarshal helpers cover the common single-shot case:
//
//	data, err := snapshot.Marshal(parts, snapshot.WithCompression(compress.CompressionZstd))
//	...
//	parts, err := snapshot.Unmarshal(data)
//
// The Encoder and Decoder types expose the same functionality incrementally.
package snapshot
