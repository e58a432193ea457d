// Package compress provides compression codecs for vecstat snapshot payloads.
//
// Snapshot payloads are flat arrays of float64 partition sums. A single
// partition is tiny (24 or 48 bytes), but snapshots carrying thousands of
// shard partitions benefit from general-purpose compression, especially when
// many partitions share magnitude (similar counts, similar sums).
//
// Supported algorithms:
//   - None: no compression (default; snapshots are usually small)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// The Zstd codec has two implementations selected at build time: a cgo
// binding (valyala/gozstd) when cgo is available, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both produce interoperable frames.
//
// All codecs are stateless values and safe for concurrent use.
package compress
