// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package canonical implements RFC 8949 §4.2.1 core deterministic CBOR
encoding for survey metadata.

The compatibility contract of this whole service is that a browser, a CLI,
and a chain indexer all compute byte-identical CBOR for the same logical
survey. Encode therefore never relies on Go map iteration order: callers
build trees from the ordered Map type, and every mapping is re-sorted by the
byte length of the already-encoded key (ties broken byte-wise) immediately
before emission. Sequence order, by contrast, is significant and preserved.

Supported values are Map, []any, []string, []int64, string, bool, []byte,
and integers. Floats, nils, and native Go maps fail fast with
ErrUnsupportedType; absent optional fields must be omitted by the caller,
never encoded as null.

Decode is the inverse used for round-trip checks and for reading survey
metadata back off chain; it produces Map/[]any/leaf values such that
Encode(Decode(b)) == b for any b produced by Encode.
*/
package canonical
