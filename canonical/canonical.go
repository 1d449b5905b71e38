// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package canonical

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// ErrUnsupportedType is returned when a value outside the supported set
// (floats, nils, native maps, unknown types) reaches the encoder. This is a
// programming-contract violation, not a user input error.
var ErrUnsupportedType = errors.New("canonical: unsupported value type")

// maxDepth bounds tree nesting so a cyclic value fails fast instead of
// recursing forever.
const maxDepth = 256

// Pair is one entry of an ordered mapping. Key must be a string or an
// integer; Value may be any supported canonical value.
type Pair struct {
	Key   any
	Value any
}

// Map is an ordered mapping. Insertion order is irrelevant to the encoded
// bytes: entries are re-ordered by encoded-key bytes on every encode. It
// exists instead of a native Go map so that no code path ever depends on map
// iteration order.
type Map []Pair

// Get returns the value for key, if present.
func (m Map) Get(key any) (any, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

var (
	leafEnc cbor.EncMode
	leafDec cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	leafEnc = em

	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	leafDec = dm
}

// Encode serializes v into RFC 8949 core deterministic CBOR bytes.
//
// Map entries are ordered by the byte length of the already-encoded key,
// ties broken by byte-wise comparison of the encoded key bytes. Sequences
// keep their element order. Integers and lengths use shortest-form definite
// encoding. The same logical value always yields the same bytes regardless
// of how it was constructed.
func Encode(v any) ([]byte, error) {
	return encode(v, 0)
}

func encode(v any, depth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels (cyclic value?)", ErrUnsupportedType, maxDepth)
	}

	switch t := v.(type) {
	case Map:
		return encodeMap(t, depth)
	case []any:
		buf := appendHead(nil, 4, uint64(len(t)))
		for _, elem := range t {
			eb, err := encode(elem, depth+1)
			if err != nil {
				return nil, err
			}
			buf = append(buf, eb...)
		}
		return buf, nil
	case []string:
		buf := appendHead(nil, 4, uint64(len(t)))
		for _, elem := range t {
			eb, err := leafEnc.Marshal(elem)
			if err != nil {
				return nil, fmt.Errorf("canonical: string element: %w", err)
			}
			buf = append(buf, eb...)
		}
		return buf, nil
	case []int64:
		buf := appendHead(nil, 4, uint64(len(t)))
		for _, elem := range t {
			eb, err := leafEnc.Marshal(elem)
			if err != nil {
				return nil, fmt.Errorf("canonical: integer element: %w", err)
			}
			buf = append(buf, eb...)
		}
		return buf, nil
	case string, bool, []byte, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		b, err := leafEnc.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("canonical: leaf value: %w", err)
		}
		return b, nil
	case float32, float64:
		return nil, fmt.Errorf("%w: float %v", ErrUnsupportedType, t)
	case nil:
		return nil, fmt.Errorf("%w: nil (absent fields must be omitted, not encoded)", ErrUnsupportedType)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// encodeMap emits a definite-length map. The sort over encoded key bytes is
// the explicit canonicalization step: entry order in the Map never reaches
// the wire.
func encodeMap(m Map, depth int) ([]byte, error) {
	type entry struct {
		key []byte
		val []byte
	}

	entries := make([]entry, 0, len(m))
	for _, p := range m {
		kb, err := encodeKey(p.Key)
		if err != nil {
			return nil, err
		}
		vb, err := encode(p.Value, depth+1)
		if err != nil {
			return nil, fmt.Errorf("canonical: value for key %v: %w", p.Key, err)
		}
		entries = append(entries, entry{key: kb, val: vb})
	}

	// Shorter encoded keys first; ties broken byte-wise.
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].key, entries[j].key
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return bytes.Compare(a, b) < 0
	})

	buf := appendHead(nil, 5, uint64(len(entries)))
	for _, e := range entries {
		buf = append(buf, e.key...)
		buf = append(buf, e.val...)
	}
	return buf, nil
}

func encodeKey(k any) ([]byte, error) {
	switch k.(type) {
	case string, int, int64, uint64:
		b, err := leafEnc.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("canonical: map key: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: map key %T", ErrUnsupportedType, k)
	}
}

// appendHead appends a shortest-form definite-length CBOR head for the given
// major type and argument.
func appendHead(b []byte, major byte, n uint64) []byte {
	mt := major << 5
	switch {
	case n < 24:
		return append(b, mt|byte(n))
	case n <= 0xff:
		return append(b, mt|24, byte(n))
	case n <= 0xffff:
		return append(b, mt|25, byte(n>>8), byte(n))
	case n <= 0xffffffff:
		return append(b, mt|26, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	default:
		return append(b, mt|27,
			byte(n>>56), byte(n>>48), byte(n>>40), byte(n>>32),
			byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
}

// Decode parses CBOR bytes into canonical values: Map for mappings, []any
// for arrays, string/bool/[]byte/uint64/int64 for leaves. Floats and other
// unsupported items are rejected. Decode(Encode(v)) followed by Encode
// reproduces the original bytes.
func Decode(data []byte) (any, error) {
	var generic any
	if err := leafDec.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("canonical: decode: %w", err)
	}
	return fromGeneric(generic, 0)
}

func fromGeneric(v any, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels", ErrUnsupportedType, maxDepth)
	}

	switch t := v.(type) {
	case map[any]any:
		m := make(Map, 0, len(t))
		for k, val := range t {
			key, err := fromGenericKey(k)
			if err != nil {
				return nil, err
			}
			cv, err := fromGeneric(val, depth+1)
			if err != nil {
				return nil, err
			}
			m = append(m, Pair{Key: key, Value: cv})
		}
		return m, nil
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			cv, err := fromGeneric(elem, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	case string, bool, []byte, uint64, int64:
		return t, nil
	case nil:
		return nil, fmt.Errorf("%w: null item", ErrUnsupportedType)
	default:
		return nil, fmt.Errorf("%w: decoded %T", ErrUnsupportedType, v)
	}
}

func fromGenericKey(k any) (any, error) {
	switch t := k.(type) {
	case string, uint64, int64:
		return t, nil
	default:
		return nil, fmt.Errorf("%w: decoded map key %T", ErrUnsupportedType, k)
	}
}
