// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metadata

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/danielhkuo/chainpoll/canonical"
	"github.com/danielhkuo/chainpoll/models"
)

// ErrNotCanonical is returned when bytes handed to SurveyHashFromBytes are
// not already in canonical form, i.e. were not produced by the canonical
// encoder.
var ErrNotCanonical = errors.New("metadata: bytes are not canonical CBOR")

// HashEnvelope wraps a normalized definition under the fixed metadata label.
// This is the hash preimage shape: it never carries a msg field, so two
// definitions differing only in an accompanying display message hash
// identically.
func HashEnvelope(def models.PollDefinition) canonical.Map {
	return canonical.Map{
		{Key: int64(models.MetadataLabel), Value: canonical.Map{
			{Key: "surveyDetails", Value: Normalize(def)},
		}},
	}
}

// EncodeSurvey returns the canonical CBOR bytes of the hash envelope.
// An error here means a structurally invalid tree reached the encoder,
// which is an invariant breach upstream, not a user input problem.
func EncodeSurvey(def models.PollDefinition) ([]byte, error) {
	b, err := canonical.Encode(HashEnvelope(def))
	if err != nil {
		return nil, fmt.Errorf("metadata: encode survey envelope: %w", err)
	}
	return b, nil
}

// SurveyHash returns the survey's content identifier: the Blake2b-256 digest
// of its canonical envelope bytes, as 64 lowercase hex characters.
func SurveyHash(def models.PollDefinition) (string, error) {
	b, err := EncodeSurvey(def)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// SurveyHashFromBytes hashes envelope bytes computed elsewhere (a CLI or an
// indexer re-deriving an identity). The bytes must already be canonical:
// they are decoded and re-encoded, and anything that does not reproduce
// itself is rejected rather than silently hashed.
func SurveyHashFromBytes(data []byte) (string, error) {
	v, err := canonical.Decode(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotCanonical, err)
	}
	re, err := canonical.Encode(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotCanonical, err)
	}
	if !bytes.Equal(re, data) {
		return "", ErrNotCanonical
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// DisplayEnvelope is the metadata shape for display and export. Unlike the
// hash envelope it may carry msg lines; msg is cosmetic and never part of
// the hash preimage.
func DisplayEnvelope(def models.PollDefinition, msg []string) canonical.Map {
	body := canonical.Map{}
	if len(msg) > 0 {
		body = append(body, canonical.Pair{Key: "msg", Value: msg})
	}
	body = append(body, canonical.Pair{Key: "surveyDetails", Value: Normalize(def)})

	return canonical.Map{
		{Key: int64(models.MetadataLabel), Value: body},
	}
}

// DisplayJSON renders a canonical tree as plain JSON-marshalable values for
// API responses and export files. Integer map keys (the metadata label)
// become decimal strings, matching how chain metadata is conventionally
// shown.
func DisplayJSON(v any) any {
	switch t := v.(type) {
	case canonical.Map:
		out := make(map[string]any, len(t))
		for _, p := range t {
			out[displayKey(p.Key)] = DisplayJSON(p.Value)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = DisplayJSON(elem)
		}
		return out
	default:
		return v
	}
}

func displayKey(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
