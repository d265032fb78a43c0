// Package encoding produces the worked encoding example used in the
// documentation: the sample location-tag payload, its canonical CBOR
// encoding, and the unpadded base64url form embedded in the docs.
package encoding

import (
	"encoding/base64"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ExamplePayload mirrors the payload shown in examples.md. The keys are
// the ones the documentation example uses.
type ExamplePayload struct {
	SpecVersion  string    `cbor:"specVersion"`
	SRS          string    `cbor:"srs"`
	LocationType string    `cbor:"locationType"`
	Location     []float64 `cbor:"location"`
}

// NewExamplePayload returns the documentation sample: a lon/lat coordinate
// for New York City in CRS84.
func NewExamplePayload() ExamplePayload {
	return ExamplePayload{
		SpecVersion:  "1.0",
		SRS:          "http://www.opengis.net/def/crs/OGC/1.3/CRS84",
		LocationType: "coordinate-decimal+lon-lat",
		Location:     []float64{-74.006, 40.7128},
	}
}

// EncodeCanonical encodes the payload as canonical CBOR so the example
// bytes are deterministic across runs.
func EncodeCanonical(payload ExamplePayload) ([]byte, error) {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to build CBOR encoder: %w", err)
	}
	encoded, err := mode.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return encoded, nil
}

// Base64URL returns the unpadded base64url form of the encoded payload,
// the representation embedded in the documentation.
func Base64URL(encoded []byte) string {
	return base64.RawURLEncoding.EncodeToString(encoded)
}
