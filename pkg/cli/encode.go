package cli

import (
	"fmt"

	"github.com/locationtag/spec-tools/pkg/console"
	"github.com/locationtag/spec-tools/pkg/encoding"
)

// EncodeExample prints the documentation example payload and its
// base64url-encoded canonical CBOR form.
func EncodeExample(verbose bool) error {
	payload := encoding.NewExamplePayload()

	encoded, err := encoding.EncodeCanonical(payload)
	if err != nil {
		return err
	}

	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Payload: %+v", payload)))
	if verbose {
		fmt.Println(console.FormatVerboseMessage(fmt.Sprintf("canonical CBOR: %d byte(s)", len(encoded))))
	}
	fmt.Println(console.FormatCountMessage(fmt.Sprintf("Base64url: %s", encoding.Base64URL(encoded))))
	return nil
}
