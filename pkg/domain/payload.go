package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodePayload decodes an action's payload into a typed struct using
// "mapstructure" tags. Input is weakly typed, so JSON-decoded payloads
// (float64 numbers, map[string]any objects) decode into int fields and
// nested structs without ceremony.
func DecodePayload(a Action, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build payload decoder: %w", err)
	}
	if err := decoder.Decode(a.Payload); err != nil {
		return fmt.Errorf("failed to decode payload for %q: %w", a.Type, err)
	}
	return nil
}
