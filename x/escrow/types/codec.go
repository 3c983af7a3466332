package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

var (
	// EscrowValue encodes escrow records stored in the escrow IndexedMap.
	EscrowValue collcodec.ValueCodec[Escrow] = jsonValueCodec[Escrow]{name: "escrow.Escrow"}
	// ConfigValue encodes the config Item.
	ConfigValue collcodec.ValueCodec[Config] = jsonValueCodec[Config]{name: "escrow.Config"}
)

// jsonValueCodec stores values as canonical JSON. Binary and JSON encodings
// are identical.
type jsonValueCodec[T any] struct {
	name string
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var value T
	if err := json.Unmarshal(bz, &value); err != nil {
		return value, fmt.Errorf("%w: %s: %w", collcodec.ErrEncoding, c.name, err)
	}
	return value, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error) {
	return c.Decode(bz)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := c.Encode(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.name
}
