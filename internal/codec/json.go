package codec

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse reads a batch from JSON
func (c *JSONCodec) Parse(r io.Reader) (*Batch, error) {
	var batch Batch
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &batch, nil
}

// Export writes a batch as indented JSON
func (c *JSONCodec) Export(batch *Batch, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(batch); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
