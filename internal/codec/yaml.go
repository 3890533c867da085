package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse reads a batch from YAML
func (c *YAMLCodec) Parse(r io.Reader) (*Batch, error) {
	var batch Batch
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &batch, nil
}

// Export writes a batch as YAML with two-space indentation
func (c *YAMLCodec) Export(batch *Batch, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(batch); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
