package codec

import (
	"fmt"
	"io"

	"phantomid/internal/ui"
)

// TextCodec writes a batch as an aligned table for terminals and logs
type TextCodec struct{}

// NewTextCodec creates a new text codec
func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

// Format returns the codec format identifier
func (c *TextCodec) Format() string {
	return "text"
}

// Export writes the batch ID followed by one row per phantom
func (c *TextCodec) Export(batch *Batch, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# batch %s (%s)\n", batch.ID, batch.GeneratedAt.Format("2006-01-02T15:04:05Z")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := ui.WritePhantoms(w, batch.Phantoms); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
