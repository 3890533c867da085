package codec

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"phantomid/internal/domain"
)

// ErrUnknownFormat is returned for a format name with no registered codec
var ErrUnknownFormat = errors.New("unknown format")

// Batch is a set of phantoms generated together
type Batch struct {
	ID          string           `json:"id" yaml:"id"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Phantoms    []domain.Phantom `json:"phantoms" yaml:"phantoms"`
}

// NewBatch wraps phantoms in a batch with a fresh ID
func NewBatch(phantoms []domain.Phantom) *Batch {
	return &Batch{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Phantoms:    phantoms,
	}
}

// Importer reads a batch back from a serialized form
type Importer interface {
	Parse(r io.Reader) (*Batch, error)
	Format() string
}

// Exporter writes a batch in some format
type Exporter interface {
	Export(batch *Batch, w io.Writer) error
	Format() string
}

var exporters = map[string]func() Exporter{
	"json": func() Exporter { return NewJSONCodec() },
	"yaml": func() Exporter { return NewYAMLCodec() },
	"pcap": func() Exporter { return NewPcapCodec() },
	"text": func() Exporter { return NewTextCodec() },
}

// ExporterFor returns the exporter registered under format
func ExporterFor(format string) (Exporter, error) {
	ctor, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownFormat, format, Formats())
	}
	return ctor(), nil
}

// Formats lists the registered export formats in sorted order
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
