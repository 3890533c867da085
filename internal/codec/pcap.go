package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"phantomid/internal/synth"
)

const snapLen = 65535

// PcapCodec writes one synthetic SYN-ACK frame per phantom into a pcap stream
type PcapCodec struct {
	builder *synth.Builder
}

// NewPcapCodec creates a new pcap codec
func NewPcapCodec() *PcapCodec {
	return &PcapCodec{builder: synth.NewBuilder()}
}

// Format returns the codec format identifier
func (c *PcapCodec) Format() string {
	return "pcap"
}

// Export writes a pcap file header and one Ethernet frame per phantom, all
// stamped with the batch generation time
func (c *PcapCodec) Export(batch *Batch, w io.Writer) error {
	pw := pcapgo.NewWriter(w)
	if err := pw.WriteFileHeader(snapLen, layers.LinkTypeEthernet); err != nil {
		return fmt.Errorf("failed to write pcap header: %w", err)
	}

	for _, p := range batch.Phantoms {
		frame, err := c.builder.Build(p)
		if err != nil {
			return fmt.Errorf("failed to build frame for %s: %w", p.Hostname, err)
		}
		ci := gopacket.CaptureInfo{
			Timestamp:     batch.GeneratedAt,
			CaptureLength: len(frame),
			Length:        len(frame),
		}
		if err := pw.WritePacket(ci, frame); err != nil {
			return fmt.Errorf("failed to write frame for %s: %w", p.Hostname, err)
		}
	}

	return nil
}

// ReadFrames returns every frame in a pcap stream
func ReadFrames(r io.Reader) ([][]byte, error) {
	pr, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open pcap: %w", err)
	}

	var frames [][]byte
	for {
		data, _, err := pr.ReadPacketData()
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read frame %d: %w", len(frames)+1, err)
		}
		frames = append(frames, data)
	}
}
