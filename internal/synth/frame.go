// Package synth renders phantom identities as synthetic Ethernet/IPv4/TCP
// SYN-ACK frames and reads the fingerprint fields back out of such frames.
//
// Frames exist only in memory (or in a pcap file written by the codec
// package). Nothing here opens a socket or a capture handle.
package synth

import (
	"errors"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"phantomid/internal/domain"
)

var (
	ErrNoTCP    = errors.New("frame has no IPv4/TCP layers")
	ErrBadField = errors.New("phantom field out of range")
)

// Observation is the fingerprint material decoded from a frame
type Observation struct {
	MAC    string
	TTL    int
	Window int
}

// Classifier maps a TTL/window pair to an OS label
type Classifier interface {
	DetectOS(ttl, windowSize int) string
}

var (
	defaultDstMAC = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	defaultSrcIP  = net.IPv4(192, 0, 2, 10)
	defaultDstIP  = net.IPv4(192, 0, 2, 1)
)

const (
	defaultSrcPort = 443
	defaultDstPort = 49152
	defaultMSS     = 1460
)

// Builder serializes phantoms into SYN-ACK frames
type Builder struct {
	eth  layers.Ethernet
	ip4  layers.IPv4
	tcp  layers.TCP
	opts gopacket.SerializeOptions
	buf  gopacket.SerializeBuffer
}

// NewBuilder returns a builder with fixed documentation-range addresses
func NewBuilder() *Builder {
	return &Builder{
		eth: layers.Ethernet{
			DstMAC:       defaultDstMAC,
			EthernetType: layers.EthernetTypeIPv4,
		},
		ip4: layers.IPv4{
			Version:  4,
			Flags:    layers.IPv4DontFragment,
			Protocol: layers.IPProtocolTCP,
			SrcIP:    defaultSrcIP,
			DstIP:    defaultDstIP,
		},
		tcp: layers.TCP{
			SrcPort: layers.TCPPort(defaultSrcPort),
			DstPort: layers.TCPPort(defaultDstPort),
			SYN:     true,
			ACK:     true,
			Seq:     1,
			Ack:     1,
		},
		opts: gopacket.SerializeOptions{
			ComputeChecksums: true,
			FixLengths:       true,
		},
		buf: gopacket.NewSerializeBuffer(),
	}
}

// Build returns a SYN-ACK frame carrying the phantom's MAC as the Ethernet
// source, its TTL and its TCP window. The returned slice is a copy and stays
// valid after the next call.
func (b *Builder) Build(p domain.Phantom) ([]byte, error) {
	mac, err := net.ParseMAC(p.MAC)
	if err != nil {
		return nil, fmt.Errorf("parse mac %q: %w", p.MAC, err)
	}
	if p.TTL < 0 || p.TTL > 255 {
		return nil, fmt.Errorf("ttl %d: %w", p.TTL, ErrBadField)
	}
	if p.WindowSize < 0 || p.WindowSize > 65535 {
		return nil, fmt.Errorf("window %d: %w", p.WindowSize, ErrBadField)
	}

	if err := b.buf.Clear(); err != nil {
		return nil, fmt.Errorf("clear buffer: %w", err)
	}

	b.eth.SrcMAC = mac
	b.ip4.TTL = uint8(p.TTL)
	b.tcp.Window = uint16(p.WindowSize)
	b.tcp.Options = []layers.TCPOption{{
		OptionType:   layers.TCPOptionKindMSS,
		OptionLength: 4,
		OptionData:   []byte{byte(defaultMSS >> 8), byte(defaultMSS & 0xff)},
	}}
	if err := b.tcp.SetNetworkLayerForChecksum(&b.ip4); err != nil {
		return nil, fmt.Errorf("set checksum layer: %w", err)
	}

	if err := gopacket.SerializeLayers(b.buf, b.opts, &b.eth, &b.ip4, &b.tcp); err != nil {
		return nil, fmt.Errorf("serialize frame: %w", err)
	}

	out := make([]byte, len(b.buf.Bytes()))
	copy(out, b.buf.Bytes())
	return out, nil
}

// Decode extracts the source MAC, IP TTL and TCP window from an Ethernet frame
func Decode(frame []byte) (Observation, error) {
	var (
		eth layers.Ethernet
		ip4 layers.IPv4
		tcp layers.TCP
	)
	parser := gopacket.NewDecodingLayerParser(layers.LayerTypeEthernet, &eth, &ip4, &tcp)
	parser.IgnoreUnsupported = true

	decoded := make([]gopacket.LayerType, 0, 3)
	if err := parser.DecodeLayers(frame, &decoded); err != nil {
		return Observation{}, fmt.Errorf("decode frame: %w", err)
	}

	var haveIP, haveTCP bool
	for _, lt := range decoded {
		switch lt {
		case layers.LayerTypeIPv4:
			haveIP = true
		case layers.LayerTypeTCP:
			haveTCP = true
		}
	}
	if !haveIP || !haveTCP {
		return Observation{}, ErrNoTCP
	}

	return Observation{
		MAC:    eth.SrcMAC.String(),
		TTL:    int(ip4.TTL),
		Window: int(tcp.Window),
	}, nil
}

// Classify decodes frame and runs the TTL/window heuristic on it
func Classify(c Classifier, frame []byte) (string, Observation, error) {
	obs, err := Decode(frame)
	if err != nil {
		return "", Observation{}, err
	}
	return c.DetectOS(obs.TTL, obs.Window), obs, nil
}
