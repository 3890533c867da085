package catalog

import (
	"fmt"
	"math/rand/v2"
	"net"
	"sync"

	"phantomid/internal/domain"
)

const (
	macOctets      = 6
	octetRange     = 256
	hostnameMin    = 1000
	hostnameMax    = 9999
	fallbackDevice = domain.DeviceTypeLinux

	windowLinux     = 29200
	windowApple     = 65535
	ttlApple        = 64
	ttlWindowsFloor = 100
)

var profiles = map[domain.DeviceType]domain.Profile{
	domain.DeviceTypeWindows10: {TTL: 128, WindowSize: 65535, UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", OS: "Windows"},
	domain.DeviceTypeMacOS:     {TTL: 64, WindowSize: 65535, UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", OS: "macOS"},
	domain.DeviceTypeLinux:     {TTL: 64, WindowSize: 29200, UserAgent: "Mozilla/5.0 (X11; Linux x86_64)", OS: "Linux"},
	domain.DeviceTypeIPhone:    {TTL: 64, WindowSize: 65535, UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", OS: "iOS"},
	domain.DeviceTypeAndroid:   {TTL: 64, WindowSize: 65535, UserAgent: "Mozilla/5.0 (Linux; Android 14)", OS: "Android"},
	domain.DeviceTypeIoT:       {TTL: 64, WindowSize: 5840, UserAgent: "", OS: "Embedded"},
}

// Source supplies uniform integers in [0, n)
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level generator, which is
// safe for concurrent use
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// lockedSource serializes access to a caller-provided source
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}

// Option configures a Catalog
type Option func(*Catalog)

// WithSource replaces the random source. The source is wrapped in a mutex so
// the catalog stays safe to share between goroutines.
func WithSource(src Source) Option {
	return func(c *Catalog) {
		if src != nil {
			c.rng = &lockedSource{src: src}
		}
	}
}

// Catalog maps device types to profiles and generates phantom identities
type Catalog struct {
	rng Source
}

// New creates a catalog backed by the shared random generator
func New(opts ...Option) *Catalog {
	c := &Catalog{rng: globalSource{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile returns the profile for deviceType, or the linux profile when the
// type is not in the table
func (c *Catalog) Profile(deviceType string) domain.Profile {
	if p, ok := profiles[domain.DeviceType(deviceType)]; ok {
		return p
	}
	return profiles[fallbackDevice]
}

// DeviceTypes lists the catalog keys in table order
func (c *Catalog) DeviceTypes() []domain.DeviceType {
	return domain.KnownDeviceTypes()
}

// DetectOS classifies a TTL/window-size pair. Rules are checked in order and
// the first match wins.
func (c *Catalog) DetectOS(ttl, windowSize int) string {
	switch {
	case ttl > ttlWindowsFloor:
		return domain.OSWindows
	case windowSize == windowLinux:
		return domain.OSLinux
	case windowSize == windowApple && ttl == ttlApple:
		return domain.OSApple
	default:
		return domain.OSUnknown
	}
}

// GeneratePhantom builds a phantom identity for deviceType. The hostname
// embeds deviceType exactly as given, even when the profile fell back to
// linux.
func (c *Catalog) GeneratePhantom(deviceType string) domain.Phantom {
	return domain.Phantom{
		MAC:      c.randomMAC(),
		Hostname: fmt.Sprintf("%s-%d", deviceType, hostnameMin+c.rng.IntN(hostnameMax-hostnameMin+1)),
		Profile:  c.Profile(deviceType),
		Phantom:  true,
	}
}

// GenerateBatch generates one phantom per entry, preserving order
func (c *Catalog) GenerateBatch(deviceTypes []string) []domain.Phantom {
	phantoms := make([]domain.Phantom, 0, len(deviceTypes))
	for _, dt := range deviceTypes {
		phantoms = append(phantoms, c.GeneratePhantom(dt))
	}
	return phantoms
}

func (c *Catalog) randomMAC() string {
	mac := make(net.HardwareAddr, macOctets)
	for i := range mac {
		mac[i] = byte(c.rng.IntN(octetRange))
	}
	return mac.String()
}
