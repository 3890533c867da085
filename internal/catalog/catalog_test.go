package catalog

import (
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phantomid/internal/domain"
)

var macPattern = regexp.MustCompile(`^[0-9a-f]{2}(:[0-9a-f]{2}){5}$`)

// sequenceSource returns fixed values in order, clamped to [0, n)
type sequenceSource struct {
	values []int
	next   int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	if v >= n {
		return n - 1
	}
	return v
}

func TestProfileKnownTypes(t *testing.T) {
	c := New()

	tests := []struct {
		deviceType string
		ttl        int
		window     int
		os         string
		hasUA      bool
	}{
		{"windows10", 128, 65535, "Windows", true},
		{"macos", 64, 65535, "macOS", true},
		{"linux", 64, 29200, "Linux", true},
		{"iphone", 64, 65535, "iOS", true},
		{"android", 64, 65535, "Android", true},
		{"iot", 64, 5840, "Embedded", false},
	}

	for _, tt := range tests {
		t.Run(tt.deviceType, func(t *testing.T) {
			p := c.Profile(tt.deviceType)
			assert.Equal(t, tt.ttl, p.TTL)
			assert.Equal(t, tt.window, p.WindowSize)
			assert.Equal(t, tt.os, p.OS)
			assert.Equal(t, tt.hasUA, p.HasUserAgent())
		})
	}
}

func TestProfileUserAgents(t *testing.T) {
	c := New()

	assert.Equal(t, "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", c.Profile("windows10").UserAgent)
	assert.Equal(t, "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", c.Profile("macos").UserAgent)
	assert.Equal(t, "Mozilla/5.0 (X11; Linux x86_64)", c.Profile("linux").UserAgent)
	assert.Equal(t, "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", c.Profile("iphone").UserAgent)
	assert.Equal(t, "Mozilla/5.0 (Linux; Android 14)", c.Profile("android").UserAgent)
	assert.Empty(t, c.Profile("iot").UserAgent)
}

func TestProfileFallsBackToLinux(t *testing.T) {
	c := New()
	linux := c.Profile("linux")

	for _, input := range []string{"", "Windows10", "MACOS", "12345", "bogus-device", " iphone", "iot\n"} {
		t.Run(strconv.Quote(input), func(t *testing.T) {
			assert.Equal(t, linux, c.Profile(input))
		})
	}
}

func TestDeviceTypes(t *testing.T) {
	c := New()
	types := c.DeviceTypes()

	require.Len(t, types, 6)
	for _, dt := range types {
		_, ok := profiles[dt]
		assert.True(t, ok, "device type %s missing from table", dt)
	}
}

func TestDetectOS(t *testing.T) {
	c := New()

	tests := []struct {
		ttl    int
		window int
		want   string
	}{
		{128, 65535, "Windows"},
		{64, 29200, "Linux"},
		{64, 65535, "macOS/iOS"},
		{1, 1, "Unknown"},
		{150, 0, "Windows"},
		{101, 29200, "Windows"},
		{100, 29200, "Linux"},
		{100, 65535, "Unknown"},
		{64, 5840, "Unknown"},
		{0, 0, "Unknown"},
		{-1, -1, "Unknown"},
		{-64, 29200, "Linux"},
		{math.MaxInt, math.MinInt, "Windows"},
		{math.MinInt, math.MaxInt, "Unknown"},
	}

	for _, tt := range tests {
		if got := c.DetectOS(tt.ttl, tt.window); got != tt.want {
			t.Errorf("DetectOS(%d, %d) = %q, want %q", tt.ttl, tt.window, got, tt.want)
		}
	}
}

func TestGeneratePhantomIPhone(t *testing.T) {
	c := New()
	hostname := regexp.MustCompile(`^iphone-\d{4}$`)

	for i := 0; i < 200; i++ {
		p := c.GeneratePhantom("iphone")

		require.True(t, p.Phantom)
		require.Equal(t, "iOS", p.OS)
		require.Equal(t, 64, p.TTL)
		require.Equal(t, 65535, p.WindowSize)
		require.Regexp(t, hostname, p.Hostname)
		require.Regexp(t, macPattern, p.MAC)

		n, err := strconv.Atoi(strings.TrimPrefix(p.Hostname, "iphone-"))
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 9999)
	}
}

func TestGeneratePhantomProfileStable(t *testing.T) {
	c := New()

	for _, dt := range c.DeviceTypes() {
		first := c.GeneratePhantom(string(dt))
		for i := 0; i < 20; i++ {
			next := c.GeneratePhantom(string(dt))
			assert.Equal(t, first.Profile, next.Profile)
			assert.True(t, strings.HasPrefix(next.Hostname, string(dt)+"-"))
		}
	}
}

func TestGeneratePhantomUnknownType(t *testing.T) {
	c := New()
	p := c.GeneratePhantom("bogus-device")

	assert.True(t, strings.HasPrefix(p.Hostname, "bogus-device-"))
	assert.Regexp(t, `^bogus-device-\d{4}$`, p.Hostname)
	assert.Equal(t, c.Profile("linux"), p.Profile)
	assert.True(t, p.Phantom)
}

func TestGeneratePhantomEmptyType(t *testing.T) {
	c := New()
	p := c.GeneratePhantom("")

	assert.Regexp(t, `^-\d{4}$`, p.Hostname)
	assert.Equal(t, c.Profile("linux"), p.Profile)
	assert.Regexp(t, macPattern, p.MAC)
}

func TestGeneratePhantomSourceBounds(t *testing.T) {
	t.Run("minimum values", func(t *testing.T) {
		c := New(WithSource(&sequenceSource{values: []int{0}}))
		p := c.GeneratePhantom("macos")

		assert.Equal(t, "00:00:00:00:00:00", p.MAC)
		assert.Equal(t, "macos-1000", p.Hostname)
	})

	t.Run("maximum values", func(t *testing.T) {
		c := New(WithSource(&sequenceSource{values: []int{math.MaxInt}}))
		p := c.GeneratePhantom("macos")

		assert.Equal(t, "ff:ff:ff:ff:ff:ff", p.MAC)
		assert.Equal(t, "macos-9999", p.Hostname)
	})

	t.Run("octets are lowercase hex", func(t *testing.T) {
		c := New(WithSource(&sequenceSource{values: []int{0xab, 0x0c, 0xde, 0x01, 0xf0, 0x9a, 4321}}))
		p := c.GeneratePhantom("android")

		assert.Equal(t, "ab:0c:de:01:f0:9a", p.MAC)
		assert.Equal(t, "android-5321", p.Hostname)
	})
}

func TestWithSourceNilKeepsDefault(t *testing.T) {
	c := New(WithSource(nil))
	assert.Regexp(t, macPattern, c.GeneratePhantom("linux").MAC)
}

func TestGenerateBatch(t *testing.T) {
	c := New()
	input := []string{"windows10", "bogus", "iot"}

	batch := c.GenerateBatch(input)

	require.Len(t, batch, 3)
	assert.Equal(t, "Windows", batch[0].OS)
	assert.Equal(t, "Linux", batch[1].OS)
	assert.True(t, strings.HasPrefix(batch[1].Hostname, "bogus-"))
	assert.Equal(t, "Embedded", batch[2].OS)
	assert.Empty(t, c.GenerateBatch(nil))
}

func TestGeneratePhantomConcurrent(t *testing.T) {
	shared := New(WithSource(rand.New(rand.NewPCG(1, 2))))
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				p := shared.GeneratePhantom(string(domain.DeviceTypeWindows10))
				if !macPattern.MatchString(p.MAC) {
					t.Errorf("bad MAC %q", p.MAC)
					return
				}
			}
		}()
	}
	wg.Wait()
}
