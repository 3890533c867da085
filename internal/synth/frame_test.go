package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phantomid/internal/catalog"
	"phantomid/internal/domain"
)

func TestBuildDecodeRoundTrip(t *testing.T) {
	cat := catalog.New()
	b := NewBuilder()

	for _, dt := range cat.DeviceTypes() {
		t.Run(string(dt), func(t *testing.T) {
			p := cat.GeneratePhantom(string(dt))

			frame, err := b.Build(p)
			require.NoError(t, err)

			obs, err := Decode(frame)
			require.NoError(t, err)
			assert.Equal(t, p.MAC, obs.MAC)
			assert.Equal(t, p.TTL, obs.TTL)
			assert.Equal(t, p.WindowSize, obs.Window)

			os, _, err := Classify(cat, frame)
			require.NoError(t, err)
			assert.Equal(t, cat.DetectOS(p.TTL, p.WindowSize), os)
		})
	}
}

func TestBuildReturnsIndependentSlices(t *testing.T) {
	b := NewBuilder()
	first, err := b.Build(domain.Phantom{MAC: "aa:bb:cc:dd:ee:ff", Profile: domain.Profile{TTL: 128, WindowSize: 65535}})
	require.NoError(t, err)
	_, err = b.Build(domain.Phantom{MAC: "00:11:22:33:44:55", Profile: domain.Profile{TTL: 64, WindowSize: 5840}})
	require.NoError(t, err)

	obs, err := Decode(first)
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", obs.MAC)
	assert.Equal(t, 128, obs.TTL)
}

func TestBuildRejectsBadFields(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		name    string
		phantom domain.Phantom
	}{
		{"bad mac", domain.Phantom{MAC: "not-a-mac", Profile: domain.Profile{TTL: 64}}},
		{"ttl too large", domain.Phantom{MAC: "00:00:00:00:00:01", Profile: domain.Profile{TTL: 300}}},
		{"negative window", domain.Phantom{MAC: "00:00:00:00:00:01", Profile: domain.Profile{TTL: 64, WindowSize: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Build(tt.phantom)
			assert.Error(t, err)
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
}

func TestClassifyWindowsFrame(t *testing.T) {
	b := NewBuilder()
	frame, err := b.Build(domain.Phantom{MAC: "02:00:00:00:00:02", Profile: domain.Profile{TTL: 128, WindowSize: 65535}})
	require.NoError(t, err)

	os, obs, err := Classify(catalog.New(), frame)
	require.NoError(t, err)
	assert.Equal(t, domain.OSWindows, os)
	assert.Equal(t, "02:00:00:00:00:02", obs.MAC)
}
