package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phantomid/internal/domain"
)

func TestPrinterPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.OK("generated %d", 3)
	p.Fail("bad %s", "input")
	p.Info("working")

	assert.Equal(t, "[+] generated 3\n[-] bad input\n[*] working\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, NewPrinter(&bytes.Buffer{}, true).Interactive())
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Banner()
	assert.Equal(t, usageNotice+"\n\n", buf.String())
	assert.NotContains(t, buf.String(), "+-----")

	buf.Reset()
	p.interactive = true
	p.Banner()
	assert.Contains(t, buf.String(), "Phantom ID")
	assert.Contains(t, buf.String(), usageNotice)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestDemoLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.DemoLine("iphone", domain.Phantom{
		MAC:      "0a:1b:2c:3d:4e:5f",
		Hostname: "iphone-4242",
		Profile:  domain.Profile{TTL: 64},
	})

	assert.Equal(t, "iphone: MAC=0a:1b:2c:3d:4e:5f TTL=64 Hostname=iphone-4242\n", buf.String())
}

func TestVerdict(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Verdict("Checksum", true)
	p.Verdict("Checksum", false)

	assert.Equal(t, "[+] Checksum: VALID\n[-] Checksum: INVALID\n", buf.String())
}

func TestProfilesTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	lookup := func(dt string) domain.Profile {
		if dt == "iot" {
			return domain.Profile{TTL: 64, WindowSize: 5840, OS: "Embedded"}
		}
		return domain.Profile{TTL: 128, WindowSize: 65535, OS: "Windows", UserAgent: "Mozilla/5.0"}
	}
	require.NoError(t, p.Profiles([]domain.DeviceType{"windows10", "iot"}, lookup))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "TYPE"))
	assert.Contains(t, lines[1], "Mozilla/5.0")
	assert.True(t, strings.HasSuffix(lines[2], "-"))
	assert.Equal(t, "2 profiles; unknown types fall back to linux", lines[3])
}

func TestWritePhantoms(t *testing.T) {
	var buf bytes.Buffer
	err := WritePhantoms(&buf, []domain.Phantom{
		{MAC: "00:11:22:33:44:55", Hostname: "iot-1234", Profile: domain.Profile{TTL: 64, WindowSize: 5840, OS: "Embedded"}, Phantom: true},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"iot-1234", "00:11:22:33:44:55", "Embedded", "64", "5840", "-"}, strings.Fields(lines[1]))
}
