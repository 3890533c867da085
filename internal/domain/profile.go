package domain

// DeviceType names a device category in the profile catalog
type DeviceType string

const (
	DeviceTypeWindows10 DeviceType = "windows10"
	DeviceTypeMacOS     DeviceType = "macos"
	DeviceTypeLinux     DeviceType = "linux"
	DeviceTypeIPhone    DeviceType = "iphone"
	DeviceTypeAndroid   DeviceType = "android"
	DeviceTypeIoT       DeviceType = "iot"
)

// KnownDeviceTypes returns every catalog key in table order
func KnownDeviceTypes() []DeviceType {
	return []DeviceType{
		DeviceTypeWindows10,
		DeviceTypeMacOS,
		DeviceTypeLinux,
		DeviceTypeIPhone,
		DeviceTypeAndroid,
		DeviceTypeIoT,
	}
}

// IsKnown reports whether t is one of the catalog keys
func (t DeviceType) IsKnown() bool {
	for _, k := range KnownDeviceTypes() {
		if k == t {
			return true
		}
	}
	return false
}

// OS family labels returned by the TTL/window classifier
const (
	OSWindows = "Windows"
	OSLinux   = "Linux"
	OSApple   = "macOS/iOS"
	OSUnknown = "Unknown"
)

// Profile holds the network characteristics of an OS family
type Profile struct {
	TTL        int    `json:"ttl" yaml:"ttl"`
	WindowSize int    `json:"window_size" yaml:"window_size"`
	UserAgent  string `json:"user_agent" yaml:"user_agent"`
	OS         string `json:"os" yaml:"os"`
}

// HasUserAgent reports whether the profile advertises a browser user agent.
// Embedded devices do not.
func (p Profile) HasUserAgent() bool {
	return p.UserAgent != ""
}

// Phantom is a generated identity: a profile plus a random MAC and hostname
type Phantom struct {
	MAC      string `json:"mac" yaml:"mac"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Profile  `yaml:",inline"`
	Phantom  bool `json:"phantom" yaml:"phantom"`
}
