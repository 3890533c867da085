package identity

import "strings"

const iccidSerialLength = 12

const defaultICCIDPrefix = "8901100"

var providerPrefix = map[string]string{
	"verizon": "8914800",
	"att":     "8901410",
	"tmobile": "8901260",
}

// ICCIDPrefix returns the issuer prefix for provider; unknown providers get
// the generic prefix
func ICCIDPrefix(provider string) string {
	if p, ok := providerPrefix[strings.ToLower(provider)]; ok {
		return p
	}
	return defaultICCIDPrefix
}

// ICCID generates a 19-digit SIM serial for provider
func (g *Generator) ICCID(provider string) string {
	return ICCIDPrefix(provider) + g.digits(iccidSerialLength)
}
