package identity

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	imeiLength   = 15
	tacLength    = 8
	serialLength = 6
)

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrNonDigit      = errors.New("contains non-digit characters")
)

// manufacturerTAC maps manufacturer names to a Type Allocation Code
var manufacturerTAC = map[string]string{
	"samsung": "35332509",
	"apple":   "35391110",
	"google":  "35455506",
	"xiaomi":  "86794003",
}

// fallbackTACs are picked from when no manufacturer is requested
var fallbackTACs = []string{"35332509", "35391110", "35455506", "86794003", "35904211"}

// IMEIInfo is the decomposition of a 15-digit IMEI
type IMEIInfo struct {
	IMEI           string `json:"imei" yaml:"imei"`
	TAC            string `json:"tac" yaml:"tac"`
	ReportingBody  string `json:"reporting_body" yaml:"reporting_body"`
	DeviceTypeCode string `json:"device_type_code" yaml:"device_type_code"`
	Serial         string `json:"serial" yaml:"serial"`
	CheckDigit     string `json:"check_digit" yaml:"check_digit"`
	Valid          bool   `json:"valid" yaml:"valid"`
}

// AnalyzeIMEI splits an IMEI into TAC, serial and check digit and reports
// whether the Luhn checksum holds
func AnalyzeIMEI(imei string) (IMEIInfo, error) {
	if len(imei) != imeiLength {
		return IMEIInfo{}, fmt.Errorf("imei %q: %w (expected %d digits, got %d)", imei, ErrInvalidLength, imeiLength, len(imei))
	}
	if !allDigits(imei) {
		return IMEIInfo{}, fmt.Errorf("imei %q: %w", imei, ErrNonDigit)
	}

	tac := imei[:tacLength]
	return IMEIInfo{
		IMEI:           imei,
		TAC:            tac,
		ReportingBody:  tac[:2],
		DeviceTypeCode: tac[2:],
		Serial:         imei[tacLength : tacLength+serialLength],
		CheckDigit:     imei[imeiLength-1:],
		Valid:          luhnValid(imei),
	}, nil
}

// ValidIMEI reports whether imei is 15 digits with a correct check digit
func ValidIMEI(imei string) bool {
	return len(imei) == imeiLength && allDigits(imei) && luhnValid(imei)
}

// Generator produces random identifiers. The zero value draws from the
// shared math/rand/v2 generator.
type Generator struct {
	src interface{ IntN(n int) int }
}

// NewGenerator returns a generator using src, or the shared generator when
// src is nil. A caller-provided src must not be shared across goroutines.
func NewGenerator(src interface{ IntN(n int) int }) *Generator {
	return &Generator{src: src}
}

func (g *Generator) intN(n int) int {
	if g == nil || g.src == nil {
		return rand.IntN(n)
	}
	return g.src.IntN(n)
}

func (g *Generator) digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + g.intN(10)))
	}
	return b.String()
}

// TACFor returns the TAC for manufacturer, case-insensitively
func TACFor(manufacturer string) (string, bool) {
	tac, ok := manufacturerTAC[strings.ToLower(manufacturer)]
	return tac, ok
}

// Manufacturers lists the manufacturers with a known TAC
func Manufacturers() []string {
	return []string{"samsung", "apple", "google", "xiaomi"}
}

// IMEI generates a Luhn-valid IMEI. An unknown or empty manufacturer gets a
// TAC picked at random from a fixed list.
func (g *Generator) IMEI(manufacturer string) string {
	tac, ok := TACFor(manufacturer)
	if !ok {
		tac = fallbackTACs[g.intN(len(fallbackTACs))]
	}
	partial := tac + g.digits(serialLength)
	return fmt.Sprintf("%s%d", partial, luhnCheckDigit(partial))
}

// IMEIs generates n IMEIs with random TACs
func (g *Generator) IMEIs(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.IMEI(""))
	}
	return out
}

// GenerateIMEI generates an IMEI using the shared generator
func GenerateIMEI(manufacturer string) string {
	var g Generator
	return g.IMEI(manufacturer)
}
