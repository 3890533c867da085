package identity

import "fmt"

const (
	mccLength     = 3
	mncLength     = 2
	imsiMinLength = mccLength + mncLength
)

// IMSIInfo is an IMSI split into country code, network code and subscriber
type IMSIInfo struct {
	IMSI string `json:"imsi" yaml:"imsi"`
	MCC  string `json:"mcc" yaml:"mcc"`
	MNC  string `json:"mnc" yaml:"mnc"`
	MSIN string `json:"msin" yaml:"msin"`
}

// DecodeIMSI splits imsi assuming a two-digit MNC
func DecodeIMSI(imsi string) (IMSIInfo, error) {
	if len(imsi) < imsiMinLength {
		return IMSIInfo{}, fmt.Errorf("imsi %q: %w (need at least %d digits)", imsi, ErrInvalidLength, imsiMinLength)
	}
	if !allDigits(imsi) {
		return IMSIInfo{}, fmt.Errorf("imsi %q: %w", imsi, ErrNonDigit)
	}
	return IMSIInfo{
		IMSI: imsi,
		MCC:  imsi[:mccLength],
		MNC:  imsi[mccLength:imsiMinLength],
		MSIN: imsi[imsiMinLength:],
	}, nil
}
