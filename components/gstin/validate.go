package gstin

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidGSTIN is wrapped by every validation failure.
var ErrInvalidGSTIN = errors.New("gstin: invalid GSTIN")

const checksumAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Regular taxpayer layout: state code, PAN, entity number, default "Z",
// checksum.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// Normalize upper-cases and trims a GSTIN without validating it.
func Normalize(gstin string) string {
	return strings.ToUpper(strings.TrimSpace(gstin))
}

// Validate checks the layout, state code and checksum of a normalised GSTIN.
func Validate(gstin string) error {
	if len(gstin) != 15 {
		return fmt.Errorf("%w: %q must be 15 characters", ErrInvalidGSTIN, gstin)
	}
	if !gstinPattern.MatchString(gstin) {
		return fmt.Errorf("%w: %q does not match the GSTIN format", ErrInvalidGSTIN, gstin)
	}
	if !validStateCode(gstin[:2]) {
		return fmt.Errorf("%w: %q has unknown state code %s", ErrInvalidGSTIN, gstin, gstin[:2])
	}
	if want := Checksum(gstin[:14]); gstin[14] != want {
		return fmt.Errorf("%w: %q has check digit %c, expected %c", ErrInvalidGSTIN, gstin, gstin[14], want)
	}
	return nil
}

// StateCode returns the two digit state code of gstin, or "" when too short.
func StateCode(gstin string) string {
	gstin = Normalize(gstin)
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}

// PAN returns the permanent account number embedded in gstin.
func PAN(gstin string) string {
	gstin = Normalize(gstin)
	if len(gstin) < 12 {
		return ""
	}
	return gstin[2:12]
}

// Checksum computes the mod-36 check character for the first 14 characters
// of a GSTIN. Characters outside 0-9A-Z count as zero.
func Checksum(prefix string) byte {
	sum := 0
	for i := 0; i < len(prefix) && i < 14; i++ {
		value := strings.IndexByte(checksumAlphabet, prefix[i])
		if value < 0 {
			value = 0
		}
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		product := value * factor
		sum += product/36 + product%36
	}
	return checksumAlphabet[(36-sum%36)%36]
}

func validStateCode(code string) bool {
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return (n >= 1 && n <= 38) || n == 97 || n == 99
}
