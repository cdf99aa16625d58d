package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Paper dimensions in inches.
const (
	letterWidthInches  = 8.5
	letterHeightInches = 11.0
	a4WidthInches      = 8.27
	a4HeightInches     = 11.69
	legalWidthInches   = 8.5
	legalHeightInches  = 14.0
)

// PaperDimensions returns the paper width and height in inches for a page
// size name. Comparison is case-insensitive.
func PaperDimensions(size string) (width, height float64, err error) {
	switch strings.ToLower(strings.TrimSpace(size)) {
	case "letter":
		return letterWidthInches, letterHeightInches, nil
	case "a4":
		return a4WidthInches, a4HeightInches, nil
	case "legal":
		return legalWidthInches, legalHeightInches, nil
	}
	return 0, 0, fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, size)
}

// CanonicalPageSize returns the CSS @page size token for a page size name.
func CanonicalPageSize(size string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(size)) {
	case "letter":
		return "letter", nil
	case "a4":
		return "A4", nil
	case "legal":
		return "legal", nil
	}
	return "", fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, size)
}

// MarginInches converts a CSS-style length ("20mm", "2cm", "0.5in", "36pt")
// into inches. A bare number is treated as millimeters.
func MarginInches(s string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidMargin)
	}

	unit := "mm"
	for _, u := range []string{"mm", "cm", "in", "pt"} {
		if strings.HasSuffix(v, u) {
			unit = u
			v = strings.TrimSpace(strings.TrimSuffix(v, u))
			break
		}
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMargin, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %q (must not be negative)", ErrInvalidMargin, s)
	}

	switch unit {
	case "mm":
		return n / 25.4, nil
	case "cm":
		return n / 2.54, nil
	case "pt":
		return n / 72.0, nil
	default: // "in"
		return n, nil
	}
}
