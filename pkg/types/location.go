package types

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeLocation renders a latitude/longitude pair in the pipe-delimited
// form stored on user profiles and orders.
func EncodeLocation(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "|" + strconv.FormatFloat(lon, 'f', -1, 64)
}

// DecodeLocation parses the pipe-delimited form back into coordinates.
func DecodeLocation(s string) (lat, lon float64, err error) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed location %q", s)
	}
	lat, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed latitude in %q: %w", s, err)
	}
	lon, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed longitude in %q: %w", s, err)
	}
	return lat, lon, nil
}
