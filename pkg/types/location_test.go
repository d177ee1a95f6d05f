package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLocation(t *testing.T) {
	assert.Equal(t, "50.45|30.52", EncodeLocation(50.45, 30.52))
	assert.Equal(t, "0|0", EncodeLocation(0, 0))
	assert.Equal(t, "-33.8688|151.2093", EncodeLocation(-33.8688, 151.2093))
}

func TestDecodeLocation(t *testing.T) {
	lat, lon, err := DecodeLocation("50.45|30.52")
	require.NoError(t, err)
	assert.Equal(t, 50.45, lat)
	assert.Equal(t, 30.52, lon)
}

func TestLocationRoundTrip(t *testing.T) {
	enc := EncodeLocation(50.45, 30.52)
	lat, lon, err := DecodeLocation(enc)
	require.NoError(t, err)
	assert.Equal(t, 50.45, lat)
	assert.Equal(t, 30.52, lon)
}

func TestDecodeLocation_Malformed(t *testing.T) {
	cases := []string{"", "50.45", "50.45|", "|30.52", "a|b", "50.45,30.52"}
	for _, c := range cases {
		_, _, err := DecodeLocation(c)
		assert.Error(t, err, "input %q", c)
	}
}
