package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telescopio-montemayor/lx200-go/response"
)

func TestGetAltitudeDefaultFormat(t *testing.T) {
	r := response.Catalog["GetAltitude"]()
	r.Fill(map[string]any{"degrees": 0, "minutes": 0, "seconds": 0})
	assert.Equal(t, "+00:00:00#", r.Format())
}

func TestSignedDMSNegativeDegrees(t *testing.T) {
	r := &response.SignedDMS{HighPrecision: true}
	r.Fill(map[string]any{"degrees": -12, "minutes": -30, "seconds": 0})
	assert.Equal(t, "-12:30:00#", r.Format())
}

func TestACKDefaultsToStoredAlignmentMode(t *testing.T) {
	r := &response.ACK{}
	r.Fill(map[string]any{"value": "A"})
	assert.Equal(t, "A", r.Format())
}

func TestDistanceBarsZeroBars(t *testing.T) {
	r := response.Catalog["DistanceBars"]().(*response.DistanceBars)
	s, err := r.FormatChecked()
	require.NoError(t, err)
	assert.Equal(t, "#", s)
}

func TestDistanceBarsOutOfRangeIsError(t *testing.T) {
	r := &response.DistanceBars{N: 7}
	_, err := r.FormatChecked()
	assert.Error(t, err)
}

func TestBooleanInversionForSlewToTargetAltAz(t *testing.T) {
	r := response.Catalog["SlewToTargetAltAz"]().(*response.Boolean)
	assert.Equal(t, "0", r.Format())
	r.Value = false
	assert.Equal(t, "1", r.Format())
}

func TestNoResponseShapeAppendsNewline(t *testing.T) {
	for name, factory := range response.Catalog {
		out := factory().Format()
		assert.NotContains(t, out, "\n", "response %s must not append a newline", name)
	}
}

func TestEveryCatalogEntryHasAResponse(t *testing.T) {
	assert.Empty(t, response.Unmapped())
}

func TestNoFactoryHasBadDefaults(t *testing.T) {
	assert.Empty(t, response.BadDefaults())
}
