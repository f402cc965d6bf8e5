package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telescopio-montemayor/lx200-go/catalog"
	"github.com/telescopio-montemayor/lx200-go/decoder"
)

func TestDecodeLiteral(t *testing.T) {
	cmd := decoder.Decode("AL")
	assert.Equal(t, catalog.NameLandAlignment, cmd.Name())
	assert.Equal(t, "mount.alignment_mode", cmd.StorePath())
	assert.Equal(t, map[string]any{"value": "L"}, cmd.StoreValue())
}

func TestDecodeSignedDMSNegativeDegreesPropagatesSign(t *testing.T) {
	cmd := decoder.Decode("Sd-12:30:00")
	assert.Equal(t, catalog.NameSetTargetDeclination, cmd.Name())
	fields := cmd.Fields()
	assert.Equal(t, -12, fields["degrees"])
	assert.Equal(t, -30, fields["minutes"])
	assert.Equal(t, 0, fields["seconds"])
}

func TestDecodeUnknownPreservesPayload(t *testing.T) {
	cmd := decoder.Decode("XYZ")
	assert.Equal(t, "Unknown", cmd.Name())
	assert.Equal(t, map[string]any{"value": "XYZ"}, cmd.Fields())
}

func TestDecodeSetTargetRightAscencionOptionalSpace(t *testing.T) {
	withSpace := decoder.Decode("Sr 12:34:56")
	withoutSpace := decoder.Decode("Sr12:34:56")
	assert.Equal(t, withSpace.Fields(), withoutSpace.Fields())
	assert.Equal(t, catalog.NameSetTargetRightAscencion, withSpace.Name())
}

func TestDecodeFocuserPresetNameCarriesIdxPlaceholder(t *testing.T) {
	cmd := decoder.Decode("FLN3:Nebula")
	assert.Equal(t, catalog.NameFocuserNamePreset, cmd.Name())
	assert.Equal(t, "focuser.presets.name_{idx}", cmd.StorePath())
	assert.Equal(t, 3, cmd.Fields()["idx"])
	assert.Equal(t, "Nebula", cmd.Fields()["value"])
}

func TestDecodeACKAndEOT(t *testing.T) {
	assert.Equal(t, catalog.NameACK, decoder.DecodeACK().Name())
	assert.Equal(t, catalog.NameEOT, decoder.DecodeEOT().Name())
}
