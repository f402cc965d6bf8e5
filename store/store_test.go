package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telescopio-montemayor/lx200-go/command"
	"github.com/telescopio-montemayor/lx200-go/decoder"
	"github.com/telescopio-montemayor/lx200-go/store"
)

func TestNewSeedsDefaults(t *testing.T) {
	s := store.New()
	assert.Equal(t, 60.0, s.Get("mount.tracking_rate")["value"])
	assert.Equal(t, true, s.Get("site.clock_format")["value"])
	assert.Equal(t, "SI1", s.Get("site.name_1")["value"])
}

func TestCommitThenFillRoundTrips(t *testing.T) {
	s := store.New()
	setter := decoder.Decode("Sr12:34:56")
	s.Commit(setter)

	getter := decoder.Decode("GR")
	fields := s.Fill(getter)
	assert.Equal(t, 12, fields["hours"])
	assert.Equal(t, 34, fields["minutes"])
	assert.Equal(t, 56, fields["seconds"])
}

func TestCommitEnumeratedSetterUsesFixedStoreValue(t *testing.T) {
	s := store.New()
	s.Commit(decoder.Decode("AL"))
	assert.Equal(t, "L", s.Get("mount.alignment_mode")["value"])
}

func TestCommitWithNoStoreBindingIsNoop(t *testing.T) {
	s := store.New()
	before := s.Snapshot()
	s.Commit(decoder.Decode("Q"))
	assert.Equal(t, before, s.Snapshot())
}

func TestCommitTemplatedPathResolvesPerIndex(t *testing.T) {
	s := store.New()
	s.Commit(decoder.Decode("FLN3:Nebula"))
	s.Commit(decoder.Decode("FLN1:Cluster"))
	assert.Equal(t, "Nebula", s.Get("focuser.presets.name_3")["value"])
	assert.Equal(t, "Cluster", s.Get("focuser.presets.name_1")["value"])
}

func TestCommitUnresolvableTemplateIsNoop(t *testing.T) {
	s := store.New()
	before := s.Snapshot()
	// The templated path needs an "idx" field this command does not carry,
	// so it cannot be resolved; committing it must not panic or write
	// anywhere.
	s.Commit(&command.Generic{
		Base:   command.Base{NameValue: "FocuserNamePreset", StoreP: "focuser.presets.name_{idx}"},
		Values: map[string]any{"value": "Nebula"},
	})
	assert.Equal(t, before, s.Snapshot())
}

func TestPECEnableDisableScenario(t *testing.T) {
	s := store.New()
	s.Commit(decoder.Decode("STA+"))
	s.Commit(decoder.Decode("STZ-"))
	assert.Equal(t, true, s.Get("mount.correction.pec.altitude.enabled")["value"])
	assert.Equal(t, false, s.Get("mount.correction.pec.right_ascencion.enabled")["value"])
}
