package dispatcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telescopio-montemayor/lx200-go/command"
	"github.com/telescopio-montemayor/lx200-go/dispatcher"
	"github.com/telescopio-montemayor/lx200-go/parser"
	"github.com/telescopio-montemayor/lx200-go/response"
)

func run(t *testing.T, d *dispatcher.Dispatcher, wire string) []byte {
	t.Helper()
	p := parser.New()
	p.Feed([]byte(wire))
	return d.Drain(p)
}

func TestScenarioGetAltitudeDefault(t *testing.T) {
	d := dispatcher.New()
	out := run(t, d, ":GA#")
	assert.Equal(t, "+00:00:00#", string(out))
}

func TestScenarioSetThenGetRightAscencion(t *testing.T) {
	d := dispatcher.New()
	out := run(t, d, ":Sr12:34:56#:GR#")
	assert.Equal(t, "1+12:34:56#", string(out))
}

func TestScenarioSignedDeclinationRoundTrips(t *testing.T) {
	d := dispatcher.New()
	run(t, d, ":Sd-12:30:00#")
	fields := d.Store.Get("mount.target.declination")
	assert.Equal(t, -12, fields["degrees"])
	assert.Equal(t, -30, fields["minutes"])
	assert.Equal(t, 0, fields["seconds"])

	out := run(t, d, ":Gd#")
	assert.Equal(t, "-12:30:00#", string(out))
}

func TestScenarioLandAlignment(t *testing.T) {
	d := dispatcher.New()
	out := run(t, d, ":AL#")
	assert.Empty(t, out)
	assert.Equal(t, map[string]any{"value": "L"}, d.Store.Get("mount.alignment_mode"))
}

func TestScenarioACKDefaultAlignment(t *testing.T) {
	d := dispatcher.New()
	out := d.HandleACK()
	assert.Equal(t, "A", string(out))
}

func TestScenarioUnknownCommandNoResponse(t *testing.T) {
	d := dispatcher.New()
	out := run(t, d, ":XYZ#")
	assert.Empty(t, out)
}

func TestScenarioPECAltitudeAndRightAscencion(t *testing.T) {
	d := dispatcher.New()
	out := run(t, d, ":STA+#:STZ-#")
	assert.Empty(t, out)
	assert.Equal(t, true, d.Store.Get("mount.correction.pec.altitude.enabled")["value"])
	assert.Equal(t, false, d.Store.Get("mount.correction.pec.right_ascencion.enabled")["value"])
}

func TestScenarioDistanceBarsNoSlew(t *testing.T) {
	d := dispatcher.New()
	out := run(t, d, ":D#")
	assert.Equal(t, "#", string(out))
}

func TestObserverSeesEveryDispatchedCommand(t *testing.T) {
	d := dispatcher.New()
	var seen []string
	d.Observer = func(cmd command.Command, resp response.Response) {
		seen = append(seen, cmd.Name())
	}
	run(t, d, ":AL#:GA#")
	assert.Equal(t, []string{"LandAlignment", "GetAltitude"}, seen)
}
