// Package response implements the LX200 response shapes: formatted byte
// strings built from a command's identity plus whatever the state store
// fills in. Every shape terminates with '#', is an empty string, or (ACK
// and Boolean) is a bare unterminated token — never a trailing newline.
package response

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Response is a formatted reply, mutable until Format is called. Fill
// copies known keys out of a store field-map (ignoring keys it doesn't
// recognize); Format renders the final byte string.
type Response interface {
	Fill(fields map[string]any)
	Format() string
}

func asInt(fields map[string]any, key string, fallback int) int {
	if v, ok := fields[key]; ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return fallback
}

func asFloat(fields map[string]any, key string, fallback float64) float64 {
	if v, ok := fields[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

func asString(fields map[string]any, key string, fallback string) string {
	if v, ok := fields[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

func asBool(fields map[string]any, key string, fallback bool) bool {
	if v, ok := fields[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// Empty formats to "". Used for fire-and-forget commands: movement,
// halts, alignment mode selection, enable/disable toggles.
type Empty struct{}

func (*Empty) Fill(map[string]any) {}
func (*Empty) Format() string      { return "" }

// Boolean emits a configurable truthy/falsy token with no terminator.
// Commands like SlewToTargetAltAz and SetBrighterLimit, whose wire polarity
// is reversed relative to the plain "1 means yes" convention, express that
// by swapping TrueToken/FalseToken at construction rather than flipping
// Value here.
type Boolean struct {
	Value      bool
	TrueToken  string
	FalseToken string
}

func NewBoolean() *Boolean {
	return &Boolean{Value: true, TrueToken: "1", FalseToken: "0"}
}

func (b *Boolean) Fill(fields map[string]any) {
	b.Value = asBool(fields, "value", b.Value)
}

func (b *Boolean) Format() string {
	if b.Value {
		return b.TrueToken
	}
	return b.FalseToken
}

// ACK emits a single alignment-mode letter (A|D|L|P) without a terminator.
type ACK struct {
	Value string
}

func (a *ACK) Fill(fields map[string]any) {
	a.Value = asString(fields, "value", a.Value)
}

func (a *ACK) Format() string { return a.Value }

// SignedDMS formats signed declination/target-altitude style angles.
// HighPrecision renders ±DD:MM:SS#, using ':' throughout; low precision
// renders ±DD*MM#, with '*' between degrees and minutes and no seconds.
type SignedDMS struct {
	Degrees, Minutes, Seconds int
	HighPrecision             bool
}

func (d *SignedDMS) Fill(fields map[string]any) {
	d.Degrees = asInt(fields, "degrees", d.Degrees)
	d.Minutes = asInt(fields, "minutes", d.Minutes)
	d.Seconds = asInt(fields, "seconds", d.Seconds)
}

func (d *SignedDMS) Format() string {
	sign := "+"
	deg := d.Degrees
	min := absInt(d.Minutes)
	sec := absInt(d.Seconds)
	if d.Degrees < 0 {
		sign = "-"
		deg = -d.Degrees
	}
	if d.HighPrecision {
		return fmt.Sprintf("%s%02d:%02d:%02d#", sign, deg, min, sec)
	}
	return fmt.Sprintf("%s%02d*%02d#", sign, deg, min)
}

// HMS formats ±HH<sep>MM<sep>SS (high precision) or HH<sep>MM.m (low
// precision, MM.m = minutes + seconds/60 rounded to one decimal).
type HMS struct {
	Hours, Minutes, Seconds int
	HighPrecision           bool
}

func (h *HMS) Fill(fields map[string]any) {
	h.Hours = asInt(fields, "hours", h.Hours)
	h.Minutes = asInt(fields, "minutes", h.Minutes)
	h.Seconds = asInt(fields, "seconds", h.Seconds)
}

func (h *HMS) Format() string {
	if h.HighPrecision {
		sign := "+"
		hours := h.Hours
		if hours < 0 {
			sign = "-"
			hours = -hours
		}
		return fmt.Sprintf("%s%02d:%02d:%02d#", sign, hours, h.Minutes, h.Seconds)
	}
	minutesFraction := floats.Round(float64(h.Minutes)+float64(h.Seconds)/60.0, 1)
	return fmt.Sprintf("%02d:%04.1f#", h.Hours, minutesFraction)
}

// SignedFloat formats ±0F.F, a five-character sign-mandatory single
// decimal (e.g. magnitude limits, the tracking rate, the UTC offset).
type SignedFloat struct {
	Value float64
}

func (s *SignedFloat) Fill(fields map[string]any) {
	s.Value = asFloat(fields, "value", s.Value)
}

func (s *SignedFloat) Format() string {
	v := floats.Round(s.Value, 1)
	sign := "+"
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%04.1f#", sign, v)
}

// Date formats MM/DD/YY, the year taken modulo 100.
type Date struct {
	Month, Day, Year int
}

func (d *Date) Fill(fields map[string]any) {
	d.Month = asInt(fields, "month", d.Month)
	d.Day = asInt(fields, "day", d.Day)
	d.Year = asInt(fields, "year", d.Year)
}

func (d *Date) Format() string {
	return fmt.Sprintf("%02d/%02d/%02d#", d.Month, d.Day, d.Year%100)
}

// TimeOfDay formats HH:MM:SS for local time and firmware time alike.
type TimeOfDay struct {
	Hours, Minutes, Seconds int
}

func (t *TimeOfDay) Fill(fields map[string]any) {
	t.Hours = asInt(fields, "hours", t.Hours)
	t.Minutes = asInt(fields, "minutes", t.Minutes)
	t.Seconds = asInt(fields, "seconds", t.Seconds)
}

func (t *TimeOfDay) Format() string {
	return fmt.Sprintf("%02d:%02d:%02d#", t.Hours, t.Minutes, t.Seconds)
}

var firmwareMonths = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FirmwareDate formats "MMM DD YYYY" and never consults the store — it is
// a fixed identity string for this simulated firmware build.
type FirmwareDate struct {
	Month, Day, Year int
}

func (*FirmwareDate) Fill(map[string]any) {}

func (f *FirmwareDate) Format() string {
	month := "Jan"
	if f.Month >= 1 && f.Month <= 12 {
		month = firmwareMonths[f.Month]
	}
	return fmt.Sprintf("%s %02d %04d#", month, f.Day, f.Year)
}

// FirmwareNumber formats MAJ.MIN.
type FirmwareNumber struct {
	Major, Minor int
}

func (*FirmwareNumber) Fill(map[string]any) {}

func (f *FirmwareNumber) Format() string {
	return fmt.Sprintf("%d.%d#", f.Major, f.Minor)
}

// DistanceBars formats N pipe characters followed by '#', N in [0,6]
// inclusive. A value outside that range is a formatter error rather than
// malformed bytes: FormatChecked surfaces it, Format falls back to "#"
// (zero bars).
type DistanceBars struct {
	N int
}

func (d *DistanceBars) Fill(fields map[string]any) {
	d.N = asInt(fields, "value", d.N)
}

// FormatChecked returns an error for N outside [0,6] instead of emitting
// malformed bytes (spec: "formatter range violations... must not emit
// malformed bytes").
func (d *DistanceBars) FormatChecked() (string, error) {
	if d.N < 0 || d.N > 6 {
		return "", fmt.Errorf("response: DistanceBars value %d outside [0,6]", d.N)
	}
	bars := ""
	for i := 0; i < d.N; i++ {
		bars += "|"
	}
	return bars + "#", nil
}

func (d *DistanceBars) Format() string {
	s, err := d.FormatChecked()
	if err != nil {
		return "#"
	}
	return s
}

// AlignmentStatus formats three characters: mount code + tracking flag +
// alignment star count, followed by '#'.
type AlignmentStatus struct {
	Mount          string
	Tracking       bool
	AlignmentStars int
}

func (*AlignmentStatus) Fill(map[string]any) {}

func (a *AlignmentStatus) Format() string {
	tracking := "N"
	if a.Tracking {
		tracking = "T"
	}
	return fmt.Sprintf("%s%s%d#", a.Mount, tracking, a.AlignmentStars)
}

// ClockFormat formats "24" when the stored flag is true, "12" otherwise.
type ClockFormat struct {
	Is24 bool
}

func (c *ClockFormat) Fill(fields map[string]any) {
	c.Is24 = asBool(fields, "value", c.Is24)
}

func (c *ClockFormat) Format() string {
	if c.Is24 {
		return "24#"
	}
	return "12#"
}

// StringValue formats an arbitrary store string verbatim, terminated with
// '#'. Used for site names, the product name, the deepsky search string,
// and the minimum-quality-for-find enum.
type StringValue struct {
	Value string
}

func (s *StringValue) Fill(fields map[string]any) {
	s.Value = asString(fields, "value", s.Value)
}

func (s *StringValue) Format() string {
	return s.Value + "#"
}

// SelenographicCoordinate formats "+D*M" (mandatory sign, no seconds), the
// shape the python reference uses for GetSelenographicLatitude/Longitude.
type SelenographicCoordinate struct {
	Degrees, Minutes int
}

func (s *SelenographicCoordinate) Fill(fields map[string]any) {
	s.Degrees = asInt(fields, "degrees", s.Degrees)
	s.Minutes = asInt(fields, "minutes", s.Minutes)
}

func (s *SelenographicCoordinate) Format() string {
	return fmt.Sprintf("%+d*%d#", s.Degrees, s.Minutes)
}

// IntValue formats a bare decimal integer, terminated with '#'. Used for
// size limits, elevation limits, field diameter, and home-status codes.
type IntValue struct {
	Value int
}

func (i *IntValue) Fill(fields map[string]any) {
	i.Value = asInt(fields, "value", i.Value)
}

func (i *IntValue) Format() string {
	return fmt.Sprintf("%d#", i.Value)
}

// AxisPair formats "axis_1:axis_2#", the shape shared by the backlash and
// home-data getters.
type AxisPair struct {
	Axis1, Axis2 int
}

func (a *AxisPair) Fill(fields map[string]any) {
	a.Axis1 = asInt(fields, "axis_1", a.Axis1)
	a.Axis2 = asInt(fields, "axis_2", a.Axis2)
}

func (a *AxisPair) Format() string {
	return fmt.Sprintf("%d:%d#", a.Axis1, a.Axis2)
}

// SensorOffsets formats "az_error:el_error:home_offset#".
type SensorOffsets struct {
	AzError, ElError, HomeOffset int
}

func (s *SensorOffsets) Fill(fields map[string]any) {
	s.AzError = asInt(fields, "az_error", s.AzError)
	s.ElError = asInt(fields, "el_error", s.ElError)
	s.HomeOffset = asInt(fields, "home_offset", s.HomeOffset)
}

func (s *SensorOffsets) Format() string {
	return fmt.Sprintf("%d:%d:%d#", s.AzError, s.ElError, s.HomeOffset)
}

// PrecisionToggle formats the fixed "HIGH#"/"LOW#" strings the high- and
// low-precision position toggles report.
type PrecisionToggle struct {
	High bool
}

func (p *PrecisionToggle) Fill(fields map[string]any) {
	p.High = asBool(fields, "value", p.High)
}

func (p *PrecisionToggle) Format() string {
	if p.High {
		return "HIGH#"
	}
	return "LOW#"
}

// HandboxDateAck formats SetHandboxDate's oddly-shaped success reply: a
// leading boolean digit followed by a fixed two-line status message, each
// line terminated with '#'. Matches the python reference's literal string
// rather than the generic Boolean shape.
type HandboxDateAck struct {
	OK bool
}

func (h *HandboxDateAck) Fill(fields map[string]any) {
	h.OK = asBool(fields, "value", h.OK)
}

func (h *HandboxDateAck) Format() string {
	if !h.OK {
		return "0#"
	}
	return "1Updating  Planetary Data#                       #"
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
