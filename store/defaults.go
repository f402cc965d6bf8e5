package store

// Defaults is applied once at New, after every catalog-referenced path has
// been seeded with an empty field-map. It mirrors the fixed defaults the
// original simulator ships (lx200/responses/defaults.py): the numbers a
// freshly booted mount reports before any client has configured it.
var Defaults = map[string]FieldMap{
	"mount.alignment_mode":              {"value": "A"},
	"mount.tracking_rate":               {"value": 60.0},
	"site.clock_format":                 {"value": true},
	"site.name_1":                       {"value": "SI1"},
	"site.name_2":                       {"value": "SI2"},
	"site.name_3":                       {"value": "SI3"},
	"site.name_4":                       {"value": "SI4"},
	"mount.limits.altitude_high":        {"value": 110},
	"mount.limits.altitude_low":         {"value": 0},
	"mount.limits.magnitude_brighter":   {"value": 10.0},
	"mount.limits.magnitude_faint":      {"value": 0.0},
	"site.utc_offset":                   {"value": 0.0},
	"mount.alignment.menu_0":            {"value": "Menu0"},
	"mount.alignment.menu_1":            {"value": "Menu1"},
	"mount.alignment.menu_2":            {"value": "Menu2"},
	"site.selected":                     {"value": 1},
	"site.dst_enabled":                  {"value": false},
	"mount.limits.object_size_smallest": {"value": 123},
	"mount.limits.object_size_largest":  {"value": 123},
	"mount.deepsky_search":              {"value": "gpdco"},
	"focuser.busy":                      {"value": false},
	"mount.slew.distance_bars":          {"value": 0},
	"mount.high_precision":              {"value": true},
	"mount.precision_position":          {"value": true},
	"mount.target.right_ascencion":      {"hours": 0, "minutes": 0, "seconds": 0},
	"mount.target.declination":          {"degrees": 0, "minutes": 0, "seconds": 0},
	"mount.target.altitude":             {"degrees": 0, "minutes": 0},
	"mount.target.azimuth":              {"degrees": 0, "minutes": 0},
	"mount.local_sidereal_time":         {"hours": 0, "minutes": 0, "seconds": 0},
	"mount.local_time":                  {"hours": 0, "minutes": 0, "seconds": 0},
	"site.date":                         {"month": 1, "day": 1, "year": 0},
	"site.latitude":                     {"degrees": 0, "minutes": 0},
	"site.longitude":                    {"degrees": 0, "minutes": 0},
}
