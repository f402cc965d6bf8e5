package catalog

import "regexp"

func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

// dmsConverters is the shared converter map for signed DMS triples that
// include seconds (degrees, minutes, seconds all plain integers).
var dmsConverters = map[string]FieldConverter{
	"degrees": ConvInt,
	"minutes": ConvInt,
	"seconds": ConvInt,
}

var dmConverters = map[string]FieldConverter{
	"degrees": ConvInt,
	"minutes": ConvInt,
}

var hmsConverters = map[string]FieldConverter{
	"hours":   ConvInt,
	"minutes": ConvInt,
	"seconds": ConvInt,
}

// Entries is the ordered command catalog. Entries are tried top to bottom
// and the first match wins. Every entry matches the whole payload (a
// literal by equality, a pattern anchored with ^...$), so a shorter
// mnemonic never captures a longer one that starts with it; the more
// specific shapes (STA+/STZ- before T+/ST+, GVD before the rest of the GV
// family) are still listed first for readability.
var Entries = []Entry{
	// Alignment mode is stored as the bare ACK letter (A|D|L|P) so the ACK
	// response can read it back verbatim; AutomaticAlignment gets the
	// fourth letter "D" (the python reference's ACK.Downloader), the one
	// not already claimed by Land/Polar/AltAz.
	{Name: NameAutomaticAlignment, Literal: "Aa", StorePath: "mount.alignment_mode", StoreValue: map[string]any{"value": "D"}},
	{Name: NameLandAlignment, Literal: "AL", StorePath: "mount.alignment_mode", StoreValue: map[string]any{"value": "L"}},
	{Name: NamePolarAlignment, Literal: "AP", StorePath: "mount.alignment_mode", StoreValue: map[string]any{"value": "P"}},
	{Name: NameAltAzAlignment, Literal: "AA", StorePath: "mount.alignment_mode", StoreValue: map[string]any{"value": "A"}},

	{Name: NameSetAltitudeAntiBacklash, Pattern: re(`^\$BA(?P<value>\d{1,3})$`), StorePath: "mount.anti_backlash.altitude"},
	{Name: NameSetAzimuthAntiBacklash, Pattern: re(`^\$BZ(?P<value>\d{1,3})$`), StorePath: "mount.anti_backlash.azimuth"},

	{Name: NameIncreaseReticleBrightness, Literal: "B+"},
	{Name: NameDecreaseReticleBrightness, Literal: "B-"},
	{Name: NameSetReticleFlashRate, Pattern: re(`^\$B(?P<value>\d)$`), StorePath: "mount.reticle.flash_rate"},
	{Name: NameSetReticleFlashDutyCycle, Pattern: re(`^\$BD(?P<value>\d\d)$`), StorePath: "mount.reticle.flash_duty_cycle"},

	{Name: NameSyncSelenographic, Literal: "CL"},
	{Name: NameSyncDatabase, Literal: "CM"},

	{Name: NameDistanceBars, Literal: "D", LoadPath: "mount.slew.distance_bars"},

	{Name: NameFocuserSlewIn, Literal: "F+"},
	{Name: NameFocuserSlewOut, Literal: "F-"},
	{Name: NameFocuserSetPositionOffset, Pattern: re(`^FP(?P<sign>[+-])(?P<value>\d+)$`), Converters: map[string]FieldConverter{"sign": ConvString}, StorePath: "focuser.position.offset"},
	{Name: NameFocuserMoveCardinal, Pattern: re(`^FC(?P<direction>[nsew])$`), Converters: map[string]FieldConverter{"direction": ConvString}},
	{Name: NameFocuserHalt, Literal: "FQ"},
	{Name: NameFocuserLoadPresetDistance, Pattern: re(`^FLD(?P<idx>[1-9])$`)},
	{Name: NameFocuserNamePreset, Pattern: re(`^FLN(?P<idx>[1-9]):(?P<value>[\w ]{1,15})$`), Converters: map[string]FieldConverter{"value": ConvString}, StorePath: "focuser.presets.name_{idx}"},
	{Name: NameFocuserSelectPreset, Pattern: re(`^FLS(?P<idx>[1-9])$`), StorePath: "focuser.selected_preset", StoreValue: nil},
	{Name: NameFocuserSetSlow, Literal: "FF"},
	{Name: NameFocuserSetFast, Literal: "FS"},
	{Name: NameFocuserSelectRate, Pattern: re(`^F(?P<value>[1-4])$`), StorePath: "focuser.rate"},
	{Name: NameQueryFocuserBusyStatus, Literal: "FB", LoadPath: "focuser.busy"},

	{Name: NameGetAlignmentMenuEntry0, Literal: "G0", LoadPath: "mount.alignment.menu_0"},
	{Name: NameGetAlignmentMenuEntry1, Literal: "G1", LoadPath: "mount.alignment.menu_1"},
	{Name: NameGetAlignmentMenuEntry2, Literal: "G2", LoadPath: "mount.alignment.menu_2"},
	{Name: NameGetLocalTime12H, Literal: "Ga", LoadPath: "mount.local_time"},
	{Name: NameGetAltitude, Literal: "GA", LoadPath: "mount.target.altitude"},
	{Name: NameGetBrowseBrighterMagnitudeLimit, Literal: "Gb", LoadPath: "mount.limits.magnitude_brighter"},
	{Name: NameGetDate, Literal: "GC", LoadPath: "site.date"},
	{Name: NameGetClockFormat, Literal: "Gc", LoadPath: "site.clock_format"},
	{Name: NameGetDeclination, Literal: "GD", LoadPath: "mount.target.declination"},
	{Name: NameGetSelectedObjectDeclination, Literal: "Gd", LoadPath: "mount.target.declination"},
	{Name: NameGetSelenographicLatitude, Literal: "GE"},
	{Name: NameGetSelenographicLongitude, Literal: "Ge"},
	{Name: NameGetFindFieldDiameter, Literal: "GF", LoadPath: "mount.field_diameter"},
	{Name: NameGetBrowseFaintMagnitudeLimit, Literal: "Gf", LoadPath: "mount.limits.magnitude_faint"},
	{Name: NameGetUTCOffsetTime, Literal: "GG", LoadPath: "site.utc_offset"},
	{Name: NameGetSiteLongitude, Literal: "Gg", LoadPath: "site.longitude"},
	{Name: NameGetDailySavingsTimeSettings, Literal: "GH", LoadPath: "site.dst_enabled"},
	{Name: NameGetHighLimit, Literal: "Gh", LoadPath: "mount.limits.altitude_high"},
	{Name: NameGetLocalTime24H, Literal: "GL", LoadPath: "mount.local_time"},
	{Name: NameGetDistanceToMeridian, Literal: "Gm"},
	{Name: NameGetLargerSizeLimit, Literal: "Gl", LoadPath: "mount.limits.object_size_largest"},
	{Name: NameGetSite1Name, Literal: "GM", LoadPath: "site.name_1"},
	{Name: NameGetSite2Name, Literal: "GN", LoadPath: "site.name_2"},
	{Name: NameGetSite3Name, Literal: "GO", LoadPath: "site.name_3"},
	{Name: NameGetSite4Name, Literal: "GP", LoadPath: "site.name_4"},
	{Name: NameGetBacklashValues, Literal: "GpB", LoadPath: "mount.backlash"},
	{Name: NameGetHomeData, Literal: "GpH", LoadPath: "mount.home_data"},
	{Name: NameGetSensorOffsets, Literal: "GpS", LoadPath: "mount.sensor_offsets"},
	{Name: NameGetLowerLimit, Literal: "Go", LoadPath: "mount.limits.altitude_low"},
	{Name: NameGetMinimumQualityForFind, Literal: "Gq"},
	{Name: NameGetRightAscencion, Literal: "GR", LoadPath: "mount.target.right_ascencion"},
	{Name: NameGetSelectedObjectRightAscencion, Literal: "Gr", LoadPath: "mount.target.right_ascencion"},
	{Name: NameGetSiderealTime, Literal: "GS", LoadPath: "mount.local_sidereal_time"},
	{Name: NameGetSmallerSizeLimit, Literal: "Gs", LoadPath: "mount.limits.object_size_smallest"},
	{Name: NameGetTrackingRate, Literal: "GT", LoadPath: "mount.tracking_rate"},
	{Name: NameGetSiteLatitude, Literal: "Gt", LoadPath: "site.latitude"},
	{Name: NameGetFirmwareDate, Literal: "GVD"},
	{Name: NameGetFirmwareNumber, Literal: "GVN"},
	{Name: NameGetProductName, Literal: "GVP"},
	{Name: NameGetFirmwareTime, Literal: "GVT"},
	{Name: NameGetAlignmentStatus, Literal: "GW"},
	{Name: NameGetDeepskySearchString, Literal: "Gy", LoadPath: "mount.deepsky_search"},
	{Name: NameGetAzimuth, Literal: "GZ", LoadPath: "mount.target.azimuth"},

	{Name: NameCalibrateHomePosition, Literal: "hC"},
	{Name: NameSeekHomePosition, Literal: "hF"},
	{Name: NameBypassDSTEntry, Pattern: re(`^hI(?P<year>\d{2})(?P<month>\d{2})(?P<day>\d{2})(?P<hours>\d{2})(?P<minutes>\d{2})(?P<seconds>\d{2})$`), StorePath: "site.dst_bypass_entry"},
	{Name: NameSleep, Literal: "hN"},
	{Name: NameSetParkPosition, Literal: "hS"},
	{Name: NamePark, Literal: "hP"},
	{Name: NameWakeUp, Literal: "hW"},
	{Name: NameQueryHomeStatus, Literal: "h?"},

	{Name: NameToggleTimeFormat, Literal: "H"},
	{Name: NameInitialize, Literal: "I"},

	{Name: NameSlewToTargetAltAz, Literal: "MA"},
	{Name: NameGuideNorth, Pattern: re(`^Mgn(?P<value>\d{4})$`)},
	{Name: NameGuideSouth, Pattern: re(`^Mgs(?P<value>\d{4})$`)},
	{Name: NameGuideEast, Pattern: re(`^Mge(?P<value>\d{4})$`)},
	{Name: NameGuideWest, Pattern: re(`^Mgw(?P<value>\d{4})$`)},
	{Name: NameMoveEast, Literal: "Me"},
	{Name: NameMoveNorth, Literal: "Mn"},
	{Name: NameMoveSouth, Literal: "Ms"},
	{Name: NameMoveWest, Literal: "Mw"},
	{Name: NameSlewToTarget, Literal: "MS"},

	{Name: NameHighPrecisionToggle, Literal: "P", LoadPath: "mount.high_precision"},
	{Name: NamePrecisionPositionToggle, Literal: "U", LoadPath: "mount.precision_position"},

	{Name: NameHaltAll, Literal: "Q"},
	{Name: NameHaltEastward, Literal: "Qe"},
	{Name: NameHaltNorthward, Literal: "Qn"},
	{Name: NameHaltSouthward, Literal: "Qs"},
	{Name: NameHaltWestward, Literal: "Qw"},

	{Name: NameSetSlewRateToCentering, Literal: "RC"},
	{Name: NameSetSlewRateToGuiding, Literal: "RG"},
	{Name: NameSetSlewRateToFinding, Literal: "RM"},
	{Name: NameSetSlewRateToMax, Literal: "RS"},
	{Name: NameSetRightAscentionSlewRate, Pattern: re(`^RA(?P<value>\d\d\.\d)$`), Converters: map[string]FieldConverter{"value": ConvFloat}},
	{Name: NameSetDeclinationSlewRate, Pattern: re(`^Re(?P<value>\d\d\.\d)$`), Converters: map[string]FieldConverter{"value": ConvFloat}},
	{Name: NameSetGuideRate, Pattern: re(`^Rg(?P<value>\d\d\.\d)$`), Converters: map[string]FieldConverter{"value": ConvFloat}},

	{Name: NameSetTargetRightAscencion, Pattern: re(`^Sr ?(?P<hours>\d{2}):(?P<minutes>\d{2}):(?P<seconds>\d{2})$`), Converters: hmsConverters, StorePath: "mount.target.right_ascencion"},
	{Name: NameSetTargetDeclination, Pattern: re(`^Sd ?(?P<degrees>[+-]\d{2})[*:](?P<minutes>\d{2}):(?P<seconds>\d{2})$`), Converters: dmsConverters, SignedDMS: true, StorePath: "mount.target.declination"},
	{Name: NameSetTargetAltitude, Pattern: re(`^SA ?(?P<degrees>[+-]\d{2})[*:](?P<minutes>\d{2})$`), Converters: dmConverters, SignedDMS: true, StorePath: "mount.target.altitude"},
	{Name: NameSetTargetAzimuth, Pattern: re(`^Sz ?(?P<degrees>\d{3})[*:](?P<minutes>\d{2})$`), Converters: dmConverters, StorePath: "mount.target.azimuth"},
	{Name: NameSetBaudRate, Pattern: re(`^SB(?P<value>\d)$`), StorePath: "site.baud_rate"},
	{Name: NameSetHandboxDate, Pattern: re(`^SC(?P<month>\d{2})/(?P<day>\d{2})/(?P<year>\d{2})$`), StorePath: "site.date"},
	{Name: NameSetFieldDiameter, Pattern: re(`^SF(?P<value>\d+)$`), StorePath: "mount.field_diameter"},
	{Name: NameSetUTCOffset, Pattern: re(`^SG(?P<value>[+-]?\d+(\.\d)?)$`), Converters: map[string]FieldConverter{"value": ConvFloat}, StorePath: "site.utc_offset"},
	{Name: NameSetSiteLongitude, Pattern: re(`^Sg(?P<degrees>\d{3})[*:](?P<minutes>\d{2})$`), Converters: dmConverters, StorePath: "site.longitude"},
	{Name: NameSetDSTEnabled, Pattern: re(`^SH(?P<value>[01])$`), StorePath: "site.dst_enabled"},
	{Name: NameSetMaximumElevation, Pattern: re(`^Sh(?P<value>\d{1,3})$`), StorePath: "mount.limits.altitude_high"},
	{Name: NameSetLowestElevation, Pattern: re(`^SoN?(?P<value>\d{1,3})$`), StorePath: "mount.limits.altitude_low"},
	{Name: NameSetSmallestObjectSize, Pattern: re(`^Sl(?P<value>\d+)$`), StorePath: "mount.limits.object_size_smallest"},
	{Name: NameSetLargestObjectSize, Pattern: re(`^Ss(?P<value>\d+)$`), StorePath: "mount.limits.object_size_largest"},
	{Name: NameSetLocalTime, Pattern: re(`^SL(?P<hours>\d{2}):(?P<minutes>\d{2}):(?P<seconds>\d{2})$`), Converters: hmsConverters, StorePath: "mount.local_time"},
	{Name: NameSetLocalSiderealTime, Pattern: re(`^SS(?P<hours>\d{2}):(?P<minutes>\d{2}):(?P<seconds>\d{2})$`), Converters: hmsConverters, StorePath: "mount.local_sidereal_time"},
	{Name: NameEnableFlexureCorrection, Literal: "SXE", StorePath: "mount.flexure.enabled", StoreValue: map[string]any{"value": true}},
	{Name: NameDisableFlexureCorrection, Literal: "SXD", StorePath: "mount.flexure.enabled", StoreValue: map[string]any{"value": false}},
	{Name: NameSetSite1Name, Pattern: re(`^SM(?P<value>[\w ]{1,15})$`), Converters: map[string]FieldConverter{"value": ConvString}, StorePath: "site.name_1"},
	{Name: NameSetSite2Name, Pattern: re(`^SN(?P<value>[\w ]{1,15})$`), Converters: map[string]FieldConverter{"value": ConvString}, StorePath: "site.name_2"},
	{Name: NameSetSite3Name, Pattern: re(`^SO(?P<value>[\w ]{1,15})$`), Converters: map[string]FieldConverter{"value": ConvString}, StorePath: "site.name_3"},
	{Name: NameSetSite4Name, Pattern: re(`^SP(?P<value>[\w ]{1,15})$`), Converters: map[string]FieldConverter{"value": ConvString}, StorePath: "site.name_4"},
	{Name: NameSetObjectSelectionString, Pattern: re(`^SW(?P<value>.*)$`), Converters: map[string]FieldConverter{"value": ConvString}, StorePath: "mount.deepsky_search"},
	{Name: NameSetBacklashValues, Pattern: re(`^SpB(?P<axis_1>\d{1,3}):(?P<axis_2>\d{1,3})$`), StorePath: "mount.backlash"},
	{Name: NameSetHomeData, Pattern: re(`^SpH(?P<axis_1>\d{1,3}):(?P<axis_2>\d{1,3})$`), StorePath: "mount.home_data"},
	{Name: NameSetSensorOffsets, Pattern: re(`^SpS(?P<az_error>[+-]?\d+):(?P<el_error>[+-]?\d+):(?P<home_offset>[+-]?\d+)$`), StorePath: "mount.sensor_offsets"},
	{Name: NameSetSlewRate, Pattern: re(`^ST(?P<value>\d\d\.\d)$`), Converters: map[string]FieldConverter{"value": ConvFloat}, StorePath: "mount.slew_rate"},
	{Name: NameSetSiteLatitude, Pattern: re(`^St ?(?P<degrees>[+-]\d{2})[*:](?P<minutes>\d{2})$`), Converters: dmConverters, SignedDMS: true, StorePath: "site.latitude"},
	{Name: NameSetBrighterLimit, Pattern: re(`^Sb(?P<value>[+-]?\d+(\.\d)?)$`), Converters: map[string]FieldConverter{"value": ConvFloat}, StorePath: "mount.limits.magnitude_brighter"},
	{Name: NameSetTrackingRate, Pattern: re(`^TR(?P<value>\d\d\.\d)$`), Converters: map[string]FieldConverter{"value": ConvFloat}, StorePath: "mount.tracking_rate"},

	{Name: NameSetLunarTracking, Literal: "TL", StorePath: "mount.tracking_rate", StoreValue: map[string]any{"value": 59.9}},
	{Name: NameSelectCustomTrackingRate, Literal: "TM", StorePath: "mount.tracking_mode", StoreValue: map[string]any{"value": "custom"}},
	{Name: NameSelectSiderealTrackingRate, Literal: "TQ", StorePath: "mount.tracking_mode", StoreValue: map[string]any{"value": "sidereal"}},
	{Name: NameSelectSolarTrackingRate, Literal: "TS", StorePath: "mount.tracking_mode", StoreValue: map[string]any{"value": "solar"}},

	// STA+/STA- (altitude axis) and STZ+/STZ- (right-ascension axis) are
	// distinct PEC toggles; T+/ST+ and T-/ST- are aliases of the same
	// azimuth-axis toggle (spec scenario: STA+ then STZ- leaves altitude
	// enabled and right-ascension disabled).
	{Name: NameEnableAltitudePEC, Literal: "STA+", StorePath: "mount.correction.pec.altitude.enabled", StoreValue: map[string]any{"value": true}},
	{Name: NameDisableAltitudePEC, Literal: "STA-", StorePath: "mount.correction.pec.altitude.enabled", StoreValue: map[string]any{"value": false}},
	{Name: NameEnableRightAscencionPEC, Literal: "STZ+", StorePath: "mount.correction.pec.right_ascencion.enabled", StoreValue: map[string]any{"value": true}},
	{Name: NameDisableRightAscencionPEC, Literal: "STZ-", StorePath: "mount.correction.pec.right_ascencion.enabled", StoreValue: map[string]any{"value": false}},
	{Name: NameEnableAzimuthPEC, Literal: "T+", StorePath: "mount.correction.pec.azimuth.enabled", StoreValue: map[string]any{"value": true}},
	{Name: NameDisableAzimuthPEC, Literal: "T-", StorePath: "mount.correction.pec.azimuth.enabled", StoreValue: map[string]any{"value": false}},
	{Name: NameEnableAzimuthPEC, Literal: "ST+", StorePath: "mount.correction.pec.azimuth.enabled", StoreValue: map[string]any{"value": true}},
	{Name: NameDisableAzimuthPEC, Literal: "ST-", StorePath: "mount.correction.pec.azimuth.enabled", StoreValue: map[string]any{"value": false}},

	{Name: NameSelectSite, Pattern: re(`^W(?P<value>[1-4])$`), StorePath: "site.selected"},
}
