package response

import "github.com/telescopio-montemayor/lx200-go/catalog"

// Factory builds a fresh Response already carrying its per-command fixed
// defaults (the fields a real LX200 mount reports before the store has
// anything more specific to say).
type Factory func() Response

// Catalog maps a command's stable Name to the factory producing its
// response. Every catalog.Entries name must have an entry here; a
// self-check walks both tables at startup and reports anything missing.
var Catalog = map[string]Factory{
	catalog.NameACK: func() Response { return &ACK{Value: "A"} },
	// EOT requests a binary firmware dump; this simulator does not emulate
	// the firmware transfer protocol, so it acknowledges with no payload.
	catalog.NameEOT: emptyFactory,

	catalog.NameAutomaticAlignment: emptyFactory,
	catalog.NameLandAlignment:      emptyFactory,
	catalog.NamePolarAlignment:     emptyFactory,
	catalog.NameAltAzAlignment:     emptyFactory,

	catalog.NameSetAltitudeAntiBacklash: emptyFactory,
	catalog.NameSetAzimuthAntiBacklash:  emptyFactory,

	catalog.NameIncreaseReticleBrightness: emptyFactory,
	catalog.NameDecreaseReticleBrightness: emptyFactory,
	catalog.NameSetReticleFlashRate:       emptyFactory,
	catalog.NameSetReticleFlashDutyCycle:  emptyFactory,

	catalog.NameSyncSelenographic: func() Response { return &StringValue{Value: " M31 EX GAL MAG 3.5 SZ178.0'"} },
	catalog.NameSyncDatabase:      func() Response { return &StringValue{Value: " M31 EX GAL MAG 3.5 SZ178.0'"} },

	catalog.NameDistanceBars: func() Response { return &DistanceBars{N: 0} },

	catalog.NameFocuserSlewIn:             emptyFactory,
	catalog.NameFocuserSlewOut:            emptyFactory,
	catalog.NameFocuserSetPositionOffset:  emptyFactory,
	catalog.NameFocuserMoveCardinal:       emptyFactory,
	catalog.NameFocuserHalt:               emptyFactory,
	catalog.NameFocuserLoadPresetDistance: emptyFactory,
	catalog.NameFocuserNamePreset:         emptyFactory,
	catalog.NameFocuserSelectPreset:       emptyFactory,
	catalog.NameFocuserSetSlow:            emptyFactory,
	catalog.NameFocuserSetFast:            emptyFactory,
	catalog.NameFocuserSelectRate:         emptyFactory,
	catalog.NameQueryFocuserBusyStatus:    func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },

	catalog.NameGetAlignmentMenuEntry0: func() Response { return &StringValue{Value: "Menu0"} },
	catalog.NameGetAlignmentMenuEntry1: func() Response { return &StringValue{Value: "Menu1"} },
	catalog.NameGetAlignmentMenuEntry2: func() Response { return &StringValue{Value: "Menu2"} },
	catalog.NameGetLocalTime12H:        func() Response { return &TimeOfDay{} },
	catalog.NameGetAltitude:            func() Response { return &SignedDMS{HighPrecision: true} },
	catalog.NameGetBrowseBrighterMagnitudeLimit: func() Response { return &SignedFloat{Value: 10} },
	catalog.NameGetDate:                         func() Response { return &Date{} },
	catalog.NameGetClockFormat:                  func() Response { return &ClockFormat{Is24: true} },
	catalog.NameGetDeclination:                  func() Response { return &SignedDMS{HighPrecision: true} },
	catalog.NameGetSelectedObjectDeclination:    func() Response { return &SignedDMS{HighPrecision: true} },
	catalog.NameGetSelenographicLatitude:        func() Response { return &SelenographicCoordinate{Degrees: 99, Minutes: 99} },
	catalog.NameGetSelenographicLongitude:       func() Response { return &SelenographicCoordinate{Degrees: 99, Minutes: 99} },
	catalog.NameGetFindFieldDiameter:            func() Response { return &IntValue{} },
	catalog.NameGetBrowseFaintMagnitudeLimit:    func() Response { return &SignedFloat{Value: 0} },
	catalog.NameGetUTCOffsetTime:                func() Response { return &SignedFloat{Value: 0} },
	catalog.NameGetSiteLongitude:                func() Response { return &SignedDMS{HighPrecision: false} },
	catalog.NameGetDailySavingsTimeSettings:     func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameGetHighLimit:                    func() Response { return &IntValue{Value: 110} },
	catalog.NameGetLocalTime24H:                 func() Response { return &TimeOfDay{} },
	catalog.NameGetDistanceToMeridian:           func() Response { return &SignedDMS{HighPrecision: true} },
	catalog.NameGetLargerSizeLimit:              func() Response { return &IntValue{Value: 123} },
	catalog.NameGetSite1Name:                    func() Response { return &StringValue{Value: "SI1"} },
	catalog.NameGetSite2Name:                    func() Response { return &StringValue{Value: "SI2"} },
	catalog.NameGetSite3Name:                    func() Response { return &StringValue{Value: "SI3"} },
	catalog.NameGetSite4Name:                    func() Response { return &StringValue{Value: "SI4"} },
	catalog.NameGetBacklashValues:               func() Response { return &AxisPair{} },
	catalog.NameGetHomeData:                     func() Response { return &AxisPair{} },
	catalog.NameGetSensorOffsets:                func() Response { return &SensorOffsets{} },
	catalog.NameGetLowerLimit:                   func() Response { return &IntValue{} },
	catalog.NameGetMinimumQualityForFind:        func() Response { return &StringValue{Value: "GD"} },
	catalog.NameGetRightAscencion:               func() Response { return &HMS{HighPrecision: true} },
	catalog.NameGetSelectedObjectRightAscencion: func() Response { return &HMS{HighPrecision: true} },
	catalog.NameGetSiderealTime:                 func() Response { return &HMS{HighPrecision: true} },
	catalog.NameGetSmallerSizeLimit:             func() Response { return &IntValue{Value: 123} },
	catalog.NameGetTrackingRate:                 func() Response { return &SignedFloat{Value: 60.0} },
	catalog.NameGetSiteLatitude:                 func() Response { return &SignedDMS{HighPrecision: false} },
	catalog.NameGetFirmwareDate:                 func() Response { return &FirmwareDate{Month: 12, Day: 31, Year: 1999} },
	catalog.NameGetFirmwareNumber:               func() Response { return &FirmwareNumber{Major: 42, Minor: 0} },
	catalog.NameGetProductName:                  func() Response { return &StringValue{Value: "lx200-go telescope simulator"} },
	catalog.NameGetFirmwareTime:                 func() Response { return &TimeOfDay{} },
	catalog.NameGetAlignmentStatus:              func() Response { return &AlignmentStatus{Mount: "P", Tracking: false, AlignmentStars: 0} },
	catalog.NameGetDeepskySearchString:          func() Response { return &StringValue{Value: "gpdco"} },
	catalog.NameGetAzimuth:                      func() Response { return &SignedDMS{HighPrecision: true} },

	catalog.NameCalibrateHomePosition: emptyFactory,
	catalog.NameSeekHomePosition:      emptyFactory,
	catalog.NameBypassDSTEntry:        func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSleep:                 emptyFactory,
	catalog.NameSetParkPosition:       emptyFactory,
	catalog.NamePark:                  emptyFactory,
	catalog.NameWakeUp:                emptyFactory,
	catalog.NameQueryHomeStatus:       func() Response { return &IntValue{Value: 1} },

	catalog.NameToggleTimeFormat: emptyFactory,
	catalog.NameInitialize:       emptyFactory,

	catalog.NameSlewToTargetAltAz: func() Response { return &Boolean{TrueToken: "0", FalseToken: "1", Value: true} },
	catalog.NameGuideNorth:        emptyFactory,
	catalog.NameGuideSouth:        emptyFactory,
	catalog.NameGuideEast:         emptyFactory,
	catalog.NameGuideWest:         emptyFactory,
	catalog.NameMoveEast:          emptyFactory,
	catalog.NameMoveNorth:         emptyFactory,
	catalog.NameMoveSouth:         emptyFactory,
	catalog.NameMoveWest:          emptyFactory,
	catalog.NameSlewToTarget:      func() Response { return &Boolean{TrueToken: "0", FalseToken: "1", Value: true} },

	catalog.NameHighPrecisionToggle:     func() Response { return &PrecisionToggle{High: true} },
	catalog.NamePrecisionPositionToggle: func() Response { return &PrecisionToggle{High: true} },

	catalog.NameHaltAll:       emptyFactory,
	catalog.NameHaltEastward:  emptyFactory,
	catalog.NameHaltNorthward: emptyFactory,
	catalog.NameHaltSouthward: emptyFactory,
	catalog.NameHaltWestward:  emptyFactory,

	catalog.NameSetSlewRateToCentering:    emptyFactory,
	catalog.NameSetSlewRateToGuiding:      emptyFactory,
	catalog.NameSetSlewRateToFinding:      emptyFactory,
	catalog.NameSetSlewRateToMax:          emptyFactory,
	catalog.NameSetRightAscentionSlewRate: emptyFactory,
	catalog.NameSetDeclinationSlewRate:    emptyFactory,
	catalog.NameSetGuideRate:              emptyFactory,

	catalog.NameSetTargetRightAscencion:  func() Response { return &Boolean{TrueToken: "1", FalseToken: "0", Value: true} },
	catalog.NameSetTargetDeclination:     func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetTargetAltitude:        func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetTargetAzimuth:         func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetBaudRate:              func() Response { return &Boolean{TrueToken: "1", FalseToken: "0", Value: true} },
	catalog.NameSetHandboxDate:           func() Response { return &HandboxDateAck{OK: true} },
	catalog.NameSetFieldDiameter:         func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetUTCOffset:             func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetSiteLongitude:         func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetDSTEnabled:            func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetMaximumElevation:      func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetLowestElevation:       func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetSmallestObjectSize:    func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetLargestObjectSize:     func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetLocalTime:             func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetLocalSiderealTime:     func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameEnableFlexureCorrection:  emptyFactory,
	catalog.NameDisableFlexureCorrection: emptyFactory,
	catalog.NameSetSite1Name:             emptyFactory,
	catalog.NameSetSite2Name:             emptyFactory,
	catalog.NameSetSite3Name:             emptyFactory,
	catalog.NameSetSite4Name:             emptyFactory,
	catalog.NameSetObjectSelectionString: emptyFactory,
	catalog.NameSetBacklashValues:        func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetHomeData:              func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetSensorOffsets:         func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetSlewRate:              emptyFactory,
	catalog.NameSetSiteLatitude:          func() Response { return &Boolean{TrueToken: "1", FalseToken: "0"} },
	catalog.NameSetBrighterLimit:         func() Response { return &Boolean{TrueToken: "0", FalseToken: "1", Value: true} },
	catalog.NameSetTrackingRate:          func() Response { return &Boolean{TrueToken: "2", FalseToken: "0", Value: true} },

	catalog.NameSetLunarTracking:           emptyFactory,
	catalog.NameSelectCustomTrackingRate:   emptyFactory,
	catalog.NameSelectSiderealTrackingRate: emptyFactory,
	catalog.NameSelectSolarTrackingRate:    emptyFactory,
	catalog.NameEnableAltitudePEC:          emptyFactory,
	catalog.NameDisableAltitudePEC:         emptyFactory,
	catalog.NameEnableAzimuthPEC:           emptyFactory,
	catalog.NameDisableAzimuthPEC:          emptyFactory,
	catalog.NameEnableRightAscencionPEC:    emptyFactory,
	catalog.NameDisableRightAscencionPEC:   emptyFactory,

	catalog.NameSelectSite: emptyFactory,
}

func emptyFactory() Response { return &Empty{} }

// Unmapped returns every catalog entry Name with no matching Factory. Used
// by the startup self-check (spec: "a startup self-check reports unmapped
// commands").
func Unmapped() []string {
	seen := map[string]bool{}
	var missing []string
	for _, e := range catalog.Entries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		if _, ok := Catalog[e.Name]; !ok {
			missing = append(missing, e.Name)
		}
	}
	return missing
}

// BadDefaults formats every registered factory's zero-touch output (no
// store data filled in) and reports any name whose formatter panics or
// whose DistanceBars value falls outside [0,6]. Mirrors the python
// reference's get_responses_with_bad_defaults self-check.
func BadDefaults() (bad []string) {
	for name, factory := range Catalog {
		func() {
			defer func() {
				if recover() != nil {
					bad = append(bad, name)
				}
			}()
			r := factory()
			if db, ok := r.(*DistanceBars); ok {
				if _, err := db.FormatChecked(); err != nil {
					bad = append(bad, name)
					return
				}
			}
			_ = r.Format()
		}()
	}
	return bad
}
