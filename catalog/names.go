package catalog

// Name constants are the stable catalog identities shared by the command
// catalog, the response catalog, and the store's default-seeding pass.
// Keeping them as constants instead of repeated string literals means a
// typo in one package fails to compile rather than silently producing an
// unmapped command or response.
const (
	NameACK = "ACK"
	NameEOT = "EOT"

	NameAutomaticAlignment = "AutomaticAlignment"
	NameLandAlignment      = "LandAlignment"
	NamePolarAlignment     = "PolarAlignment"
	NameAltAzAlignment     = "AltAzAlignment"

	NameSetAltitudeAntiBacklash = "SetAltitudeAntiBacklash"
	NameSetAzimuthAntiBacklash  = "SetAzimuthAntiBacklash"

	NameIncreaseReticleBrightness = "IncreaseReticleBrightness"
	NameDecreaseReticleBrightness = "DecreaseReticleBrightness"
	NameSetReticleFlashRate       = "SetReticleFlashRate"
	NameSetReticleFlashDutyCycle  = "SetReticleFlashDutyCycle"

	NameSyncSelenographic = "SyncSelenographic"
	NameSyncDatabase      = "SyncDatabase"

	NameDistanceBars = "DistanceBars"

	NameFocuserSlewIn             = "FocuserSlewIn"
	NameFocuserSlewOut            = "FocuserSlewOut"
	NameFocuserSetPositionOffset  = "FocuserSetPositionOffset"
	NameFocuserMoveCardinal       = "FocuserMoveCardinal"
	NameFocuserHalt               = "FocuserHalt"
	NameFocuserLoadPresetDistance = "FocuserLoadPresetDistance"
	NameFocuserNamePreset         = "FocuserNamePreset"
	NameFocuserSelectPreset       = "FocuserSelectPreset"
	NameFocuserSetSlow            = "FocuserSetSlow"
	NameFocuserSetFast            = "FocuserSetFast"
	NameFocuserSelectRate         = "FocuserSelectRate"
	NameQueryFocuserBusyStatus    = "QueryFocuserBusyStatus"

	NameGetAlignmentMenuEntry0           = "GetAlignmentMenuEntry0"
	NameGetAlignmentMenuEntry1           = "GetAlignmentMenuEntry1"
	NameGetAlignmentMenuEntry2           = "GetAlignmentMenuEntry2"
	NameGetLocalTime12H                  = "GetLocalTime12H"
	NameGetAltitude                      = "GetAltitude"
	NameGetBrowseBrighterMagnitudeLimit  = "GetBrowseBrighterMagnitudeLimit"
	NameGetDate                          = "GetDate"
	NameGetClockFormat                   = "GetClockFormat"
	NameGetDeclination                   = "GetDeclination"
	NameGetSelectedObjectDeclination     = "GetSelectedObjectDeclination"
	NameGetSelenographicLatitude         = "GetSelenographicLatitude"
	NameGetSelenographicLongitude        = "GetSelenographicLongitude"
	NameGetFindFieldDiameter             = "GetFindFieldDiameter"
	NameGetBrowseFaintMagnitudeLimit     = "GetBrowseFaintMagnitudeLimit"
	NameGetUTCOffsetTime                 = "GetUTCOffsetTime"
	NameGetSiteLongitude                 = "GetSiteLongitude"
	NameGetDailySavingsTimeSettings      = "GetDailySavingsTimeSettings"
	NameGetHighLimit                     = "GetHighLimit"
	NameGetLocalTime24H                  = "GetLocalTime24H"
	NameGetDistanceToMeridian            = "GetDistanceToMeridian"
	NameGetLargerSizeLimit               = "GetLargerSizeLimit"
	NameGetSite1Name                     = "GetSite1Name"
	NameGetSite2Name                     = "GetSite2Name"
	NameGetSite3Name                     = "GetSite3Name"
	NameGetSite4Name                     = "GetSite4Name"
	NameGetBacklashValues                = "GetBacklashValues"
	NameGetHomeData                      = "GetHomeData"
	NameGetSensorOffsets                 = "GetSensorOffsets"
	NameGetLowerLimit                    = "GetLowerLimit"
	NameGetMinimumQualityForFind         = "GetMinimumQualityForFind"
	NameGetRightAscencion                = "GetRightAscencion"
	NameGetSelectedObjectRightAscencion  = "GetSelectedObjectRightAscencion"
	NameGetSiderealTime                  = "GetSiderealTime"
	NameGetSmallerSizeLimit              = "GetSmallerSizeLimit"
	NameGetTrackingRate                  = "GetTrackingRate"
	NameGetSiteLatitude                  = "GetSiteLatitude"
	NameGetFirmwareDate                  = "GetFirmwareDate"
	NameGetFirmwareNumber                = "GetFirmwareNumber"
	NameGetProductName                   = "GetProductName"
	NameGetFirmwareTime                  = "GetFirmwareTime"
	NameGetAlignmentStatus               = "GetAlignmentStatus"
	NameGetDeepskySearchString           = "GetDeepskySearchString"
	NameGetAzimuth                       = "GetAzimuth"

	NameCalibrateHomePosition = "CalibrateHomePosition"
	NameSeekHomePosition      = "SeekHomePosition"
	NameBypassDSTEntry        = "BypassDSTEntry"
	NameSleep                 = "Sleep"
	NamePark                  = "Park"
	NameSetParkPosition       = "SetParkPosition"
	NameWakeUp                = "WakeUp"
	NameQueryHomeStatus       = "QueryHomeStatus"

	NameToggleTimeFormat = "ToggleTimeFormat"
	NameInitialize       = "Initialize"

	NameSlewToTargetAltAz = "SlewToTargetAltAz"
	NameGuideNorth        = "GuideNorth"
	NameGuideSouth        = "GuideSouth"
	NameGuideEast         = "GuideEast"
	NameGuideWest         = "GuideWest"
	NameMoveEast          = "MoveEast"
	NameMoveNorth         = "MoveNorth"
	NameMoveSouth         = "MoveSouth"
	NameMoveWest          = "MoveWest"
	NameSlewToTarget      = "SlewToTarget"

	NameHighPrecisionToggle    = "HighPrecisionToggle"
	NamePrecisionPositionToggle = "PrecisionPositionToggle"

	NameHaltAll        = "HaltAll"
	NameHaltEastward   = "HaltEastward"
	NameHaltNorthward  = "HaltNorthward"
	NameHaltSouthward  = "HaltSouthward"
	NameHaltWestward   = "HaltWestward"

	NameSetSlewRateToCentering  = "SetSlewRateToCentering"
	NameSetSlewRateToGuiding    = "SetSlewRateToGuiding"
	NameSetSlewRateToFinding    = "SetSlewRateToFinding"
	NameSetSlewRateToMax        = "SetSlewRateToMax"
	NameSetRightAscentionSlewRate = "SetRightAscentionSlewRate"
	NameSetDeclinationSlewRate  = "SetDeclinationSlewRate"
	NameSetGuideRate            = "SetGuideRate"

	NameSetTargetRightAscencion = "SetTargetRightAscencion"
	NameSetTargetDeclination    = "SetTargetDeclination"
	NameSetTargetAltitude       = "SetTargetAltitude"
	NameSetTargetAzimuth        = "SetTargetAzimuth"
	NameSetBaudRate             = "SetBaudRate"
	NameSetHandboxDate          = "SetHandboxDate"
	NameSetFieldDiameter        = "SetFieldDiameter"
	NameSetUTCOffset            = "SetUTCOffset"
	NameSetSiteLongitude        = "SetSiteLongitude"
	NameSetDSTEnabled           = "SetDSTEnabled"
	NameSetMaximumElevation     = "SetMaximumElevation"
	NameSetLowestElevation      = "SetLowestElevation"
	NameSetSmallestObjectSize   = "SetSmallestObjectSize"
	NameSetLargestObjectSize    = "SetLargestObjectSize"
	NameSetLocalTime            = "SetLocalTime"
	NameSetLocalSiderealTime    = "SetLocalSiderealTime"
	NameEnableFlexureCorrection = "EnableFlexureCorrection"
	NameDisableFlexureCorrection = "DisableFlexureCorrection"
	NameSetSite1Name            = "SetSite1Name"
	NameSetSite2Name            = "SetSite2Name"
	NameSetSite3Name            = "SetSite3Name"
	NameSetSite4Name            = "SetSite4Name"
	NameSetObjectSelectionString = "SetObjectSelectionString"
	NameSetBacklashValues       = "SetBacklashValues"
	NameSetHomeData             = "SetHomeData"
	NameSetSensorOffsets        = "SetSensorOffsets"
	NameSetSlewRate             = "SetSlewRate"
	NameSetSiteLatitude         = "SetSiteLatitude"
	NameSetBrighterLimit        = "SetBrighterLimit"
	NameSetTrackingRate         = "SetTrackingRate"

	NameSetLunarTracking           = "SetLunarTracking"
	NameSelectCustomTrackingRate   = "SelectCustomTrackingRate"
	NameSelectSiderealTrackingRate = "SelectSiderealTrackingRate"
	NameSelectSolarTrackingRate    = "SelectSolarTrackingRate"
	NameEnableAltitudePEC          = "EnableAltitudePEC"
	NameDisableAltitudePEC         = "DisableAltitudePEC"
	NameEnableAzimuthPEC           = "EnableAzimuthPEC"
	NameDisableAzimuthPEC          = "DisableAzimuthPEC"
	NameEnableRightAscencionPEC    = "EnableRightAscencionPEC"
	NameDisableRightAscencionPEC   = "DisableRightAscencionPEC"

	NameSelectSite = "SelectSite"
)
