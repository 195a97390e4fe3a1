package uszipcode

// fixtureZipcodes is a small hand picked sample of the dataset: the area
// around the White House, lower Manhattan, a few same-name cities in
// different states, and records with missing values.
func fixtureZipcodes() []Zipcode {
	return []Zipcode{
		{
			Zipcode:               "00601",
			ZipcodeType:           Standard,
			MajorCity:             "Adjuntas",
			PostOfficeCity:        "Adjuntas, PR",
			CommonCityList:        []string{"Adjuntas", "Jard De Adjuntas"},
			County:                "Adjuntas Municipio",
			State:                 "PR",
			Lat:                   Float(18.18),
			Lng:                   Float(-66.75),
			Timezone:              "America/Puerto_Rico",
			RadiusInMiles:         Float(4.53),
			AreaCodeList:          []string{"787"},
			Population:            Int(18570),
			PopulationDensity:     Float(102.6),
			LandAreaInSqmi:        Float(64.35),
			WaterAreaInSqmi:       Float(0.3),
			HousingUnits:          Int(7744),
			OccupiedHousingUnits:  Int(6000),
			MedianHouseholdIncome: Int(11757),
			BoundsWest:            Float(-66.76),
			BoundsEast:            Float(-66.74),
			BoundsNorth:           Float(18.19),
			BoundsSouth:           Float(18.17),
		},
		{
			Zipcode:               "07630",
			ZipcodeType:           Standard,
			MajorCity:             "Emerson",
			PostOfficeCity:        "Emerson, NJ",
			CommonCityList:        []string{"Emerson"},
			County:                "Bergen County",
			State:                 "NJ",
			Lat:                   Float(40.9749),
			Lng:                   Float(-74.0263),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.85),
			AreaCodeList:          []string{"201"},
			Population:            Int(7401),
			PopulationDensity:     Float(3246.1),
			LandAreaInSqmi:        Float(2.28),
			WaterAreaInSqmi:       Float(0.27),
			HousingUnits:          Int(2670),
			OccupiedHousingUnits:  Int(2585),
			MedianHomeValue:       Int(477000),
			MedianHouseholdIncome: Int(113150),
			BoundsWest:            Float(-74.0363),
			BoundsEast:            Float(-74.0163),
			BoundsNorth:           Float(40.9849),
			BoundsSouth:           Float(40.9649),
		},
		{
			Zipcode:     "09001",
			ZipcodeType: Military,
			MajorCity:   "APO",
			State:       "AE",
		},
		{
			Zipcode:               "10001",
			ZipcodeType:           Standard,
			MajorCity:             "New York",
			PostOfficeCity:        "New York, NY",
			CommonCityList:        []string{"New York", "Manhattan"},
			County:                "New York County",
			State:                 "NY",
			Lat:                   Float(40.7506),
			Lng:                   Float(-73.9971),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.44),
			AreaCodeList:          []string{"212", "646", "917"},
			Population:            Int(21102),
			PopulationDensity:     Float(33959.0),
			LandAreaInSqmi:        Float(0.62),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(12476),
			OccupiedHousingUnits:  Int(11031),
			MedianHomeValue:       Int(650200),
			MedianHouseholdIncome: Int(81671),
			BoundsWest:            Float(-74.0071),
			BoundsEast:            Float(-73.9871),
			BoundsNorth:           Float(40.7606),
			BoundsSouth:           Float(40.7406),
		},
		{
			Zipcode:               "10002",
			ZipcodeType:           Standard,
			MajorCity:             "New York",
			PostOfficeCity:        "New York, NY",
			CommonCityList:        []string{"New York"},
			County:                "New York County",
			State:                 "NY",
			Lat:                   Float(40.7157),
			Lng:                   Float(-73.9863),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.53),
			AreaCodeList:          []string{"212"},
			Population:            Int(81410),
			PopulationDensity:     Float(92573.0),
			LandAreaInSqmi:        Float(0.88),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(35000),
			OccupiedHousingUnits:  Int(33000),
			MedianHomeValue:       Int(469000),
			MedianHouseholdIncome: Int(33218),
			BoundsWest:            Float(-73.9963),
			BoundsEast:            Float(-73.9763),
			BoundsNorth:           Float(40.7257),
			BoundsSouth:           Float(40.7057),
		},
		{
			Zipcode:               "10003",
			ZipcodeType:           Standard,
			MajorCity:             "New York",
			PostOfficeCity:        "New York, NY",
			CommonCityList:        []string{"New York"},
			County:                "New York County",
			State:                 "NY",
			Lat:                   Float(40.7318),
			Lng:                   Float(-73.989),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.43),
			AreaCodeList:          []string{"212"},
			Population:            Int(56024),
			PopulationDensity:     Float(97688.0),
			LandAreaInSqmi:        Float(0.57),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(31000),
			OccupiedHousingUnits:  Int(29000),
			MedianHomeValue:       Int(810000),
			MedianHouseholdIncome: Int(92540),
			BoundsWest:            Float(-73.999),
			BoundsEast:            Float(-73.979),
			BoundsNorth:           Float(40.7418),
			BoundsSouth:           Float(40.7218),
		},
		{
			Zipcode:               "10004",
			ZipcodeType:           Standard,
			MajorCity:             "New York",
			PostOfficeCity:        "New York, NY",
			CommonCityList:        []string{"New York"},
			County:                "New York County",
			State:                 "NY",
			Lat:                   Float(40.7034),
			Lng:                   Float(-74.0127),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.44),
			AreaCodeList:          []string{"212"},
			Population:            Int(3089),
			PopulationDensity:     Float(5138.0),
			LandAreaInSqmi:        Float(0.6),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(1800),
			OccupiedHousingUnits:  Int(1600),
			MedianHomeValue:       Int(1000001),
			MedianHouseholdIncome: Int(123113),
			BoundsWest:            Float(-74.0227),
			BoundsEast:            Float(-74.0027),
			BoundsNorth:           Float(40.7134),
			BoundsSouth:           Float(40.6934),
		},
		{
			Zipcode:               "10005",
			ZipcodeType:           Standard,
			MajorCity:             "New York",
			PostOfficeCity:        "New York, NY",
			CommonCityList:        []string{"New York"},
			County:                "New York County",
			State:                 "NY",
			Lat:                   Float(40.7063),
			Lng:                   Float(-74.0089),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.17),
			AreaCodeList:          []string{"212"},
			Population:            Int(7135),
			PopulationDensity:     Float(78130.0),
			LandAreaInSqmi:        Float(0.09),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(5100),
			OccupiedHousingUnits:  Int(4600),
			MedianHomeValue:       Int(1000001),
			MedianHouseholdIncome: Int(124194),
			BoundsWest:            Float(-74.0189),
			BoundsEast:            Float(-73.9989),
			BoundsNorth:           Float(40.7163),
			BoundsSouth:           Float(40.6963),
		},
		{
			Zipcode:               "10006",
			ZipcodeType:           Standard,
			MajorCity:             "New York",
			PostOfficeCity:        "New York, NY",
			CommonCityList:        []string{"New York"},
			County:                "New York County",
			State:                 "NY",
			Lat:                   Float(40.7094),
			Lng:                   Float(-74.0131),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.2),
			AreaCodeList:          []string{"212"},
			Population:            Int(3011),
			PopulationDensity:     Float(25135.0),
			LandAreaInSqmi:        Float(0.12),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(2200),
			OccupiedHousingUnits:  Int(1900),
			MedianHouseholdIncome: Int(123691),
			BoundsWest:            Float(-74.0231),
			BoundsEast:            Float(-74.0031),
			BoundsNorth:           Float(40.7194),
			BoundsSouth:           Float(40.6994),
		},
		{
			Zipcode:               "10007",
			ZipcodeType:           Standard,
			MajorCity:             "New York",
			PostOfficeCity:        "New York, NY",
			CommonCityList:        []string{"New York"},
			County:                "New York County",
			State:                 "NY",
			Lat:                   Float(40.7137),
			Lng:                   Float(-74.0078),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.23),
			AreaCodeList:          []string{"212"},
			Population:            Int(6988),
			PopulationDensity:     Float(40237.0),
			LandAreaInSqmi:        Float(0.17),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(3600),
			OccupiedHousingUnits:  Int(3100),
			MedianHomeValue:       Int(1000001),
			MedianHouseholdIncome: Int(181041),
			BoundsWest:            Float(-74.0178),
			BoundsEast:            Float(-73.9978),
			BoundsNorth:           Float(40.7237),
			BoundsSouth:           Float(40.7037),
		},
		{
			Zipcode:        "10008",
			ZipcodeType:    POBox,
			MajorCity:      "New York",
			PostOfficeCity: "New York, NY",
			CommonCityList: []string{"New York"},
			County:         "New York County",
			State:          "NY",
			Lat:            Float(40.71),
			Lng:            Float(-74.01),
			Timezone:       "America/New_York",
			AreaCodeList:   []string{"212"},
			BoundsWest:     Float(-74.02),
			BoundsEast:     Float(-74.0),
			BoundsNorth:    Float(40.72),
			BoundsSouth:    Float(40.7),
		},
		{
			Zipcode:               "12203",
			ZipcodeType:           Standard,
			MajorCity:             "Albany",
			PostOfficeCity:        "Albany, NY",
			CommonCityList:        []string{"Albany"},
			County:                "Albany County",
			State:                 "NY",
			Lat:                   Float(42.6794),
			Lng:                   Float(-73.8213),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(1.34),
			AreaCodeList:          []string{"518"},
			Population:            Int(29965),
			PopulationDensity:     Float(5300.0),
			LandAreaInSqmi:        Float(5.65),
			WaterAreaInSqmi:       Float(0.02),
			HousingUnits:          Int(12800),
			OccupiedHousingUnits:  Int(12000),
			MedianHomeValue:       Int(191300),
			MedianHouseholdIncome: Int(53012),
			BoundsWest:            Float(-73.8313),
			BoundsEast:            Float(-73.8113),
			BoundsNorth:           Float(42.6894),
			BoundsSouth:           Float(42.6694),
		},
		{
			Zipcode:               "20001",
			ZipcodeType:           Standard,
			MajorCity:             "Washington",
			PostOfficeCity:        "Washington, DC",
			CommonCityList:        []string{"Washington"},
			County:                "District of Columbia",
			State:                 "DC",
			Lat:                   Float(38.9109),
			Lng:                   Float(-77.0163),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.88),
			AreaCodeList:          []string{"202"},
			Population:            Int(43909),
			PopulationDensity:     Float(18062.0),
			LandAreaInSqmi:        Float(2.43),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(23287),
			OccupiedHousingUnits:  Int(20050),
			MedianHomeValue:       Int(486100),
			MedianHouseholdIncome: Int(65396),
			BoundsWest:            Float(-77.0263),
			BoundsEast:            Float(-77.0063),
			BoundsNorth:           Float(38.9209),
			BoundsSouth:           Float(38.9009),
		},
		{
			Zipcode:               "20002",
			ZipcodeType:           Standard,
			MajorCity:             "Washington",
			PostOfficeCity:        "Washington, DC",
			CommonCityList:        []string{"Washington"},
			County:                "District of Columbia",
			State:                 "DC",
			Lat:                   Float(38.9052),
			Lng:                   Float(-76.9838),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(1.25),
			AreaCodeList:          []string{"202"},
			Population:            Int(52836),
			PopulationDensity:     Float(10770.0),
			LandAreaInSqmi:        Float(4.91),
			WaterAreaInSqmi:       Float(0.14),
			HousingUnits:          Int(25000),
			OccupiedHousingUnits:  Int(22500),
			MedianHomeValue:       Int(440000),
			MedianHouseholdIncome: Int(61011),
			BoundsWest:            Float(-76.9938),
			BoundsEast:            Float(-76.9738),
			BoundsNorth:           Float(38.9152),
			BoundsSouth:           Float(38.8952),
		},
		{
			Zipcode:               "20003",
			ZipcodeType:           Standard,
			MajorCity:             "Washington",
			PostOfficeCity:        "Washington, DC",
			CommonCityList:        []string{"Washington"},
			County:                "District of Columbia",
			State:                 "DC",
			Lat:                   Float(38.8822),
			Lng:                   Float(-76.997),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.92),
			AreaCodeList:          []string{"202"},
			Population:            Int(26232),
			PopulationDensity:     Float(9942.0),
			LandAreaInSqmi:        Float(2.64),
			WaterAreaInSqmi:       Float(0.3),
			HousingUnits:          Int(13000),
			OccupiedHousingUnits:  Int(12200),
			MedianHomeValue:       Int(595000),
			MedianHouseholdIncome: Int(101000),
			BoundsWest:            Float(-77.007),
			BoundsEast:            Float(-76.987),
			BoundsNorth:           Float(38.8922),
			BoundsSouth:           Float(38.8722),
		},
		{
			Zipcode:               "20004",
			ZipcodeType:           Standard,
			MajorCity:             "Washington",
			PostOfficeCity:        "Washington, DC",
			CommonCityList:        []string{"Washington"},
			County:                "District of Columbia",
			State:                 "DC",
			Lat:                   Float(38.8951),
			Lng:                   Float(-77.0281),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.37),
			AreaCodeList:          []string{"202"},
			Population:            Int(1548),
			PopulationDensity:     Float(3700.0),
			LandAreaInSqmi:        Float(0.42),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(1100),
			OccupiedHousingUnits:  Int(900),
			MedianHomeValue:       Int(720000),
			MedianHouseholdIncome: Int(112000),
			BoundsWest:            Float(-77.0381),
			BoundsEast:            Float(-77.0181),
			BoundsNorth:           Float(38.9051),
			BoundsSouth:           Float(38.8851),
		},
		{
			Zipcode:               "20005",
			ZipcodeType:           Standard,
			MajorCity:             "Washington",
			PostOfficeCity:        "Washington, DC",
			CommonCityList:        []string{"Washington"},
			County:                "District of Columbia",
			State:                 "DC",
			Lat:                   Float(38.9043),
			Lng:                   Float(-77.0319),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.39),
			AreaCodeList:          []string{"202"},
			Population:            Int(12074),
			PopulationDensity:     Float(25200.0),
			LandAreaInSqmi:        Float(0.48),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(9000),
			OccupiedHousingUnits:  Int(7600),
			MedianHomeValue:       Int(378000),
			MedianHouseholdIncome: Int(80000),
			BoundsWest:            Float(-77.0419),
			BoundsEast:            Float(-77.0219),
			BoundsNorth:           Float(38.9143),
			BoundsSouth:           Float(38.8943),
		},
		{
			Zipcode:               "20006",
			ZipcodeType:           Standard,
			MajorCity:             "Washington",
			PostOfficeCity:        "Washington, DC",
			CommonCityList:        []string{"Washington"},
			County:                "District of Columbia",
			State:                 "DC",
			Lat:                   Float(38.8986),
			Lng:                   Float(-77.0418),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.52),
			AreaCodeList:          []string{"202"},
			Population:            Int(2678),
			PopulationDensity:     Float(3100.0),
			LandAreaInSqmi:        Float(0.86),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(900),
			OccupiedHousingUnits:  Int(700),
			MedianHouseholdIncome: Int(33000),
			BoundsWest:            Float(-77.0518),
			BoundsEast:            Float(-77.0318),
			BoundsNorth:           Float(38.9086),
			BoundsSouth:           Float(38.8886),
		},
		{
			Zipcode:               "20007",
			ZipcodeType:           Standard,
			MajorCity:             "Washington",
			PostOfficeCity:        "Washington, DC",
			CommonCityList:        []string{"Washington", "Georgetown"},
			County:                "District of Columbia",
			State:                 "DC",
			Lat:                   Float(38.9146),
			Lng:                   Float(-77.0785),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(1.16),
			AreaCodeList:          []string{"202"},
			Population:            Int(28270),
			PopulationDensity:     Float(6700.0),
			LandAreaInSqmi:        Float(4.2),
			WaterAreaInSqmi:       Float(0.5),
			HousingUnits:          Int(14000),
			OccupiedHousingUnits:  Int(12800),
			MedianHomeValue:       Int(912000),
			MedianHouseholdIncome: Int(115000),
			BoundsWest:            Float(-77.0885),
			BoundsEast:            Float(-77.0685),
			BoundsNorth:           Float(38.9246),
			BoundsSouth:           Float(38.9046),
		},
		{
			Zipcode:               "20008",
			ZipcodeType:           Standard,
			MajorCity:             "Washington",
			PostOfficeCity:        "Washington, DC",
			CommonCityList:        []string{"Washington"},
			County:                "District of Columbia",
			State:                 "DC",
			Lat:                   Float(38.9361),
			Lng:                   Float(-77.0593),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.99),
			AreaCodeList:          []string{"202"},
			Population:            Int(28635),
			PopulationDensity:     Float(9300.0),
			LandAreaInSqmi:        Float(3.08),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(17500),
			OccupiedHousingUnits:  Int(15800),
			MedianHomeValue:       Int(765000),
			MedianHouseholdIncome: Int(109000),
			BoundsWest:            Float(-77.0693),
			BoundsEast:            Float(-77.0493),
			BoundsNorth:           Float(38.9461),
			BoundsSouth:           Float(38.9261),
		},
		{
			Zipcode:        "20500",
			ZipcodeType:    Unique,
			MajorCity:      "Washington",
			PostOfficeCity: "Washington, DC",
			CommonCityList: []string{"Washington"},
			County:         "District of Columbia",
			State:          "DC",
			Lat:            Float(38.8948),
			Lng:            Float(-77.0366),
			Timezone:       "America/New_York",
			AreaCodeList:   []string{"202"},
			BoundsWest:     Float(-77.0466),
			BoundsEast:     Float(-77.0266),
			BoundsNorth:    Float(38.9048),
			BoundsSouth:    Float(38.8848),
		},
		{
			Zipcode:               "20814",
			ZipcodeType:           Standard,
			MajorCity:             "Bethesda",
			PostOfficeCity:        "Bethesda, MD",
			CommonCityList:        []string{"Bethesda"},
			County:                "Montgomery County",
			State:                 "MD",
			Lat:                   Float(39.005),
			Lng:                   Float(-77.1028),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(1.36),
			AreaCodeList:          []string{"301", "240"},
			Population:            Int(27480),
			PopulationDensity:     Float(4700.0),
			LandAreaInSqmi:        Float(5.85),
			WaterAreaInSqmi:       Float(0.01),
			HousingUnits:          Int(14200),
			OccupiedHousingUnits:  Int(13100),
			MedianHomeValue:       Int(720000),
			MedianHouseholdIncome: Int(114000),
			BoundsWest:            Float(-77.1128),
			BoundsEast:            Float(-77.0928),
			BoundsNorth:           Float(39.015),
			BoundsSouth:           Float(38.995),
		},
		{
			Zipcode:               "20842",
			ZipcodeType:           Standard,
			MajorCity:             "Dickerson",
			PostOfficeCity:        "Dickerson, MD",
			CommonCityList:        []string{"Dickerson"},
			County:                "Montgomery County",
			State:                 "MD",
			Lat:                   Float(39.2125),
			Lng:                   Float(-77.4196),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(3.67),
			AreaCodeList:          []string{"301"},
			Population:            Int(1993),
			PopulationDensity:     Float(47.0),
			LandAreaInSqmi:        Float(42.4),
			WaterAreaInSqmi:       Float(0.8),
			HousingUnits:          Int(760),
			OccupiedHousingUnits:  Int(710),
			MedianHomeValue:       Int(425000),
			MedianHouseholdIncome: Int(99000),
			BoundsWest:            Float(-77.4296),
			BoundsEast:            Float(-77.4096),
			BoundsNorth:           Float(39.2225),
			BoundsSouth:           Float(39.2025),
		},
		{
			Zipcode:               "20910",
			ZipcodeType:           Standard,
			MajorCity:             "Silver Spring",
			PostOfficeCity:        "Silver Spring, MD",
			CommonCityList:        []string{"Silver Spring"},
			County:                "Montgomery County",
			State:                 "MD",
			Lat:                   Float(38.9982),
			Lng:                   Float(-77.0338),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(1.25),
			AreaCodeList:          []string{"301", "240"},
			Population:            Int(38179),
			PopulationDensity:     Float(7800.0),
			LandAreaInSqmi:        Float(4.9),
			WaterAreaInSqmi:       Float(0.02),
			HousingUnits:          Int(20000),
			OccupiedHousingUnits:  Int(18700),
			MedianHomeValue:       Int(400000),
			MedianHouseholdIncome: Int(72000),
			BoundsWest:            Float(-77.0438),
			BoundsEast:            Float(-77.0238),
			BoundsNorth:           Float(39.0082),
			BoundsSouth:           Float(38.9882),
		},
		{
			Zipcode:               "21869",
			ZipcodeType:           Standard,
			MajorCity:             "Vienna",
			PostOfficeCity:        "Vienna, MD",
			CommonCityList:        []string{"Vienna"},
			County:                "Dorchester County",
			State:                 "MD",
			Lat:                   Float(38.4862),
			Lng:                   Float(-75.8245),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(3.52),
			AreaCodeList:          []string{"410"},
			Population:            Int(1018),
			PopulationDensity:     Float(26.0),
			LandAreaInSqmi:        Float(39.0),
			WaterAreaInSqmi:       Float(1.4),
			HousingUnits:          Int(520),
			OccupiedHousingUnits:  Int(440),
			MedianHomeValue:       Int(158000),
			MedianHouseholdIncome: Int(44000),
			BoundsWest:            Float(-75.8345),
			BoundsEast:            Float(-75.8145),
			BoundsNorth:           Float(38.4962),
			BoundsSouth:           Float(38.4762),
		},
		{
			Zipcode:               "22180",
			ZipcodeType:           Standard,
			MajorCity:             "Vienna",
			PostOfficeCity:        "Vienna, VA",
			CommonCityList:        []string{"Vienna"},
			County:                "Fairfax County",
			State:                 "VA",
			Lat:                   Float(38.8977),
			Lng:                   Float(-77.257),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(1.44),
			AreaCodeList:          []string{"703", "571"},
			Population:            Int(23711),
			PopulationDensity:     Float(3650.0),
			LandAreaInSqmi:        Float(6.5),
			WaterAreaInSqmi:       Float(0.02),
			HousingUnits:          Int(8800),
			OccupiedHousingUnits:  Int(8500),
			MedianHomeValue:       Int(623000),
			MedianHouseholdIncome: Int(129000),
			BoundsWest:            Float(-77.267),
			BoundsEast:            Float(-77.247),
			BoundsNorth:           Float(38.9077),
			BoundsSouth:           Float(38.8877),
		},
		{
			Zipcode:               "22182",
			ZipcodeType:           Standard,
			MajorCity:             "Vienna",
			PostOfficeCity:        "Vienna, VA",
			CommonCityList:        []string{"Vienna", "Tysons"},
			County:                "Fairfax County",
			State:                 "VA",
			Lat:                   Float(38.9316),
			Lng:                   Float(-77.2647),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(1.94),
			AreaCodeList:          []string{"703"},
			Population:            Int(24787),
			PopulationDensity:     Float(2100.0),
			LandAreaInSqmi:        Float(11.8),
			WaterAreaInSqmi:       Float(0.1),
			HousingUnits:          Int(9100),
			OccupiedHousingUnits:  Int(8800),
			MedianHomeValue:       Int(820000),
			MedianHouseholdIncome: Int(152000),
			BoundsWest:            Float(-77.2747),
			BoundsEast:            Float(-77.2547),
			BoundsNorth:           Float(38.9416),
			BoundsSouth:           Float(38.9216),
		},
		{
			Zipcode:               "22201",
			ZipcodeType:           Standard,
			MajorCity:             "Arlington",
			PostOfficeCity:        "Arlington, VA",
			CommonCityList:        []string{"Arlington"},
			County:                "Arlington County",
			State:                 "VA",
			Lat:                   Float(38.8871),
			Lng:                   Float(-77.0932),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.82),
			AreaCodeList:          []string{"703", "571"},
			Population:            Int(34053),
			PopulationDensity:     Float(16300.0),
			LandAreaInSqmi:        Float(2.09),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(20000),
			OccupiedHousingUnits:  Int(18900),
			MedianHomeValue:       Int(640000),
			MedianHouseholdIncome: Int(124000),
			BoundsWest:            Float(-77.1032),
			BoundsEast:            Float(-77.0832),
			BoundsNorth:           Float(38.8971),
			BoundsSouth:           Float(38.8771),
		},
		{
			Zipcode:               "22202",
			ZipcodeType:           Standard,
			MajorCity:             "Arlington",
			PostOfficeCity:        "Arlington, VA",
			CommonCityList:        []string{"Arlington"},
			County:                "Arlington County",
			State:                 "VA",
			Lat:                   Float(38.8568),
			Lng:                   Float(-77.0519),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(1.16),
			AreaCodeList:          []string{"703"},
			Population:            Int(22416),
			PopulationDensity:     Float(5300.0),
			LandAreaInSqmi:        Float(4.23),
			WaterAreaInSqmi:       Float(0.24),
			HousingUnits:          Int(13500),
			OccupiedHousingUnits:  Int(12400),
			MedianHomeValue:       Int(560000),
			MedianHouseholdIncome: Int(110000),
			BoundsWest:            Float(-77.0619),
			BoundsEast:            Float(-77.0419),
			BoundsNorth:           Float(38.8668),
			BoundsSouth:           Float(38.8468),
		},
		{
			Zipcode:               "22301",
			ZipcodeType:           Standard,
			MajorCity:             "Alexandria",
			PostOfficeCity:        "Alexandria, VA",
			CommonCityList:        []string{"Alexandria"},
			County:                "Alexandria city",
			State:                 "VA",
			Lat:                   Float(38.8188),
			Lng:                   Float(-77.0589),
			Timezone:              "America/New_York",
			RadiusInMiles:         Float(0.73),
			AreaCodeList:          []string{"703"},
			Population:            Int(13939),
			PopulationDensity:     Float(8300.0),
			LandAreaInSqmi:        Float(1.68),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(7000),
			OccupiedHousingUnits:  Int(6500),
			MedianHomeValue:       Int(714000),
			MedianHouseholdIncome: Int(120000),
			BoundsWest:            Float(-77.0689),
			BoundsEast:            Float(-77.0489),
			BoundsNorth:           Float(38.8288),
			BoundsSouth:           Float(38.8088),
		},
		{
			Zipcode:               "60601",
			ZipcodeType:           Standard,
			MajorCity:             "Chicago",
			PostOfficeCity:        "Chicago, IL",
			CommonCityList:        []string{"Chicago"},
			County:                "Cook County",
			State:                 "IL",
			Lat:                   Float(41.8858),
			Lng:                   Float(-87.6181),
			Timezone:              "America/Chicago",
			RadiusInMiles:         Float(0.37),
			AreaCodeList:          []string{"312"},
			Population:            Int(14675),
			PopulationDensity:     Float(35000.0),
			LandAreaInSqmi:        Float(0.42),
			WaterAreaInSqmi:       Float(0.03),
			HousingUnits:          Int(10600),
			OccupiedHousingUnits:  Int(9100),
			MedianHomeValue:       Int(380000),
			MedianHouseholdIncome: Int(107000),
			BoundsWest:            Float(-87.6281),
			BoundsEast:            Float(-87.6081),
			BoundsNorth:           Float(41.8958),
			BoundsSouth:           Float(41.8758),
		},
		{
			Zipcode:               "60602",
			ZipcodeType:           Standard,
			MajorCity:             "Chicago",
			PostOfficeCity:        "Chicago, IL",
			CommonCityList:        []string{"Chicago"},
			County:                "Cook County",
			State:                 "IL",
			Lat:                   Float(41.8829),
			Lng:                   Float(-87.6321),
			Timezone:              "America/Chicago",
			RadiusInMiles:         Float(0.19),
			AreaCodeList:          []string{"312"},
			Population:            Int(1244),
			PopulationDensity:     Float(11000.0),
			LandAreaInSqmi:        Float(0.11),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(900),
			OccupiedHousingUnits:  Int(700),
			MedianHouseholdIncome: Int(88000),
			BoundsWest:            Float(-87.6421),
			BoundsEast:            Float(-87.6221),
			BoundsNorth:           Float(41.8929),
			BoundsSouth:           Float(41.8729),
		},
		{
			Zipcode:               "67561",
			ZipcodeType:           Standard,
			MajorCity:             "Nickerson",
			PostOfficeCity:        "Nickerson, KS",
			CommonCityList:        []string{"Nickerson"},
			County:                "Reno County",
			State:                 "KS",
			Lat:                   Float(38.1473),
			Lng:                   Float(-98.0867),
			Timezone:              "America/Chicago",
			RadiusInMiles:         Float(6.13),
			AreaCodeList:          []string{"620"},
			Population:            Int(1770),
			PopulationDensity:     Float(15.0),
			LandAreaInSqmi:        Float(118.0),
			WaterAreaInSqmi:       Float(1.5),
			HousingUnits:          Int(800),
			OccupiedHousingUnits:  Int(700),
			MedianHomeValue:       Int(71000),
			MedianHouseholdIncome: Int(47000),
			BoundsWest:            Float(-98.0967),
			BoundsEast:            Float(-98.0767),
			BoundsNorth:           Float(38.1573),
			BoundsSouth:           Float(38.1373),
		},
		{
			Zipcode:               "85003",
			ZipcodeType:           Standard,
			MajorCity:             "Phoenix",
			PostOfficeCity:        "Phoenix, AZ",
			CommonCityList:        []string{"Phoenix"},
			County:                "Maricopa County",
			State:                 "AZ",
			Lat:                   Float(33.4515),
			Lng:                   Float(-112.0781),
			Timezone:              "America/Phoenix",
			RadiusInMiles:         Float(0.96),
			AreaCodeList:          []string{"602"},
			Population:            Int(9311),
			PopulationDensity:     Float(3200.0),
			LandAreaInSqmi:        Float(2.88),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(5800),
			OccupiedHousingUnits:  Int(4500),
			MedianHomeValue:       Int(222000),
			MedianHouseholdIncome: Int(36000),
			BoundsWest:            Float(-112.0881),
			BoundsEast:            Float(-112.0681),
			BoundsNorth:           Float(33.4615),
			BoundsSouth:           Float(33.4415),
		},
		{
			Zipcode:               "85004",
			ZipcodeType:           Standard,
			MajorCity:             "Phoenix",
			PostOfficeCity:        "Phoenix, AZ",
			CommonCityList:        []string{"Phoenix"},
			County:                "Maricopa County",
			State:                 "AZ",
			Lat:                   Float(33.4511),
			Lng:                   Float(-112.0697),
			Timezone:              "America/Phoenix",
			RadiusInMiles:         Float(0.89),
			AreaCodeList:          []string{"602"},
			Population:            Int(5766),
			PopulationDensity:     Float(2300.0),
			LandAreaInSqmi:        Float(2.48),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(4500),
			OccupiedHousingUnits:  Int(3400),
			MedianHomeValue:       Int(248000),
			MedianHouseholdIncome: Int(23000),
			BoundsWest:            Float(-112.0797),
			BoundsEast:            Float(-112.0597),
			BoundsNorth:           Float(33.4611),
			BoundsSouth:           Float(33.4411),
		},
		{
			Zipcode:               "99546",
			ZipcodeType:           Standard,
			MajorCity:             "Adak",
			PostOfficeCity:        "Adak, AK",
			CommonCityList:        []string{"Adak"},
			County:                "Aleutians West Census Area",
			State:                 "AK",
			Lat:                   Float(51.88),
			Lng:                   Float(-176.6581),
			Timezone:              "America/Adak",
			RadiusInMiles:         Float(6.28),
			AreaCodeList:          []string{"907"},
			Population:            Int(326),
			PopulationDensity:     Float(2.6),
			LandAreaInSqmi:        Float(124.0),
			WaterAreaInSqmi:       Float(0.0),
			HousingUnits:          Int(450),
			OccupiedHousingUnits:  Int(140),
			MedianHouseholdIncome: Int(45000),
			BoundsWest:            Float(-176.6681),
			BoundsEast:            Float(-176.6481),
			BoundsNorth:           Float(51.89),
			BoundsSouth:           Float(51.87),
		},
	}
}

// fataler is satisfied by *testing.T and *check.C.
type fataler interface {
	Fatalf(format string, args ...any)
}

// fixtureMemoryStore loads the fixtures into a MemoryStore.
func fixtureMemoryStore(t fataler) *MemoryStore {
	s, err := NewMemoryStore(fixtureZipcodes())
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	return s
}

// fixtureSQLiteStore loads the fixtures into an in-memory SQLite database.
func fixtureSQLiteStore(t fataler, variant Variant) *SQLiteStore {
	s, err := OpenSQLiteMemory(variant)
	if err != nil {
		t.Fatalf("OpenSQLiteMemory() error = %v", err)
	}
	if err := s.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}
	if err := s.InsertZipcodes(fixtureZipcodes()); err != nil {
		t.Fatalf("InsertZipcodes() error = %v", err)
	}
	return s
}

// codes returns the zipcodes of records, in order.
func codes(records []Zipcode) []string {
	out := make([]string, len(records))
	for i, z := range records {
		out[i] = z.Zipcode
	}
	return out
}
