package refdata

var airportCities = map[string]string{
	// United Kingdom and Ireland
	"LHR": "London", "LGW": "London", "STN": "London", "LTN": "London",
	"MAN": "Manchester", "BHX": "Birmingham", "EDI": "Edinburgh",
	"GLA": "Glasgow", "DUB": "Dublin",

	// Germany
	"FRA": "Frankfurt", "MUC": "Munich", "BER": "Berlin", "DUS": "Dusseldorf",
	"CGN": "Cologne", "HAM": "Hamburg", "STR": "Stuttgart",

	// Italy
	"FCO": "Rome", "MXP": "Milan", "LIN": "Milan", "BGY": "Bergamo",
	"VCE": "Venice", "NAP": "Naples",

	// Spain and Portugal
	"MAD": "Madrid", "BCN": "Barcelona", "PMI": "Palma", "AGP": "Malaga",
	"ALC": "Alicante", "VLC": "Valencia", "SVQ": "Seville", "BIO": "Bilbao",
	"LIS": "Lisbon", "OPO": "Porto", "FAO": "Faro",

	// France, Benelux, Switzerland, Austria
	"CDG": "Paris", "ORY": "Paris", "NCE": "Nice", "LYS": "Lyon",
	"TLS": "Toulouse", "MRS": "Marseille", "AMS": "Amsterdam",
	"BRU": "Brussels", "VIE": "Vienna", "ZRH": "Zurich", "GVA": "Geneva",

	// Central and Eastern Europe
	"PRG": "Prague", "BUD": "Budapest", "WAW": "Warsaw", "OTP": "Bucharest",
	"SOF": "Sofia", "RIX": "Riga",

	// Nordics
	"CPH": "Copenhagen", "ARN": "Stockholm", "OSL": "Oslo", "HEL": "Helsinki",

	// Greece
	"ATH": "Athens", "SKG": "Thessaloniki", "HER": "Heraklion",

	// Turkey
	"IST": "Istanbul", "SAW": "Istanbul", "ESB": "Ankara", "AYT": "Antalya",
	"ADB": "Izmir", "DLM": "Dalaman", "BJV": "Bodrum", "TZX": "Trabzon",
	"GZT": "Gaziantep",

	// Russia
	"SVO": "Moscow", "DME": "Moscow", "VKO": "Moscow", "LED": "Saint Petersburg",
	"KRR": "Krasnodar",

	// Middle East
	"DXB": "Dubai", "DOH": "Doha", "AUH": "Abu Dhabi", "TLV": "Tel Aviv",

	// Asia
	"BKK": "Bangkok", "CNX": "Chiang Mai", "HKT": "Phuket", "USM": "Koh Samui",
	"SIN": "Singapore", "KUL": "Kuala Lumpur", "HKG": "Hong Kong",
	"NRT": "Tokyo", "HND": "Tokyo", "ICN": "Seoul", "PEK": "Beijing",
	"PVG": "Shanghai", "DPS": "Denpasar", "CGK": "Jakarta", "MNL": "Manila",
	"HAN": "Hanoi", "SGN": "Ho Chi Minh City",

	// North America
	"JFK": "New York", "EWR": "New York", "LAX": "Los Angeles",
	"SFO": "San Francisco", "ORD": "Chicago", "MIA": "Miami",
	"ATL": "Atlanta", "DFW": "Dallas", "IAH": "Houston", "LAS": "Las Vegas",
	"MCO": "Orlando", "SEA": "Seattle", "DEN": "Denver", "PHX": "Phoenix",
	"FLL": "Fort Lauderdale", "YYZ": "Toronto", "YVR": "Vancouver",
	"YUL": "Montreal",

	// South America and Oceania
	"MEX": "Mexico City", "CUN": "Cancun", "GRU": "Sao Paulo",
	"GIG": "Rio de Janeiro", "EZE": "Buenos Aires", "SCL": "Santiago",
	"BOG": "Bogota", "LIM": "Lima", "SYD": "Sydney", "MEL": "Melbourne",
	"AKL": "Auckland", "HNL": "Honolulu",
}

var cityNames = []string{
	"London", "Paris", "Berlin", "Rome", "Milan", "Madrid", "Barcelona",
	"Amsterdam", "Frankfurt", "Munich", "Vienna", "Prague", "Budapest",
	"Warsaw", "Dublin", "Brussels", "Lisbon", "Athens", "Stockholm",
	"Copenhagen", "Istanbul", "Moscow", "Bangkok", "Phuket", "Singapore",
	"Dubai", "Gatwick", "Stansted", "Luton", "Heathrow", "Bergamo",
	"Malpensa", "Linate", "Orly", "Beauvais",
	"Милан", "Стамбул", "Бангкок", "Москва", "Лондон", "Париж",
}

// Compound airport names that read like an origin/destination pair but are
// a single airport: "Milan-Bergamo" is BGY, not a Milan to Bergamo flight.
var falseRoutes = [][2]string{
	{"Milan", "Bergamo"},
	{"Milan", "Malpensa"},
	{"Milan", "Linate"},
	{"London", "Gatwick"},
	{"London", "Stansted"},
	{"London", "Luton"},
	{"London", "Heathrow"},
	{"Paris", "Orly"},
	{"Paris", "Beauvais"},
	{"Frankfurt", "Hahn"},
	{"Istanbul", "Sabiha"},
	{"Милан", "Бергамо"},
}
