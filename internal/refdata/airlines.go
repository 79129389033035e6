package refdata

var airlineNames = map[string]string{
	// Low-cost carriers
	"FR": "Ryanair",
	"U2": "easyJet",
	"W6": "Wizz Air",
	"VY": "Vueling",
	"PC": "Pegasus Airlines",
	"FZ": "flydubai",
	"DY": "Norwegian",
	"DP": "Pobeda",
	"U6": "Ural Airlines",
	"I2": "Iberia Express",
	"B6": "JetBlue",
	"WN": "Southwest",

	// Traditional European carriers
	"LH": "Lufthansa",
	"AF": "Air France",
	"KL": "KLM",
	"BA": "British Airways",
	"IB": "Iberia",
	"TK": "Turkish Airlines",
	"OS": "Austrian Airlines",
	"LX": "Swiss",
	"SN": "Brussels Airlines",
	"SK": "SAS",
	"AY": "Finnair",
	"AZ": "ITA Airways",
	"A3": "Aegean Airlines",
	"OK": "Czech Airlines",
	"LO": "LOT Polish Airlines",
	"RO": "Tarom",
	"TP": "TAP Air Portugal",
	"UX": "Air Europa",
	"LY": "El Al",
	"BT": "airBaltic",

	// Russian carriers
	"SU": "Aeroflot",
	"S7": "S7 Airlines",
	"FV": "Rossiya",
	"N4": "Nordwind",

	// Middle East carriers
	"QR": "Qatar Airways",
	"EK": "Emirates",
	"EY": "Etihad",
	"WY": "Oman Air",
	"MS": "EgyptAir",
	"SV": "Saudia",
	"GF": "Gulf Air",
	"RJ": "Royal Jordanian",

	// Asian carriers
	"TG": "Thai Airways",
	"PG": "Bangkok Airways",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"MH": "Malaysia Airlines",
	"GA": "Garuda Indonesia",
	"PR": "Philippine Airlines",
	"VN": "Vietnam Airlines",
	"KE": "Korean Air",
	"OZ": "Asiana",
	"JL": "Japan Airlines",
	"NH": "ANA",
	"CA": "Air China",

	// North American carriers
	"UA": "United",
	"AA": "American Airlines",
	"DL": "Delta",
	"AC": "Air Canada",
	"AS": "Alaska Airlines",

	// South American carriers
	"LA": "LATAM",
	"G3": "GOL",
	"JJ": "LATAM Brasil",
	"AR": "Aerolineas Argentinas",
	"AV": "Avianca",
	"CM": "Copa Airlines",
}

// easyJet issues flight numbers under EZY (UK) and EJU (Europe); both are
// the same carrier as U2 for claim purposes.
var airlineAliases = map[string]string{
	"EZY": "U2",
	"EJU": "U2",
}

var senderDomains = []string{
	"ryanair.com", "easyjet.com", "info.easyjet.com", "wizzair.com",
	"lufthansa.com", "airfrance.fr", "airfrance.com", "klm.com",
	"britishairways.com", "iberia.com", "vueling.com", "flypgs.com",
	"turkishairlines.com", "thy.com", "qatarairways.com", "emirates.com",
	"aegeanair.com", "lot.com", "itaspa.com", "norwegian.com",
	"trip.com", "booking.com", "expedia.com", "kiwi.com", "edreams.com",
	"travel.yandex.ru", "aviasales.ru", "skyscanner.net",
}
