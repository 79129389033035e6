package refdata

var monthNumbers = map[string]string{
	// English
	"jan": "01", "feb": "02", "mar": "03", "apr": "04", "may": "05",
	"jun": "06", "jul": "07", "aug": "08", "sep": "09", "oct": "10",
	"nov": "11", "dec": "12",
	"january": "01", "february": "02", "march": "03", "april": "04",
	"june": "06", "july": "07", "august": "08", "september": "09",
	"october": "10", "november": "11", "december": "12",

	// Russian (genitive forms and stems)
	"янв": "01", "фев": "02", "мар": "03", "апр": "04", "мая": "05",
	"май": "05", "июн": "06", "июл": "07", "авг": "08", "сен": "09",
	"окт": "10", "ноя": "11", "дек": "12",
	"января": "01", "февраля": "02", "марта": "03", "апреля": "04",
	"июня": "06", "июля": "07", "августа": "08", "сентября": "09",
	"октября": "10", "ноября": "11", "декабря": "12",

	// Italian
	"gennaio": "01", "febbraio": "02", "marzo": "03", "aprile": "04",
	"maggio": "05", "giugno": "06", "luglio": "07", "agosto": "08",
	"settembre": "09", "ottobre": "10", "novembre": "11", "dicembre": "12",
	"set": "09", "ott": "10",

	// Spanish
	"enero": "01", "febrero": "02", "abril": "04", "mayo": "05",
	"junio": "06", "julio": "07", "septiembre": "09", "octubre": "10",
	"noviembre": "11", "diciembre": "12",

	// Polish (genitive)
	"stycznia": "01", "lutego": "02", "marca": "03", "kwietnia": "04",
	"maja": "05", "czerwca": "06", "lipca": "07", "sierpnia": "08",
	"września": "09", "października": "10", "listopada": "11",
	"grudnia": "12",

	// Greek (genitive)
	"ιανουαρίου": "01", "φεβρουαρίου": "02", "μαρτίου": "03",
	"απριλίου": "04", "μαΐου": "05", "ιουνίου": "06", "ιουλίου": "07",
	"αυγούστου": "08", "σεπτεμβρίου": "09", "οκτωβρίου": "10",
	"νοεμβρίου": "11", "δεκεμβρίου": "12",
}
