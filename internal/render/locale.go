package render

import "strings"

// Dash is shown for absent values.
const Dash = "—"

// Locale holds every viewer-facing string and the date layouts used when
// formatting timestamps.
type Locale struct {
	Name string

	Loading    string
	LoadError  string
	NoLots     string
	NoSpaces   string
	LotTitle   string // fmt verb receives the lot id
	OutOf      string // fmt verb receives the total spaces
	LastUpdate string // fmt verb receives the formatted timestamp

	Occupied string
	Free     string
	Online   string
	Offline  string

	// Column headers of the spaces table.
	ColLot      string
	ColSpace    string
	ColState    string
	ColSensor   string
	ColLastSeen string

	DateTimeLayout string
	TimeLayout     string
}

// English is the default locale.
var English = Locale{
	Name:        "en",
	Loading:     "Loading…",
	LoadError:   "Error while loading…",
	NoLots:      "No parking lots available",
	NoSpaces:    "No spaces detected",
	LotTitle:    "LOT %s",
	OutOf:       "Out of %d",
	LastUpdate:  "Last update: %s",
	Occupied:    "Occupied",
	Free:        "Free",
	Online:      "Online",
	Offline:     "Offline",
	ColLot:      "Lot",
	ColSpace:    "Space",
	ColState:    "State",
	ColSensor:   "Sensor",
	ColLastSeen: "Last seen",

	DateTimeLayout: "1/2/2006, 3:04:05 PM",
	TimeLayout:     "3:04:05 PM",
}

// Italian carries the strings of the original signage deployment.
var Italian = Locale{
	Name:        "it",
	Loading:     "Caricamento…",
	LoadError:   "Errore nel caricamento…",
	NoLots:      "Nessun parcheggio disponibile",
	NoSpaces:    "Nessuno stallo rilevato",
	LotTitle:    "PARCHEGGIO %s",
	OutOf:       "Liberi su %d",
	LastUpdate:  "Ultimo aggiornamento: %s",
	Occupied:    "Occupato",
	Free:        "Libero",
	Online:      "Online",
	Offline:     "Offline",
	ColLot:      "Parcheggio",
	ColSpace:    "Stallo",
	ColState:    "Stato",
	ColSensor:   "Sensore",
	ColLastSeen: "Ultimo segnale",

	DateTimeLayout: "2/1/2006, 15:04:05",
	TimeLayout:     "15:04:05",
}

var locales = map[string]Locale{
	English.Name: English,
	Italian.Name: Italian,
}

// LookupLocale returns the locale with the given name ("en", "it", "it-IT").
func LookupLocale(name string) (Locale, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexAny(name, "-_"); i > 0 {
		name = name[:i]
	}
	loc, ok := locales[name]
	return loc, ok
}

// LocaleOrDefault returns the named locale, falling back to English.
func LocaleOrDefault(name string) Locale {
	if loc, ok := LookupLocale(name); ok {
		return loc
	}
	return English
}

// LocaleNames lists the built-in locale names.
func LocaleNames() []string {
	return []string{English.Name, Italian.Name}
}
