package synonym

// Table maps a canonical term to the terms accepted in its place.
type Table map[string][]string

// builtinTable is the static knowledge base behind Default.
var builtinTable = Table{
	// Numbers
	"0":    {"zero", "none", "nil"},
	"1":    {"one", "first", "1st", "single"},
	"2":    {"two", "second", "2nd", "pair", "couple"},
	"3":    {"three", "third", "3rd"},
	"4":    {"four", "fourth", "4th"},
	"5":    {"five", "fifth", "5th"},
	"6":    {"six", "sixth", "6th"},
	"7":    {"seven", "seventh", "7th"},
	"8":    {"eight", "eighth", "8th"},
	"9":    {"nine", "ninth", "9th"},
	"10":   {"ten", "tenth", "10th"},
	"11":   {"eleven", "eleventh", "11th"},
	"12":   {"twelve", "twelfth", "12th", "dozen"},
	"13":   {"thirteen", "thirteenth", "13th"},
	"20":   {"twenty", "twentieth", "20th"},
	"50":   {"fifty", "fiftieth"},
	"100":  {"hundred", "one hundred", "hundredth"},
	"1000": {"thousand", "one thousand", "1,000"},
	"0.5":  {"half", "one half"},
	"0.25": {"quarter", "one quarter"},

	// Units
	"meter":      {"m", "meters", "metre", "metres"},
	"kilometer":  {"km", "kilometers", "kilometre", "kilometres"},
	"centimeter": {"cm", "centimeters", "centimetre", "centimetres"},
	"millimeter": {"mm", "millimeters", "millimetre", "millimetres"},
	"kilogram":   {"kg", "kilograms", "kilo", "kilos"},
	"gram":       {"g", "grams", "gm"},
	"milligram":  {"mg", "milligrams"},
	"liter":      {"l", "liters", "litre", "litres"},
	"milliliter": {"ml", "milliliters", "millilitre", "millilitres"},
	"second":     {"s", "sec", "secs", "seconds"},
	"minute":     {"min", "mins", "minutes"},
	"hour":       {"h", "hr", "hrs", "hours"},
	"celsius":    {"c", "centigrade", "degrees celsius"},
	"fahrenheit": {"f", "degrees fahrenheit"},
	"kelvin":     {"k", "kelvins"},
	"newton":     {"n", "newtons"},
	"joule":      {"j", "joules"},
	"watt":       {"w", "watts"},
	"volt":       {"v", "volts"},
	"ampere":     {"amp", "amps", "amperes"},
	"mile":       {"mi", "miles"},
	"foot":       {"ft", "feet"},
	"inch":       {"in.", "inches"},
	"pound":      {"lb", "lbs", "pounds"},

	// Countries and organizations
	"united states":                                 {"usa", "us", "u.s.", "u.s.a.", "america", "united states of america", "the us"},
	"united kingdom":                                {"uk", "u.k.", "britain", "great britain", "gb"},
	"united nations":                                {"un", "u.n."},
	"european union":                                {"eu", "e.u."},
	"soviet union":                                  {"ussr", "u.s.s.r.", "union of soviet socialist republics"},
	"united arab emirates":                          {"uae", "u.a.e.", "emirates"},
	"people's republic of china":                    {"china", "prc"},
	"democratic republic of the congo":              {"drc", "dr congo", "congo-kinshasa"},
	"north atlantic treaty organization":            {"nato"},
	"world health organization":                     {"who"},
	"national aeronautics and space administration": {"nasa"},
	"federal bureau of investigation":               {"fbi"},
	"central intelligence agency":                   {"cia"},
	"world trade organization":                      {"wto"},
	"international monetary fund":                   {"imf"},

	// Chemical formulas
	"water":                  {"h2o", "dihydrogen monoxide"},
	"carbon dioxide":         {"co2"},
	"carbon monoxide":        {"co"},
	"oxygen":                 {"o2", "o"},
	"hydrogen":               {"h2", "h"},
	"nitrogen":               {"n2"},
	"sodium chloride":        {"nacl", "table salt", "salt"},
	"methane":                {"ch4"},
	"ammonia":                {"nh3"},
	"glucose":                {"c6h12o6"},
	"sulfuric acid":          {"h2so4", "sulphuric acid"},
	"hydrochloric acid":      {"hcl"},
	"ozone":                  {"o3"},
	"iron":                   {"fe"},
	"gold":                   {"au"},
	"silver":                 {"ag"},
	"sodium":                 {"na"},
	"potassium":              {"k"},
	"calcium":                {"ca"},
	"deoxyribonucleic acid":  {"dna"},
	"ribonucleic acid":       {"rna"},
	"adenosine triphosphate": {"atp"},

	// Math operations
	"addition":       {"add", "plus", "sum", "adding"},
	"subtraction":    {"subtract", "minus", "difference", "subtracting"},
	"multiplication": {"multiply", "times", "product", "multiplying"},
	"division":       {"divide", "divided by", "quotient", "dividing"},
	"square root":    {"sqrt", "root"},
	"exponent":       {"power", "exponentiation", "raised to"},
	"percent":        {"percentage", "pct"},
	"equals":         {"equal", "equal to", "is equal to"},
	"greater than":   {"more than", "larger than", "gt"},
	"less than":      {"smaller than", "fewer than", "lt"},

	// Calendar eras
	"bc": {"b.c.", "bce", "b.c.e.", "before christ", "before common era"},
	"ad": {"a.d.", "ce", "c.e.", "anno domini", "common era"},
	"am": {"a.m.", "morning", "ante meridiem"},
	"pm": {"p.m.", "afternoon", "post meridiem"},

	// Compass directions
	"north":     {"n.", "northern"},
	"south":     {"s.", "southern"},
	"east":      {"e.", "eastern"},
	"west":      {"w.", "western"},
	"northeast": {"ne", "north east", "north-east"},
	"northwest": {"nw", "north west", "north-west"},
	"southeast": {"se", "south east", "south-east"},
	"southwest": {"sw", "south west", "south-west"},

	// Educational shorthand
	"for example":   {"e.g.", "eg", "for instance"},
	"that is":       {"i.e.", "ie"},
	"et cetera":     {"etc", "etc.", "and so on"},
	"versus":        {"vs", "vs.", "v."},
	"approximately": {"approx", "approx.", "about", "roughly", "circa", "ca."},
	"number":        {"no.", "num"},
	"definition":    {"def", "defn"},
	"because":       {"bc.", "cuz", "cos"},
	"true":          {"t", "correct"},
	"false":         {"f.", "incorrect"},
	"president":     {"pres", "pres."},
	"doctor":        {"dr", "dr."},
	"mister":        {"mr", "mr."},
	"saint":         {"st", "st."},
	"mount":         {"mt", "mt."},
	"world war i":   {"ww1", "wwi", "world war 1", "first world war", "great war"},
	"world war ii":  {"ww2", "wwii", "world war 2", "second world war"},
}
