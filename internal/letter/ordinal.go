package letter

var ordinalUnits = []string{
	"", "FIRST", "SECOND", "THIRD", "FOURTH", "FIFTH", "SIXTH", "SEVENTH",
	"EIGHTH", "NINTH", "TENTH", "ELEVENTH", "TWELFTH", "THIRTEENTH",
	"FOURTEENTH", "FIFTEENTH", "SIXTEENTH", "SEVENTEENTH", "EIGHTEENTH",
	"NINETEENTH",
}

var cardinalTens = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY",
	"EIGHTY", "NINETY",
}

var ordinalTens = []string{
	"", "", "TWENTIETH", "THIRTIETH", "FORTIETH", "FIFTIETH", "SIXTIETH",
	"SEVENTIETH", "EIGHTIETH", "NINETIETH",
}

// OrdinalWord returns the upper-case ordinal word for 1..100, as used
// for the signing-page instruction. Values outside that range yield ok
// false.
func OrdinalWord(n int) (string, bool) {
	switch {
	case n < 1 || n > 100:
		return "", false
	case n == 100:
		return "HUNDREDTH", true
	case n < 20:
		return ordinalUnits[n], true
	case n%10 == 0:
		return ordinalTens[n/10], true
	default:
		return cardinalTens[n/10] + "-" + ordinalUnits[n%10], true
	}
}
