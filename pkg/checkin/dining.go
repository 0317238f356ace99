package checkin

// Category codes in the 13000 block are the Dining and Drinking taxonomy
const (
	diningCodeLow  = 13000
	diningCodeHigh = 13999
)

var coffeeCodes = map[int]bool{
	13032: true, // Cafe
	13033: true, // Bubble Tea Shop
	13034: true, // Cafeteria
	13035: true, // Coffee Shop
	13036: true, // Tea Room
	13063: true, // Internet Cafe
}

var fastFoodCodes = map[int]bool{
	13031: true, // Burger Joint
	13145: true, // Fast Food Restaurant
	13146: true, // Fish and Chips Shop
}

var barCodes = map[int]bool{
	13003: true, // Bar
	13006: true, // Beer Bar
	13009: true, // Cocktail Bar
	13012: true, // Dive Bar
	13016: true, // Karaoke Bar
	13025: true, // Wine Bar
}

var bakeryCodes = map[int]bool{
	13002: true, // Bakery
	13040: true, // Dessert Shop
	13042: true, // Cupcake Shop
	13043: true, // Donut Shop
	13046: true, // Ice Cream Parlor
}

var breweryCodes = map[int]bool{
	13029: true, // Brewery
	13112: true, // Cidery
	13113: true, // Distillery
}

// IsDining reports whether the category code falls in the dining and
// drinking block
func IsDining(code int) bool {
	return code >= diningCodeLow && code <= diningCodeHigh
}

// DiningLabel buckets a dining category code into a coarse label. Codes
// outside the dining block return "".
func DiningLabel(code int) string {
	if !IsDining(code) {
		return ""
	}
	switch {
	case coffeeCodes[code]:
		return "Coffee & Cafe"
	case fastFoodCodes[code]:
		return "Fast Food"
	case barCodes[code]:
		return "Bars"
	case bakeryCodes[code]:
		return "Bakery & Dessert"
	case breweryCodes[code]:
		return "Brewery & Winery"
	default:
		return "Restaurants"
	}
}
