package formula

// Conversion factors between the recipe's US units and the metric units of
// BeerXML documents.
const (
	LitersPerGallon   = 3.78541
	KilogramsPerPound = 0.45359
	KilogramsPerOunce = KilogramsPerPound / 16
	// PPGPerYield converts a BeerXML yield ratio to points per pound per gallon.
	PPGPerYield = 46.214
)

func GallonsToLiters(gallons float64) float64 { return gallons * LitersPerGallon }
func LitersToGallons(liters float64) float64  { return liters / LitersPerGallon }

func PoundsToKilograms(pounds float64) float64 { return pounds * KilogramsPerPound }
func KilogramsToPounds(kg float64) float64     { return kg / KilogramsPerPound }

func OuncesToKilograms(oz float64) float64 { return oz * KilogramsPerOunce }
func KilogramsToOunces(kg float64) float64 { return kg / KilogramsPerOunce }

// YieldToPPG converts a BeerXML yield ratio to ppg, PPGToYield does the reverse.
func YieldToPPG(yield float64) float64 { return yield * PPGPerYield }
func PPGToYield(ppg float64) float64   { return ppg / PPGPerYield }
