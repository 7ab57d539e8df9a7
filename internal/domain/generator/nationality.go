package generator

// Skin color codes follow the host game's established numbering and are a
// compatibility contract: 1=light, 2=light-brown, 3=asian, 4=dark. Do not
// renumber.
const (
	SkinLight      = 1
	SkinLightBrown = 2
	SkinAsian      = 3
	SkinDark       = 4
)

// Country is one entry of the nationality draw table.
type Country struct {
	Name   string
	Weight float64
	Skin   int
}

// countries is the fixed nationality table. Weights are relative and
// normalized at draw time.
var countries = []Country{
	{"England", 8.5, SkinLight},
	{"Brazil", 8.0, SkinLightBrown},
	{"Spain", 7.5, SkinLight},
	{"Italy", 7.5, SkinLight},
	{"Germany", 7.0, SkinLight},
	{"France", 7.0, SkinLightBrown},
	{"Argentina", 6.0, SkinLight},
	{"Netherlands", 4.0, SkinLight},
	{"Portugal", 4.0, SkinLight},
	{"Belgium", 2.5, SkinLight},
	{"Croatia", 2.0, SkinLight},
	{"Serbia", 2.0, SkinLight},
	{"Poland", 2.0, SkinLight},
	{"Russia", 2.0, SkinLight},
	{"Sweden", 1.8, SkinLight},
	{"Denmark", 1.6, SkinLight},
	{"Norway", 1.4, SkinLight},
	{"Scotland", 1.4, SkinLight},
	{"Ireland", 1.2, SkinLight},
	{"Wales", 1.0, SkinLight},
	{"Greece", 1.4, SkinLight},
	{"Turkey", 2.2, SkinLightBrown},
	{"Mexico", 2.2, SkinLightBrown},
	{"United States", 1.8, SkinLight},
	{"Colombia", 2.2, SkinLightBrown},
	{"Uruguay", 2.0, SkinLight},
	{"Chile", 1.6, SkinLightBrown},
	{"Paraguay", 1.2, SkinLightBrown},
	{"Peru", 1.2, SkinLightBrown},
	{"Japan", 2.0, SkinAsian},
	{"South Korea", 1.6, SkinAsian},
	{"China", 1.2, SkinAsian},
	{"Australia", 1.4, SkinLight},
	{"Nigeria", 2.4, SkinDark},
	{"Ghana", 1.8, SkinDark},
	{"Cameroon", 1.8, SkinDark},
	{"Senegal", 1.6, SkinDark},
	{"Ivory Coast", 1.8, SkinDark},
	{"Morocco", 1.4, SkinLightBrown},
	{"Czech Republic", 1.6, SkinLight},
}

var totalCountryWeight = func() float64 {
	var sum float64
	for _, c := range countries {
		sum += c.Weight
	}
	return sum
}()

var countryByName = func() map[string]Country {
	m := make(map[string]Country, len(countries))
	for _, c := range countries {
		m[c.Name] = c
	}
	return m
}()

// SkinColorFor returns the fixed skin color code for a nationality,
// defaulting to light for nationalities outside the table.
func SkinColorFor(nationality string) int {
	if c, ok := countryByName[nationality]; ok {
		return c.Skin
	}
	return SkinLight
}
