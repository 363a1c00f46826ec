package entity

import "fmt"

// BeerStyle is the enumerated style of a beer, stored and transmitted by name.
type BeerStyle string

const (
	BeerStyleLager   BeerStyle = "LAGER"
	BeerStylePilsner BeerStyle = "PILSNER"
	BeerStyleStout   BeerStyle = "STOUT"
	BeerStyleGose    BeerStyle = "GOSE"
	BeerStylePorter  BeerStyle = "PORTER"
	BeerStyleAle     BeerStyle = "ALE"
	BeerStyleWheat   BeerStyle = "WHEAT"
	BeerStyleIPA     BeerStyle = "IPA"
	BeerStylePaleAle BeerStyle = "PALE_ALE"
	BeerStyleSaison  BeerStyle = "SAISON"
)

var beerStyles = []BeerStyle{
	BeerStyleLager,
	BeerStylePilsner,
	BeerStyleStout,
	BeerStyleGose,
	BeerStylePorter,
	BeerStyleAle,
	BeerStyleWheat,
	BeerStyleIPA,
	BeerStylePaleAle,
	BeerStyleSaison,
}

// BeerStyles returns all known styles in declaration order.
func BeerStyles() []BeerStyle {
	styles := make([]BeerStyle, len(beerStyles))
	copy(styles, beerStyles)
	return styles
}

// IsValid reports whether s is one of the known styles.
func (s BeerStyle) IsValid() bool {
	for _, style := range beerStyles {
		if s == style {
			return true
		}
	}
	return false
}

// ParseBeerStyle matches name exactly against the known style names.
func ParseBeerStyle(name string) (BeerStyle, error) {
	style := BeerStyle(name)
	if !style.IsValid() {
		return "", fmt.Errorf("unknown beer style %q", name)
	}
	return style, nil
}
