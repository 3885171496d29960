package entities

import "math"

// Asset is a single user-declared holding. Name is unique across the store,
// CharCode is the currency or instrument code used for rate lookup.
type Asset struct {
	CharCode string
	Name     string
	Capital  float64
	Interest float64
}

func NewAsset(charCode, name string, capital, interest float64) Asset {
	return Asset{
		CharCode: charCode,
		Name:     name,
		Capital:  capital,
		Interest: interest,
	}
}

// Revenue projects the compound revenue of the asset over the given number
// of periods at the given exchange rate.
func (a Asset) Revenue(periods int, rate float64) float64 {
	return rate * a.Capital * (math.Pow(1.0+a.Interest, float64(periods)) - 1.0)
}

// Tuple returns the wire form of the asset: [charCode, name, capital, interest].
func (a Asset) Tuple() []any {
	return []any{a.CharCode, a.Name, a.Capital, a.Interest}
}
