package pricing

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FormatPrice renders a price for display: whole dollars by default,
// cents on request, US thousands grouping. Display only — formatted
// values never feed back into stored or compared totals.
func FormatPrice(price float64, includeCents bool) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "$0.00"
	}

	neg := price < 0
	if neg {
		price = -price
	}

	var whole int64
	var cents string
	if includeCents {
		rounded := math.Round(price * 100)
		whole = int64(rounded) / 100
		cents = fmt.Sprintf(".%02d", int64(rounded)%100)
	} else {
		whole = int64(math.Round(price))
	}

	s := strconv.FormatInt(whole, 10)
	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 3)
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	b.WriteString(cents)
	return b.String()
}

// displayName turns a camelCase config key into a label:
// "doubleHung" -> "Double Hung".
func displayName(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// MultiplierDisplay is one configured multiplier shaped for frontend
// pickers.
type MultiplierDisplay struct {
	Name        string  `json:"name"`
	Multiplier  float64 `json:"multiplier"`
	DisplayName string  `json:"displayName"`
}

// OptionDisplay is one configured option shaped for frontend pickers.
type OptionDisplay struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Cost        float64 `json:"cost"`
	Percentage  float64 `json:"percentage"`
	DisplayName string  `json:"displayName"`
}

// DisplayMultipliers is the full multiplier configuration shaped for
// the frontend.
type DisplayMultipliers struct {
	WindowTypes  []MultiplierDisplay `json:"windowTypes"`
	Brands       []MultiplierDisplay `json:"brands"`
	Materials    []MultiplierDisplay `json:"materials"`
	Options      []OptionDisplay     `json:"options"`
	PricingTiers []Tier              `json:"pricingTiers"`
}

// ForDisplay shapes a resolved table for frontend consumption. Output
// slices are sorted by name so the response is stable.
func (t MultiplierTable) ForDisplay() DisplayMultipliers {
	shape := func(m map[string]float64, humanize bool) []MultiplierDisplay {
		out := make([]MultiplierDisplay, 0, len(m))
		for name, mult := range m {
			d := name
			if humanize {
				d = displayName(name)
			}
			out = append(out, MultiplierDisplay{Name: name, Multiplier: mult, DisplayName: d})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out
	}

	options := make([]OptionDisplay, 0, len(t.Options))
	for name, o := range t.Options {
		options = append(options, OptionDisplay{
			Name:        name,
			Type:        string(o.Kind),
			Cost:        o.Cost,
			Percentage:  o.Percentage,
			DisplayName: displayName(name),
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })

	return DisplayMultipliers{
		WindowTypes:  shape(t.Types, true),
		Brands:       shape(t.Brands, false), // brand names are already display-ready
		Materials:    shape(t.Materials, true),
		Options:      options,
		PricingTiers: Tiers,
	}
}
