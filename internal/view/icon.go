package view

import "strings"

// Icon names the symbol shown next to a weather description.
type Icon string

const (
	IconSun       Icon = "sun"
	IconCloud     Icon = "cloud"
	IconRain      Icon = "cloud-rain"
	IconSnow      Icon = "cloud-snow"
	IconLightning Icon = "cloud-lightning"
	IconDroplet   Icon = "droplet"
	IconWind      Icon = "wind"

	// IconDefault is used when no keyword matches.
	IconDefault = IconCloud
)

// iconRules is evaluated top to bottom; the first rule with a matching keyword wins.
var iconRules = []struct {
	keywords []string
	icon     Icon
}{
	{[]string{"clear", "sunny"}, IconSun},
	{[]string{"cloud", "overcast"}, IconCloud},
	{[]string{"rain", "drizzle", "shower"}, IconRain},
	{[]string{"snow", "sleet"}, IconSnow},
	{[]string{"thunder", "storm"}, IconLightning},
	{[]string{"mist", "fog"}, IconDroplet},
	{[]string{"wind"}, IconWind},
}

// IconFor picks the icon for a weather description by case-insensitive
// substring match.
func IconFor(description string) Icon {
	desc := strings.ToLower(description)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.icon
			}
		}
	}
	return IconDefault
}

var iconGlyphs = map[Icon]string{
	IconSun:       "\u2600\uFE0F",
	IconCloud:     "\u2601\uFE0F",
	IconRain:      "\U0001F327\uFE0F",
	IconSnow:      "\U0001F328\uFE0F",
	IconLightning: "\U0001F329\uFE0F",
	IconDroplet:   "\U0001F4A7",
	IconWind:      "\U0001F32C\uFE0F",
}

// Glyph returns the emoji used to draw the icon.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconDefault]
}
