package model

// WeatherResult is the subset of the Weatherstack /current payload the page reads.
// The proxy forwards the full provider body, so unknown fields are simply ignored here.
type WeatherResult struct {
	Location *Location `json:"location"`
	Current  *Current  `json:"current"`
}

type Location struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type Current struct {
	Temperature         float64  `json:"temperature"`
	WeatherDescriptions []string `json:"weather_descriptions"`
	WeatherIcons        []string `json:"weather_icons"`
}

// Displayable reports whether the result carries a location, current conditions
// and at least one weather description.
func (w *WeatherResult) Displayable() bool {
	return w != nil && w.Location != nil && w.Current != nil && len(w.Current.WeatherDescriptions) > 0
}

// Description returns the first weather description, or "" when there is none.
func (w *WeatherResult) Description() string {
	if w == nil || w.Current == nil || len(w.Current.WeatherDescriptions) == 0 {
		return ""
	}
	return w.Current.WeatherDescriptions[0]
}

// ProviderError mirrors the "error" object Weatherstack sends alongside success=false.
type ProviderError struct {
	Code int    `json:"code,omitempty"`
	Type string `json:"type,omitempty"`
	Info string `json:"info,omitempty"`
}
