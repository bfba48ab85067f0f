package view

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fakhrymubarak/weather-lookup/internal/model"
)

const (
	MsgEmptyCity  = "Please enter a city name."
	MsgNoData     = "Could not retrieve weather data or valid description for this city. Please try another."
	MsgFetchFail  = "Failed to fetch weather data."
	MsgUnexpected = "An unexpected error occurred while fetching weather."
)

// WeatherFetcher is the proxy call the view depends on. *Client implements it.
type WeatherFetcher interface {
	Weather(ctx context.Context, city string) (status int, body []byte, err error)
}

// State is a snapshot of everything the page renders.
type State struct {
	Query       string
	Result      *model.WeatherResult
	Loading     bool
	Error       string
	HasSearched bool
}

// View holds the search state of one page. It is safe for concurrent use.
//
// Every submit takes a new token; a response that arrives after a newer submit
// is dropped, so state always reflects the most recent search.
type View struct {
	fetcher WeatherFetcher
	logger  *zap.SugaredLogger

	mu    sync.Mutex
	state State
	token uint64
}

func New(fetcher WeatherFetcher, logger *zap.SugaredLogger) *View {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &View{fetcher: fetcher, logger: logger}
}

// SetQuery replaces the query text.
func (v *View) SetQuery(q string) {
	v.mu.Lock()
	v.state.Query = q
	v.mu.Unlock()
}

// State returns a copy of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// SubmitSearch runs one search for the current query and blocks until it
// resolves. An empty query fails locally without any network call.
func (v *View) SubmitSearch(ctx context.Context) {
	v.mu.Lock()
	v.state.HasSearched = true
	v.token++
	token := v.token
	city := strings.TrimSpace(v.state.Query)
	if city == "" {
		v.state.Error = MsgEmptyCity
		v.state.Result = nil
		v.state.Loading = false
		v.mu.Unlock()
		return
	}
	v.state.Loading = true
	v.state.Error = ""
	v.state.Result = nil
	v.mu.Unlock()

	result, errMsg := v.fetch(ctx, city)

	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.token {
		v.logger.Debugw("Dropping stale weather response", "city", city)
		return
	}
	v.state.Loading = false
	v.state.Result = result
	v.state.Error = errMsg
}

// fetch returns either a displayable result or a user-facing error message.
func (v *View) fetch(ctx context.Context, city string) (*model.WeatherResult, string) {
	status, body, err := v.fetcher.Weather(ctx, city)
	if err != nil {
		v.logger.Errorw("Fetch error", "city", city, "error", err)
		return nil, MsgUnexpected
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		v.logger.Errorw("Fetch error", "city", city, "error", err)
		return nil, MsgUnexpected
	}

	if status < 200 || status > 299 {
		if msg := errorInfo(data); msg != "" {
			return nil, msg
		}
		return nil, MsgFetchFail
	}

	var result model.WeatherResult
	if err := json.Unmarshal(body, &result); err != nil || !result.Displayable() {
		return nil, MsgNoData
	}
	return &result, ""
}

// errorInfo extracts the provider's explanation from a proxy error body. It
// looks at "info" (a provider error object or a bare string) and then at an
// "error" object carrying its own "info".
func errorInfo(data interface{}) string {
	obj, ok := data.(map[string]interface{})
	if !ok {
		return ""
	}
	switch info := obj["info"].(type) {
	case string:
		if info != "" {
			return info
		}
	case map[string]interface{}:
		if s, ok := info["info"].(string); ok && s != "" {
			return s
		}
	}
	if e, ok := obj["error"].(map[string]interface{}); ok {
		if s, ok := e["info"].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// ShowIdle reports whether the "enter a city" placeholder should be shown.
func (s State) ShowIdle() bool {
	return s.Result == nil && !s.Loading && s.Error == "" && !s.HasSearched
}

// ButtonLabel is the submit button caption; it is the only loading indicator.
func (s State) ButtonLabel() string {
	if s.Loading {
		return "Fetching..."
	}
	return "Get Weather"
}

// Icon returns the icon for the first description of the current result.
func (s State) Icon() Icon {
	return IconFor(s.Result.Description())
}

// Temperature formats the current temperature in Celsius, e.g. "15°C".
func (s State) Temperature() string {
	if s.Result == nil || s.Result.Current == nil {
		return ""
	}
	return strconv.FormatFloat(s.Result.Current.Temperature, 'f', -1, 64) + "°C"
}

// Description returns the first description with every word capitalized.
func (s State) Description() string {
	return Capitalize(s.Result.Description())
}

// Capitalize upper-cases the first letter of each word and leaves the rest alone.
func Capitalize(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}
