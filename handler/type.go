package handler

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/zishang520/engine.io/v2/events"

	_http "github.com/zishang520/auviewer-client/http"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Emitted with (path string, params *http.Params) before a request is sent.
	EventRequest events.EventName = "request"
	// Emitted with (path string, data Payload) when a 200 reply was decoded.
	EventResponse events.EventName = "response"
	// Emitted with (*errors.RequestError) when a request never reaches its callback.
	EventError events.EventName = "error"
	// Emitted with (path string, elapsed time.Duration) for callbacks over the reporting threshold.
	EventSlowCallback events.EventName = "slowCallback"
)

// Decoded JSON object of a backend reply.
type Payload map[string]any

// Decode re-decodes the payload into v.
func (p Payload) Decode(v any) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

type Callback func(Payload)

type BodyEncoding int

const (
	BodyNone BodyEncoding = iota
	BodyForm
	BodyJSON
)

func (e BodyEncoding) String() string {
	switch e {
	case BodyForm:
		return "form"
	case BodyJSON:
		return "json"
	}
	return "none"
}

type Request struct {
	// Config key of the endpoint URL.
	Endpoint string
	// Used instead of Endpoint when set.
	URL string

	Method   string
	Query    *_http.Params
	Body     *_http.Params
	Encoding BodyEncoding
}

// A vote segment bound.
type Span struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
	ID    int     `json:"id,omitempty"`
}

// Segments by filename, then by series id.
type SegmentsMap map[string]map[string][]Span

type ThresholdSetting struct {
	Title string `json:"title"`
	Value any    `json:"value"`
}

// Selects files for the supervisor view.
type SupervisorQuery struct {
	RandomFiles      bool    `json:"randomFiles"`
	Categorical      *string `json:"categorical"`
	LabelingFunction *string `json:"labelingFunction"`
	Amount           int     `json:"amount,omitempty"`
}
