package config

import (
	"net/url"
	"strings"
	"time"
)

// Config keys of the backend endpoints, as served by the AUViewer app.
const (
	CreateAnnotationURL         = "createAnnotationURL"
	DeleteAnnotationURL         = "deleteAnnotationURL"
	UpdateAnnotationURL         = "updateAnnotationURL"
	FeaturizeURL                = "featurizeURL"
	UpdateThresholdURL          = "updateThresholdURL"
	PreviewThresholdsURL        = "previewThresholdsURL"
	UploadCustomSegmentsURL     = "uploadCustomSegmentsURL"
	DetectPatternsURL           = "detectPatternsURL"
	InitialFilePayloadURL       = "initialFilePayloadURL"
	InitialEvaluatorPayloadURL  = "initialEvaluatorPayloadURL"
	InitialSupervisorPayloadURL = "initialSupervisorPayloadURL"
	PrioritizeFileURL           = "prioritizeFileURL"
	RequestLabelerStatsURL      = "requestLabelerStatsURL"
	DeleteVoteSegmentsURL       = "deleteVoteSegmentsURL"
	SubmitVoteSegmentsURL       = "submitVoteSegmentsURL"
	GetVotesURL                 = "getVotesURL"
	GetSegmentsURL              = "getSegmentsURL"
	QuerySupervisorSeriesURL    = "querySupervisorSeriesURL"
	GetProjectAnnotationsURL    = "getProjectAnnotationsURL"
	SeriesRangedDataURL         = "seriesRangedDataURL"
)

var EndpointURLKeys = []string{
	CreateAnnotationURL,
	DeleteAnnotationURL,
	UpdateAnnotationURL,
	FeaturizeURL,
	UpdateThresholdURL,
	PreviewThresholdsURL,
	UploadCustomSegmentsURL,
	DetectPatternsURL,
	InitialFilePayloadURL,
	InitialEvaluatorPayloadURL,
	InitialSupervisorPayloadURL,
	PrioritizeFileURL,
	RequestLabelerStatsURL,
	DeleteVoteSegmentsURL,
	SubmitVoteSegmentsURL,
	GetVotesURL,
	GetSegmentsURL,
	QuerySupervisorSeriesURL,
	GetProjectAnnotationsURL,
	SeriesRangedDataURL,
}

type AppConfig struct {
	// Relative endpoint URLs are resolved against it.
	BaseURL string

	// Endpoint URLs by config key. Keys are matched case-insensitively.
	Endpoints map[string]string

	// Trace every request and response.
	Verbose bool

	// Report callbacks slower than PerformanceReportingThresholdGeneral.
	Performance                          bool
	PerformanceReportingThresholdGeneral time.Duration

	RequestTimeout time.Duration
	Compress       bool
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Endpoints:                            map[string]string{},
		PerformanceReportingThresholdGeneral: 50 * time.Millisecond,
	}
}

// Sets the URL of an endpoint.
func (c *AppConfig) SetEndpoint(key string, uri string) {
	if c.Endpoints == nil {
		c.Endpoints = map[string]string{}
	}
	c.Endpoints[strings.ToLower(key)] = uri
}

// Returns the configured URL of an endpoint, resolved against BaseURL.
func (c *AppConfig) URL(key string) (string, bool) {
	uri, ok := c.Endpoints[strings.ToLower(key)]
	if !ok || uri == "" {
		return "", false
	}
	if c.BaseURL == "" {
		return uri, true
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return uri, true
	}
	ref, err := url.Parse(uri)
	if err != nil {
		return uri, true
	}
	return base.ResolveReference(ref).String(), true
}

// RequestOptions derived from the app config.
func (c *AppConfig) RequestOptions() *RequestOptions {
	opts := DefaultRequestOptions()
	if c.RequestTimeout > 0 {
		opts.SetTimeout(c.RequestTimeout)
	}
	if c.Compress {
		opts.SetCompress(true)
	}
	return opts
}
