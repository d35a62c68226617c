package handler

import (
	"net/http"
	"sort"

	"github.com/zishang520/auviewer-client/config"
)

type Endpoint struct {
	Name     string
	URLKey   string
	Method   string
	Encoding BodyEncoding
}

var _endpoints = map[string]*Endpoint{
	"createAnnotation":                {URLKey: config.CreateAnnotationURL, Method: http.MethodGet},
	"deleteAnnotation":                {URLKey: config.DeleteAnnotationURL, Method: http.MethodGet},
	"updateAnnotation":                {URLKey: config.UpdateAnnotationURL, Method: http.MethodGet},
	"featurize":                       {URLKey: config.FeaturizeURL, Method: http.MethodGet},
	"updateThreshold":                 {URLKey: config.UpdateThresholdURL, Method: http.MethodPut, Encoding: BodyJSON},
	"previewThreshold":                {URLKey: config.PreviewThresholdsURL, Method: http.MethodPost, Encoding: BodyJSON},
	"uploadCustomSegments":            {URLKey: config.UploadCustomSegmentsURL, Method: http.MethodPost, Encoding: BodyForm},
	"requestPatternDetection":         {URLKey: config.DetectPatternsURL, Method: http.MethodGet},
	"requestInitialFilePayload":       {URLKey: config.InitialFilePayloadURL, Method: http.MethodGet},
	"requestInitialEvaluatorPayload":  {URLKey: config.InitialEvaluatorPayloadURL, Method: http.MethodGet},
	"requestInitialSupervisorPayload": {URLKey: config.InitialSupervisorPayloadURL, Method: http.MethodGet},
	"requestReprioritizeFile":         {URLKey: config.PrioritizeFileURL, Method: http.MethodGet},
	"requestAggregateLabelerStats":    {URLKey: config.RequestLabelerStatsURL, Method: http.MethodGet},
	"deleteVoteSegments":              {URLKey: config.DeleteVoteSegmentsURL, Method: http.MethodPost, Encoding: BodyJSON},
	"submitVoteSegments":              {URLKey: config.SubmitVoteSegmentsURL, Method: http.MethodPost, Encoding: BodyJSON},
	"getVotes":                        {URLKey: config.GetVotesURL, Method: http.MethodPost, Encoding: BodyJSON},
	"getSegments":                     {URLKey: config.GetSegmentsURL, Method: http.MethodGet},
	"requestSupervisorSeriesByQuery":  {URLKey: config.QuerySupervisorSeriesURL, Method: http.MethodPost, Encoding: BodyJSON},
	"requestProjectAnnotations":       {URLKey: config.GetProjectAnnotationsURL, Method: http.MethodGet},
	"requestSeriesRangedData":         {URLKey: config.SeriesRangedDataURL, Method: http.MethodGet},
}

func init() {
	for name, endpoint := range _endpoints {
		endpoint.Name = name
	}
}

// Endpoints returns a copy of the registered backend endpoints by name.
func Endpoints() map[string]Endpoint {
	endpoints := make(map[string]Endpoint, len(_endpoints))
	for name, endpoint := range _endpoints {
		endpoints[name] = *endpoint
	}
	return endpoints
}

// Sorted endpoint names.
func EndpointNames() []string {
	names := make([]string, 0, len(_endpoints))
	for name := range _endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
