package handler

import (
	"context"

	"github.com/zishang520/auviewer-client/errors"
	_http "github.com/zishang520/auviewer-client/http"
)

func (h *RequestHandler) endpoint(ctx context.Context, name string, query *_http.Params, body *_http.Params, callback Callback) {
	h.send(ctx, _endpoints[name].request(query, body), callback)
}

func (h *RequestHandler) CreateAnnotation(ctx context.Context, projectID, fileID int, left, right float64, seriesID, label string, patternID *int, callback Callback) {
	h.endpoint(ctx, "createAnnotation", _http.NewParams().
		Set("project_id", projectID).
		Set("file_id", fileID).
		Set("xl", left).
		Set("xr", right).
		Set("sid", seriesID).
		Set("label", label).
		Set("pattern_id", patternID), nil, callback)
}

func (h *RequestHandler) DeleteAnnotation(ctx context.Context, id, projectID, fileID int, callback Callback) {
	h.endpoint(ctx, "deleteAnnotation", _http.NewParams().
		Set("id", id).
		Set("project_id", projectID).
		Set("file_id", fileID), nil, callback)
}

func (h *RequestHandler) UpdateAnnotation(ctx context.Context, id, projectID, fileID int, left, right float64, seriesID, label string, callback Callback) {
	h.endpoint(ctx, "updateAnnotation", _http.NewParams().
		Set("id", id).
		Set("project_id", projectID).
		Set("file_id", fileID).
		Set("xl", left).
		Set("xr", right).
		Set("sid", seriesID).
		Set("label", label), nil, callback)
}

// Featurize sends params JSON-encoded as a single query value.
func (h *RequestHandler) Featurize(ctx context.Context, projectID, fileID int, series, featurizer string, left, right float64, params any, callback Callback) {
	encoded, err := json.MarshalToString(params)
	if err != nil {
		h.fail(errors.NewRequestError("failed to encode featurizer params", "featurize", err))
		return
	}
	h.endpoint(ctx, "featurize", _http.NewParams().
		Set("project_id", projectID).
		Set("file_id", fileID).
		Set("series", series).
		Set("featurizer", featurizer).
		Set("left", left).
		Set("right", right).
		Set("params", encoded), nil, callback)
}

func (h *RequestHandler) UpdateThreshold(ctx context.Context, projectID int, title string, value any, callback Callback) {
	h.endpoint(ctx, "updateThreshold",
		_http.NewParams().Set("project_id", projectID),
		_http.NewParams().
			Set("title", title).
			Set("value", value), callback)
}

func (h *RequestHandler) PreviewThreshold(ctx context.Context, projectID int, files []int, labeler string, thresholds []ThresholdSetting, timeSegment any, callback Callback) {
	h.endpoint(ctx, "previewThreshold",
		_http.NewParams().Set("project_id", projectID),
		_http.NewParams().
			Set("files", files).
			Set("thresholds", thresholds).
			Set("labeler", labeler).
			Set("time_segment", timeSegment), callback)
}

// UploadCustomSegments posts filePayload as a multipart form.
func (h *RequestHandler) UploadCustomSegments(ctx context.Context, projectID int, filePayload *_http.FilePart, callback Callback) {
	h.endpoint(ctx, "uploadCustomSegments",
		_http.NewParams().Set("project_id", projectID),
		_http.NewParams().Set("file_payload", filePayload), callback)
}

// Thresholds left nil are sent empty.
func (h *RequestHandler) RequestPatternDetection(ctx context.Context, projectID, fileID int, patternType, seriesID string, thresholdLow, thresholdHigh *float64, duration, persistence, maxGap float64, callback Callback) {
	h.endpoint(ctx, "requestPatternDetection", _http.NewParams().
		Set("project_id", projectID).
		Set("file_id", fileID).
		Set("type", patternType).
		Set("series", seriesID).
		Set("thresholdlow", thresholdLow).
		Set("thresholdhigh", thresholdHigh).
		Set("duration", duration).
		Set("persistence", persistence).
		Set("maxgap", maxGap), nil, callback)
}

func (h *RequestHandler) RequestInitialFilePayload(ctx context.Context, projectID, fileID int, callback Callback) {
	h.endpoint(ctx, "requestInitialFilePayload", _http.NewParams().
		Set("project_id", projectID).
		Set("file_id", fileID), nil, callback)
}

func (h *RequestHandler) RequestInitialEvaluatorPayload(ctx context.Context, projectID int, callback Callback) {
	h.endpoint(ctx, "requestInitialEvaluatorPayload", _http.NewParams().
		Set("project_id", projectID), nil, callback)
}

func (h *RequestHandler) RequestInitialSupervisorPayload(ctx context.Context, projectID int, callback Callback) {
	h.endpoint(ctx, "requestInitialSupervisorPayload", _http.NewParams().
		Set("project_id", projectID), nil, callback)
}

func (h *RequestHandler) RequestReprioritizeFile(ctx context.Context, projectID, fileIdx int, callback Callback) {
	h.endpoint(ctx, "requestReprioritizeFile", _http.NewParams().
		Set("project_id", projectID).
		Set("file_idx", fileIdx), nil, callback)
}

func (h *RequestHandler) RequestAggregateLabelerStats(ctx context.Context, projectID int, segmentType string, callback Callback) {
	h.endpoint(ctx, "requestAggregateLabelerStats", _http.NewParams().
		Set("project_id", projectID).
		Set("segment_type", segmentType), nil, callback)
}

func (h *RequestHandler) DeleteVoteSegments(ctx context.Context, projectID int, segments SegmentsMap, callback Callback) {
	h.endpoint(ctx, "deleteVoteSegments",
		_http.NewParams().Set("project_id", projectID),
		_http.NewParams().Set("vote_segments", segments), callback)
}

func (h *RequestHandler) SubmitVoteSegments(ctx context.Context, projectID int, created SegmentsMap, windowInfo any, callback Callback) {
	h.endpoint(ctx, "submitVoteSegments",
		_http.NewParams().Set("project_id", projectID),
		_http.NewParams().
			Set("vote_segments", created).
			Set("window_info", windowInfo), callback)
}

func (h *RequestHandler) GetVotes(ctx context.Context, projectID int, files []int, windowInfo any, recalculate bool, callback Callback) {
	h.endpoint(ctx, "getVotes",
		_http.NewParams().
			Set("project_id", projectID).
			Set("file_ids", files).
			Set("recalculate", recalculate),
		_http.NewParams().Set("window_info", windowInfo), callback)
}

func (h *RequestHandler) GetSegments(ctx context.Context, projectID int, segmentType string, callback Callback) {
	h.endpoint(ctx, "getSegments", _http.NewParams().
		Set("project_id", projectID).
		Set("segment_type", segmentType), nil, callback)
}

func (h *RequestHandler) RequestSupervisorSeriesByQuery(ctx context.Context, projectID int, query *SupervisorQuery, callback Callback) {
	h.endpoint(ctx, "requestSupervisorSeriesByQuery",
		_http.NewParams().Set("project_id", projectID),
		_http.NewParams().Set("query_payload", query), callback)
}

func (h *RequestHandler) RequestProjectAnnotations(ctx context.Context, projectID int, callback Callback) {
	h.endpoint(ctx, "requestProjectAnnotations", _http.NewParams().
		Set("project_id", projectID), nil, callback)
}

func (h *RequestHandler) RequestSeriesRangedData(ctx context.Context, projectID, fileID int, series string, start, stop float64, callback Callback) {
	h.endpoint(ctx, "requestSeriesRangedData", _http.NewParams().
		Set("project_id", projectID).
		Set("file_id", fileID).
		Set("s", series).
		Set("start", start).
		Set("stop", stop), nil, callback)
}
