package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/zishang520/auviewer-client/errors"
	_http "github.com/zishang520/auviewer-client/http"
)

// Do sends req and returns the decoded reply. Any status but 200 is an error.
func (h *RequestHandler) Do(ctx context.Context, req *Request) (Payload, error) {
	_, data, err := h.do(ctx, req)
	return data, err
}

func (h *RequestHandler) do(ctx context.Context, req *Request) (string, Payload, error) {
	path, err := h.path(req)
	if err != nil {
		return path, nil, err
	}

	query := h.query(req.Query)

	if h.config.Verbose {
		handler_log.Info("Sending request to %s %s", path, h.describe(query))
	}
	h.Emit(EventRequest, path, query)

	options := &_http.Options{
		Method:   req.Method,
		Headers:  map[string]string{},
		Compress: h.opts.Compress(),
		Client:   h.client,
	}
	for key, value := range h.opts.ExtraHeaders() {
		options.Headers[key] = value
	}
	if options.Method == "" {
		options.Method = http.MethodGet
	}

	if options.Method != http.MethodGet && options.Method != http.MethodHead {
		var (
			body        io.Reader
			contentType string
		)
		switch req.Encoding {
		case BodyJSON:
			body, contentType, err = _http.JSONBody(bodyParams(req.Body))
		case BodyForm:
			body, contentType, err = _http.FormBody(bodyParams(req.Body))
		}
		if err != nil {
			return path, nil, errors.NewRequestError("failed to encode request body", path, err)
		}
		if body != nil {
			options.Body = body
			options.Headers["Content-Type"] = contentType
		}
	}

	res, err := _http.NewRequest(ctx, _http.BuildPathWithParams(path, query), options)
	if err != nil {
		return path, nil, errors.NewRequestError("request failed", path, err)
	}
	if res.StatusCode != http.StatusOK {
		return path, nil, errors.NewStatusError(path, res.StatusCode)
	}

	// JSON-decode the response
	data := Payload{}
	if res.BodyBuffer != nil && res.BodyBuffer.Len() > 0 {
		body := bytes.TrimSpace(res.BodyBuffer.Bytes())
		if len(body) > 0 && body[0] != '{' && !bytes.Equal(body, []byte("null")) && json.Valid(body) {
			return path, nil, errors.NewRequestError("response is not a JSON object", path, nil)
		}
		if err := json.Unmarshal(body, &data); err != nil {
			return path, nil, errors.NewRequestError("failed to decode response", path, err)
		}
	}

	if h.config.Verbose {
		handler_log.Info("Response received to %s %s", path, h.describe(data))
	}
	h.Emit(EventResponse, path, data)

	return path, data, nil
}

func (h *RequestHandler) path(req *Request) (string, error) {
	if req.URL != "" {
		return req.URL, nil
	}
	path, ok := h.config.URL(req.Endpoint)
	if !ok {
		return req.Endpoint, errors.NewRequestError("endpoint URL not configured", req.Endpoint, nil)
	}
	return path, nil
}

// Endpoint params first, then the default query in sorted key order.
func (h *RequestHandler) query(params *_http.Params) *_http.Params {
	query := _http.NewParams()
	for _, key := range params.Keys() {
		value, _ := params.Get(key)
		query.Set(key, value)
	}

	defaults := h.opts.Query().All()
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, ok := query.Get(key); ok {
			continue
		}
		switch values := defaults[key]; len(values) {
		case 0:
			query.Set(key, "")
		case 1:
			query.Set(key, values[0])
		default:
			query.Set(key, values)
		}
	}

	return query
}

func bodyParams(params *_http.Params) *_http.Params {
	if params == nil {
		return _http.NewParams()
	}
	return params
}

func (h *RequestHandler) describe(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// send issues req in the background and hands the reply to callback.
// Failures never reach the callback; they are emitted as EventError.
func (h *RequestHandler) send(ctx context.Context, req *Request, callback Callback) {
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()

		path, data, err := h.do(ctx, req)
		if err != nil {
			h.fail(err)
			return
		}
		h.dispatch(path, callback, data)
	}()
}

func (h *RequestHandler) fail(err error) {
	handler_log.Debug("request error: %v", err)
	h.Emit(EventError, err)
}

// Calls the callback with data, timing it.
func (h *RequestHandler) dispatch(path string, callback Callback, data Payload) {
	if callback == nil {
		handler_log.Warning("Important: Callback not provided to request handler.")
		return
	}

	t0 := time.Now()
	callback(data)
	tt := time.Since(t0)

	if h.config.Performance && tt > h.config.PerformanceReportingThresholdGeneral {
		handler_log.Warning("Request callback took %dms: %s", tt.Round(time.Millisecond).Milliseconds(), path)
		h.Emit(EventSlowCallback, path, tt)
	}
}

// Call invokes a registered endpoint by name. It returns an error only when
// the name is unknown; the request itself runs in the background.
func (h *RequestHandler) Call(ctx context.Context, name string, query *_http.Params, body *_http.Params, callback Callback) error {
	endpoint, ok := _endpoints[name]
	if !ok {
		return errors.NewRequestError("unknown endpoint "+name, "", nil)
	}
	h.send(ctx, endpoint.request(query, body), callback)
	return nil
}

func (e *Endpoint) request(query *_http.Params, body *_http.Params) *Request {
	return &Request{
		Endpoint: e.URLKey,
		Method:   e.Method,
		Query:    query,
		Body:     body,
		Encoding: e.Encoding,
	}
}
