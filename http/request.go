package http

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
)

var http_log = log.NewLog("auviewer-client:http")

type Response struct {
	*http.Response

	BodyBuffer types.BufferInterface
}

type Options struct {
	Method          string
	Headers         map[string]string
	Compress        bool
	Timeout         time.Duration
	Body            io.Reader
	Jar             http.CookieJar
	TLSClientConfig *tls.Config

	// Reused when set; Jar, TLSClientConfig and Timeout are then ignored.
	Client *http.Client
}

type Request struct {
	uri     string
	options *Options
}

// Request constructor
func NewRequest(ctx context.Context, uri string, opts *Options) (*Response, error) {
	r := &Request{}

	r.uri = uri
	r.options = opts
	if r.options == nil {
		r.options = &Options{}
	}

	return r.create(ctx)
}

// A client built the same way a one-shot request builds its own.
func NewClient(opts *Options) *http.Client {
	client := &http.Client{}
	if opts == nil {
		return client
	}
	if opts.Jar != nil {
		client.Jar = opts.Jar
	}
	if opts.TLSClientConfig != nil {
		client.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: opts.TLSClientConfig,
		}
	}
	if opts.Timeout > 0 {
		client.Timeout = opts.Timeout
	}
	return client
}

func (r *Request) create(ctx context.Context) (*Response, error) {
	client := r.options.Client
	if client == nil {
		client = NewClient(r.options)
	}
	method := strings.ToUpper(r.options.Method)
	if method == "" {
		method = http.MethodGet
	}
	request, err := http.NewRequestWithContext(ctx, method, r.uri, r.options.Body)
	if err != nil {
		return nil, err
	}
	for key, value := range r.options.Headers {
		request.Header.Set(key, value)
	}
	if _, HasContentType := request.Header["Content-Type"]; r.options.Body != nil && !HasContentType {
		request.Header.Set("Content-Type", "text/plain;charset=UTF-8")
	}
	request.Header.Set("Accept", "*/*")
	if r.options.Compress {
		request.Header.Set("Accept-Encoding", "gzip, deflate, br")
	}

	http_log.Debug("%s %s", method, r.uri)

	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}

	res := &Response{Response: response}

	// apparently, Body can be nil in some cases
	if response.Body == nil {
		res.BodyBuffer = types.NewBytesBuffer(nil)
		return res, nil
	}
	defer response.Body.Close()

	var body io.Reader = response.Body
	decoded := true
	switch strings.ToLower(response.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		body = gz
	case "deflate":
		fl := flate.NewReader(response.Body)
		defer fl.Close()
		body = fl
	case "br":
		body = brotli.NewReader(response.Body)
	default:
		decoded = false
	}
	if decoded {
		response.Header.Del("Content-Encoding")
		response.Header.Del("Content-Length")
		response.ContentLength = -1
		response.Uncompressed = true
	}

	buffer, err := types.NewBytesBufferReader(body)
	if err != nil {
		return nil, err
	}
	res.BodyBuffer = buffer

	return res, nil
}
