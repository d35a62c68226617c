package config

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/zishang520/engine.io/v2/utils"
)

type RequestOptions struct {

	// Timeout for each backend request. Zero means no timeout.
	// @default 0
	timeout *time.Duration

	// TLSClientConfig specifies the TLS configuration to use with tls.Client.
	// If nil, the default configuration is used.
	tlsClientConfig *tls.Config

	// Headers that will be passed with each request to the backend.
	extraHeaders map[string]string

	// Query parameters appended to every request after the endpoint's own
	// parameters, in sorted key order.
	query *utils.ParameterBag

	// Whether to advertise gzip, deflate and br in Accept-Encoding.
	// @default false
	compress *bool

	// Cookie jar shared by every request, so a session cookie set by the
	// backend is replayed like a browser would.
	jar http.CookieJar
}

func DefaultRequestOptions() *RequestOptions {
	return &RequestOptions{}
}

func (r *RequestOptions) Assign(data RequestOptionsInterface) RequestOptionsInterface {
	if data == nil {
		return r
	}

	if data.GetRawTimeout() != nil {
		r.SetTimeout(data.Timeout())
	}
	if data.GetRawTLSClientConfig() != nil {
		r.SetTLSClientConfig(data.TLSClientConfig())
	}
	if data.GetRawExtraHeaders() != nil {
		r.SetExtraHeaders(data.ExtraHeaders())
	}
	if data.GetRawQuery() != nil {
		r.SetQuery(data.Query())
	}
	if data.GetRawCompress() != nil {
		r.SetCompress(data.Compress())
	}
	if data.GetRawJar() != nil {
		r.SetJar(data.Jar())
	}

	return r
}

func (r *RequestOptions) SetTimeout(timeout time.Duration) {
	r.timeout = &timeout
}
func (r *RequestOptions) GetRawTimeout() *time.Duration {
	return r.timeout
}
func (r *RequestOptions) Timeout() time.Duration {
	if r.timeout == nil {
		return 0
	}
	return *r.timeout
}

func (r *RequestOptions) SetTLSClientConfig(tlsClientConfig *tls.Config) {
	r.tlsClientConfig = tlsClientConfig
}
func (r *RequestOptions) GetRawTLSClientConfig() *tls.Config {
	return r.tlsClientConfig
}
func (r *RequestOptions) TLSClientConfig() *tls.Config {
	return r.tlsClientConfig
}

func (r *RequestOptions) SetExtraHeaders(extraHeaders map[string]string) {
	r.extraHeaders = extraHeaders
}
func (r *RequestOptions) GetRawExtraHeaders() map[string]string {
	return r.extraHeaders
}
func (r *RequestOptions) ExtraHeaders() map[string]string {
	return r.extraHeaders
}

func (r *RequestOptions) SetQuery(query *utils.ParameterBag) {
	r.query = query
}
func (r *RequestOptions) GetRawQuery() *utils.ParameterBag {
	return r.query
}
func (r *RequestOptions) Query() *utils.ParameterBag {
	if r.query == nil {
		return utils.NewParameterBag(nil)
	}
	return r.query
}

func (r *RequestOptions) SetCompress(compress bool) {
	r.compress = &compress
}
func (r *RequestOptions) GetRawCompress() *bool {
	return r.compress
}
func (r *RequestOptions) Compress() bool {
	if r.compress == nil {
		return false
	}
	return *r.compress
}

func (r *RequestOptions) SetJar(jar http.CookieJar) {
	r.jar = jar
}
func (r *RequestOptions) GetRawJar() http.CookieJar {
	return r.jar
}
func (r *RequestOptions) Jar() http.CookieJar {
	return r.jar
}
