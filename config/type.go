package config

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/zishang520/engine.io/v2/utils"
)

type RequestOptionsInterface interface {
	Timeout() time.Duration
	GetRawTimeout() *time.Duration
	SetTimeout(time.Duration)

	TLSClientConfig() *tls.Config
	GetRawTLSClientConfig() *tls.Config
	SetTLSClientConfig(*tls.Config)

	ExtraHeaders() map[string]string
	GetRawExtraHeaders() map[string]string
	SetExtraHeaders(map[string]string)

	Query() *utils.ParameterBag
	GetRawQuery() *utils.ParameterBag
	SetQuery(*utils.ParameterBag)

	Compress() bool
	GetRawCompress() *bool
	SetCompress(bool)

	Jar() http.CookieJar
	GetRawJar() http.CookieJar
	SetJar(http.CookieJar)

	Assign(RequestOptionsInterface) RequestOptionsInterface
}
