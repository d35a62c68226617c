package handler

import (
	"net/http"
	"sync"

	"github.com/zishang520/engine.io/v2/events"
	"github.com/zishang520/engine.io/v2/log"

	"github.com/zishang520/auviewer-client/config"
	_http "github.com/zishang520/auviewer-client/http"
)

var handler_log = log.NewLog("auviewer-client:handler")

// RequestHandler issues asynchronous requests to the AUViewer backend and
// hands decoded replies to callbacks.
type RequestHandler struct {
	events.EventEmitter

	config *config.AppConfig
	opts   config.RequestOptionsInterface
	client *http.Client

	inflight sync.WaitGroup
}

// RequestHandler constructor. opts overrides what the app config implies.
func NewRequestHandler(appConfig *config.AppConfig, opts config.RequestOptionsInterface) *RequestHandler {
	h := &RequestHandler{}

	h.EventEmitter = events.New()

	if appConfig == nil {
		appConfig = config.DefaultAppConfig()
	}
	h.config = appConfig
	h.opts = appConfig.RequestOptions().Assign(opts)
	h.client = _http.NewClient(&_http.Options{
		Timeout:         h.opts.Timeout(),
		Jar:             h.opts.Jar(),
		TLSClientConfig: h.opts.TLSClientConfig(),
	})

	return h
}

func (h *RequestHandler) Config() *config.AppConfig {
	return h.config
}

func (h *RequestHandler) Options() config.RequestOptionsInterface {
	return h.opts
}

// Wait blocks until every asynchronous request issued so far has finished,
// callbacks included.
func (h *RequestHandler) Wait() {
	h.inflight.Wait()
}

var (
	_default      *RequestHandler
	_default_once sync.Once
	_default_mu   sync.RWMutex
)

// Default returns the process-wide handler, built on first use from the
// config found by config.Load.
func Default() *RequestHandler {
	_default_once.Do(func() {
		appConfig, err := config.Load("")
		if err != nil {
			handler_log.Warning("Failed to load configuration: %v", err)
			appConfig = config.DefaultAppConfig()
		}
		_default_mu.Lock()
		if _default == nil {
			_default = NewRequestHandler(appConfig, nil)
		}
		_default_mu.Unlock()
	})

	_default_mu.RLock()
	defer _default_mu.RUnlock()

	return _default
}

// SetDefault replaces the process-wide handler.
func SetDefault(h *RequestHandler) {
	_default_once.Do(func() {})

	_default_mu.Lock()
	defer _default_mu.Unlock()

	_default = h
}
