package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zishang520/engine.io/v2/log"

	"github.com/zishang520/auviewer-client/config"
	"github.com/zishang520/auviewer-client/handler"
	_http "github.com/zishang520/auviewer-client/http"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootOptions struct {
	configFile string
	baseURL    string
	verbose    bool
	debug      bool
	timeout    time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "auvctl",
		Short:         "Drive the AUViewer backend API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				log.DEBUG = true
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default ./config.* or ./config/config.*)")
	flags.StringVar(&opts.baseURL, "base-url", "", "backend base URL, overrides the config")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace requests and responses")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging (see DEBUG=<namespace>)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "request timeout, overrides the config")

	cmd.AddCommand(newEndpointsCommand(opts))
	cmd.AddCommand(newCallCommand(opts))

	return cmd
}

func (o *rootOptions) handler() (*handler.RequestHandler, error) {
	appConfig, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	if o.baseURL != "" {
		appConfig.BaseURL = o.baseURL
	}
	if o.verbose {
		appConfig.Verbose = true
	}
	if o.timeout > 0 {
		appConfig.RequestTimeout = o.timeout
	}
	return handler.NewRequestHandler(appConfig, nil), nil
}

func newEndpointsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the backend endpoints and their configured URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.handler()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMETHOD\tBODY\tURL")
			for _, name := range handler.EndpointNames() {
				e := handler.Endpoints()[name]
				uri, ok := h.Config().URL(e.URLKey)
				if !ok {
					uri = "<" + e.URLKey + " not set>"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, e.Method, e.Encoding, uri)
			}
			return w.Flush()
		},
	}
}

func newCallCommand(opts *rootOptions) *cobra.Command {
	var (
		query []string
		body  []string
	)

	cmd := &cobra.Command{
		Use:   "call <endpoint>",
		Short: "Call an endpoint and print its JSON reply",
		Example: `  auvctl call requestProjectAnnotations -q project_id=1
  auvctl call getVotes -q project_id=1 -q 'file_ids=[3,4]' -b 'window_info={"window_size":30}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queryParams, err := parseParams(query)
			if err != nil {
				return err
			}
			bodyParams, err := parseParams(body)
			if err != nil {
				return err
			}

			h, err := opts.handler()
			if err != nil {
				return err
			}

			var failure error
			h.On(handler.EventError, func(args ...any) {
				if len(args) > 0 {
					failure, _ = args[0].(error)
				}
			})

			var printErr error
			err = h.Call(cmd.Context(), args[0], queryParams, bodyParams, func(data handler.Payload) {
				out, err := json.MarshalIndent(data, "", "  ")
				if err != nil {
					printErr = err
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			})
			if err != nil {
				return err
			}
			h.Wait()

			if failure != nil {
				return failure
			}
			return printErr
		},
	}

	cmd.Flags().StringArrayVarP(&query, "query", "q", nil, "query parameter as key=value; JSON values are decoded")
	cmd.Flags().StringArrayVarP(&body, "body", "b", nil, "body field as key=value; JSON values are decoded")

	return cmd
}

// parseParams turns key=value pairs into ordered params. A value that is
// valid JSON is decoded, anything else stays a string.
func parseParams(pairs []string) (*_http.Params, error) {
	params := _http.NewParams()
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("invalid parameter %q, want key=value", pair)
		}
		var value any
		if err := json.UnmarshalFromString(raw, &value); err != nil {
			value = raw
		}
		params.Set(key, value)
	}
	return params, nil
}
