package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/chemspider/chemspider-sdk-go/pkg/catalog"
	"github.com/chemspider/chemspider-sdk-go/pkg/config"
	"github.com/chemspider/chemspider-sdk-go/pkg/sdk"
	"github.com/spf13/cobra"
)

// Options contains the options you can set from the CLI.
type Options struct {
	ConfigFile string
	EnvFiles   []string
	Debug      bool
	Scheme     string
	Host       string
	Port       int
	PathFormat string
	Token      string
	Catalogs   []string
}

// sdkOptions is extended by tests to inject a fake HTTP client.
var sdkOptions []sdk.Option

func newRootCmd(out io.Writer) *cobra.Command {
	var globalOptions Options
	rootCmd := &cobra.Command{
		Use:           "chemspider",
		Short:         "chemspider calls ChemSpider web service operations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(
		&globalOptions.ConfigFile,
		"config",
		"c",
		"",
		"YAML configuration file",
	)

	flags.StringSliceVar(
		&globalOptions.EnvFiles,
		"env-file",
		[]string{},
		"dotenv file with CHEMSPIDER_* variables (may be specified multiple times)",
	)

	flags.BoolVarP(
		&globalOptions.Debug,
		"debug",
		"v",
		false,
		"log requests at debug level",
	)

	flags.StringVar(&globalOptions.Scheme, "scheme", "", "override the request scheme (http or https)")
	flags.StringVar(&globalOptions.Host, "host", "", "override the request host")
	flags.IntVar(&globalOptions.Port, "port", 0, "override the request port")
	flags.StringVar(&globalOptions.PathFormat, "path-format", "", "override the path format, e.g. /%s.asmx/%s")
	flags.StringVar(&globalOptions.Token, "token", "", "ChemSpider security token")

	flags.StringSliceVar(
		&globalOptions.Catalogs,
		"catalog",
		[]string{},
		"extra YAML operation catalog (may be specified multiple times)",
	)

	rootCmd.AddCommand(newListCmd(&globalOptions), newCallCmd(&globalOptions))
	return rootCmd
}

func newListCmd(globalOptions *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [SERVICE]",
		Short: "List the available operations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := newCore(globalOptions)
			if err != nil {
				return err
			}
			defer core.Close()

			for _, d := range core.Operations() {
				if len(args) == 1 && !strings.EqualFold(args[0], d.ServiceName) {
					continue
				}
				shape := d.Shape.Selector + " -> " + catalog.Describe(d.Shape.Target)
				if !d.Shape.FirstChild {
					shape += "[]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s(%s)\t%s\n", d.Key(), strings.Join(d.ParamNames, ", "), shape)
			}
			return nil
		},
	}
}

func newCallCmd(globalOptions *Options) *cobra.Command {
	var (
		rawArgs []string
		post    bool
	)
	cmd := &cobra.Command{
		Use:   "call SERVICE OPERATION",
		Short: "Call an operation and print the result as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseArgs(rawArgs)
			if err != nil {
				return err
			}
			core, err := newCore(globalOptions)
			if err != nil {
				return err
			}
			defer core.Close()

			method := "GET"
			if post {
				method = "POST"
			}
			res, err := core.CallWithMap(cmd.Context(), method, args[0], args[1], params)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res["result"])
		},
	}
	cmd.Flags().StringArrayVarP(&rawArgs, "arg", "a", []string{}, "KEY=VALUE parameter (repeat KEY for list values)")
	cmd.Flags().BoolVar(&post, "post", false, "send parameters as a form-encoded POST body")
	return cmd
}

// parseArgs turns KEY=VALUE pairs into named parameters. A repeated key
// becomes a list in the order given.
func parseArgs(raw []string) (map[string]any, error) {
	params := make(map[string]any, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, want KEY=VALUE", kv)
		}
		switch prev := params[key].(type) {
		case nil:
			params[key] = value
		case string:
			params[key] = []string{prev, value}
		case []string:
			params[key] = append(prev, value)
		}
	}
	return params, nil
}

func loadConfig(o *Options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigFile != "" {
		cfg, err = config.Load(o.ConfigFile)
	} else {
		cfg, err = config.LoadEnv(o.EnvFiles...)
	}
	if err != nil {
		return nil, err
	}

	if o.Scheme != "" {
		cfg.Addressing.Scheme = o.Scheme
	}
	if o.Host != "" {
		cfg.Addressing.Host = o.Host
	}
	if o.Port != 0 {
		cfg.Addressing.Port = o.Port
	}
	if o.PathFormat != "" {
		cfg.Addressing.PathFormat = o.PathFormat
		cfg.Addressing.Path = ""
	}
	if o.Token != "" {
		cfg.Token = o.Token
	}
	cfg.Catalogs = append(cfg.Catalogs, o.Catalogs...)
	cfg.Debug = cfg.Debug || o.Debug
	return cfg, nil
}

func newCore(o *Options) (*sdk.Core, error) {
	cfg, err := loadConfig(o)
	if err != nil {
		return nil, err
	}
	return sdk.NewSDK(cfg, sdkOptions...)
}
