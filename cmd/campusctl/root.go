package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/djangocampus/campus/config"
	"github.com/djangocampus/campus/pkg/apiclient"
	"github.com/djangocampus/campus/pkg/logger"
	"github.com/djangocampus/campus/services"
)

// app, komutların paylaştığı state. PersistentPreRunE içinde doldurulur.
type app struct {
	out     io.Writer
	apiURL  string
	verbose bool

	lggr logger.Logger
	api  *apiclient.Client
}

// newRootCmd, tüm alt komutlarıyla birlikte root komutu kurar.
// out, JSON çıktısının yazılacağı yer (testlerde buffer).
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "campusctl",
		Short:         "Query the Django Campus backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Backend base URL (overrides API_URL)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log upstream failures to stderr")

	root.AddCommand(
		a.newWorkshopsCmd(),
		a.newTeamCmd(),
		newCollectionCmd(a, "partners", "Partner organizations", services.NewPartnerService),
		newCollectionCmd(a, "contributors", "Community contributors", services.NewContributorService),
		newCollectionCmd(a, "supporters", "Supporting organizations", services.NewSupporterService),
		a.newNewsletterCmd(),
	)

	return root
}

// init, config'i yükler ve API client'ını kurar.
func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a.lggr = logger.Nop()
	if a.verbose {
		if a.lggr, err = logger.New("debug"); err != nil {
			return err
		}
	}

	baseURL := cfg.API.BaseURL
	if a.apiURL != "" {
		baseURL = a.apiURL
	}

	opts := []apiclient.Option{
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithLogger(a.lggr),
	}
	if cfg.API.RetryAttempts > 1 {
		opts = append(opts, apiclient.WithRetry(cfg.API.RetryAttempts, 300*time.Millisecond))
	}

	if a.api, err = apiclient.New(baseURL, opts...); err != nil {
		return fmt.Errorf("invalid api url: %w", err)
	}
	return nil
}

// print, v'yi girintili JSON olarak yazar.
func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
