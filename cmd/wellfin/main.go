package main

import (
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	httpfrontend "github.com/wellfin/wellfin/frontend/http"
	"github.com/wellfin/wellfin/pkg/log"
	"github.com/wellfin/wellfin/pkg/metrics"
	"github.com/wellfin/wellfin/pkg/stop"
	"github.com/wellfin/wellfin/preferences"
)

// Run represents the state of a running instance of wellfin.
type Run struct {
	configFilePath string
	store          preferences.Store
	sg             *stop.Group
}

// NewRun runs an instance of wellfin.
func NewRun(configFilePath string) (*Run, error) {
	r := &Run{configFilePath: configFilePath}
	return r, r.Start()
}

// Start begins an instance of wellfin.
func (r *Run) Start() error {
	configFile, err := ParseConfigFile(r.configFilePath)
	if err != nil {
		return errors.New("failed to read config: " + err.Error())
	}
	cfg := configFile.Wellfin

	debug, err := cfg.ApplyEnv()
	if err != nil {
		return err
	}
	if debug {
		log.SetDebug(true)
	}
	log.Debug("loaded configuration", cfg)

	r.sg = stop.NewGroup()

	if cfg.MetricsAddr != "" {
		log.Info("starting metrics server", log.Fields{"addr": cfg.MetricsAddr})
		r.sg.Add(metrics.NewServer(cfg.MetricsAddr))
	}

	log.Info("starting preference store", log.Fields{"name": cfg.storeName()})
	r.store, err = preferences.NewStore(cfg.storeName(), cfg.Preferences.Config)
	if err != nil {
		return errors.New("failed to create preference store: " + err.Error())
	}

	if err := preferences.Migrate(r.store); err != nil {
		return errors.New("failed to migrate preferences: " + err.Error())
	}

	log.Info("starting HTTP frontend", cfg.HTTPConfig)
	fe, err := httpfrontend.NewFrontend(r.store, cfg.HTTPConfig)
	if err != nil {
		return err
	}
	r.sg.Add(fe)

	return nil
}

func combineErrors(prefix string, errs []error) error {
	errStrs := make([]string, 0, len(errs))
	for _, err := range errs {
		errStrs = append(errStrs, err.Error())
	}

	return errors.New(prefix + ": " + strings.Join(errStrs, "; "))
}

// Stop shuts down an instance of wellfin. The frontend and metrics server
// drain before the preference store closes.
func (r *Run) Stop() error {
	log.Debug("stopping frontends and metrics server")
	if errs := r.sg.Stop().Wait(); len(errs) != 0 {
		return combineErrors("failed while shutting down frontends", errs)
	}

	log.Debug("stopping preference store")
	if errs := r.store.Stop().Wait(); len(errs) != 0 {
		return combineErrors("failed while shutting down preference store", errs)
	}

	return nil
}

// RootRunCmdFunc implements a Cobra command that runs an instance of wellfin
// and handles signals.
func RootRunCmdFunc(cmd *cobra.Command, args []string) error {
	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	r, err := NewRun(configFilePath)
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	return r.Stop()
}

// RootPreRunCmdFunc handles the log flags of every command.
func RootPreRunCmdFunc(cmd *cobra.Command, args []string) error {
	debugLog, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}
	if debugLog {
		log.SetDebug(true)
		log.Info("enabled debug logging")
	}

	jsonLog, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if jsonLog {
		log.SetJSON(true)
		log.Info("enabled JSON logging")
	}

	return nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "wellfin",
		Short:             "Finance Mock Backend",
		Long:              "A finance API backend serving deterministic mock data",
		PersistentPreRunE: RootPreRunCmdFunc,
		RunE:              RootRunCmdFunc,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "enable json logging")

	rootCmd.Flags().String("config", "/etc/wellfin.yaml", "location of configuration file")

	generateCmd := &cobra.Command{
		Use:       "generate <kind>",
		Short:     "Print generated records",
		Long:      "Print deterministic mock records of one kind: transactions, accounts, classifications or suggestions",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE:      GenerateCmdFunc,
	}

	generateCmd.Flags().String("seed", "", "numeric or text seed; the dataset's canonical seed when empty")
	generateCmd.Flags().String("dataset", "A", "dataset variant: A or B")
	generateCmd.Flags().Int("count", 10, "number of records")
	generateCmd.Flags().String("format", "json", "output format: json, yaml or text")

	rootCmd.AddCommand(generateCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("failed when executing root cobra command: " + err.Error())
	}
}
