package main

import (
	"github.com/katalvlaran/leafperf/internal/config"
	"github.com/katalvlaran/leafperf/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state resolved once in PersistentPreRunE.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger
}

const longDescription = `perftable reads performance records (Valid/Estime sequences for LAI,
FAPAR, FCOVER, Albedo, LAI_Cab, LAI_Cw and D) and writes them as
fixed 14-column tables.`

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "perftable",
		Short:         "Flatten performance records into tables",
		Long:          longDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./perftable.yaml, ./config/perftable.yaml or $HOME/perftable.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("env", "", "environment; production selects JSON logs")

	root.AddCommand(newBuildCmd(a), newColumnsCmd())

	return root
}

// init loads configuration, binds flags over it and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}

	bindings := map[string]string{
		config.KeyLogLevel:     "log-level",
		config.KeyEnv:          "env",
		config.KeyInputFormat:  "input-format",
		config.KeyOutputFormat: "output-format",
		config.KeyWorkers:      "workers",
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}

	a.v, a.cfg, a.log = v, cfg, log
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug("using config file", zap.String("path", used))
	}

	return nil
}
