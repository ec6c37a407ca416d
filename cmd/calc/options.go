package main

import (
	"github.com/dhamidi/calc/calc"
	"github.com/dhamidi/calc/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// debugVerbosity is the commonlog verbosity at which debug messages show.
const debugVerbosity = 2

type globalOptions struct {
	configPath string
	verbose    int
	logFile    string
	trace      bool

	cfg *config.Config
}

func (o *globalOptions) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", config.DefaultPath(), "configuration file")
	flags.CountVarP(&o.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVar(&o.trace, "trace", false, "log every grammar production attempt")
}

// setup loads the configuration, applies flag overrides and configures logging.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Log.Verbosity = o.verbose
	}
	if flags.Changed("log-file") {
		cfg.Log.File = config.ExpandHome(o.logFile)
	}
	if flags.Changed("trace") {
		cfg.Log.Trace = o.trace
	}
	if cfg.Log.Trace && cfg.Log.Verbosity < debugVerbosity {
		cfg.Log.Verbosity = debugVerbosity
	}

	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)

	o.cfg = cfg
	commonlog.GetLogger("calc").Debugf("config %s: %+v", o.configPath, *cfg)
	return nil
}

func (o *globalOptions) grammar() *calc.Grammar {
	if o.cfg != nil && o.cfg.Log.Trace {
		return calc.New(calc.WithTrace(commonlog.GetLogger("calc.grammar")))
	}
	return calc.New()
}
