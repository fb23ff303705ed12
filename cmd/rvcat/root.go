package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the resolved run parameters: flags override environment
// variables (RVCAT_*) which override an optional rvcat.yaml/rvcat.toml
// config file which override the package defaults below.
type config struct {
	ProgramPath   string
	ProcessorPath string
	Iterations    int
	WindowSize    int
	Scheduler     string
	JSON          bool
	Graphviz      bool
	Verbose       bool
}

var logger = log.New(os.Stderr, "rvcat: ", 0)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("RVCAT")
	v.AutomaticEnv()
	v.SetConfigName("rvcat")
	v.AddConfigPath(".")
	v.SetDefault("iterations", 10)
	v.SetDefault("window", 16)
	v.SetDefault("scheduler", "greedy")
	_ = v.ReadInConfig() // absent config file is not an error

	root := &cobra.Command{
		Use:           "rvcat",
		Short:         "Static and dynamic performance analysis for out-of-order pipelines",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cfg := &config{}
	root.PersistentFlags().StringVar(&cfg.ProgramPath, "program", "", "path to the program JSON description")
	root.PersistentFlags().StringVar(&cfg.ProcessorPath, "processor", "", "path to the processor JSON description")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "print progress diagnostics to stderr")
	_ = v.BindPFlag("program", root.PersistentFlags().Lookup("program"))
	_ = v.BindPFlag("processor", root.PersistentFlags().Lookup("processor"))

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if cfg.ProgramPath == "" {
			cfg.ProgramPath = v.GetString("program")
		}
		if cfg.ProcessorPath == "" {
			cfg.ProcessorPath = v.GetString("processor")
		}
		if !cfg.Verbose {
			logger.SetOutput(os.Stderr)
		}
	}

	root.AddCommand(newLoadCmd(cfg, v))
	root.AddCommand(newStaticCmd(cfg, v))
	root.AddCommand(newRunCmd(cfg, v))
	root.AddCommand(newTimelineCmd(cfg, v))

	return root
}
