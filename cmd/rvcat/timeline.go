package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rvcat/report"
)

func newTimelineCmd(cfg *config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the cycle-by-cycle timeline matrix with the critical path overlay",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cfg)
			if err != nil {
				return err
			}

			iters := cfg.Iterations
			if !cmd.Flags().Changed("iters") {
				iters = v.GetInt("iterations")
			}
			window := cfg.WindowSize
			if !cmd.Flags().Changed("window") {
				window = v.GetInt("window")
			}

			if cfg.Verbose {
				logger.Printf("recording timeline for %d iterations, window size %d", iters, window)
			}

			tl, err := s.Timeline(iters, window)
			if err != nil {
				return err
			}
			fmt.Print(report.TimelineText(s.Program, tl))
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Iterations, "iters", 10, "number of loop iterations to simulate")
	cmd.Flags().IntVar(&cfg.WindowSize, "window", 16, "reorder window capacity")
	_ = v.BindPFlag("iterations", cmd.Flags().Lookup("iters"))
	_ = v.BindPFlag("window", cmd.Flags().Lookup("window"))
	return cmd
}
