package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rvcat/report"
)

func newRunCmd(cfg *config, v *viper.Viper) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate the program through the reorder window and print the dynamic analysis report",
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
				logger.Printf("running %d iterations with window size %d", iters, window)
			}

			result, err := s.Run(iters, window)
			if err != nil {
				return err
			}

			if jsonOut {
				data, err := report.DynamicJSON(s.Program, result)
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Print(report.DynamicText(s.Program, result))
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Iterations, "iters", 10, "number of loop iterations to simulate")
	cmd.Flags().IntVar(&cfg.WindowSize, "window", 16, "reorder window capacity")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text")
	_ = v.BindPFlag("iterations", cmd.Flags().Lookup("iters"))
	_ = v.BindPFlag("window", cmd.Flags().Lookup("window"))
	return cmd
}
