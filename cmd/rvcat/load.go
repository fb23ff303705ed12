package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLoadCmd(cfg *config, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Validate a program/processor pair and print a round-trip summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("program:   %s (%d static instructions, %d cyclic paths)\n",
				s.Program.Name, s.Program.N, len(s.Program.CyclicPaths))
			fmt.Printf("processor: %s (dispatch=%d execute=%d retire=%d, %d ports, cache=%v)\n",
				s.Processor.Name, s.Processor.DispatchWidth, s.Processor.ExecuteWidth,
				s.Processor.RetireWidth, len(s.Processor.PortOrder), s.Processor.Cache.Enabled())
			return nil
		},
	}
}
