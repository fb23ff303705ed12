package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rvcat/report"
)

func newStaticCmd(cfg *config, v *viper.Viper) *cobra.Command {
	var jsonOut, graphviz, showInternal, showLatency bool

	cmd := &cobra.Command{
		Use:   "static",
		Short: "Run the static performance analyzer (latency/throughput bound, bottlenecks)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cfg)
			if err != nil {
				return err
			}

			if graphviz {
				latencies := make([]int64, s.Program.N)
				for i, in := range s.Program.Instructions {
					lat, _ := s.Processor.GetResource(in.Type)
					latencies[i] = lat
				}
				fmt.Print(report.Graphviz(s.Program, latencies, report.GraphvizOptions{
					ShowInternal: showInternal,
					ShowLatency:  showLatency,
				}))
				return nil
			}

			rep, err := s.Static()
			if err != nil {
				return err
			}

			if jsonOut {
				data, err := report.StaticJSON(rep)
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Print(report.StaticText(rep))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text")
	cmd.Flags().BoolVar(&graphviz, "graphviz", false, "emit the dependence graph as a Graphviz digraph instead of the static report")
	cmd.Flags().BoolVar(&showInternal, "show-internal", false, "with --graphviz, draw every instruction, not only cyclic-path ones")
	cmd.Flags().BoolVar(&showLatency, "show-latency", false, "with --graphviz, annotate each node with its latency")
	return cmd
}
