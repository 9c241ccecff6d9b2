// File: cmd/dsctl/run.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/control"
)

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a randomized push/pop workload",
		Long: `The run command drives a push/pop workload against one container and
prints operation counters and allocation accounting.

Flags override values read from --config.

Example:
  dsctl run --container ringdeque --capacity 4096 --ops 1000000
  dsctl run --config workload.yaml --backend mmap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := control.DefaultConfig()
			if configPath != "" {
				loaded, err := control.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			applyFlags(cmd.Flags(), cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			mr := control.NewMetricsRegistry()
			dp := control.NewDebugProbes()
			st, err := runWorkload(cmd.Context(), cfg, mr, dp)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), cfg, mr, st)
			return nil
		},
	}
	f := cmd.Flags()
	def := control.DefaultConfig()
	f.StringVarP(&configPath, "config", "c", "", "YAML workload file")
	f.String("container", def.Container, "Container kind (seqlist, ringdeque, linkedlist, queue, stack)")
	f.Int("capacity", def.Capacity, "Capacity of bounded containers")
	f.Int("ops", def.Ops, "Number of operations")
	f.Int64("seed", def.Seed, "Operation mix seed")
	f.Float64("push-ratio", def.PushRatio, "Probability of a push")
	f.String("backend", def.Backend, "Raw buffer backend (heap, mmap)")
	f.Int("chunk-size", def.ChunkSize, "Linked list arena chunk size")
	return cmd
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(fs *pflag.FlagSet, cfg *control.Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "container":
			cfg.Container, _ = fs.GetString(f.Name)
		case "capacity":
			cfg.Capacity, _ = fs.GetInt(f.Name)
		case "ops":
			cfg.Ops, _ = fs.GetInt(f.Name)
		case "seed":
			cfg.Seed, _ = fs.GetInt64(f.Name)
		case "push-ratio":
			cfg.PushRatio, _ = fs.GetFloat64(f.Name)
		case "backend":
			cfg.Backend, _ = fs.GetString(f.Name)
		case "chunk-size":
			cfg.ChunkSize, _ = fs.GetInt(f.Name)
		}
	})
}

func printReport(w io.Writer, cfg *control.Config, mr *control.MetricsRegistry, st api.AllocStats) {
	fmt.Fprintf(w, "container: %s  backend: %s  ops: %s\n",
		cfg.Container, cfg.Backend, humanize.Comma(int64(cfg.Ops)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range mr.Keys() {
		v, _ := mr.Get(k)
		val := humanize.Comma(v)
		if strings.HasSuffix(k, "bytes_in_use") {
			val = humanize.Bytes(uint64(v))
		}
		fmt.Fprintf(tw, "  %s\t%s\n", k, val)
	}
	tw.Flush()

	status := "ok"
	if st.Leaked() {
		status = "LEAK"
	}
	fmt.Fprintf(w, "allocations: %s alloc, %s free (%s)\n",
		humanize.Comma(st.TotalAlloc), humanize.Comma(st.TotalFree), status)
}
