package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/overlay/internal/panel"
)

type resolveOptions struct {
	height   float64
	from     float64
	velocity float64
	min      float64
	half     float64
	max      float64
}

func newResolveCmd() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the snap state a drag released at --height would settle in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := panel.Bounds{Min: opts.min, Half: opts.half, Max: opts.max}
			if !b.Valid() {
				return fmt.Errorf("invalid bounds: min %g, max %g", b.Min, b.Max)
			}

			from := opts.height
			if cmd.Flags().Changed("from") {
				from = opts.from
			}
			state := panel.Resolve(opts.height, b)
			target := panel.Plan(state, opts.velocity, from, b)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "state: %s\n", target.State)
			fmt.Fprintf(out, "height: %g\n", target.Height)
			fmt.Fprintf(out, "spring velocity: %g\n", target.Velocity)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.height, "height", 0, "Height at release")
	cmd.Flags().Float64Var(&opts.from, "from", 0, "Height the animation starts from (defaults to --height)")
	cmd.Flags().Float64Var(&opts.velocity, "velocity", 0, "Release velocity in units per second")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "Collapsed height")
	cmd.Flags().Float64Var(&opts.half, "half", panel.DefaultHalfHeight, "Half height")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "Expanded height")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")

	return cmd
}
