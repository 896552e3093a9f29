package cli

import (
	"fmt"
	"strconv"

	"github.com/ib-77/composable/internal/arith"
	"github.com/ib-77/composable/internal/log"
	"github.com/ib-77/composable/pkg/rop/observe"
	"github.com/ib-77/composable/pkg/rop/registry"
	"github.com/ib-77/composable/pkg/rop/solo"
	"github.com/ib-77/composable/pkg/rop/step"
	"github.com/spf13/cobra"
)

func newRegistry() (*registry.Registry[float64], error) {
	r := registry.New[float64]()
	if err := arith.Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the step kinds a pipeline can use",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRegistry()
			if err != nil {
				return err
			}
			for _, k := range r.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var file string
	var trace bool

	cmd := &cobra.Command{
		Use:          "run <number>",
		Short:        "Apply a pipeline definition to a number",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing input %q: %w", args[0], err)
			}

			def, err := registry.ParseFile(file)
			if err != nil {
				return err
			}
			r, err := newRegistry()
			if err != nil {
				return err
			}

			var decorators []registry.Decorator[float64]
			if trace {
				decorators = append(decorators, func(label string, s step.Step[float64, float64]) step.Step[float64, float64] {
					return observe.Logged(log.Logger(), label, s, observe.WithValues())
				})
			}

			pipeline, err := r.Build(def, decorators...)
			if err != nil {
				return err
			}
			log.Debug("pipeline built", "name", def.Name, "steps", len(def.Steps))

			return solo.Finally(pipeline.Apply(input),
				func(v float64) error {
					fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
					return nil
				},
				func(err error) error {
					log.Warn("pipeline failed", "name", def.Name, "error", err)
					return fmt.Errorf("%s: %w", def.Name, err)
				})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "pipeline.yaml", "Pipeline definition file")
	cmd.Flags().BoolVar(&trace, "trace", false, "Log every step application")
	return cmd
}
