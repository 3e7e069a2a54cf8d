package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpncalc"
)

func newRPNCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rpn [expression...]",
		Short: "Print expressions in postfix form",
		Long: `rpn converts each expression to reverse Polish notation and prints it
without evaluating it. Input is taken the same way as the root command.`,
		Example: `  rpncalc rpn '2+3*4'   # 2 3 4 * +`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := a.exprs(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, src := range srcs {
				r, err := rpncalc.Compile(src, a.options()...)
				if err != nil {
					failed++
					a.logFailure(src, err)
					fmt.Fprintln(out, err)
					continue
				}
				fmt.Fprintln(out, r)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
			}
			return nil
		},
	}
}
