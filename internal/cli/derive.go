package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbforge/internal/services"
)

// DeriveCmd returns the derive command
func DeriveCmd(rt *Runtime) *cobra.Command {
	var goInitialisms bool

	cmd := &cobra.Command{
		Use:   "derive <tables>",
		Short: "Print the domain names derived from table names",
		Example: `  dbforge derive "t_order;user_id"
  TOrder;UserId
  dbforge derive --go-initialisms "t_order;user_id"
  TOrder;UserID`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if goInitialisms {
				fmt.Fprintln(rt.Out, services.DeriveGoDomains(args[0]))
				return nil
			}
			fmt.Fprintln(rt.Out, services.DeriveDomains(args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&goInitialisms, "go-initialisms", false, "Spell common initialisms in upper case (UserID instead of UserId)")

	return cmd
}
