package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dbforge/internal/services"
)

const passwordMask = "********"

// ShowCmd returns the show command
func ShowCmd(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved settings with the password masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := services.NewSettingsService(rt.Config.SettingsPath, rt.Credentials, rt.logger())
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			if cfg == nil {
				fmt.Fprintf(rt.Out, "No saved settings in %s\n", rt.Config.SettingsPath)
				return nil
			}

			fields := services.FieldsFromConfig(*cfg)
			if fields.Password != "" {
				fields.Password = passwordMask
			}
			data, err := json.MarshalIndent(fields, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(rt.Out, string(data))
			return nil
		},
	}
}
