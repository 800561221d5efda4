package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kbridge/internal/config"
)

func newConfigsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configs",
		Short: "List the stored run configurations",
		Long: `Lists the run configurations kbridge knows about, including the ones
the connect wizard offers to launch alongside a connection.
Configurations generated by the connect flow itself are marked; the
wizard never offers those.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewStore("")
			if err != nil {
				return err
			}
			configs, err := store.List()
			if err != nil {
				return err
			}
			if len(configs) == 0 {
				fmt.Printf("No run configurations stored in %s\n", store.Path())
				return nil
			}
			for _, cfg := range configs {
				marker := ""
				if cfg.GeneratedByConnect() {
					marker = " (generated)"
				}
				if cfg.Target != "" {
					fmt.Printf("%s%s -> %s/%s\n", cfg.Name, marker, cfg.Namespace, cfg.Target)
				} else {
					fmt.Printf("%s%s\n", cfg.Name, marker)
				}
			}
			return nil
		},
	}
}
