package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akashgh003/gen-ai-asgn/internal/view"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the backend's technical details and model status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newBackendClient(cfg)
		ctx := context.Background()

		fmt.Fprintf(os.Stdout, "Backend: %s\n\n", client.BaseURL())

		// Each section is reported on its own so one failure does not hide
		// the other.
		fmt.Fprintln(os.Stdout, "Technical Details")
		if info, err := client.TechnicalInfo(ctx); err != nil {
			fmt.Fprintf(os.Stdout, "  Error loading technical information: %v\n", err)
		} else {
			for _, item := range info.Items() {
				fmt.Fprintf(os.Stdout, "  %-18s %s\n", item.Label+":", item.Value)
			}
		}

		fmt.Fprintln(os.Stdout, "\nModel Information")
		if info, err := client.ModelInfo(ctx); err != nil {
			fmt.Fprintf(os.Stdout, "  Error loading model information: %v\n", err)
		} else {
			fmt.Fprintf(os.Stdout, "  %-18s %s\n", "Model:", info.Model)
			fmt.Fprintf(os.Stdout, "  %-18s %s\n", "Status:", info.Status.Health)
			fmt.Fprintf(os.Stdout, "  %-18s %s%%\n", "Health:", view.HealthWidth(info.Status.Percentage))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
