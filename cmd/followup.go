package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var followupOriginal string

var followupCmd = &cobra.Command{
	Use:   "followup [question]",
	Short: "Ask a follow-up question about an earlier query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.TrimSpace(args[0])
		if question == "" {
			return fmt.Errorf("please enter a follow-up question")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		res, err := newBackendClient(cfg).Followup(context.Background(), strings.TrimSpace(followupOriginal), question)
		if err != nil {
			return fmt.Errorf("follow-up failed: %w", err)
		}
		fmt.Fprintf(os.Stdout, "%q\n\n%s\n", question, res.Response)
		return nil
	},
}

func init() {
	followupCmd.Flags().StringVar(&followupOriginal, "original", "", "the original query this question follows")
	rootCmd.AddCommand(followupCmd)
}
