package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [id]",
	Short: "List the product catalog or show one product",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newBackendClient(cfg)
		ctx := context.Background()

		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			p, err := client.Product(ctx, id)
			if err != nil {
				return fmt.Errorf("loading product %d: %w", id, err)
			}
			if jsonOutput {
				return printJSON(os.Stdout, p)
			}
			printProductDetail(os.Stdout, *p)
			return nil
		}

		products, err := client.Products(ctx)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		if jsonOutput {
			return printJSON(os.Stdout, products)
		}
		if len(products) == 0 {
			fmt.Println("The catalog is empty.")
			return nil
		}
		fmt.Printf("%d products:\n\n", len(products))
		printProducts(os.Stdout, products)
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(catalogCmd)
}
