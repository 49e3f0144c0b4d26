package cart

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tdhoang/marketgraph/cmd/cli/api"
	"github.com/tdhoang/marketgraph/cmd/cli/config"
	"github.com/tdhoang/marketgraph/cmd/cli/output"
	"github.com/tdhoang/marketgraph/internal/models"
)

// Init registers cart commands on the root command.
func Init(rootCmd *cobra.Command) {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your shopping cart",
	}
	cartCmd.AddCommand(addCmd(), listCmd(), checkoutCmd())
	rootCmd.AddCommand(cartCmd)
}

// ==========================
// ADD
// ==========================
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return fmt.Errorf("please sign in first (market auth signin)")
			}

			var out struct {
				Msg string `json:"msg"`
			}
			if err := api.Do("POST", "/cart/add", token, map[string]string{
				"product_id": args[0],
			}, &out); err != nil {
				return fmt.Errorf("cart add failed: %w", err)
			}

			fmt.Println(out.Msg)
			return nil
		},
	}
}

// ==========================
// LIST
// ==========================
func listCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the products in the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return fmt.Errorf("please sign in first (market auth signin)")
			}

			var items []models.Product
			if err := api.Do("GET", "/cart", token, nil, &items); err != nil {
				return fmt.Errorf("cart list failed: %w", err)
			}

			if jsonOut {
				b, _ := json.MarshalIndent(items, "", "  ")
				fmt.Println(string(b))
				return nil
			}

			rows := make([][]interface{}, 0, len(items))
			for _, p := range items {
				rows = append(rows, []interface{}{p.ID, p.Name, p.Price, p.Location})
			}
			output.RenderTable([]string{"ID", "NAME", "PRICE", "LOCATION"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print raw JSON instead of a table")
	return cmd
}

// ==========================
// CHECKOUT
// ==========================
func checkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Check out and clear the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return fmt.Errorf("please sign in first (market auth signin)")
			}

			var out struct {
				Msg string `json:"msg"`
			}
			if err := api.Do("POST", "/cart/checkout", token, nil, &out); err != nil {
				return fmt.Errorf("checkout failed: %w", err)
			}

			fmt.Println(out.Msg)
			return nil
		},
	}
}
