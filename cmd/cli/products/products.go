package products

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
	"github.com/tdhoang/marketgraph/cmd/cli/api"
	"github.com/tdhoang/marketgraph/cmd/cli/config"
	"github.com/tdhoang/marketgraph/cmd/cli/output"
	"github.com/tdhoang/marketgraph/internal/models"
)

// Init registers product commands on the root command.
func Init(rootCmd *cobra.Command) {
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "Post and search products",
	}
	productsCmd.AddCommand(postCmd(), searchCmd())
	rootCmd.AddCommand(productsCmd)
}

// ==========================
// POST
// ==========================
func postCmd() *cobra.Command {
	var name, description, location string
	var price float64

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a product for sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			token, err := config.LoadToken()
			if err != nil {
				return fmt.Errorf("please sign in first (market auth signin)")
			}

			var out struct {
				Msg string `json:"msg"`
				ID  string `json:"id"`
			}
			if err := api.Do("POST", "/products", token, map[string]any{
				"name":        name,
				"description": description,
				"price":       price,
				"location":    location,
			}, &out); err != nil {
				return fmt.Errorf("post product failed: %w", err)
			}

			fmt.Printf("%s (id: %s)\n", out.Msg, out.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&description, "description", "", "Product description")
	cmd.Flags().Float64Var(&price, "price", 0, "Price")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	return cmd
}

// ==========================
// SEARCH
// ==========================
func searchCmd() *cobra.Command {
	var query, location string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products by name substring and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			params.Set("q", query)
			if location != "" {
				params.Set("location", location)
			}

			var found []models.Product
			if err := api.Do("GET", "/products/search?"+params.Encode(), "", nil, &found); err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if jsonOut {
				b, _ := json.MarshalIndent(found, "", "  ")
				fmt.Println(string(b))
				return nil
			}

			rows := make([][]interface{}, 0, len(found))
			for _, p := range found {
				rows = append(rows, []interface{}{p.ID, p.Name, p.Price, p.Location, p.Description})
			}
			output.RenderTable([]string{"ID", "NAME", "PRICE", "LOCATION", "DESCRIPTION"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Name substring to match")
	cmd.Flags().StringVar(&location, "location", "", "Exact location filter")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print raw JSON instead of a table")
	return cmd
}
