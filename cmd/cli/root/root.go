package root

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "market",
	Short: "Marketplace CLI",
	Long:  "Command line client for the marketplace API: accounts, products, and cart.",
}

// GetRoot returns the root command so subcommand packages can register on it.
func GetRoot() *cobra.Command {
	return rootCmd
}
