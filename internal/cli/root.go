// Package cli defines the cobra command tree for the stay-catalog service.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sc",
		Short:         "Short-term-rental catalog service",
		Long:          "A catalog service for short-term rentals: users, places, amenities, and reviews, served over a JSON API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newCreateAdminCmd(),
		newVersionCmd(),
	)

	return root
}
