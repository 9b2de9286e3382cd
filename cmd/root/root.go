package root

import (
	"github.com/spf13/cobra"

	"github.com/fdsolve/fdsolve/cmd/mapcoloring"

	"github.com/fdsolve/fdsolve/cmd/nqueens"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fdsolve",
		Short: "Fdsolve is an open-source finite-domain constraint solver framework",
		Long: `An open-source finite-domain constraint solver framework written in Go.
For more information visit https://github.com/fdsolve/fdsolve`,
	}

	// add sub-commands
	rootCmd.AddCommand(mapcoloring.NewMapColoringCommand())
	rootCmd.AddCommand(nqueens.NewNQueensCommand())

	return rootCmd
}
