package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traceyt-cree8/gitterm-sub000/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetInfo().String())
		},
	}
}
