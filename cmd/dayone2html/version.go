package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of dayone2html",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dayone2html %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
