package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	AppName    = "Mini OS"
	AppID      = "com.minios.desktop"
	AppVersion = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:     "minios",
	Short:   "Mini OS - a desktop simulation",
	Long:    "Opens a desktop window with Calculator, File Manager, Notepad and Settings launchers.",
	Version: AppVersion,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
