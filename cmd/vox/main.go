package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// GLFW and the GL context must stay on the main OS thread
func init() { runtime.LockOSThread() }

var (
	configPath string
	fullscreen bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "vox",
	Short: "Vox voxel client",
	Long:  `Vox opens the game window and runs the client frame loop. F11 toggles fullscreen, Escape quits.`,
	RunE:  runClient,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen mode")

	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
