package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the mcp-kubernetes application. Running it
// without a subcommand starts the MCP server, matching 'mcp-kubernetes serve'.
var rootCmd = &cobra.Command{
	Use:   "mcp-kubernetes",
	Short: "MCP server for Kubernetes cluster inspection",
	Long: `mcp-kubernetes is a Model Context Protocol (MCP) server that exposes
read and scale operations on Kubernetes clusters: deployments, pods, nodes,
logs and kubeconfig context management.

When run without subcommands, it starts the MCP server (equivalent to
'mcp-kubernetes serve').`,
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mcp-kubernetes version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd())
}
