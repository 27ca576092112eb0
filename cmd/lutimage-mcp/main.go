package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/lutimage-mcp/internal/instr"
	"github.com/ironsheep/lutimage-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("lutimage-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("lutimage-mcp - MCP server for indexed-color images")
			fmt.Println()
			fmt.Println("Usage: lutimage-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  LUTIMAGE_MCP_LOG_LEVEL=debug    Log every tool call and a counter report on exit")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	srv := server.New()

	debug := os.Getenv("LUTIMAGE_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("LUT Image MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		srv.SetDebug(true)
	}

	err := srv.Run()
	if debug {
		instr.Report(os.Stderr)
	}
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
