package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-processor-mcp/internal/imaging"
	"github.com/ironsheep/image-processor-mcp/internal/processor"
	"github.com/ironsheep/image-processor-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "image-processor",
	Short: "MCP server for named-image transformations",
	Long: `image-processor serves image load/save and transformation tools
(brighten, flip, grayscale, blur/sharpen, sepia, downscale, histogram)
over the MCP protocol on stdin/stdout.

Environment variables:
  IMAGE_PROC_LOG_LEVEL=debug     Enable debug logging
  IMAGE_PROC_JPEG_QUALITY=90     JPEG quality used when saving`,
	SilenceUsage: true,
	RunE:         runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("image-processor %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.Flags().String("log-level", envOr("IMAGE_PROC_LOG_LEVEL", "info"), "Log level (info, debug)")
	rootCmd.Flags().Int("jpeg-quality", envInt("IMAGE_PROC_JPEG_QUALITY", imaging.DefaultJPEGQuality), "JPEG quality (1-100) for saved JPEG files")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logLevel, _ := cmd.Flags().GetString("log-level")
	quality, _ := cmd.Flags().GetInt("jpeg-quality")
	if quality < 1 || quality > 100 {
		return fmt.Errorf("--jpeg-quality must be between 1 and 100, got %d", quality)
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := logLevel == "debug"
	if debug {
		log.Printf("Image Processor MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(server.Config{
		Session: processor.Options{JPEGQuality: quality},
		Debug:   debug,
		Version: Version,
	})
	if err := srv.Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
