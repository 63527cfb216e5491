package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-summarizer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload page",
	Long: `Start the web page with a video upload control and a "Generate Summary" button.

Examples:
  summarizer serve                # Listen on server.addr from the config (default :8080)
  summarizer serve --addr :3000   # Listen on port 3000`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	addr := a.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(a.stager, a.pipeline, a.metrics, a.logger)
	return srv.ListenAndServe(ctx, addr)
}
