package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/RvanB/marc-lsp/internal/config"
	"github.com/RvanB/marc-lsp/internal/server"
)

func newServeCommand() *cobra.Command {
	var logfile string
	var debug bool
	var dataDir string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the language server over stdio",
		RunE: func(_ *cobra.Command, _ []string) error {
			if logfile != "" {
				logFile, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
				if err != nil {
					return err
				}
				defer logFile.Close()
				log.SetOutput(logFile)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
				log.Println("Starting marclsp server...")
			} else {
				// stdout carries the protocol; stray log output would
				// corrupt it.
				log.SetOutput(io.Discard)
			}

			verbosity := 1
			if debug {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil) // Logger used by glsp

			srv, err := server.NewServer(config.Config{
				DataDir:  dataDir,
				Database: dbPath,
			})
			if err != nil {
				return err
			}

			return srv.RunStdio()
		},
	}

	cmd.Flags().StringVar(&logfile, "logfile", "", "path to log file")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory of JSON definition files")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to a sqlite reference database")

	return cmd
}
