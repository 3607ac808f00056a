package cli

import (
	"github.com/spf13/cobra"
	"github.com/yigit/courseapi/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}
}
