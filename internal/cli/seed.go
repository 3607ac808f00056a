package cli

import (
	"github.com/spf13/cobra"
	"github.com/yigit/courseapi/internal/app/repositories"
	"github.com/yigit/courseapi/internal/bootstrap"
	"github.com/yigit/courseapi/internal/db"
	"github.com/yigit/courseapi/internal/seed"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo users and courses when the database has no users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
			if err != nil {
				return err
			}

			database, err := db.NewPostgresDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			repos := repositories.NewRepositories(database.Pool)
			return seed.CreateDefaultData(cmd.Context(), repos.UserRepository, repos.CourseRepository, cfg.Auth.BcryptCost, lgr)
		},
	}
}
