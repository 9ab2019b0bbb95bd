package cli

import (
	"github.com/spf13/cobra"

	"github.com/JakeOShannessy/minotaur/internal/server"
	"github.com/JakeOShannessy/minotaur/pkg/cache"
)

// serveCommand creates the serve command for running the HTTP maze service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redis    string
		maxCells int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP maze service",
		Long: `Run the HTTP maze service.

Endpoints:
  GET /healthz             liveness probe
  GET /api/v1/algorithms   list carving algorithms
  GET /api/v1/maze         generate a maze (query: algorithm, width, height, seed, format)

With --redis, rendered artifacts for seeded requests are cached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			store := cache.NewNullCache()
			if redis != "" {
				rc, err := cache.NewRedisCache(ctx, redis)
				if err != nil {
					return err
				}
				defer rc.Close()
				store = rc
				logger.Info("response cache enabled", "redis", redis)
			}

			srv := server.New(server.Config{
				Addr:     addr,
				Cache:    store,
				MaxCells: maxCells,
				Logger:   logger,
			})
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.Server.Addr, "listen address")
	cmd.Flags().StringVar(&redis, "redis", c.Config.Server.Redis, "redis address for response caching (empty disables)")
	cmd.Flags().IntVar(&maxCells, "max-cells", c.Config.Server.MaxCells, "maximum cells (width*height) per request")

	return cmd
}
