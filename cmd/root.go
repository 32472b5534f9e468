package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	cartCmd "github.com/furnspace/furnspace/cart/cmd"
	catalogCmd "github.com/furnspace/furnspace/catalog/cmd"
	"github.com/furnspace/furnspace/internal/common/constants"
	"github.com/furnspace/furnspace/internal/log"
	notificationCmd "github.com/furnspace/furnspace/notification/cmd"
	orderCmd "github.com/furnspace/furnspace/order/cmd"
	userCmd "github.com/furnspace/furnspace/user/cmd"
)

func Start() {
	logger := log.InitLogger("/var/log/furnspace.log").
		With().
		Str(log.KeyAppName, constants.AppMain).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: constants.AppMain}
	commands := []*cobra.Command{
		{
			Use:   "cart",
			Short: "Run cart service",
			Run: func(cmd *cobra.Command, args []string) {
				cartCmd.RunCartService(cmd.Context())
			},
		},
		{
			Use:   "catalog",
			Short: "Run catalog service",
			Run: func(cmd *cobra.Command, args []string) {
				catalogCmd.RunCatalogService(cmd.Context())
			},
		},
		{
			Use:   "notification",
			Short: "Run notification service",
			Run: func(cmd *cobra.Command, args []string) {
				notificationCmd.RunNotificationService(cmd.Context())
			},
		},
		{
			Use:   "order",
			Short: "Run order service",
			Run: func(cmd *cobra.Command, args []string) {
				orderCmd.RunOrderService(cmd.Context())
			},
		},
		{
			Use:   "user",
			Short: "Run user service",
			Run: func(cmd *cobra.Command, args []string) {
				userCmd.RunUserService(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
