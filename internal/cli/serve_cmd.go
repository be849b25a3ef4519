package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"github.com/aminrezaei/worklog/internal/telegram"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config.BotToken == "" {
				return fmt.Errorf("WORKLOG_BOT_TOKEN must be set to run the bot")
			}

			api, err := tgbotapi.NewBotAPI(app.Config.BotToken)
			if err != nil {
				return fmt.Errorf("authorizing telegram bot: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			bot := telegram.New(api, app.Tracker, app.Log)
			return bot.Run(ctx)
		},
	}
}
