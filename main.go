package main

import (
	"context"
	"errors"
	"foldingbot/internal/adapters/handler"
	"foldingbot/internal/adapters/metrics"
	"foldingbot/internal/adapters/sender"
	"foldingbot/internal/adapters/stats"
	"foldingbot/internal/core/domain/command"
	"foldingbot/internal/core/domain/commands"
	"foldingbot/internal/core/port"
	"foldingbot/internal/core/service"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting foldingbot...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("foldingbot")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("bot.name", "FoldingBot")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Warn().Msg("no config file found, using environment only")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "trace":
		logLevel = zerolog.TraceLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	promMetrics := metrics.NewPrometheus()

	foldingStats, err := stats.NewFolding(viper.GetString("folding.api_uri"), nil, promMetrics)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing stats client")
	}

	authorizer, err := service.NewAdminAuthorizer()
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing admin authorizer")
	}

	disabledCommands := service.NewDisabledCommands()

	commandRegistry := newCommandRegistry(foldingStats, disabledCommands)

	commandHandler := handler.NewCommand(commandRegistry,
		disabledCommands,
		service.NewSingleFlight(),
		authorizer,
		promMetrics)

	transports := 0

	if token := viper.GetString("discord.bot_token"); token != "" {
		session, err := startDiscord(token, commandHandler)
		if err != nil {
			log.Panic().Err(err).Msg("failed initializing discord session")
		}
		defer session.Close()
		transports++
	}

	if token := viper.GetString("telegram.bot_token"); token != "" {
		if err := startTelegram(ctx, token, commandHandler); err != nil {
			log.Panic().Err(err).Msg("failed initializing telegram bot")
		}
		transports++
	}

	if transports == 0 {
		log.Fatal().Msg("no chat transport configured, set discord.bot_token or telegram.bot_token")
	}

	if addr := viper.GetString("metrics.listen_addr"); addr != "" {
		go serveMetrics(ctx, addr, promMetrics.Handler())
	}

	log.Info().Msg("bot listening")
	<-ctx.Done()
	log.Info().Msg("shutting down")
}

func newCommandRegistry(statsProvider port.StatsProvider, toggler port.CommandToggler) *command.Registry {
	commandRegistry := &command.Registry{}

	commandRegistry.Register(commands.NewHelpHandler(commandRegistry, viper.GetString("bot.name")))
	commandRegistry.Register(commands.NewDistributionHandler(time.Now))
	commandRegistry.Register(commands.NewUserStatsHandler(statsProvider))
	commandRegistry.Register(commands.NewLookupHandler(statsProvider))
	commandRegistry.Register(commands.NewFAHHandler(viper.GetString("folding.fah_url")))
	commandRegistry.Register(commands.NewWebsiteHandler(viper.GetString("folding.home_url")))
	commandRegistry.Register(commands.NewGoodBotHandler())
	commandRegistry.Register(commands.NewBadBotHandler())
	commandRegistry.Register(commands.NewDisableHandler(toggler))
	commandRegistry.Register(commands.NewEnableHandler(toggler))
	commandRegistry.Register(commands.NewDisabledListHandler(toggler))

	if viper.GetBool("bot.development") {
		log.Warn().Msg("development mode, registering test commands")
		commandRegistry.Register(commands.NewTestAdminHandler())
		commandRegistry.Register(commands.NewTestAsyncHandler())
	}

	return commandRegistry
}

func startDiscord(token string, commandHandler *handler.Command) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	discordHandler := handler.NewDiscord(commandHandler, sender.NewDiscord(session))
	session.AddHandler(discordHandler.HandleMessageCreate)

	if err := session.Open(); err != nil {
		return nil, err
	}

	log.Info().Str("user", session.State.User.Username).Msg("discord session opened")

	return session, nil
}

func startTelegram(ctx context.Context, token string, commandHandler *handler.Command) error {
	b, err := bot.New(token, bot.WithDefaultHandler(noOpHandler))
	if err != nil {
		return err
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		return err
	}

	telegramHandler := handler.NewTelegram(commandHandler, sender.NewTelegram(b), me.Username)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, telegramHandler.Handle)

	log.Info().Str("user", me.Username).Msg("telegram bot started")

	go b.Start(ctx)

	return nil
}

func serveMetrics(ctx context.Context, addr string, h http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("metrics server failed")
	}
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
