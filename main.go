package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"pixgen/internal/adapters/generator"
	"pixgen/internal/core/domain"
	"pixgen/internal/core/domain/command"
	"pixgen/internal/core/domain/commands"
	"pixgen/internal/core/port"
	"pixgen/internal/core/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	_ = godotenv.Load()

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("chat.provider", "openai")
	viper.SetDefault("chat.model", "gpt-4o-mini")
	viper.SetDefault("chat.system_prompt", domain.DefaultSystemPrompt)
	viper.SetDefault("image.model", domain.ImageModelDallE2)
	viper.SetDefault("image.count", 1)
	viper.SetDefault("image.size", domain.Size1024)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
	}

	var logLevel zerolog.Level

	switch viper.GetString("app.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	apiKey := viper.GetString("openai.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	systemPrompt := viper.GetString("chat.system_prompt")
	openAI := generator.NewOpenAI(apiKey, systemPrompt)

	var refiner port.PromptRefiner = openAI
	if viper.GetString("chat.provider") == "openrouter" {
		refiner = generator.NewOpenRouter(viper.GetString("openrouter.api_key"), systemPrompt)
	}

	pipeline := service.NewPipeline(refiner, openAI, openAI,
		viper.GetString("chat.model"), viper.GetString("image.model"))

	count := viper.GetInt("image.count")
	size := viper.GetString("image.size")
	if viper.IsSet("image.scale") {
		size = domain.SizeFromScale(viper.GetInt("image.scale"))
	}

	registry := &command.Registry{}
	registry.Register(commands.NewTextCommand(pipeline, os.Stdout, "text", count, size))
	registry.Register(commands.NewVoiceCommand(pipeline, os.Stdout, "voice", count, size))

	if len(os.Args) < 2 {
		log.Fatal().Strs("commands", registry.ListCommands()).Msg("missing command")
	}

	cmd, err := registry.Get(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Strs("commands", registry.ListCommands()).Msg("unknown command")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.Run(ctx, os.Args[2:]); err != nil {
		log.Fatal().Err(err).Str("command", cmd.GetCommand()).Msg("command failed")
	}
}
