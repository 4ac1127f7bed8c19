package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	LLM       LLM
	Interview Interview
	Session   Session
	RateLimit RateLimit
	Log       Log
}

type Server struct {
	Port string
	Mode string
}

type Database struct {
	Driver   string // postgres | sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file, ":memory:" allowed
}

type LLM struct {
	Provider        string // gemini | openai | anthropic
	GeminiApiKey    string
	OpenAIApiKey    string
	OpenAIBaseURL   string
	AnthropicApiKey string
	Model           string
	FeedbackModel   string
	MaxTokens       int
	Timeout         time.Duration
	MaxAttempts     int
}

type Interview struct {
	EndPhrase      string
	AnswerCeiling  int
	QuestionBudget int
}

type Session struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type RateLimit struct {
	Requests int
	Window   time.Duration
}

type Log struct {
	Level string
	File  string
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_MODE", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_PATH", "launchpad.db")

	viper.SetDefault("LLM_PROVIDER", "gemini")
	viper.SetDefault("LLM_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("LLM_FEEDBACK_MODEL", "gemini-3-pro-preview")
	viper.SetDefault("LLM_MAX_TOKENS", 4096)
	viper.SetDefault("LLM_TIMEOUT", "60s")
	viper.SetDefault("LLM_MAX_ATTEMPTS", 3)

	viper.SetDefault("INTERVIEW_END_PHRASE", "interview is over")
	viper.SetDefault("INTERVIEW_ANSWER_CEILING", 5)
	viper.SetDefault("INTERVIEW_QUESTION_BUDGET", 4)

	viper.SetDefault("SESSION_TTL", "2h")
	viper.SetDefault("SESSION_SWEEP_INTERVAL", "10m")

	viper.SetDefault("RATE_LIMIT_REQUESTS", 30)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("SERVER_MODE")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.LLM.Provider = viper.GetString("LLM_PROVIDER")
	config.LLM.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.OpenAIApiKey = viper.GetString("OPENAI_API_KEY")
	config.LLM.OpenAIBaseURL = viper.GetString("OPENAI_BASE_URL")
	config.LLM.AnthropicApiKey = viper.GetString("ANTHROPIC_API_KEY")
	config.LLM.Model = viper.GetString("LLM_MODEL")
	config.LLM.FeedbackModel = viper.GetString("LLM_FEEDBACK_MODEL")
	config.LLM.MaxTokens = viper.GetInt("LLM_MAX_TOKENS")
	config.LLM.Timeout = viper.GetDuration("LLM_TIMEOUT")
	config.LLM.MaxAttempts = viper.GetInt("LLM_MAX_ATTEMPTS")

	config.Interview.EndPhrase = viper.GetString("INTERVIEW_END_PHRASE")
	config.Interview.AnswerCeiling = viper.GetInt("INTERVIEW_ANSWER_CEILING")
	config.Interview.QuestionBudget = viper.GetInt("INTERVIEW_QUESTION_BUDGET")

	config.Session.TTL = viper.GetDuration("SESSION_TTL")
	config.Session.SweepInterval = viper.GetDuration("SESSION_SWEEP_INTERVAL")

	config.RateLimit.Requests = viper.GetInt("RATE_LIMIT_REQUESTS")
	config.RateLimit.Window = viper.GetDuration("RATE_LIMIT_WINDOW")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.File = viper.GetString("LOG_FILE")

	// Keys never go to the log.
	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("llm_provider", config.LLM.Provider).
		Str("llm_model", config.LLM.Model).
		Int("answer_ceiling", config.Interview.AnswerCeiling).
		Msg("Config loaded")
	return &config, nil

}
