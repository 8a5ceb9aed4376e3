package config

import (
	"errors"
	"precharting-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:    utils.GetEnvString("MONGO_URL", ""),
			DbName: utils.GetEnvString("DB_NAME", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:         utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Groq: Groq{
			APIKey:              utils.GetEnvString("GROQ_API_KEY", ""),
			BaseUrl:             utils.GetEnvString("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			TranscribeModel:     utils.GetEnvString("GROQ_TRANSCRIBE_MODEL", "whisper-large-v3-turbo"),
			ChatModel:           utils.GetEnvString("GROQ_CHAT_MODEL", "llama-3.3-70b-versatile"),
			Language:            utils.GetEnvString("GROQ_TRANSCRIBE_LANGUAGE", "en"),
			Temperature:         utils.GetEnvFloat("GROQ_TEMPERATURE", 0.0),
			CompletionMaxTokens: utils.GetEnvInt("GROQ_COMPLETION_MAX_TOKENS", 1500),
		},
		CORS: CORS{
			AllowedOrigins: strings.Split(utils.GetEnvString("CORS_ORIGINS", "*"), ","),
		},
	}
}

// Validate reports missing required settings. These are startup-fatal:
// the service cannot limp along without its provider key or its database.
func (c *InternalConfig) Validate() error {
	if c.Groq.APIKey == "" {
		return errors.New("GROQ_API_KEY not set")
	}
	return nil
}

func (c *DriverConfig) Validate() error {
	if c.MongoDB.URI == "" {
		return errors.New("MONGO_URL not set")
	}
	if c.MongoDB.DbName == "" {
		return errors.New("DB_NAME not set")
	}
	return nil
}
