package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Logger  Logger
	}
	MongoDB struct {
		URI    string
		DbName string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App  App
		Groq Groq
		CORS CORS
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Address         string
		EndpointPrefix  string
		ShutdownTimeout int
	}

	Groq struct {
		APIKey              string
		BaseUrl             string
		TranscribeModel     string
		ChatModel           string
		Language            string
		Temperature         float64
		CompletionMaxTokens int
	}

	CORS struct {
		AllowedOrigins []string
	}
)
