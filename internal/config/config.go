package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Tutor    TutorConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini     string
	GoogleGeminiQuiz string
	ElevenLabs       string
}

type TutorConfig struct {
	GeminiBaseURL     string
	GeminiModel       string
	ElevenLabsBaseURL string
	ElevenLabsVoiceId string
	VoiceStability    float64
	SimilarityBoost   float64
	HistoryLimit      int // 0 means the whole history is sent to the model
	TurnTopic         string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini:     getEnv("GEMINI_API_KEY", ""),
			GoogleGeminiQuiz: getEnv("GEMINI_QUIZ_API_KEY", ""),
			ElevenLabs:       getEnv("ELEVENLABS_API_KEY", ""),
		},
		Tutor: TutorConfig{
			GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash-lite"),
			ElevenLabsBaseURL: getEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io/v1"),
			ElevenLabsVoiceId: getEnv("ELEVENLABS_VOICE_ID", "jqcCZkN6Knx8BJ5TBdYR"),
			VoiceStability:    getEnvAsFloat("ELEVENLABS_STABILITY", 0.4),
			SimilarityBoost:   getEnvAsFloat("ELEVENLABS_SIMILARITY_BOOST", 0.8),
			HistoryLimit:      getEnvAsInt("TUTOR_HISTORY_LIMIT", 0),
			TurnTopic:         getEnv("TUTOR_TURN_TOPIC_NAME", "TUTOR_TURN_RECORDED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
