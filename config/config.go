package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	ServerAddr  string        `yaml:"server_addr"`
	MongoURI    string        `yaml:"mongo_uri"`
	MongoDBName string        `yaml:"mongo_db_name"`
	GeminiModel string        `yaml:"gemini_model"`
	Weather     WeatherConfig `yaml:"weather"`
	Chat        ChatConfig    `yaml:"chat"`

	// GeminiApiKey comes from the environment, never from config.yaml.
	GeminiApiKey string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WeatherConfig configures the Open-Meteo forecast client.
type WeatherConfig struct {
	BaseURL string `yaml:"base_url"`

	// CacheTTLMinutes is how long a forecast for one coordinate pair is
	// reused before it is fetched again. 0 or less disables the cache.
	CacheTTLMinutes int `yaml:"cache_ttl_minutes"`
}

// ChatConfig holds defaults for the chat endpoints.
type ChatConfig struct {
	// HistoryLimit is the default page size for the history endpoint
	// when the caller does not pass a limit.
	HistoryLimit int `yaml:"history_limit"`

	// DefaultLanguage is used when neither the request nor the farm
	// carries a preferred language.
	DefaultLanguage string `yaml:"default_language"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		c.MongoURI = uri
	}
	c.GeminiApiKey = os.Getenv("GEMINI_API_KEY")

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
