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
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Mongo     MongoConfig     `yaml:"mongo"`
	LLM       LLMConfig       `yaml:"llm"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Events    EventsConfig    `yaml:"events"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	// URI is overridden by the MONGO_URI environment variable when set.
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

type LLMConfig struct {
	Provider       string `yaml:"provider"`
	ModelName      string `yaml:"model_name"`
	EmbeddingModel string `yaml:"embedding_model"`
}

// CorpusConfig describes where source documents come from. Dir is the local
// document directory; Feeds and Pages are optional remote sources pulled at
// index-build time only.
type CorpusConfig struct {
	Dir              string       `yaml:"dir"`
	MinFileSizeBytes int64        `yaml:"min_file_size_bytes"`
	ChunkSize        int          `yaml:"chunk_size"`
	ChunkOverlap     int          `yaml:"chunk_overlap"`
	Feeds            []FeedSource `yaml:"feeds"`
	Pages            []string     `yaml:"pages"`
}

// FeedSource is a single RSS corpus source.
type FeedSource struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Limit int    `yaml:"limit"`
}

type RetrievalConfig struct {
	TopK      int    `yaml:"top_k"`
	IndexPath string `yaml:"index_path"`
}

// RateLimitConfig bounds the send-message endpoint per client address.
// RequestsPerMinute 가 0 이하면 제한 없음으로 간주한다.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type EventsConfig struct {
	Topic string `yaml:"topic"`
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
	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "maternal_chat"
	}
	if c.Corpus.Dir == "" {
		c.Corpus.Dir = "data"
	}
	if c.Corpus.MinFileSizeBytes == 0 {
		c.Corpus.MinFileSizeBytes = 1000
	}
	if c.Corpus.ChunkSize == 0 {
		c.Corpus.ChunkSize = 1000
	}
	if c.Corpus.ChunkOverlap == 0 {
		c.Corpus.ChunkOverlap = 150
	}
	if c.Retrieval.TopK == 0 {
		c.Retrieval.TopK = 5
	}
	if c.Retrieval.IndexPath == "" {
		c.Retrieval.IndexPath = "vector_store/index.json"
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "chat.events"
	}
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
