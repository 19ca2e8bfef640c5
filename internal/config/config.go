package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Бэкенды долговременного хранилища снимков
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	HTTP        HTTPConfig        `yaml:"http"`
	I18n        I18nConfig        `yaml:"i18n"`
	Storage     StorageConfig     `yaml:"storage"`
	FileStorage FileStorageConfig `yaml:"file_storage"`
	Redis       RedisConf         `yaml:"redis"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Session     SessionConfig     `yaml:"session"`
	Maps        MapsConfig        `yaml:"maps"`
}

type HTTPConfig struct {
	Host    string        `yaml:"host" env:"HTTP_HOST"`
	Port    string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type I18nConfig struct {
	DefaultLanguage string `yaml:"default_language" env:"DEFAULT_LANGUAGE" env-default:"en"`
}

type StorageConfig struct {
	Backend   string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"memory"`
	KeyPrefix string `yaml:"key_prefix" env-default:"trattoria:"`
	// Quota лимит памяти для бэкенда memory, 0 - без лимита
	Quota int `yaml:"quota"`
}

type FileStorageConfig struct {
	BaseDir     string `yaml:"base_dir" env-default:"./uploads"`
	BaseURL     string `yaml:"base_url" env-default:"/uploads"`
	MaxSize     int64  `yaml:"max_size" env-default:"5242880"`
	SnapshotDir string `yaml:"snapshot_dir" env-default:"./data"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redispassword" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn" env:"POSTGRES_DSN"`
}

type SessionConfig struct {
	Secret string `yaml:"secret" env:"SESSION_SECRET" env-default:"change-me"`
	MaxAge int    `yaml:"max_age" env-default:"2592000"`
}

type MapsConfig struct {
	APIKey string `yaml:"api_key" env:"MAPS_API_KEY"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	// переменные из .env, если файл есть; уже заданные в окружении не перетираются
	_ = godotenv.Load()

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	switch cfg.Storage.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendPostgres:
	default:
		panic("unknown storage backend: " + cfg.Storage.Backend)
	}

	if cfg.Storage.Backend == BackendPostgres && cfg.Postgres.DSN == "" {
		panic("postgres.dsn is required for the postgres storage backend")
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
