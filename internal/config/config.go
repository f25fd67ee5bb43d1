package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"Server"`
	Database DatabaseConfig `mapstructure:"Database"`
	Trivia   TriviaConfig   `mapstructure:"Trivia"`
	Upload   UploadConfig   `mapstructure:"Upload"`
}

type ServerConfig struct {
	Port    string `mapstructure:"Port"`
	BaseURL string `mapstructure:"BaseURL"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"Host"`
	Port     string `mapstructure:"Port"`
	User     string `mapstructure:"User"`
	Password string `mapstructure:"Password"`
	Name     string `mapstructure:"Name"`
	SSLMode  string `mapstructure:"SSLMode"`
}

type TriviaConfig struct {
	QuestionLimit int `mapstructure:"QuestionLimit"`
}

type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"MaxFileSizeMB"`
}

func NewConfig(path string) (*Config, error) {
	v := viper.New()

	// Устанавливаем файл конфигурации
	v.SetConfigFile(path)

	// Привязываем переменные окружения
	v.BindEnv("Database.Host", "POSTGRES_SERVER")
	v.BindEnv("Database.Port", "POSTGRES_PORT")
	v.BindEnv("Database.User", "POSTGRES_USER")
	v.BindEnv("Database.Password", "POSTGRES_PASSWORD")
	v.BindEnv("Database.Name", "POSTGRES_DB")
	v.BindEnv("Database.SSLMode", "POSTGRES_SSLMODE")
	v.BindEnv("Server.Port", "HTTP_PORT")
	v.BindEnv("Server.BaseURL", "BASE_URL")
	v.BindEnv("Trivia.QuestionLimit", "QUESTION_LIMIT")
	v.BindEnv("Upload.MaxFileSizeMB", "MAX_FILESIZE_MB")

	// Читаем конфигурацию из файла
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Warning: using only environment variables: %v\n", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Проверяем переменные окружения напрямую если конфигурация неполная
	if cfg.Database.Host == "" {
		cfg.Database.Host = v.GetString("POSTGRES_SERVER")
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = v.GetString("POSTGRES_PORT")
	}
	if cfg.Database.User == "" {
		cfg.Database.User = v.GetString("POSTGRES_USER")
	}
	if cfg.Database.Password == "" {
		cfg.Database.Password = v.GetString("POSTGRES_PASSWORD")
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = v.GetString("POSTGRES_DB")
	}
	if cfg.Trivia.QuestionLimit == 0 {
		cfg.Trivia.QuestionLimit = v.GetInt("QUESTION_LIMIT")
	}
	if cfg.Upload.MaxFileSizeMB == 0 {
		cfg.Upload.MaxFileSizeMB = v.GetInt64("MAX_FILESIZE_MB")
	}

	// Проверяем, что все необходимые поля заполнены
	if cfg.Database.Host == "" ||
		cfg.Database.Port == "" ||
		cfg.Database.User == "" ||
		cfg.Database.Password == "" ||
		cfg.Database.Name == "" {
		return nil, fmt.Errorf("database configuration is incomplete: host=%s, port=%s, user=%s, name=%s",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Name)
	}

	if cfg.Trivia.QuestionLimit <= 0 {
		return nil, fmt.Errorf("QUESTION_LIMIT must be a positive integer, got %d", cfg.Trivia.QuestionLimit)
	}

	// Установка значений по умолчанию
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Upload.MaxFileSizeMB == 0 {
		cfg.Upload.MaxFileSizeMB = 10
	}

	return &cfg, nil
}

func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}

// MaxFileSizeBytes возвращает лимит загружаемого файла в байтах
func (c *UploadConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB << 20
}
