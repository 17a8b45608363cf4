package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Buff         Buff         `mapstructure:",squash"`
	BidOptimizer BidOptimizer `mapstructure:",squash"`
	Reconcile    Reconcile    `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda o segredo usado para validar os tokens emitidos pelo provedor de autenticação
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Buff contém as configurações de acesso à API REST do Buff
type Buff struct {
	APIURL    string        `mapstructure:"buff_api_url"`
	Timeout   time.Duration `mapstructure:"buff_api_timeout"`
	RateLimit float64       `mapstructure:"buff_api_rate_limit"`
	RateBurst int           `mapstructure:"buff_api_rate_burst"`
}

type BidOptimizer struct {
	UseMock bool `mapstructure:"bid_optimizer_use_mock"`
}

type Reconcile struct {
	CronSchedule string `mapstructure:"reconcile_cron"`
	Enabled      bool   `mapstructure:"reconcile_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret") // ONLY LOCAL

	viper.SetDefault("BUFF_API_URL", "http://localhost:8000")
	viper.SetDefault("BUFF_API_TIMEOUT", "30s")
	viper.SetDefault("BUFF_API_RATE_LIMIT", 10) // requisições por segundo, 0 desabilita
	viper.SetDefault("BUFF_API_RATE_BURST", 5)

	viper.SetDefault("BID_OPTIMIZER_USE_MOCK", false)

	// Defaults para a reconciliação periódica dos grupos de campanha
	viper.SetDefault("RECONCILE_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("RECONCILE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Buff.APIURL = strings.TrimRight(config.Buff.APIURL, "/")
	if config.Buff.APIURL == "" {
		return nil, fmt.Errorf("config: BUFF_API_URL não pode ser vazio")
	}

	if config.Buff.Timeout <= 0 {
		config.Buff.Timeout = 30 * time.Second
	}

	for i, origin := range config.Server.AllowedOrigins {
		config.Server.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
