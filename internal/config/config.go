package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	FieldApp     FieldApp     `mapstructure:",squash"`
	ActivitySync ActivitySync `mapstructure:",squash"`
	AlertSync    AlertSync    `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// FieldApp es la app donde los contratistas registran actividades en terreno
type FieldApp struct {
	URL         string `mapstructure:"fieldapp_url"`
	AccessToken string `mapstructure:"fieldapp_access_token"`
}

type ActivitySync struct {
	CronSchedule string `mapstructure:"activity_sync_cron"`
	LookbackDays int    `mapstructure:"activity_sync_lookback_days"`
	Enabled      bool   `mapstructure:"activity_sync_enabled"`
}

type AlertSync struct {
	CronSchedule string `mapstructure:"alert_sync_cron"`
	LookbackDays int    `mapstructure:"alert_sync_lookback_days"`
	Enabled      bool   `mapstructure:"alert_sync_enabled"`
}

type Dashboard struct {
	TopN                   int `mapstructure:"dashboard_top_n"`
	GoalsRefreshDebounceMs int `mapstructure:"goals_refresh_debounce_ms"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adulto_mayor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("FIELDAPP_URL", "https://campo.adultomayor.gov.co/api")
	viper.SetDefault("FIELDAPP_ACCESS_TOKEN", "your_access_token")

	// Defaults de sincronización de actividades reportadas
	viper.SetDefault("ACTIVITY_SYNC_CRON", "0 3 * * *") // Todos los días a las 3 de la mañana
	viper.SetDefault("ACTIVITY_SYNC_LOOKBACK_DAYS", 7)  // Ventana de 7 días hacia atrás
	viper.SetDefault("ACTIVITY_SYNC_ENABLED", false)

	// Defaults de la reevaluación periódica de alertas
	viper.SetDefault("ALERT_SYNC_CRON", "*/30 * * * *") // Cada 30 minutos
	viper.SetDefault("ALERT_SYNC_LOOKBACK_DAYS", 7)     // Ventana de inactividad
	viper.SetDefault("ALERT_SYNC_ENABLED", false)

	viper.SetDefault("DASHBOARD_TOP_N", 10)
	viper.SetDefault("GOALS_REFRESH_DEBOUNCE_MS", 500)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por viper con éxito")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile intenta cargar el archivo .env desde las ubicaciones conocidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No fue posible obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Archivo .env cargado con éxito desde:", location)
			return
		}
	}

	logrus.Warn("No fue posible cargar el archivo .env desde ninguna ubicación conocida")
}
