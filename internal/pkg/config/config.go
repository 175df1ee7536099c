package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: nothing, the simulator must start with zero configuration
// - default: every value, overridable from the environment or a .env file
// -----------------------------------------------------------------------------

const (
	ModeConsole = "console"
	ModeServer  = "server"
	ModeBoth    = "both"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
	Hotel  HotelConfig
}

type AppConfig struct {
	Mode    string `envconfig:"APP_MODE" default:"console"`
	EnvFile string `envconfig:"APP_ENV_FILE" default:".env"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Output         string `envconfig:"LOG_OUTPUT" default:"stderr"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type HotelConfig struct {
	// BookingDate pins the booking clock to a YYYY-MM-DD date when set.
	BookingDate    string `envconfig:"HOTEL_BOOKING_DATE"`
	CurrencySymbol string `envconfig:"HOTEL_CURRENCY_SYMBOL" default:"₹"`
}

func (c AppConfig) RunsConsole() bool {
	return c.Mode == ModeConsole || c.Mode == ModeBoth
}

func (c AppConfig) RunsServer() bool {
	return c.Mode == ModeServer || c.Mode == ModeBoth
}

func (c AppConfig) validate() error {
	switch c.Mode {
	case ModeConsole, ModeServer, ModeBoth:
		return nil
	default:
		return fmt.Errorf("invalid APP_MODE %q: want %s, %s or %s", c.Mode, ModeConsole, ModeServer, ModeBoth)
	}
}

// LoadConfig reads the environment, after loading envFile (if present) into
// it. Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("APP_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.App.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Mode: ModeConsole,
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Output:         "stderr",
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Hotel: HotelConfig{
			BookingDate:    "2024-11-07",
			CurrencySymbol: "₹",
		},
	}
}
