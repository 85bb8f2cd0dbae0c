package config

import (
	"errors"
	"time"

	logConfig "github.com/lintang-b-s/sidewalk-nav/pkg/logger/config"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	APIPort       int
	APITimeout    time.Duration
	Source        string
	Format        string
	FetchTimeout  time.Duration
	BBox          string
	Precision     int
	SnapTolerance float64
	WalkingSpeed  float64
	BikingSpeed   float64
	DBPath        string
	LogLevel      int
	LogTimeFormat string
}

func setDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("NETWORK_SOURCE", "sidewalks.geojson")
	viper.SetDefault("NETWORK_FORMAT", "geojson")
	viper.SetDefault("NETWORK_FETCH_TIMEOUT", "30s")
	viper.SetDefault("NETWORK_BBOX", "")
	viper.SetDefault("ROUTING_PRECISION", 6)
	viper.SetDefault("ROUTING_SNAP_TOLERANCE", 0.5)
	viper.SetDefault("SPEED_WALKING", 1.4)
	viper.SetDefault("SPEED_BIKING", 4.16)
	viper.SetDefault("DB_PATH", "sidewalk_graph.db")
	viper.SetDefault("LOG_LEVEL", logConfig.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
}

// New reads config.yaml from the working directory and the environment. both are optional.
func New() (*Config, error) {
	// a missing .env only means the environment is configured elsewhere
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	return &Config{
		APIPort:       viper.GetInt("API_PORT"),
		APITimeout:    viper.GetDuration("API_TIMEOUT"),
		Source:        viper.GetString("NETWORK_SOURCE"),
		Format:        viper.GetString("NETWORK_FORMAT"),
		FetchTimeout:  viper.GetDuration("NETWORK_FETCH_TIMEOUT"),
		BBox:          viper.GetString("NETWORK_BBOX"),
		Precision:     viper.GetInt("ROUTING_PRECISION"),
		SnapTolerance: viper.GetFloat64("ROUTING_SNAP_TOLERANCE"),
		WalkingSpeed:  viper.GetFloat64("SPEED_WALKING"),
		BikingSpeed:   viper.GetFloat64("SPEED_BIKING"),
		DBPath:        viper.GetString("DB_PATH"),
		LogLevel:      viper.GetInt("LOG_LEVEL"),
		LogTimeFormat: viper.GetString("LOG_TIME_FORMAT"),
	}, nil
}
