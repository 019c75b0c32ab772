package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Camera struct {
		// URL of the MJPEG stream exposed by the workstation camera.
		URL           string
		FrameInterval time.Duration `mapstructure:"frame_interval"`
		// SingleShot pauses the scan loop after each successful decode;
		// continuous mode keeps the camera running for rapid sequential
		// scanning.
		SingleShot bool `mapstructure:"single_shot"`
	} `mapstructure:"camera"`

	Queue struct {
		Path string
	} `mapstructure:"queue"`

	Sync struct {
		Interval time.Duration
	} `mapstructure:"sync"`

	Commit struct {
		Timeout time.Duration
	} `mapstructure:"commit"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Load reads the optional yaml config file and environment overrides
// (APP_* prefix). A missing file is fine; defaults cover local use. A
// present-but-broken file fails loudly.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("camera.frame_interval", 50*time.Millisecond)
	v.SetDefault("camera.single_shot", true)
	v.SetDefault("queue.path", "pending_scans.db")
	v.SetDefault("sync.interval", 15*time.Second)
	v.SetDefault("commit.timeout", 10*time.Second)
	v.SetDefault("metrics.enabled", true)

	var c Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return c, err
			}
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
