package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config selects and configures the storage backend.
type Config interface {
	Backend() string
	BasePath() string
	Key() string
	Redis() RedisOptions
	SQLiteDSN() string
}

const (
	DefaultKey  = "entries"
	DefaultPath = "~/.maplog.db"
	DefaultZoom = 13
)

// LoadConfig reads .maplog.yaml from MAPLOG_CONFIG_PATH or the working
// directory and overlays MAPLOG_* environment variables. A missing file is
// not an error.
func LoadConfig() (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("path", DefaultPath)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("map.zoom", DefaultZoom)
	v.SetConfigName(".maplog") // .yaml is implicit
	v.SetEnvPrefix("MAPLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("MAPLOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	cfg := &FileConfig{
		BackendName: v.GetString("backend"),
		Path:        path,
		StorageKey:  v.GetString("key"),
		RedisAddr:   v.GetString("redis.addr"),
		RedisPass:   v.GetString("redis.password"),
		RedisDB:     v.GetInt("redis.db"),
		DSN:         v.GetString("sqlite.dsn"),
		Zoom:        v.GetInt("map.zoom"),
		File:        v.ConfigFileUsed(),
	}
	if v.IsSet("home.lat") && v.IsSet("home.lng") {
		cfg.Home = &[2]float64{v.GetFloat64("home.lat"), v.GetFloat64("home.lng")}
	}
	return cfg, nil
}

// FileConfig is the resolved configuration. Zoom and Home are read by the
// terminal front end; the rest configures storage.
type FileConfig struct {
	BackendName string      `json:"backend"`
	Path        string      `json:"path"`
	StorageKey  string      `json:"key"`
	RedisAddr   string      `json:"redisAddr,omitempty"`
	RedisPass   string      `json:"-"`
	RedisDB     int         `json:"redisDB,omitempty"`
	DSN         string      `json:"sqliteDSN,omitempty"`
	Zoom        int         `json:"zoom"`
	Home        *[2]float64 `json:"home,omitempty"`
	File        string      `json:"file,omitempty"`
}

func (f *FileConfig) Backend() string {
	return f.BackendName
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Key() string {
	if f.StorageKey == "" {
		return DefaultKey
	}
	return f.StorageKey
}

func (f *FileConfig) Redis() RedisOptions {
	return RedisOptions{Addr: f.RedisAddr, Password: f.RedisPass, DB: f.RedisDB}
}

func (f *FileConfig) SQLiteDSN() string {
	return f.DSN
}
