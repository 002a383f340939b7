package config

import (
	"bytes"
	"encoding/base64"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var ErrConfigType = errors.New("config: type is required")

type Viper struct {
	v *viper.Viper
}

// NewViper reads the file at path and reloads it whenever it changes on
// disk. Environment variables override file values, with dots replaced by
// underscores (DATABASE_PASSWORD for database.password).
func NewViper(path string) (*Viper, error) {
	v := newViper()
	v.SetConfigFile(filepath.Clean(path))
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("config: file changed, reloaded", "path", e.Name, "op", e.Op.String())
	})
	v.WatchConfig()

	return &Viper{v: v}, nil
}

// NewViperFromBytes reads configuration of the given type ("yaml", "json",
// ...) from memory.
func NewViperFromBytes(configType string, data []byte) (*Viper, error) {
	configType = strings.TrimSpace(configType)
	if configType == "" {
		return nil, ErrConfigType
	}

	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return &Viper{v: v}, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func (c *Viper) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Viper) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Viper) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Viper) GetInt32(key string) int32 {
	return c.v.GetInt32(key)
}

func (c *Viper) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

func (c *Viper) GetUint16(key string) uint16 {
	return uint16(c.v.GetUint(key)) //nolint:gosec // small config values
}

func (c *Viper) GetUint64(key string) uint64 {
	return c.v.GetUint64(key)
}

func (c *Viper) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

func (c *Viper) GetMillisecond(key string) time.Duration {
	return c.duration(key, time.Millisecond)
}

func (c *Viper) GetSecond(key string) time.Duration {
	return c.duration(key, time.Second)
}

func (c *Viper) GetMinute(key string) time.Duration {
	return c.duration(key, time.Minute)
}

func (c *Viper) GetHour(key string) time.Duration {
	return c.duration(key, time.Hour)
}

func (c *Viper) GetDay(key string) time.Duration {
	return c.duration(key, 24*time.Hour)
}

func (c *Viper) duration(key string, unit time.Duration) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * unit
}

func (c *Viper) GetBinary(key string) []byte {
	data, err := base64.StdEncoding.DecodeString(c.v.GetString(key))
	if err != nil {
		return nil
	}
	return data
}

func (c *Viper) GetArray(key string) []string {
	parts := strings.Split(c.v.GetString(key), ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (*Viper) Close() error {
	return nil
}
