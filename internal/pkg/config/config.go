// Package config reads typed settings by dotted key, e.g.
// "modules.mailbox.notify.max_retries".
package config

import (
	"io"
	"time"
)

// Config returns the zero value for a missing or unconvertible key.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetString(key string) string
	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
	GetUint16(key string) uint16
	GetUint64(key string) uint64
	GetFloat64(key string) float64

	// Duration getters read an integer and scale it by the unit in the name.
	GetMillisecond(key string) time.Duration
	GetSecond(key string) time.Duration
	GetMinute(key string) time.Duration
	GetHour(key string) time.Duration
	GetDay(key string) time.Duration

	// GetBinary base64-decodes the value.
	GetBinary(key string) []byte
	// GetArray splits a comma separated value, trimming and dropping empty items.
	GetArray(key string) []string
}
