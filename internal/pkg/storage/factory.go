package storage

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	DriverS3    = "s3"
	DriverGCS   = "gcs"
	DriverMinIO = "minio"
)

var ErrUnknownDriver = errors.New("storage: unknown driver")

// FactoryOptions carries the settings of every backend; NewFromDriver reads
// only the one it builds.
type FactoryOptions struct {
	S3    S3Options
	GCS   GCSOptions
	MinIO MinIOOptions
}

type constructor func(ctx context.Context, opts FactoryOptions) (Storage, error)

var drivers = map[string]constructor{
	DriverS3: func(ctx context.Context, o FactoryOptions) (Storage, error) {
		return orNil[*S3Adapter](NewS3(ctx, o.S3))
	},
	DriverGCS: func(ctx context.Context, o FactoryOptions) (Storage, error) {
		return orNil[*GCSAdapter](NewGCS(ctx, o.GCS))
	},
	DriverMinIO: func(_ context.Context, o FactoryOptions) (Storage, error) {
		return orNil[*MinIOAdapter](NewMinIO(o.MinIO))
	},
}

// orNil keeps a failed constructor from leaking a typed nil into Storage.
func orNil[T Storage](s T, err error) (Storage, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Drivers lists the accepted driver names in sorted order.
func Drivers() []string {
	return slices.Sorted(maps.Keys(drivers))
}

// NewFromDriver builds the backend named by driver, ignoring case and
// surrounding spaces.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Storage, error) {
	build, ok := drivers[strings.ToLower(strings.TrimSpace(driver))]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownDriver, driver, strings.Join(Drivers(), ", "))
	}
	return build(ctx, opts)
}
