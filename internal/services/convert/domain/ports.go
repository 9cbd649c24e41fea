package domain

import (
	"context"
	"time"
)

// ConverterPort is consumed by the CLI and the HTTP handlers
type ConverterPort interface {
	Convert(ctx context.Context, req Request) (Result, error)
	Zones(ctx context.Context, filter string) []ZoneRow
	Now() time.Time
}
