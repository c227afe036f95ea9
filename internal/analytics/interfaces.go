package analytics

import (
	"context"

	"farmtrade-main/internal/kafka"
)

// AnalyticsRepo — интерфейс репозитория для работы со спросом на товары.
type AnalyticsRepo interface {
	UpdateDemand(ctx context.Context, weights map[string]int) error
	GetTopProducts(ctx context.Context, limit int) ([]string, error)
}

// AnalyticsService — интерфейс сервиса аналитики.
type AnalyticsService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	GetTopProducts(ctx context.Context, limit int) ([]string, error)
}
