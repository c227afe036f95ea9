package analytics

import (
	"context"

	"farmtrade-main/internal/kafka"

	"go.uber.org/zap"
)

type Service struct {
	repo   AnalyticsRepo
	logger *zap.SugaredLogger
}

func NewService(repo AnalyticsRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ProcessEvent переводит событие в веса спроса по товарам:
// просмотр 1, добавление в корзину 2, покупка 3
func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.UserID == "" {
		return nil // Игнорируем события без пользователя
	}

	var perProduct int
	switch event.Type {
	case kafka.EventTypeSearch, kafka.EventTypeView:
		perProduct = 1
	case kafka.EventTypeAddToCart:
		perProduct = 2
	case kafka.EventTypePurchase:
		perProduct = 3
	default:
		return nil
	}

	weights := make(map[string]int)
	for _, productID := range event.ProductIDs {
		weights[productID] += perProduct
	}

	if len(weights) == 0 {
		return nil
	}

	return s.repo.UpdateDemand(ctx, weights)
}

func (s *Service) GetTopProducts(ctx context.Context, limit int) ([]string, error) {
	return s.repo.GetTopProducts(ctx, limit)
}
