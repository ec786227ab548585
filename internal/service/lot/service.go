package lot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/lot/models"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
)

// Service read-сервис состояния парковки: снимки планировки и сводные
// счётчики. Читает пул под разделяемой блокировкой; мутации выполняют
// usecases въезда и выезда.
type Service struct {
	pool      SpotPool
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса парковки
func NewService(
	pool SpotPool,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		pool:      pool,
		txManager: txManager,
		logger:    logger,
	}
}

// Layout возвращает снимок планировки с занятостью каждого места
func (s *Service) Layout(ctx context.Context) (*models.LayoutResponse, error) {
	var resp *models.LayoutResponse
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		resp = models.FromDomainLevels(s.pool.Name(), s.pool.Snapshot())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Layout: snapshot taken, levels=%d", len(resp.Levels))
	return resp, nil
}

// Summary возвращает сводные счётчики занятости парковки
func (s *Service) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	layout, err := s.Layout(ctx)
	if err != nil {
		return nil, err
	}
	return models.SummaryFromLayout(layout), nil
}

// OccupancyStats возвращает занятость по типам мест для сборщика метрик.
// Реализует metrics.OccupancySource; ошибок не возвращает - фоновый сбор
// не имеет канала для их обработки, а чтение из памяти не падает.
func (s *Service) OccupancyStats() []metrics.OccupancyStats {
	byType := make(map[string]*metrics.OccupancyStats)
	order := make([]string, 0)

	_ = s.txManager.DoReadOnly(context.Background(), func(ctx context.Context) error {
		for _, level := range s.pool.Snapshot() {
			for _, spot := range level.Spots {
				st := string(spot.Type)
				stats, ok := byType[st]
				if !ok {
					stats = &metrics.OccupancyStats{SpotType: st}
					byType[st] = stats
					order = append(order, st)
				}
				if spot.Occupied {
					stats.Occupied++
				} else {
					stats.Free++
				}
			}
		}
		return nil
	})

	result := make([]metrics.OccupancyStats, 0, len(order))
	for _, st := range order {
		result = append(result, *byType[st])
	}
	return result
}
