package metrics

import "time"

// OccupancyStats статистика занятости по одному типу места.
type OccupancyStats struct {
	SpotType string
	Occupied int
	Free     int
}

// OccupancySource источник статистики занятости парковки.
type OccupancySource interface {
	OccupancyStats() []OccupancyStats
}

// defaultOccupancyInterval период обновления gauge занятости
const defaultOccupancyInterval = 15 * time.Second

// WatchLotOccupancy запускает фоновую горутину, периодически обновляющую
// gauge занятости по данным src, пока не закрыт stopCh.
func WatchLotOccupancy(src OccupancySource, m *Metrics, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(defaultOccupancyInterval)
		defer ticker.Stop()

		collect := func() {
			for _, st := range src.OccupancyStats() {
				m.SetLotOccupancy(st.SpotType, st.Occupied, st.Free)
			}
		}

		collect()
		for {
			select {
			case <-ticker.C:
				collect()
			case <-stopCh:
				return
			}
		}
	}()
}
