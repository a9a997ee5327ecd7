package database

import (
	"time"

	"microblog/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PoolMonitor 连接池监控器，周期性上报连接池状态到 Prometheus
type PoolMonitor struct {
	db        *gorm.DB
	collector *metrics.Collector
	log       *zap.Logger
	interval  time.Duration
	stopCh    chan struct{}
}

// NewPoolMonitor 创建连接池监控器
func NewPoolMonitor(db *gorm.DB, collector *metrics.Collector, log *zap.Logger, interval time.Duration) *PoolMonitor {
	if interval <= 0 {
		interval = time.Second * 15
	}
	return &PoolMonitor{
		db:        db,
		collector: collector,
		log:       log,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start 启动监控协程
func (m *PoolMonitor) Start() {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.report()
			case <-m.stopCh:
				return
			}
		}
	}()
}

// Stop 停止监控
func (m *PoolMonitor) Stop() {
	close(m.stopCh)
}

func (m *PoolMonitor) report() {
	sqlDB, err := m.db.DB()
	if err != nil {
		m.log.Warn("pool monitor: failed to get sql.DB", zap.Error(err))
		return
	}
	stats := sqlDB.Stats()
	m.collector.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle, stats.WaitCount)
}
