package services

import (
	"errors"
	"time"

	"github.com/siszum/pos-server/config"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/realtime"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

var (
	ErrTimerNameRequired = errors.New("customer name and table ID are required")
	ErrTableNotFound     = errors.New("table not found")
	ErrTableBusy         = errors.New("table already has an active timer")
	ErrTimerNotFound     = errors.New("active timer not found")
)

// DeriveStatus menghitung status timer murni dari elapsed seconds dan flag aktif.
// Threshold adalah kebijakan bisnis (default 1j45m warning, 2j expired).
func DeriveStatus(elapsedSeconds int64, isActive bool, warningSeconds, expireSeconds int64) string {
	switch {
	case !isActive:
		return models.TimerCompleted
	case elapsedSeconds >= expireSeconds:
		return models.TimerExpired
	case elapsedSeconds >= warningSeconds:
		return models.TimerWarning
	default:
		return models.TimerActive
	}
}

// TimerService mengelola siklus hidup customer timer: start, stop, delete,
// list dengan status turunan, serta sweep otomatis untuk timer kadaluarsa.
// Server adalah sumber kebenaran untuk expiry; poller di client hanya UX.
type TimerService struct {
	DB             *gorm.DB
	WarningSeconds int64
	ExpireSeconds  int64
	SweepInterval  time.Duration
	stopChan       chan struct{}
}

func NewTimerService(db *gorm.DB) *TimerService {
	return &TimerService{
		DB:             db,
		WarningSeconds: config.App.TimerWarningSeconds,
		ExpireSeconds:  config.App.TimerExpireSeconds,
		SweepInterval:  config.App.TimerSweepInterval,
		stopChan:       make(chan struct{}),
	}
}

// TimerView adalah satu baris hasil list beserta field turunan.
type TimerView struct {
	models.CustomerTimer
	TableNumber           string  `json:"table_number"`
	TableCode             string  `json:"table_code"`
	OrderCode             *string `json:"order_code,omitempty"`
	CurrentElapsedSeconds int64   `json:"current_elapsed_seconds"`
	TimerStatus           string  `json:"timer_status"`
}

// TimerStats dihitung atas seluruh populasi timer, bukan halaman yang diminta.
type TimerStats struct {
	TotalTimers   int64 `json:"total_timers"`
	ActiveTimers  int64 `json:"active_timers"`
	ExpiredTimers int64 `json:"expired_timers"`
	WarningTimers int64 `json:"warning_timers"`
}

// Start membuat timer baru dan menandai meja occupied dalam satu transaksi.
// Guard "satu timer aktif per meja" ditegakkan lewat conditional UPDATE pada
// baris meja: row lock-nya menserialisasi dua Start yang balapan, dan
// NOT EXISTS dievaluasi ulang setelah lock didapat.
func (s *TimerService) Start(customerName string, tableID uint, orderID *uint) (*models.CustomerTimer, error) {
	if customerName == "" || tableID == 0 {
		return nil, ErrTimerNameRequired
	}

	timer := models.CustomerTimer{
		CustomerName:   customerName,
		TableID:        tableID,
		OrderID:        orderID,
		StartTime:      time.Now(),
		ElapsedSeconds: 0,
		IsActive:       true,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.RestaurantTable
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return err
		}

		res := tx.Model(&models.RestaurantTable{}).
			Where("id = ? AND NOT EXISTS (SELECT 1 FROM customer_timers WHERE table_id = ? AND is_active = ?)",
				tableID, tableID, true).
			Update("status", models.TableOccupied)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTableBusy
		}

		return tx.Create(&timer).Error
	})
	if err != nil {
		return nil, err
	}

	realtime.Broadcast(realtime.EventTimerUpdate, timer)
	return &timer, nil
}

// Stop membekukan elapsed_seconds dan melepas meja kembali ke available.
// Stop kedua pada timer yang sama mengembalikan ErrTimerNotFound, bukan
// silent success, supaya bug double-stop kelihatan.
func (s *TimerService) Stop(timerID uint) error {
	var stopped models.CustomerTimer

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var timer models.CustomerTimer
		if err := tx.Where("id = ? AND is_active = ?", timerID, true).First(&timer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTimerNotFound
			}
			return err
		}

		now := time.Now()
		elapsed := int64(now.Sub(timer.StartTime).Seconds())

		res := tx.Model(&models.CustomerTimer{}).
			Where("id = ? AND is_active = ?", timerID, true).
			Updates(map[string]interface{}{
				"end_time":        now,
				"elapsed_seconds": elapsed,
				"is_active":       false,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTimerNotFound
		}

		if err := tx.Model(&models.RestaurantTable{}).
			Where("id = ?", timer.TableID).
			Update("status", models.TableAvailable).Error; err != nil {
			return err
		}

		timer.EndTime = &now
		timer.ElapsedSeconds = elapsed
		timer.IsActive = false
		stopped = timer
		return nil
	})
	if err != nil {
		return err
	}

	realtime.Broadcast(realtime.EventTimerUpdate, stopped)
	return nil
}

// Delete menghapus timer tanpa syarat (aktif maupun tidak) dan melepas mejanya.
// Destructive, tidak ada soft-delete.
func (s *TimerService) Delete(timerID uint) error {
	var deleted models.CustomerTimer

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var timer models.CustomerTimer
		if err := tx.First(&timer, timerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTimerNotFound
			}
			return err
		}

		if err := tx.Delete(&models.CustomerTimer{}, timerID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.RestaurantTable{}).
			Where("id = ?", timer.TableID).
			Update("status", models.TableAvailable).Error; err != nil {
			return err
		}

		deleted = timer
		return nil
	})
	if err != nil {
		return err
	}

	realtime.Broadcast(realtime.EventTimerUpdate, deleted)
	return nil
}

// List mengembalikan satu halaman timer (terbaru dulu) dengan field turunan,
// plus statistik atas seluruh populasi tanpa filter.
func (s *TimerService) List(params utils.PageParams, isActive *bool) ([]TimerView, utils.Pagination, TimerStats, error) {
	query := s.DB.Model(&models.CustomerTimer{})
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, TimerStats{}, err
	}

	var timers []models.CustomerTimer
	if err := query.
		Preload("Table").
		Preload("Order").
		Order("start_time DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&timers).Error; err != nil {
		return nil, utils.Pagination{}, TimerStats{}, err
	}

	now := time.Now()
	views := make([]TimerView, 0, len(timers))
	for _, t := range timers {
		elapsed := t.ElapsedSeconds
		if t.IsActive {
			elapsed = int64(now.Sub(t.StartTime).Seconds())
		} else if t.EndTime != nil {
			elapsed = int64(t.EndTime.Sub(t.StartTime).Seconds())
		}

		view := TimerView{
			CustomerTimer:         t,
			CurrentElapsedSeconds: elapsed,
			TimerStatus:           DeriveStatus(elapsed, t.IsActive, s.WarningSeconds, s.ExpireSeconds),
		}
		if t.Table != nil {
			view.TableNumber = t.Table.TableNumber
			view.TableCode = t.Table.TableCode
		}
		if t.Order != nil {
			view.OrderCode = &t.Order.OrderCode
		}
		views = append(views, view)
	}

	stats, err := s.stats(now)
	if err != nil {
		return nil, utils.Pagination{}, TimerStats{}, err
	}

	return views, utils.BuildPagination(params, total), stats, nil
}

func (s *TimerService) stats(now time.Time) (TimerStats, error) {
	var stats TimerStats
	expireCutoff := now.Add(-time.Duration(s.ExpireSeconds) * time.Second)
	warningCutoff := now.Add(-time.Duration(s.WarningSeconds) * time.Second)

	if err := s.DB.Model(&models.CustomerTimer{}).Count(&stats.TotalTimers).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.CustomerTimer{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveTimers).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.CustomerTimer{}).
		Where("is_active = ? AND start_time <= ?", true, expireCutoff).
		Count(&stats.ExpiredTimers).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.CustomerTimer{}).
		Where("is_active = ? AND start_time <= ? AND start_time > ?", true, warningCutoff, expireCutoff).
		Count(&stats.WarningTimers).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

// StartSweeper menjalankan goroutine yang menghentikan timer kadaluarsa
// secara periodik, sehingga expiry tetap jalan walau tidak ada client polling.
func (s *TimerService) StartSweeper(logf func(format string, args ...interface{})) {
	go func() {
		ticker := time.NewTicker(s.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n, err := s.SweepExpired(); err != nil {
					logf("timer sweep error: %v", err)
				} else if n > 0 {
					logf("timer sweep stopped %d expired timer(s)", n)
				}
			case <-s.stopChan:
				return
			}
		}
	}()
}

func (s *TimerService) StopSweeper() {
	close(s.stopChan)
}

// SweepExpired menghentikan semua timer aktif yang sudah melewati batas 2 jam.
func (s *TimerService) SweepExpired() (int, error) {
	cutoff := time.Now().Add(-time.Duration(s.ExpireSeconds) * time.Second)

	var expired []models.CustomerTimer
	if err := s.DB.
		Where("is_active = ? AND start_time <= ?", true, cutoff).
		Find(&expired).Error; err != nil {
		return 0, err
	}

	stopped := 0
	for _, t := range expired {
		if err := s.Stop(t.ID); err != nil {
			// Timer bisa saja dihentikan staff di antara Find dan Stop.
			if errors.Is(err, ErrTimerNotFound) {
				continue
			}
			return stopped, err
		}
		stopped++
	}
	return stopped, nil
}
