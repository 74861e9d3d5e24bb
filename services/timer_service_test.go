package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/siszum/pos-server/config"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTimerDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.Load()

	// DSN shared-cache per test: plain ":memory:" memberi database terpisah
	// untuk tiap koneksi di pool
	db, err := gorm.Open(sqlite.Open("file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.RestaurantTable{},
		&models.Customer{},
		&models.Order{},
		&models.CustomerTimer{},
	))
	return db
}

func seedTable(t *testing.T, db *gorm.DB, code string) models.RestaurantTable {
	t.Helper()
	table := models.RestaurantTable{
		TableNumber: code,
		TableCode:   "TBL-" + code,
		Capacity:    4,
		Status:      models.TableAvailable,
	}
	require.NoError(t, db.Create(&table).Error)
	return table
}

func TestDeriveStatus(t *testing.T) {
	const warning, expire = 6300, 7200

	cases := []struct {
		name     string
		elapsed  int64
		isActive bool
		want     string
	}{
		{"baru mulai", 0, true, models.TimerActive},
		{"tepat sebelum warning", 6299, true, models.TimerActive},
		{"tepat di warning", 6300, true, models.TimerWarning},
		{"tepat sebelum expired", 7199, true, models.TimerWarning},
		{"tepat di expired", 7200, true, models.TimerExpired},
		{"jauh melewati expired", 90000, true, models.TimerExpired},
		{"sudah dihentikan", 100, false, models.TimerCompleted},
		{"dihentikan walau lama", 90000, false, models.TimerCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.elapsed, tc.isActive, warning, expire))
		})
	}
}

func TestTimerStartOccupiesTable(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	table := seedTable(t, db, "T1")

	timer, err := svc.Start("Juan Dela Cruz", table.ID, nil)
	require.NoError(t, err)
	assert.True(t, timer.IsActive)
	assert.Nil(t, timer.EndTime)

	var fresh models.RestaurantTable
	require.NoError(t, db.First(&fresh, table.ID).Error)
	assert.Equal(t, models.TableOccupied, fresh.Status)
}

func TestTimerStartRejectsBusyTable(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	table := seedTable(t, db, "T1")

	_, err := svc.Start("Maria", table.ID, nil)
	require.NoError(t, err)

	_, err = svc.Start("Jose", table.ID, nil)
	assert.ErrorIs(t, err, ErrTableBusy)

	var count int64
	db.Model(&models.CustomerTimer{}).Where("table_id = ?", table.ID).Count(&count)
	assert.EqualValues(t, 1, count, "start kedua tidak boleh membuat baris baru")
}

func TestTimerStartOnManuallyOccupiedTable(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	table := seedTable(t, db, "T1")

	// Staff bisa menandai meja occupied lewat endpoint status tanpa timer.
	// Selama tidak ada timer aktif, start harus tetap berhasil: update
	// occupied -> occupied wajib terhitung match (clientFoundRows di MySQL).
	require.NoError(t, db.Model(&models.RestaurantTable{}).
		Where("id = ?", table.ID).
		Update("status", models.TableOccupied).Error)

	timer, err := svc.Start("Juan Dela Cruz", table.ID, nil)
	require.NoError(t, err)
	assert.True(t, timer.IsActive)

	var count int64
	db.Model(&models.CustomerTimer{}).Where("table_id = ?", table.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestTimerStartConcurrentSubmission(t *testing.T) {
	db := setupTimerDB(t)

	// Satu koneksi supaya kedua transaksi tereksekusi serial seperti
	// row lock di MySQL; sqlite shared-cache tidak punya row lock.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	svc := NewTimerService(db)
	table := seedTable(t, db, "T1")

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := svc.Start(name, table.ID, nil)
			errs <- err
		}(fmt.Sprintf("Guest-%d", i))
	}
	wg.Wait()
	close(errs)

	var success, busy int
	for err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, ErrTableBusy):
			busy++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, success, "tepat satu start yang menang")
	assert.Equal(t, 1, busy, "yang kalah mendapat konflik, bukan error lain")

	var count int64
	db.Model(&models.CustomerTimer{}).Where("table_id = ?", table.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestTimerStartValidation(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)

	_, err := svc.Start("", 1, nil)
	assert.ErrorIs(t, err, ErrTimerNameRequired)

	_, err = svc.Start("Ana", 999, nil)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTimerStopFreezesElapsedAndReleasesTable(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	table := seedTable(t, db, "T1")

	timer, err := svc.Start("Maria", table.ID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Stop(timer.ID))

	var stopped models.CustomerTimer
	require.NoError(t, db.First(&stopped, timer.ID).Error)
	assert.False(t, stopped.IsActive)
	require.NotNil(t, stopped.EndTime)
	assert.GreaterOrEqual(t, stopped.ElapsedSeconds, int64(0))

	var fresh models.RestaurantTable
	require.NoError(t, db.First(&fresh, table.ID).Error)
	assert.Equal(t, models.TableAvailable, fresh.Status)
}

func TestTimerDoubleStopReturnsNotFound(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	table := seedTable(t, db, "T1")

	timer, err := svc.Start("Maria", table.ID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Stop(timer.ID))
	assert.ErrorIs(t, svc.Stop(timer.ID), ErrTimerNotFound)
}

func TestTimerDeleteReleasesTable(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	table := seedTable(t, db, "T1")

	timer, err := svc.Start("Maria", table.ID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(timer.ID))

	var count int64
	db.Model(&models.CustomerTimer{}).Count(&count)
	assert.EqualValues(t, 0, count)

	var fresh models.RestaurantTable
	require.NoError(t, db.First(&fresh, table.ID).Error)
	assert.Equal(t, models.TableAvailable, fresh.Status)

	// meja bisa langsung dipakai timer baru
	_, err = svc.Start("Pedro", table.ID, nil)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(9999), ErrTimerNotFound)
}

func TestTimerListDerivesStatusAndStats(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	now := time.Now()

	t1 := seedTable(t, db, "T1")
	t2 := seedTable(t, db, "T2")
	t3 := seedTable(t, db, "T3")

	// aktif baru, aktif di zona warning, aktif sudah lewat batas
	require.NoError(t, db.Create(&models.CustomerTimer{
		CustomerName: "Fresh", TableID: t1.ID, StartTime: now, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.CustomerTimer{
		CustomerName: "Warn", TableID: t2.ID,
		StartTime: now.Add(-time.Duration(svc.WarningSeconds+10) * time.Second), IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.CustomerTimer{
		CustomerName: "Over", TableID: t3.ID,
		StartTime: now.Add(-time.Duration(svc.ExpireSeconds+10) * time.Second), IsActive: true,
	}).Error)

	views, _, stats, err := svc.List(utils.PageParams{Page: 1, Limit: 20}, nil)
	require.NoError(t, err)
	require.Len(t, views, 3)

	statusByName := map[string]string{}
	for _, v := range views {
		statusByName[v.CustomerName] = v.TimerStatus
	}
	assert.Equal(t, models.TimerActive, statusByName["Fresh"])
	assert.Equal(t, models.TimerWarning, statusByName["Warn"])
	assert.Equal(t, models.TimerExpired, statusByName["Over"])

	assert.EqualValues(t, 3, stats.TotalTimers)
	assert.EqualValues(t, 3, stats.ActiveTimers)
	assert.EqualValues(t, 1, stats.ExpiredTimers)
	assert.EqualValues(t, 1, stats.WarningTimers)
}

func TestTimerListPaginationBeyondEnd(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	table := seedTable(t, db, "T1")
	now := time.Now()

	for i := 0; i < 5; i++ {
		end := now
		require.NoError(t, db.Create(&models.CustomerTimer{
			CustomerName:   "Guest",
			TableID:        table.ID,
			StartTime:      now.Add(-time.Hour),
			EndTime:        &end,
			ElapsedSeconds: 3600,
			IsActive:       false,
		}).Error)
	}

	views, pagination, _, err := svc.List(utils.PageParams{Page: 2, Limit: 2}, nil)
	require.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.EqualValues(t, 5, pagination.TotalItems)

	// halaman melewati akhir: kosong tapi tetap sukses
	views, pagination, _, err = svc.List(utils.PageParams{Page: 9, Limit: 2}, nil)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestSweepExpiredStopsOverdueTimers(t *testing.T) {
	db := setupTimerDB(t)
	svc := NewTimerService(db)
	now := time.Now()

	t1 := seedTable(t, db, "T1")
	t2 := seedTable(t, db, "T2")
	require.NoError(t, db.Model(&models.RestaurantTable{}).
		Where("id IN ?", []uint{t1.ID, t2.ID}).
		Update("status", models.TableOccupied).Error)

	require.NoError(t, db.Create(&models.CustomerTimer{
		CustomerName: "Overdue", TableID: t1.ID,
		StartTime: now.Add(-time.Duration(svc.ExpireSeconds+60) * time.Second), IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.CustomerTimer{
		CustomerName: "StillFine", TableID: t2.ID,
		StartTime: now.Add(-time.Minute), IsActive: true,
	}).Error)

	stopped, err := svc.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, 1, stopped)

	var overdue models.CustomerTimer
	require.NoError(t, db.Where("customer_name = ?", "Overdue").First(&overdue).Error)
	assert.False(t, overdue.IsActive)
	assert.NotNil(t, overdue.EndTime)

	var fine models.CustomerTimer
	require.NoError(t, db.Where("customer_name = ?", "StillFine").First(&fine).Error)
	assert.True(t, fine.IsActive)

	var freshT1 models.RestaurantTable
	require.NoError(t, db.First(&freshT1, t1.ID).Error)
	assert.Equal(t, models.TableAvailable, freshT1.Status)
}
