package utils

import (
	"log"
	"time"

	"github.com/sadang101/MalkarsMarketing/config"
	"github.com/sadang101/MalkarsMarketing/database"
	"github.com/sadang101/MalkarsMarketing/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// reportWindow returns the [start, end) bounds of the calendar day before
// the reference time
func reportWindow(ref time.Time) (time.Time, time.Time) {
	end := now.New(ref).BeginningOfDay()
	return end.Add(-24 * time.Hour), end
}

// InitializeReportScheduler sets up the daily sales report job
func InitializeReportScheduler() {
	if config.AppConfig.AdminReportEmail == "" {
		log.Println("[REPORT-SCHEDULER] No admin report email configured, scheduler disabled")
		return
	}

	c := cron.New()

	// Run daily at 8 AM
	c.AddFunc("0 8 * * *", func() {
		log.Println("[REPORT-SCHEDULER] Running daily sales report...")
		SendSalesReport()
	})

	c.Start()
	log.Println("[REPORT-SCHEDULER] Sales report scheduler started - runs daily at 8 AM")
}

// SendSalesReport aggregates yesterday's orders and mails the summary to
// the configured admin address. Read-only over the orders table.
func SendSalesReport() {
	db := database.Database.Db
	start, end := reportWindow(time.Now())

	var createdCount int64
	if err := db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&createdCount).Error; err != nil {
		log.Printf("[REPORT-SCHEDULER] Error counting orders: %v", err)
		return
	}

	var paidCount int64
	db.Model(&models.Order{}).
		Where("status = ? AND updated_at >= ? AND updated_at < ?", models.OrderStatusPaid, start, end).
		Count(&paidCount)

	type revenueRow struct {
		Total uint64
	}
	var revenue revenueRow
	db.Model(&models.Order{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ? AND updated_at >= ? AND updated_at < ?", models.OrderStatusPaid, start, end).
		Scan(&revenue)

	if err := SendDailySalesReport(config.AppConfig.AdminReportEmail, createdCount, paidCount, revenue.Total); err != nil {
		log.Printf("[REPORT-SCHEDULER] Error sending report: %v", err)
		return
	}

	log.Printf("[REPORT-SCHEDULER] Report sent: %d created, %d paid", createdCount, paidCount)
}
