package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
	"github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"
)

// ReportService membuat laporan PDF dan chart revenue dari data transaksi.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// RevenuePoint adalah satu titik revenue harian.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// DailyRevenue mengembalikan revenue per hari untuk N hari terakhir,
// hari tanpa transaksi diisi nol.
func (rs *ReportService) DailyRevenue(days int) ([]RevenuePoint, error) {
	start := time.Now().AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	type row struct {
		PaymentDate string
		Total       float64
	}
	var rows []row
	if err := rs.DB.Model(&models.Transaction{}).
		Select("payment_date, COALESCE(SUM(amount), 0) AS total").
		Where("status = ? AND payment_date >= ?", "completed", start).
		Group("payment_date").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byDate := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDate[r.PaymentDate] = r.Total
	}

	points := make([]RevenuePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		points = append(points, RevenuePoint{Date: date, Revenue: byDate[date]})
	}
	return points, nil
}

// RevenueChartPNG merender revenue harian jadi line chart PNG.
func (rs *ReportService) RevenueChartPNG(days int) ([]byte, error) {
	points, err := rs.DailyRevenue(days)
	if err != nil {
		return nil, err
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		t, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return nil, err
		}
		xValues[i] = t
		yValues[i] = p.Revenue
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Daily Revenue (last %d days)", days),
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Revenue",
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TransactionsPDF membuat laporan transaksi dalam rentang tanggal inklusif.
func (rs *ReportService) TransactionsPDF(dateFrom, dateTo string) ([]byte, error) {
	var transactions []models.Transaction
	if err := rs.DB.
		Preload("Order").
		Where("payment_date >= ? AND payment_date <= ?", dateFrom, dateTo).
		Order("payment_date, payment_time").
		Find(&transactions).Error; err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "SISZUM POS - Transaction Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", dateFrom, dateTo))
	pdf.Ln(10)

	// header tabel
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(35, 7, "Code", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "Order", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Time", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Method", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	var total float64
	for _, t := range transactions {
		orderCode := ""
		if t.Order != nil {
			orderCode = t.Order.OrderCode
		}
		pdf.CellFormat(35, 6, t.TransactionCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, orderCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, t.PaymentDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, t.PaymentTime, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, t.PaymentMethod, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, utils.FormatCurrency(t.Amount), "1", 1, "R", false, 0, "")
		total += t.Amount
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s (%d transactions)", utils.FormatCurrency(total), len(transactions)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
