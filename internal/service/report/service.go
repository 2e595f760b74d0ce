package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
)

// Service renders the payment register of a company's current accounting
// period as an XLSX workbook.
type Service struct {
	companyRepo     company.CompanyRepository
	paymentRepo     payment.PaymentRepository
	paymentTypeRepo paymenttype.PaymentTypeRepository
}

func NewService(
	companyRepo company.CompanyRepository,
	paymentRepo payment.PaymentRepository,
	paymentTypeRepo paymenttype.PaymentTypeRepository,
) *Service {
	return &Service{
		companyRepo:     companyRepo,
		paymentRepo:     paymentRepo,
		paymentTypeRepo: paymentTypeRepo,
	}
}

var registerHeaders = []string{
	"Doc No", "Doc Date", "Payment Type", "Date From", "Date To",
	"Base", "Deductions", "Funds", "Pay Sum", "Status",
}

type registerRow struct {
	docNumber   int
	docDate     string
	paymentType string
	dateFrom    string
	dateTo      string
	baseSum     decimal.Decimal
	deductions  decimal.Decimal
	funds       decimal.Decimal
	paySum      decimal.Decimal
	status      string
}

// PaymentRegister produces the workbook bytes for companyID's current period.
func (s *Service) PaymentRegister(ctx context.Context, companyID string) ([]byte, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	rows, err := s.buildRows(ctx, comp)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Payment register"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for i, name := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(registerHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	totals := struct{ base, deductions, funds, pay decimal.Decimal }{}
	for i, r := range rows {
		rowNum := i + 2
		f.SetCellValue(sheet, cellName(1, rowNum), r.docNumber)
		f.SetCellValue(sheet, cellName(2, rowNum), r.docDate)
		f.SetCellValue(sheet, cellName(3, rowNum), r.paymentType)
		f.SetCellValue(sheet, cellName(4, rowNum), r.dateFrom)
		f.SetCellValue(sheet, cellName(5, rowNum), r.dateTo)
		f.SetCellValue(sheet, cellName(6, rowNum), r.baseSum.InexactFloat64())
		f.SetCellValue(sheet, cellName(7, rowNum), r.deductions.InexactFloat64())
		f.SetCellValue(sheet, cellName(8, rowNum), r.funds.InexactFloat64())
		f.SetCellValue(sheet, cellName(9, rowNum), r.paySum.InexactFloat64())
		f.SetCellValue(sheet, cellName(10, rowNum), r.status)

		totals.base = totals.base.Add(r.baseSum)
		totals.deductions = totals.deductions.Add(r.deductions)
		totals.funds = totals.funds.Add(r.funds)
		totals.pay = totals.pay.Add(r.paySum)
	}

	totalRow := len(rows) + 2
	f.SetCellValue(sheet, cellName(5, totalRow), "Total")
	f.SetCellValue(sheet, cellName(6, totalRow), totals.base.InexactFloat64())
	f.SetCellValue(sheet, cellName(7, totalRow), totals.deductions.InexactFloat64())
	f.SetCellValue(sheet, cellName(8, totalRow), totals.funds.InexactFloat64())
	f.SetCellValue(sheet, cellName(9, totalRow), totals.pay.InexactFloat64())
	f.SetCellStyle(sheet, cellName(5, totalRow), cellName(9, totalRow), headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Service) buildRows(ctx context.Context, comp company.Company) ([]registerRow, error) {
	accPeriod := comp.PayPeriod
	payments, err := s.paymentRepo.ListByCompany(ctx, comp.ID, &accPeriod, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	typeNames := map[string]string{}
	types, err := s.paymentTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment types: %w", err)
	}
	for _, pt := range types {
		typeNames[pt.ID] = pt.Name
	}

	rows := make([]registerRow, 0, len(payments))
	for _, p := range payments {
		name := typeNames[p.PaymentTypeID]
		if name == "" {
			name = p.PaymentTypeID
		}
		rows = append(rows, registerRow{
			docNumber:   p.DocNumber,
			docDate:     p.DocDate.Format("2006-01-02"),
			paymentType: name,
			dateFrom:    p.DateFrom.Format("2006-01-02"),
			dateTo:      p.DateTo.Format("2006-01-02"),
			baseSum:     p.BaseSum,
			deductions:  p.Deductions,
			funds:       p.Funds,
			paySum:      p.PaySum,
			status:      string(p.Status),
		})
	}
	return rows, nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
