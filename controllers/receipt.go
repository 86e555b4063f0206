package controllers

import (
	"betteru-backend/models"
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// GeneratePaymentReceiptPDF renders the payment receipt attached to the
// confirmation email.
func GeneratePaymentReceiptPDF(appointment models.Appointment) ([]byte, error) {
	// Initialize PDF document
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(63, 81, 181)
	pdf.CellFormat(0, 10, "BetterU - Counseling Appointment", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "www.betteru.app", "", 1, "C", false, 0, "")

	// Appointment details section
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Payment Receipt", "1", 1, "C", false, 0, "")
	addReceiptDetail(pdf, "Receipt No", uuid.New().String(), true)
	addReceiptDetail(pdf, "Transaction ID", appointment.TransactionID, true)
	addReceiptDetail(pdf, "Patient Name", appointment.PatientName, true)
	addReceiptDetail(pdf, "Appointment Date", appointment.Date, true)
	addReceiptDetail(pdf, "Time", appointment.Time, true)

	// Payment details section
	pdf.CellFormat(0, 10, "Payment Details", "1", 1, "C", false, 0, "")
	addReceiptDetail(pdf, "Payment Status", appointment.PaymentStatus, false)
	pdf.SetFont("Arial", "B", 13)
	addReceiptDetail(pdf, "Amount Paid", fmt.Sprintf("%.2f BDT", appointment.TotalAmount), true)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, "Thank you for booking a session with BetterU. Your counselor will be ready at the scheduled time.", "", "L", false)

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	// Output PDF to buffer
	var pdfBuffer bytes.Buffer
	err := pdf.Output(&pdfBuffer)
	if err != nil {
		return nil, err
	}

	return pdfBuffer.Bytes(), nil
}

// addReceiptDetail adds a detail line to the PDF
func addReceiptDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
