package controllers

import (
	"betteru-backend/configuration"
	"betteru-backend/models"
	"betteru-backend/payment"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// gateway is the payment collaborator, constructed once at startup.
var gateway payment.Gateway

// SetPaymentGateway wires the gateway client in. main injects the real
// SSLCommerz client; tests inject a fake.
func SetPaymentGateway(g payment.Gateway) {
	gateway = g
}

type initiatePaymentRequest struct {
	UserID       uint    `json:"user_id" validate:"required"`
	DoctorID     uint    `json:"doctor_id" validate:"required"`
	PatientName  string  `json:"patient_name" validate:"required"`
	PatientEmail string  `json:"patient_email" validate:"required,email"`
	PatientPhone string  `json:"patient_phone"`
	Date         string  `json:"date" validate:"required"`
	Time         string  `json:"time" validate:"required"`
	TotalAmount  float64 `json:"total_amount" validate:"required,gt=0"`
	ItemID       string  `json:"item_id" validate:"required"`
}

// InitiatePayment records a pending appointment keyed by the transaction id,
// then asks the gateway for the hosted payment page URL. If the gateway call
// fails the pending row is left behind on purpose: the callback flow can
// never observe an appointment that does not exist yet.
func InitiatePayment(c *gin.Context) {
	var req initiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	appointment := models.Appointment{
		UserID:        req.UserID,
		DoctorID:      req.DoctorID,
		PatientName:   req.PatientName,
		PatientEmail:  req.PatientEmail,
		PatientPhone:  req.PatientPhone,
		Date:          req.Date,
		Time:          req.Time,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: "pending",
		TransactionID: req.ItemID,
		ItemID:        req.ItemID,
	}

	if err := configuration.DB.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An appointment with this item id already exists"})
		return
	}

	redirectURL, err := gateway.CreateSession(payment.SessionRequest{
		TransactionID: appointment.TransactionID,
		TotalAmount:   appointment.TotalAmount,
		CustomerName:  appointment.PatientName,
		CustomerEmail: appointment.PatientEmail,
		CustomerPhone: appointment.PatientPhone,
		ProductName:   "Counseling appointment",
	})
	if err != nil {
		log.Println("Gateway session failed, appointment left pending:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to initiate payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Payment session created",
		"url":     redirectURL,
		"data":    appointment,
	})
}

// PaymentSuccess handles the gateway's success callback. The transaction is
// checked against the gateway validation API before any state changes.
func PaymentSuccess(c *gin.Context) {
	tranID := c.PostForm("tran_id")
	valID := c.PostForm("val_id")
	clientURL := os.Getenv("CLIENT_URL")

	var appointment models.Appointment
	if err := configuration.DB.Where("transaction_id = ?", tranID).First(&appointment).Error; err != nil {
		log.Println("Success callback for unknown transaction:", tranID)
		c.Redirect(http.StatusFound, clientURL+"/payment/success")
		return
	}

	valid, err := gateway.ValidateTransaction(valID)
	if err != nil || !valid {
		log.Println("Could not validate transaction", tranID, ":", err)
		c.Redirect(http.StatusFound, clientURL+"/payment/fail")
		return
	}

	if err := configuration.DB.Model(&appointment).Update("payment_status", "paid").Error; err != nil {
		log.Println("Failed to update payment status:", err)
		c.Redirect(http.StatusFound, clientURL+"/payment/fail")
		return
	}

	// Receipt delivery is best-effort, the payment is already reconciled
	sendPaymentReceipt(appointment)

	c.Redirect(http.StatusFound, clientURL+"/payment/success?tran_id="+tranID)
}

// PaymentFail handles the gateway's fail callback.
func PaymentFail(c *gin.Context) {
	tranID := c.PostForm("tran_id")
	clientURL := os.Getenv("CLIENT_URL")

	var appointment models.Appointment
	if err := configuration.DB.Where("transaction_id = ?", tranID).First(&appointment).Error; err != nil {
		log.Println("Fail callback for unknown transaction:", tranID)
		c.Redirect(http.StatusFound, clientURL+"/payment/fail")
		return
	}

	if err := configuration.DB.Model(&appointment).Update("payment_status", "failed").Error; err != nil {
		log.Println("Failed to update payment status:", err)
	}

	c.Redirect(http.StatusFound, clientURL+"/payment/fail?tran_id="+tranID)
}

// PaymentCancel handles the gateway's cancel callback.
func PaymentCancel(c *gin.Context) {
	tranID := c.PostForm("tran_id")
	clientURL := os.Getenv("CLIENT_URL")

	var appointment models.Appointment
	if err := configuration.DB.Where("transaction_id = ?", tranID).First(&appointment).Error; err != nil {
		log.Println("Cancel callback for unknown transaction:", tranID)
		c.Redirect(http.StatusFound, clientURL+"/payment/cancel")
		return
	}

	if err := configuration.DB.Model(&appointment).Update("payment_status", "cancelled").Error; err != nil {
		log.Println("Failed to update payment status:", err)
	}

	c.Redirect(http.StatusFound, clientURL+"/payment/cancel?tran_id="+tranID)
}

// PaymentIPN handles the gateway's server-to-server notification. It always
// acknowledges with 200 so the gateway stops retrying; only a VALID status
// that passes the validation API moves the appointment to paid.
func PaymentIPN(c *gin.Context) {
	tranID := c.PostForm("tran_id")
	valID := c.PostForm("val_id")
	status := c.PostForm("status")

	if status != "VALID" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var appointment models.Appointment
	if err := configuration.DB.Where("transaction_id = ?", tranID).First(&appointment).Error; err != nil {
		log.Println("IPN for unknown transaction:", tranID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	valid, err := gateway.ValidateTransaction(valID)
	if err != nil || !valid {
		log.Println("Could not validate IPN for transaction", tranID, ":", err)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := configuration.DB.Model(&appointment).Update("payment_status", "paid").Error; err != nil {
		log.Println("Failed to update payment status from IPN:", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}

// sendPaymentReceipt emails the PDF receipt to the patient. Failures are
// logged and swallowed.
func sendPaymentReceipt(appointment models.Appointment) {
	pdfReceipt, err := GeneratePaymentReceiptPDF(appointment)
	if err != nil {
		log.Println("Failed to generate receipt PDF:", err)
		return
	}
	if err := SendEmail("Your BetterU appointment payment was successful.",
		"Payment confirmation", appointment.PatientEmail, "receipt.pdf", pdfReceipt); err != nil {
		log.Println("Failed to send receipt email:", err)
	}
}
