package main

import (
	"fmt"
	"net/http"

	"github.com/aakashreddy12/CRMA/models"
	"github.com/gin-gonic/gin"
)

func listPaymentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		entries, err := models.ListPayments(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		project, err := models.GetProject(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"payments": entries,
			// Advisory only; the server never rejects a payment above it.
			"payment_ceiling": project.PaymentCeiling(),
		})
	}
}

func addPaymentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		var input models.NewPayment
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, err)
			return
		}
		payment, err := models.AddPayment(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, payment)
	}
}

func deletePaymentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireFinance(c) {
			return
		}
		paymentId := c.Param("id")
		if paymentId == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		if err := models.DeletePayment(c.Request.Context(), paymentId); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

func receiptHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		paymentId := c.Param("paymentId")

		data, err := models.BuildReceiptData(c.Request.Context(), id, paymentId)
		if err != nil {
			respondError(c, err)
			return
		}
		pdfBytes, err := models.RenderReceiptPDF(data)
		if err != nil {
			respondError(c, err)
			return
		}

		filename := fmt.Sprintf("receipt-%s.pdf", data.ReceiptNo)
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}
