package main

import (
	"net/http"

	"github.com/aakashreddy12/CRMA/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// listAssignmentsHandler reports the hardware assigned to a project's
// customer with the summed capacity contribution.
func listAssignmentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		project, err := models.GetProject(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		assignments, err := models.ListAssignmentsForCustomer(c.Request.Context(), project.CustomerName)
		if err != nil {
			respondError(c, err)
			return
		}
		totalKwh := decimal.Zero
		for _, a := range assignments {
			totalKwh = totalKwh.Add(a.KwhContribution())
		}
		c.JSON(http.StatusOK, gin.H{
			"assignments": assignments,
			"total_kwh":   totalKwh,
		})
	}
}

func createAssignmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		var input models.NewCustomerModuleAssignment
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, err)
			return
		}
		assignment, err := models.CreateAssignment(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, assignment)
	}
}

func deleteAssignmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		if err := models.DeleteAssignment(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

type newModuleRequest struct {
	Name string          `json:"name" binding:"required"`
	Watt decimal.Decimal `json:"watt" binding:"required"`
}

func listModulesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		modules, err := models.ListModules(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"modules": modules})
	}
}

func createModuleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		var req newModuleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		module, err := models.CreateModule(c.Request.Context(), req.Name, req.Watt)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, module)
	}
}

type newInverterRequest struct {
	Name string `json:"name" binding:"required"`
}

func listInvertersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		inverters, err := models.ListInverters(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"inverters": inverters})
	}
}

func createInverterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		var req newInverterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		inverter, err := models.CreateInverter(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, inverter)
	}
}
