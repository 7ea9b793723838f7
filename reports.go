package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aakashreddy12/CRMA/models"
	"github.com/aakashreddy12/CRMA/models/reports"
	"github.com/gin-gonic/gin"
)

func dashboardParams(c *gin.Context) (int, models.SortBy, models.SortOrder, error) {
	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, "", "", fmt.Errorf("invalid year %q", v)
		}
		year = n
	}
	var sortBy models.SortBy
	if err := sortBy.Parse(c.Query("sort_by")); err != nil {
		return 0, "", "", err
	}
	var sortOrder models.SortOrder
	if err := sortOrder.Parse(c.Query("sort_order")); err != nil {
		return 0, "", "", err
	}
	return year, sortBy, sortOrder, nil
}

func dashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		year, sortBy, sortOrder, err := dashboardParams(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx, span := tracer.Start(c.Request.Context(), "reports.dashboard")
		defer span.End()
		resp, err := reports.GetDashboardReport(ctx, year, sortBy, sortOrder)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func dashboardExportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		year, sortBy, sortOrder, err := dashboardParams(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx, span := tracer.Start(c.Request.Context(), "reports.dashboard-export")
		defer span.End()
		resp, err := reports.GetDashboardReport(ctx, year, sortBy, sortOrder)
		if err != nil {
			respondError(c, err)
			return
		}
		f, err := reports.ExportDashboardExcel(ctx, resp)
		if err != nil {
			respondError(c, err)
			return
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=dashboard-%d.xlsx", year))
		if err := f.Write(c.Writer); err != nil {
			respondError(c, err)
		}
	}
}
