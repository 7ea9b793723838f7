package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aakashreddy12/CRMA/models"
	"github.com/gin-gonic/gin"
)

func paramId(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func listProjectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		projects, err := models.ListProjects(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"projects": projects})
	}
}

func getProjectHandler() gin.HandlerFunc {
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
		c.JSON(http.StatusOK, project)
	}
}

func createProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		var input models.NewProject
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, err)
			return
		}
		project, err := models.CreateProject(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, project)
	}
}

func updateCustomerDetailsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		var input models.CustomerDetailsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, err)
			return
		}
		project, err := models.UpdateCustomerDetails(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

func updateProjectDetailsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		var input models.ProjectDetailsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, err)
			return
		}
		project, err := models.UpdateProjectDetails(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

func deleteProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		if err := models.MarkProjectDeleted(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// stageTransitionHandler serves both directions; "moved" is false when the
// project was already at the boundary and nothing changed.
func stageTransitionHandler(step func(ctx context.Context, id int) (*models.Project, bool, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := paramId(c, "id")
		if !ok {
			return
		}
		project, moved, err := step(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"project": project,
			"moved":   moved,
		})
	}
}
