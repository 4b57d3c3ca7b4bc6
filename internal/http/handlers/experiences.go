package handlers

import (
	"net/http"
	"strconv"

	"voyago/internal/domain/models"
	"voyago/internal/http/middleware"
	"voyago/internal/repositories"
	"voyago/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/experiences
func ListExperiences(c *gin.Context) {
	repo := repositories.CatalogRepository{}
	out, err := repo.ListExperiences(0)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list experiences", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": out})
}

// GET /api/experiences/:id
func GetExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	repo := repositories.CatalogRepository{}
	exp, found, err := repo.GetExperienceByID(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load experience", err)
		return
	}
	if !found {
		RespondError(c, http.StatusNotFound, "experience not found", nil)
		return
	}
	c.JSON(http.StatusOK, exp)
}

type experienceRequest struct {
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency"`
}

// POST /api/experiences
func CreateExperience(c *gin.Context) {
	var req experienceRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	title := utils.NormalizeSpace(req.Title)
	if title == "" {
		RespondError(c, http.StatusBadRequest, "title is required", nil)
		return
	}

	repo := repositories.CatalogRepository{}
	id, err := repo.InsertExperience(models.Experience{
		Title:    title,
		Location: utils.TrimOrEmpty(req.Location),
		Price:    req.Price,
		Currency: utils.TrimOrEmpty(req.Currency),
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store experience", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "catalog", "create_experience", title)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type activityRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// POST /api/experiences/:id/activities
func CreateActivity(c *gin.Context) {
	expID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || expID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid experience id", err)
		return
	}
	var req activityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	name := utils.NormalizeSpace(req.Name)
	if name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	repo := repositories.CatalogRepository{}
	if _, found, err := repo.GetExperienceByID(expID); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load experience", err)
		return
	} else if !found {
		RespondError(c, http.StatusNotFound, "experience not found", nil)
		return
	}

	id, err := repo.InsertActivity(models.Activity{
		ExperienceID: expID,
		Name:         name,
		Price:        req.Price,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store activity", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "catalog", "create_activity", name)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
