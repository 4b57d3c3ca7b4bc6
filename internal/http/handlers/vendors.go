package handlers

import (
	"net/http"

	"voyago/internal/domain/models"
	"voyago/internal/http/middleware"
	"voyago/internal/repositories"
	"voyago/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/vendor-profile
func GetVendorProfile(c *gin.Context) {
	repo := repositories.VendorRepository{}
	v, found, err := repo.GetProfile()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load vendor profile", err)
		return
	}
	if !found {
		RespondError(c, http.StatusNotFound, "vendor profile not configured", nil)
		return
	}
	c.JSON(http.StatusOK, v)
}

type vendorProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	GSTNumber   string `json:"gst_number"`
	State       string `json:"state"`
	LogoURL     string `json:"logo_url"`
}

// PUT /api/vendor-profile
func SaveVendorProfile(c *gin.Context) {
	var req vendorProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.VendorRepository{}
	existing, found, err := repo.GetProfile()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load vendor profile", err)
		return
	}

	v := models.VendorProfile{
		FirstName:   utils.TrimOrEmpty(req.FirstName),
		LastName:    utils.TrimOrEmpty(req.LastName),
		CompanyName: utils.NormalizeSpace(req.CompanyName),
		Address:     utils.TrimOrEmpty(req.Address),
		GSTNumber:   utils.TrimOrEmpty(req.GSTNumber),
		State:       utils.TrimOrEmpty(req.State),
		LogoURL:     utils.TrimOrEmpty(req.LogoURL),
	}
	if found {
		v.ID = existing.ID
	}

	saved, err := repo.SaveProfile(v)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store vendor profile", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "vendor", "save_profile", saved.CompanyName)
	c.JSON(http.StatusOK, saved)
}
