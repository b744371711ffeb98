package handlers

import (
	"net/http"

	"md-shaving/internal/api/models"
	"md-shaving/internal/degradation"

	"github.com/gin-gonic/gin"
)

// DegradationHandler serves standalone capacity trajectories.
type DegradationHandler struct{}

// NewDegradationHandler creates a degradation handler.
func NewDegradationHandler() *DegradationHandler {
	return &DegradationHandler{}
}

// GetTrajectory handles GET /api/v1/degradation?total_energy_kwh=N.
func (h *DegradationHandler) GetTrajectory(c *gin.Context) {
	var req models.TrajectoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	traj, err := degradation.Trajectory(req.TotalEnergyKWh)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_ENERGY", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.TrajectoryResponse{
		TotalEnergyKWh: req.TotalEnergyKWh,
		EOLYear:        degradation.EOLYear(),
		Degradation:    traj,
	})
}
