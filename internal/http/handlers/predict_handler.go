// README: Prediction handlers for the full and simple breakdown plus health status.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/features"
	"farecast/internal/modules/predict"
)

type PredictHandler struct {
	predict *predict.Service
}

func NewPredictHandler(svc *predict.Service) *PredictHandler {
	return &PredictHandler{predict: svc}
}

// tripReq mirrors the trip attribute contract; validation happens here so the
// core can assume in-range values. PickupHour is a pointer because hour 0 is
// valid and would otherwise fail the required check.
type tripReq struct {
	TripDistance      float64 `json:"trip_distance" binding:"required,gt=0"`
	PickupLocationID  int     `json:"pickup_location_id" binding:"required,gte=1"`
	DropoffLocationID int     `json:"dropoff_location_id" binding:"required,gte=1"`
	DurationMin       float64 `json:"duration_min" binding:"required,gt=0"`
	PickupHour        *int    `json:"pickup_hour" binding:"required,gte=0,lte=23"`
	PickupDay         int     `json:"pickup_day" binding:"required,gte=1,lte=7"`
	PickupMonth       int     `json:"pickup_month" binding:"required,gte=1,lte=12"`
}

func (r tripReq) record() features.TripRecord {
	return features.TripRecord{
		TripDistance:      r.TripDistance,
		PickupLocationID:  r.PickupLocationID,
		DropoffLocationID: r.DropoffLocationID,
		DurationMin:       r.DurationMin,
		PickupHour:        *r.PickupHour,
		PickupDay:         r.PickupDay,
		PickupMonth:       r.PickupMonth,
	}
}

type predictionResponse struct {
	TotalAmount float64           `json:"total_amount"`
	Breakdown   predict.Breakdown `json:"breakdown"`
}

func (h *PredictHandler) Predict(c *gin.Context) {
	var req tripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip record: "+err.Error())
		return
	}
	b, err := h.predict.Predict(c.Request.Context(), req.record())
	if err != nil {
		writePredictError(c, err)
		return
	}
	c.JSON(http.StatusOK, predictionResponse{TotalAmount: b.Total, Breakdown: b})
}

func (h *PredictHandler) PredictSimple(c *gin.Context) {
	var req tripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip record: "+err.Error())
		return
	}
	b, err := h.predict.Predict(c.Request.Context(), req.record())
	if err != nil {
		writePredictError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_amount": b.Total})
}

func (h *PredictHandler) Health(c *gin.Context) {
	st := h.predict.Status()
	status := "healthy"
	if !st.ModelsLoaded {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        status,
		"models_loaded": st.ModelsLoaded,
		"accelerated":   st.Accelerated,
	})
}
