package controllers

import (
	"net/http"

	"fitbyte-be/internal/models"
	"fitbyte-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activityService service.ActivityService
}

func NewActivityController(activityService service.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// CreateActivity handles POST /v1/activity
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	activity, err := ac.activityService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// ListActivities handles GET /v1/activity
func (ac *ActivityController) ListActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// string fields cannot fail to bind; bad values are ignored by the service
	var query models.ListActivitiesQuery
	_ = c.ShouldBindQuery(&query)

	activities, err := ac.activityService.List(c.Request.Context(), userID, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// UpdateActivity handles PATCH /v1/activity/:activityId
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	activity, err := ac.activityService.Update(c.Request.Context(), userID, c.Param("activityId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity handles DELETE /v1/activity/:activityId
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ac.activityService.Delete(c.Request.Context(), userID, c.Param("activityId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Activity deleted successfully",
	})
}
