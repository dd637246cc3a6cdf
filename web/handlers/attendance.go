package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"qurocare.com/alms/core"
	"qurocare.com/alms/web/common"
)

func (ep *Endpoint) Today(c *gin.Context) {
	emp, ok := ep.employee(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.svc.Today(*emp)))
}

func (ep *Endpoint) ClockIn(c *gin.Context) {
	emp, ok := ep.employee(c)
	if !ok {
		return
	}

	result, err := ep.svc.ClockIn(*emp)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrAlreadyClockedIn) || errors.Is(err, core.ErrDayComplete) {
			status = http.StatusConflict
		}
		c.JSON(status, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"clock_in": result.ClockIn,
		"status":   result.Status,
		"message":  fmt.Sprintf("Clocked in at %s. Status: %s", result.ClockIn, result.Status),
	}))
}

func (ep *Endpoint) ClockOut(c *gin.Context) {
	emp, ok := ep.employee(c)
	if !ok {
		return
	}

	result, err := ep.svc.ClockOut(*emp)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrNotClockedIn) {
			status = http.StatusConflict
		}
		c.JSON(status, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"clock_out": result.ClockOut,
		"duration":  result.Duration,
		"message":   fmt.Sprintf("Clocked out at %s. Worked for %.2f hours.", result.ClockOut, result.Duration),
	}))
}

func (ep *Endpoint) RunReminders(c *gin.Context) {
	reminded, err := ep.svc.SendOverdueReminders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"reminded": reminded}))
}
