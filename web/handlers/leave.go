package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"qurocare.com/alms/web/common"
)

type leaveDTO struct {
	StartDate common.DateOnly `json:"start_date" binding:"required"`
	EndDate   common.DateOnly `json:"end_date" binding:"required"`
	Reason    string          `json:"reason"`
}

// CreateLeave appends a leave request. Submission is always accepted; the
// admin notification may fail without rolling the leave row back, in which
// case the response carries a warning.
func (ep *Endpoint) CreateLeave(c *gin.Context) {
	emp, ok := ep.employee(c)
	if !ok {
		return
	}

	var body leaveDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	result, err := ep.svc.SubmitLeave(
		c.Request.Context(),
		*emp,
		body.StartDate.Format("2006-01-02"),
		body.EndDate.Format("2006-01-02"),
		body.Reason,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if ep.slack != nil {
		msg := fmt.Sprintf("New leave request: %s, %s to %s (%s)",
			result.Leave.Name, result.Leave.StartDate, result.Leave.EndDate, result.Leave.Reason)
		if err := ep.slack.Notify(msg); err != nil {
			log.Printf("slack notification failed: %v", err)
		}
	}

	if result.NotifyErr != nil {
		c.JSON(http.StatusOK, common.NewWarningResponse(result.Leave,
			fmt.Sprintf("Email error: %v", result.NotifyErr)))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(result.Leave))
}
