package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qurocare.com/alms/core"
	"qurocare.com/alms/infrastructure/communication"
	"qurocare.com/alms/model"
	"qurocare.com/alms/web/common"
	"qurocare.com/alms/web/middlewares"
)

type Endpoint struct {
	svc       *core.Service
	slack     *communication.Slack
	jwtSecret []byte
}

func Register(r *gin.Engine, svc *core.Service, slack *communication.Slack, jwtSecret []byte) {
	endpoint := &Endpoint{svc: svc, slack: slack, jwtSecret: jwtSecret}

	r.POST("/api/v1/login", endpoint.Login)

	protected := r.Group("/api/v1")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		protected.GET("/attendance/today", endpoint.Today)
		protected.POST("/attendance/clockin", endpoint.ClockIn)
		protected.POST("/attendance/clockout", endpoint.ClockOut)
		protected.GET("/attendance/export", endpoint.ExportAttendance)
		protected.POST("/leaves", endpoint.CreateLeave)
		protected.POST("/reminders/run", endpoint.RunReminders)
	}
}

// employee resolves the authenticated employee from the token claims. A
// token naming an employee that has since left the table is rejected.
func (ep *Endpoint) employee(c *gin.Context) (*model.Employee, bool) {
	name := c.GetString(middlewares.ContextName)
	emp := ep.svc.Store.FindEmployee(name)
	if emp == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("unknown employee"))
		return nil, false
	}
	return emp, true
}
