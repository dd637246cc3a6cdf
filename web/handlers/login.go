package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"qurocare.com/alms/security"
	"qurocare.com/alms/web/common"
	"qurocare.com/alms/web/middlewares"
)

const sessionTTL = 12 * time.Hour

type loginDTO struct {
	Name    string `json:"name"`
	Passkey string `json:"passkey"`
}

// Login authenticates by linear scan of the employee table. The three
// failure modes each get their own message so the form can tell the user
// what to fix. A successful login also runs the overdue clock-out sweep.
func (ep *Endpoint) Login(c *gin.Context) {
	var body loginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if strings.TrimSpace(body.Name) == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Please select a valid name."))
		return
	}
	if body.Passkey == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Please enter your passkey."))
		return
	}

	emp := ep.svc.Authenticate(body.Name, body.Passkey)
	if emp == nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid name or passkey."))
		return
	}

	reminded, err := ep.svc.SendOverdueReminders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	signed, err := security.CreateSessionToken(emp.Name, ep.jwtSecret, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.SetCookie(middlewares.SessionCookie, signed, int(sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"token":    signed,
		"employee": emp,
		"today":    ep.svc.Today(*emp),
		"reminded": reminded,
	}))
}
