package main

import (
	"context"
	"encoding/base64"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"qurocare.com/alms/core"
	"qurocare.com/alms/infrastructure/communication"
	"qurocare.com/alms/infrastructure/devops"
	"qurocare.com/alms/store"
	"qurocare.com/alms/web/handlers"
)

func main() {
	cfg, err := devops.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	base64Secret := os.Getenv("ALMS_SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil || len(jwtSecret) == 0 {
		log.Fatal("ALMS_SIGNING_SECRET must be a non-empty base64 string")
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	mailer, err := communication.NewMailer(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	slack := communication.ConnectSlack(cfg.Slack.ChannelID)

	svc := core.NewService(st, mailer, cfg.AdminEmail)

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handlers.Register(r, svc, slack, jwtSecret)

	r.Run(cfg.Addr)
}
