package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/infrastructure/communication"
	"securityscan.com/securityscan/infrastructure/devops"
	"securityscan.com/securityscan/infrastructure/filesystem"
	"securityscan.com/securityscan/web/common"
	"securityscan.com/securityscan/web/handlers/admin"
	"securityscan.com/securityscan/web/handlers/department"
	"securityscan.com/securityscan/web/handlers/deptuser"
	"securityscan.com/securityscan/web/handlers/form"
	"securityscan.com/securityscan/web/handlers/user"
)

func main() {
	ctx := context.Background()

	cfg, err := devops.LoadConfiguration(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.DSN == "" {
		log.Fatal("DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("SECURITYSCAN_SIGNING_SECRET is required")
	}

	dm, err := core.New(cfg.DSN, 10, core.LogLevelWarn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer dm.Close()

	var storage filesystem.Storage
	if cfg.S3Bucket != "" {
		s3Storage, err := filesystem.NewS3Storage(ctx, cfg.S3Bucket, cfg.S3BaseURL)
		if err != nil {
			log.Fatalf("failed to init s3 storage: %v", err)
		}
		storage = s3Storage
	} else {
		storage = filesystem.NewLocalStorage(cfg.UploadDir, cfg.BaseURL)
	}

	var mailer *communication.Mailer
	if cfg.MailFrom != "" {
		mailer, err = communication.NewMailer(ctx, cfg.MailFrom)
		if err != nil {
			log.Fatalf("failed to init mailer: %v", err)
		}
	}

	base := common.Handler{
		Dm:      dm,
		Storage: storage,
		Mailer:  mailer,
		Slack:   communication.ConnectSlack(),
		Config:  cfg,
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	if cfg.S3Bucket == "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	form.Register(r.Group("/forms"), base)
	department.Register(r.Group("/departments"), base, cfg.JWTSecret)
	deptuser.Register(r.Group("/deptUsers"), base, cfg.JWTSecret)
	admin.Register(r.Group("/admin"), base, cfg.JWTSecret)
	user.Register(r.Group("/users"), base, cfg.JWTSecret)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
