package main

import (
	"cpl/config"
	"cpl/controller"
	"cpl/docs"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           CPL Backend API
// @version         1.0
// @description     Backend API for the Carrom Premier League.
func main() {
	t := time.Now()

	cfg := config.Env()
	db, err := config.InitDB(
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.DatabaseName,
	)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	err = r.SetTrustedProxies(nil)
	if err != nil {
		fmt.Println("Failed to set trusted proxies:", err)
		return
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r)
	cacheStore := persistence.NewInMemoryStore(60 * time.Second)
	controller.SetRoutes(r, db, cacheStore)
	fmt.Println("Server started in", time.Since(t))
	err = r.Run(":" + cfg.AppPort)
	if err != nil {
		fmt.Println("Failed to start server:", err)
	}
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine) {
	corsConfig := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))
}
