package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"fixitsl-be/config"
	"fixitsl-be/controllers"
	"fixitsl-be/repositories"
	"fixitsl-be/routes"
	"fixitsl-be/services"
	"fixitsl-be/storage"
	authUtils "fixitsl-be/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const maxImageSize = 5 << 20 // 5MB upload limit

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	config.ConnectRedis()
	storageClient := config.ConnectStorage()

	blobStore := storage.NewBlobStore(
		storageClient,
		os.Getenv("MINIO_BUCKET"),
		os.Getenv("MINIO_PUBLIC_URL"),
	)

	issueService := services.NewIssueService(
		repositories.NewMongoIssueRepository(),
		blobStore,
		authUtils.VerifyToken,
	)

	issueController := controllers.NewIssueController(issueService)
	authController := controllers.NewAuthController(repositories.NewMongoUserRepository())

	r := gin.Default()
	r.MaxMultipartMemory = maxImageSize
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	reportLimit := 20
	if v, err := strconv.Atoi(os.Getenv("REPORT_LIMIT_PER_DAY")); err == nil && v > 0 {
		reportLimit = v
	}

	routes.AuthRoutes(r, authController)
	routes.IssueRoutes(r, issueController, reportLimit)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
