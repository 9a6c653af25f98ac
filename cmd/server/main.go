package main

import (
	"github.com/atlasdesk/support-backend/internal/bootstrap"
)

// @title Support Backend API
// @version 1.0.0
// @description API server for the customer support chatbot dashboard

// @host api.atlasdesk.example.com
// @BasePath /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	bootstrap.Run()
}
