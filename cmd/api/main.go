package main

import (
	"fmt"
	"os"

	"screenprint_estimator/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Screen-Print Estimator API
// @version         1.0
// @description     Prices screen-printed garment orders and keeps a current estimate plus named pinned estimates.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "screenprint estimator: %v\n", err)
		os.Exit(1)
	}
}
