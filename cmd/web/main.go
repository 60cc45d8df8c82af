// @title           hireview API
// @version         1.0
// @description     API для управления AI-интервью с кандидатами.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import (
	"log"

	"github.com/joho/godotenv"

	"hireview_backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	app.Run()
}
