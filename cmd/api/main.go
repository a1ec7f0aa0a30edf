package main

import (
	_ "github.com/digilabhq/DCQuoting/docs"
	"github.com/digilabhq/DCQuoting/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           DC Quoting API
// @version         1.0
// @description     Closet installation quoting service (estimates + deposit payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
