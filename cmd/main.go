// cmd/main.go
package main

import (
	"github.com/george-593/microsoft-bank-website/app"
	_ "github.com/george-593/microsoft-bank-website/docs"
)

// @title           Bank API
// @version         1.0
// @description     Tutorial banking REST API backed by an in-memory account store.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /
func main() {
	app.Run()
}
