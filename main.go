package main

import "github.com/killallgit/gameshelf-api/cmd"

// @title           GameShelf API
// @version         1.0.0
// @description     Board game search and catalog API backed by BoardGameGeek
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/gameshelf-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
