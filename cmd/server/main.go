package main

import (
	"github.com/joho/godotenv"

	"github.com/campusboard/server/cmd/server/cmd"
)

func main() {
	// A missing .env file is fine; deployed environments set real env vars.
	_ = godotenv.Load()

	cmd.Execute()
}
