package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/pranjal299/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
