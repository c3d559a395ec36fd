// Command seed prepares a database for the CMS: migrations, the first
// super admin, and bulk catalog and blog imports.
//
// Usage:
//
//	go run ./cmd/seed migrate
//	go run ./cmd/seed admin --email owner@agriseed.example --name Owner
//	go run ./cmd/seed products seed/products.yaml
//	go run ./cmd/seed blog seed/posts.csv
package main

import (
	"os"

	"github.com/AgriSeed/agriseed-cms-backend/cmd/seed/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
