// Package main is the entry point of the ERP ledger backend.
package main

import (
	"os"

	"github.com/Yousifhashim249/ERP-project/cmd/erp_backend/cmd"
)

// @title ERP Ledger API
// @version 1.0
// @description Double-entry ledger and posting engine of the ERP backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
