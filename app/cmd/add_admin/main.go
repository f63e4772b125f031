// Command add_admin creates or resets an admin account directly in the
// database, for when the first-run bootstrap was skipped or a password is
// lost.
//
// Usage: add_admin <username> <password>
package main

import (
	"fmt"
	"os"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/config"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/database"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/models"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/auth"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: add_admin <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]

	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		fmt.Printf("Error ensuring schema: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	if existing, err := database.GetAdminByUsername(db, username); err == nil {
		if err := database.UpdateAdminPassword(db, existing.ID, hash); err != nil {
			fmt.Printf("Error updating admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Password updated for admin %q\n", username)
		return
	}

	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := database.CreateAdmin(db, admin); err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Admin %q created\n", username)
}
