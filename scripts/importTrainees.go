package main

import (
	"encoding/csv"
	"lms/config"
	"lms/database"
	"lms/models"
	"lms/utils"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Trainees.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		firstName := getField(row, headerIndex, "first_name")
		lastName := getField(row, headerIndex, "last_name")
		email := strings.ToLower(getField(row, headerIndex, "email"))
		password := getField(row, headerIndex, "password")

		// Skip if no name or email
		if firstName == "" || email == "" {
			skipped++
			continue
		}

		if password == "" {
			password = "changeme123"
		}

		// Check if a user with this email already exists
		var existing models.User
		result := database.Database.Db.Where("email = ?", email).First(&existing)

		if result.Error != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
			if err != nil {
				log.Printf("Error hashing password for %s: %v", email, err)
				continue
			}

			code := utils.GenerateTraineeID()
			trainee := models.User{
				FirstName:      firstName,
				LastName:       lastName,
				Email:          email,
				Password:       string(hashed),
				Role:           models.RoleTrainee,
				TraineeID:      &code,
				ProfilePicture: models.DefaultAvatar,
			}

			if err := database.Database.Db.Create(&trainee).Error; err != nil {
				log.Printf("Error inserting trainee %s: %v", email, err)
				continue
			}
			inserted++
		} else {
			// Update name fields, keep the existing password and trainee code
			existing.FirstName = firstName
			existing.LastName = lastName

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating trainee %s: %v", email, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
