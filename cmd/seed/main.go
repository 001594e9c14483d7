package main

import (
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/security"
	"securityscan.com/securityscan/utils"
)

// seed migrates the schema and loads the initial directory data. Safe to run
// repeatedly: departments upsert by name and the bootstrap admin is only
// created when the table is empty.
func main() {
	departmentsCSV := flag.String("departments", "", "CSV of departments to load, one name per row")
	flag.Parse()

	dsn := os.Getenv("DSN")
	if dsn == "" {
		log.Fatal("DSN is required")
	}

	dm, err := core.New(dsn, 2, core.LogLevelInfo)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer dm.Close()

	err = dm.DB.AutoMigrate(
		&model.Admin{},
		&model.User{},
		&model.Department{},
		&model.DeptUser{},
		&model.Form{},
		&model.ScanRecord{},
		&model.Counter{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if *departmentsCSV != "" {
		if err := seedDepartments(dm, *departmentsCSV); err != nil {
			log.Fatalf("failed to seed departments: %v", err)
		}
	}

	if err := bootstrapAdmin(dm); err != nil {
		log.Fatalf("failed to bootstrap admin: %v", err)
	}

	log.Println("seed complete")
}

func seedDepartments(dm *core.DatabaseManager, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := utils.ParseCSV(f)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if len(row) == 0 || row[0] == "" || row[0] == "name" {
			continue
		}
		dept := model.Department{ID: uuid.NewString(), Name: row[0]}
		err := dm.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&dept).Error
		if err != nil {
			return err
		}
		log.Printf("department %q loaded", row[0])
	}
	return nil
}

func bootstrapAdmin(dm *core.DatabaseManager) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := dm.DB.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.Admin{
		ID:       uuid.NewString(),
		Name:     "Administrator",
		Email:    email,
		Password: hash,
	}
	if err := dm.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("bootstrap admin %s created", email)
	return nil
}
