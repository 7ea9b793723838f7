package models

import (
	"log"

	"github.com/aakashreddy12/CRMA/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Project{}, &PaymentHistory{},
		&Module{}, &Inverter{}, &CustomerModuleAssignment{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
