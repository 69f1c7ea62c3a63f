package main

import (
	"gin-sweetshop/infra"
	"gin-sweetshop/models"
	"log"
	"os"
)

var seedSweets = []models.Sweet{
	{Name: "Chocolate Bar", Category: "Chocolate", Price: 2.99, Quantity: 50},
	{Name: "Gummy Bears", Category: "Gummies", Price: 1.99, Quantity: 75},
	{Name: "Lollipop", Category: "Hard Candy", Price: 0.99, Quantity: 100},
	{Name: "Caramel Candy", Category: "Caramel", Price: 3.49, Quantity: 30},
	{Name: "Jelly Beans", Category: "Jelly", Price: 2.49, Quantity: 60},
	{Name: "Marshmallows", Category: "Soft", Price: 1.79, Quantity: 40},
	{Name: "Licorice", Category: "Licorice", Price: 2.29, Quantity: 25},
	{Name: "Rock Candy", Category: "Hard Candy", Price: 1.49, Quantity: 35},
}

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.Sweet{}, &models.User{}); err != nil {
		panic("Failed to migrate database")
	}

	// トークンブラックリスト用のSQLiteデータベースのマイグレーション
	tokenDB := infra.SetupTokenDB()
	if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
		panic("Failed to migrate token blacklist database")
	}

	if os.Getenv("SEED") == "true" {
		log.Println("Seeding sweets...")
		if err := db.Where("1 = 1").Delete(&models.Sweet{}).Error; err != nil {
			panic("Failed to clear sweets")
		}
		for _, sweet := range seedSweets {
			if err := db.Create(&sweet).Error; err != nil {
				panic("Failed to seed sweets")
			}
		}
		log.Println("Seeding completed")
	}
}
