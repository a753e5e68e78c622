package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/yapzhanrui2/E-Commerce-Website/config"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

var coffeeProducts = []models.Product{
	{
		Name:        "Colombian Supremo",
		Description: "A smooth medium roast with chocolatey notes and a clean finish.",
		Price:       14.99,
		Image:       "https://example.com/images/colombian-supremo.jpg",
		Categories:  []string{"Medium Roast", "Colombian", "Single Origin"},
	},
	{
		Name:        "Ethiopian Yirgacheffe",
		Description: "Floral aroma with bright citrus flavors and hints of blueberry.",
		Price:       16.50,
		Image:       "https://example.com/images/ethiopian-yirgacheffe.jpg",
		Categories:  []string{"Light Roast", "Ethiopian", "Single Origin"},
	},
	{
		Name:        "Kenyan AA",
		Description: "Vibrant acidity with notes of black currant and a rich aroma.",
		Price:       17.00,
		Image:       "https://example.com/images/kenyan-aa.jpg",
		Categories:  []string{"Medium Roast", "Kenyan", "Single Origin"},
	},
	{
		Name:        "Sumatra Mandheling",
		Description: "Earthy and bold with herbal notes, perfect for dark roast lovers.",
		Price:       15.75,
		Image:       "https://example.com/images/sumatra-mandheling.jpg",
		Categories:  []string{"Dark Roast", "Sumatra", "Single Origin"},
	},
	{
		Name:        "Guatemala Antigua",
		Description: "Delicate sweetness with hints of caramel and a smoky finish.",
		Price:       13.99,
		Image:       "https://example.com/images/guatemala-antigua.jpg",
		Categories:  []string{"Medium Roast", "Guatemalan", "Single Origin"},
	},
	{
		Name:        "Brazil Santos",
		Description: "Balanced, low acidity coffee with a nutty and chocolatey profile.",
		Price:       12.50,
		Image:       "https://example.com/images/brazil-santos.jpg",
		Categories:  []string{"Medium Roast", "Brazilian"},
	},
	{
		Name:        "Honduras Marcala",
		Description: "Well-rounded body featuring sweet cocoa and mild fruity tones.",
		Price:       14.00,
		Image:       "https://example.com/images/honduras-marcala.jpg",
		Categories:  []string{"Medium Roast", "Honduran", "Organic"},
	},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Connect database: %v", err)
	}

	if err := db.Create(&coffeeProducts).Error; err != nil {
		log.Fatalf("Seed products: %v", err)
	}
	log.Printf("Seeded %d products", len(coffeeProducts))
}
