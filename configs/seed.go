package configs

import (
	"github.com/Naveendeworks/emergent/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the staff account on first boot.
func SeedAdmin(username, password string) error {
	db := DB()
	if username == "" || password == "" {
		logrus.Warn("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		logrus.Infof("admin already exists: %s", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin := entity.User{
		Username: username,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu loads the static catalog. FirstOrCreate keeps reboots idempotent.
func SeedMenu() error {
	db := DB()

	items := []entity.MenuItem{
		{ID: "dosa", Name: "Dosa", Chef: "Sunoj", SousChef: "Rakesh", Category: "South Indian", Price: 10.99, Available: true},
		{ID: "chicken_biryani", Name: "Chicken Biryani", Chef: "Nachu", SousChef: "Sreedhar", Category: "Biryani", Price: 12.99, Available: true},
		{ID: "goat_biryani", Name: "Goat Biryani", Chef: "Mario", SousChef: "Rakesh", Category: "Biryani", Price: 12.99, Available: true},
		{ID: "goat_curry", Name: "Goat Curry", Chef: "Mario", Category: "Curry", Price: 14.99, Available: true},
		{ID: "fish_pulusu", Name: "Fish Pulusu", Chef: "Sunoj", Category: "Fish", Price: 12.99, Available: true},
		{ID: "chicken_65", Name: "Chicken 65", Chef: "Sunoj", SousChef: "Jnet", Category: "Starters", Price: 9.99, Available: true},
		{ID: "idly", Name: "Idly", Chef: "Jose", SousChef: "Ranjitha Mom", Category: "South Indian", Price: 9.99, Available: true},
		{ID: "coffee", Name: "Coffee", Chef: "Ravi Mom", Category: "Beverages", Price: 3.00, Available: true},
		{ID: "chaat_items", Name: "Chaat Items", Chef: "Bhavana", SousChef: "Abhiram", Category: "Chaat", Price: 5.99, Available: true},
		{ID: "bajji", Name: "Bajji", Chef: "Gupta", SousChef: "Akula", Category: "Snacks", Price: 6.99, Available: true},
		{ID: "punugulu", Name: "Punugulu", Chef: "Akula", SousChef: "Bhavana(Batter)", Category: "Snacks", Price: 5.99, Available: true},
		{ID: "nellore_kaaram", Name: "Nellore Kaaram", Chef: "Mridula", SousChef: "Sravani", Category: "Spicy", Price: 10.99, Available: true},
		{ID: "paya_soup", Name: "Paya Soup", Chef: "Sreedhar", SousChef: "Jnet", Category: "Soup", Price: 8.99, Available: true},
		{ID: "keema", Name: "Keema", Chef: "Sreedhar", SousChef: "Jnet", Category: "Meat", Price: 15.99, Available: true},
		{ID: "tea", Name: "Tea", Chef: "Dera", Category: "Beverages", Price: 2.00, Available: true},
		{ID: "aloo_masala", Name: "Aloo Masala", Chef: "Anusha Allu", Category: "Vegetarian", Price: 6.99, Available: true},
		{ID: "fruits_cutting", Name: "Fruits Cutting", Chef: "", Category: "Dessert", Price: 5.99, Available: true},
	}

	for _, it := range items {
		if err := db.FirstOrCreate(&entity.MenuItem{}, it).Error; err != nil {
			return err
		}
	}

	logrus.Info("menu catalog seeded")
	return nil
}
