package main

import (
	"log"
	"time"

	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/logger"
	"github.com/paikari-bazar/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Fatalf("Failed to seed default admin: %v", err)
	}
	if err := models.InitDefaultSettings(cfg.Payment.BkashNumber); err != nil {
		stdLog.Fatalf("Failed to seed default settings: %v", err)
	}

	categories := []models.Category{
		{Name: "Rice & Grains", Description: "Wholesale rice, lentils and grains", Section: constants.CategorySectionLocal, SortOrder: 10},
		{Name: "Spices", Description: "Local spice lots", Section: constants.CategorySectionLocal, SortOrder: 20},
		{Name: "Electronics", Description: "Imported consumer electronics", Section: constants.CategorySectionChinese, SortOrder: 10},
		{Name: "Toys & Gifts", Description: "Imported toys and gift items", Section: constants.CategorySectionChinese, SortOrder: 20},
	}
	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ? AND section = ?", cat.Name, cat.Section).First(&existing).Error; err == nil {
			stdLog.Printf("Category already exists: %s", existing.Name)
			categoryIDs[existing.Name] = existing.ID
			continue
		}
		if err := models.DB.Create(&cat).Error; err != nil {
			stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			continue
		}
		stdLog.Printf("Created category: %s", cat.Name)
		categoryIDs[cat.Name] = cat.ID
	}

	wholesalerID := seedDemoWholesaler(stdLog)
	if wholesalerID == 0 {
		stdLog.Printf("Skipping product seed, no demo wholesaler")
		return
	}

	type itemSeed struct {
		Name     string
		Price    float64
		MinQty   int
		Desc     string
		OutStock bool
	}
	type productSeed struct {
		Category string
		Name     string
		Desc     string
		Status   string
		Items    []itemSeed
	}

	products := []productSeed{
		{
			Category: "Rice & Grains",
			Name:     "Miniket Rice",
			Desc:     "Premium miniket rice in 25kg and 50kg sacks",
			Status:   constants.ProductStatusApproved,
			Items: []itemSeed{
				{Name: "25kg sack", Price: 1650, MinQty: 10, Desc: "Per sack price, sold in lots of ten"},
				{Name: "50kg sack", Price: 3200, MinQty: 5, Desc: "Per sack price, sold in lots of five"},
			},
		},
		{
			Category: "Electronics",
			Name:     "TWS Bluetooth Earbuds",
			Desc:     "Imported earbuds, boxed with charging case",
			Status:   constants.ProductStatusApproved,
			Items: []itemSeed{
				{Name: "Standard edition", Price: 420, MinQty: 20, Desc: "Black or white, assorted by carton"},
				{Name: "Pro edition", Price: 680, MinQty: 12, Desc: "With noise cancellation", OutStock: true},
			},
		},
		{
			Category: "Toys & Gifts",
			Name:     "Die-cast Toy Cars",
			Desc:     "Assorted die-cast models, carton of 144",
			Status:   constants.ProductStatusPending,
			Items: []itemSeed{
				{Name: "Assorted carton", Price: 38, MinQty: 144, Desc: "Per piece price, full carton only"},
			},
		},
	}

	now := time.Now()
	for _, seed := range products {
		categoryID := categoryIDs[seed.Category]
		if categoryID == 0 {
			stdLog.Printf("Skipping product %s, category missing", seed.Name)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("name = ? AND wholesaler_id = ?", seed.Name, wholesalerID).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", seed.Name)
			continue
		}
		product := models.Product{
			CategoryID:   categoryID,
			WholesalerID: &wholesalerID,
			Name:         seed.Name,
			Description:  seed.Desc,
			Status:       seed.Status,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", seed.Name, err)
			continue
		}
		for _, item := range seed.Items {
			record := models.Item{
				ProductID:       product.ID,
				Name:            item.Name,
				Description:     item.Desc,
				Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(item.Price)),
				MinimumQuantity: item.MinQty,
				InStock:         !item.OutStock,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := models.DB.Create(&record).Error; err != nil {
				stdLog.Printf("Failed to create item %s / %s: %v", seed.Name, item.Name, err)
			}
		}
		stdLog.Printf("Created product: %s (%s)", seed.Name, seed.Status)
	}

	stdLog.Printf("Seed finished")
}

func seedDemoWholesaler(stdLog *log.Logger) uint {
	var existing models.User
	if err := models.DB.Where("email = ?", "wholesaler@example.com").First(&existing).Error; err == nil {
		stdLog.Printf("Demo wholesaler already exists: %s", existing.Email)
		return existing.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("wholesaler123"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash demo wholesaler password: %v", err)
		return 0
	}
	now := time.Now()
	user := models.User{
		Email:        "wholesaler@example.com",
		PasswordHash: string(hash),
		Name:         "Demo Wholesaler",
		Phone:        "01700000000",
		Role:         constants.RoleWholesaler,
		Status:       constants.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		stdLog.Printf("Failed to create demo wholesaler: %v", err)
		return 0
	}
	profile := models.WholesalerProfile{
		UserID:      user.ID,
		ShopName:    "Demo Trading House",
		Description: "Seeded wholesaler account for local testing",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := models.DB.Create(&profile).Error; err != nil {
		stdLog.Printf("Failed to create demo wholesaler profile: %v", err)
	}
	stdLog.Printf("Created demo wholesaler: %s (password wholesaler123)", user.Email)
	return user.ID
}
