package main

import (
	"github.com/granit-next/internal/config"
	"github.com/granit-next/internal/logger"
	"github.com/granit-next/internal/models"
	"github.com/granit-next/internal/repository"
)

const monumentDescription = "Классический вертикальный памятник из черного гранита с полированной поверхностью. Отличается строгостью и элегантностью форм."

func main() {
	// 连接数据库
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

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Вертикальные памятники", Slug: "vertikalnye", Icon: "/images/1337.png", SortOrder: 2},
		{Name: "Горизонтальные памятники", Slug: "gorizontalnye", Icon: "/images/1487.png", SortOrder: 1},
	}

	categoryRepo := repository.NewCategoryRepository(models.DB)
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := categoryRepo.Create(&cat); err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"vertikalnye", "gorizontalnye"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	verticalID := categoryIDs["vertikalnye"]
	horizontalID := categoryIDs["gorizontalnye"]

	// 添加商品
	products := []models.Product{
		monument(verticalID, "klassika", "Памятник 'Классика'", 19000, 22000, standardModifiers(), "0000", "0001"),
		monument(verticalID, "volna", "Памятник 'Волна'", 15000, 15000, volnaModifiers(), "0002", "0003", "0004"),
		monument(verticalID, "angel", "Памятник 'Ангел'", 17500, 25000, standardModifiers(), "0005"),
		monument(verticalID, "serdtse", "Памятник 'Сердце'", 19000, 19000, standardModifiers(), "0028", "0007", "0008", "0009"),
		monument(verticalID, "vechnost", "Памятник 'Вечность'", 13000, 13000, standardModifiers(), "0010", "0011"),
		monument(verticalID, "pamyat", "Памятник 'Память'", 22000, 22000, standardModifiers(), "0012", "0013", "0014"),
		monument(verticalID, "argo", "Памятник 'Арго'", 21000, 25000, standardModifiers(), "0015", "0016"),
		monument(verticalID, "plita", "Памятник 'Плита'", 17000, 23000, standardModifiers(), "0017"),
		monument(verticalID, "ten", "Памятник 'Тень'", 16000, 16000, standardModifiers(), "0033"),
		monument(verticalID, "vysota", "Памятник 'Высота'", 18000, 18000, standardModifiers(), "0019", "0038", "0021", "0022"),
		monument(verticalID, "vernost", "Памятник 'Верность'", 19000, 22000, standardModifiers(), "0023", "0024", "0025"),
		monument(verticalID, "veter", "Памятник 'Ветер'", 19000, 22000, standardModifiers(), "0026"),
		monument(horizontalID, "gorizontalnyy-klassika", "Горизонтальный памятник 'Классика'", 19000, 22000, standardModifiers(), "1000", "1001"),
		monument(horizontalID, "gorizontalnyy-volna", "Горизонтальный памятник 'Волна'", 15000, 15000, volnaModifiers(), "1002", "1003"),
		monument(horizontalID, "gorizontalnyy-angel", "Горизонтальный памятник 'Ангел'", 17500, 25000, standardModifiers(), "1004", "1005"),
		monument(horizontalID, "gorizontalnyy-serdtse", "Горизонтальный памятник 'Сердце'", 19000, 19000, standardModifiers(), "1006", "1007"),
		monument(horizontalID, "gorizontalnyy-vechnost", "Горизонтальный памятник 'Вечность'", 13000, 13000, standardModifiers(), "1008", "1009"),
		monument(horizontalID, "gorizontalnyy-pamyat", "Горизонтальный памятник 'Память'", 22000, 22000, standardModifiers(), "1010", "1011"),
		monument(horizontalID, "gorizontalnyy-argo", "Горизонтальный памятник 'Арго'", 21000, 25000, standardModifiers(), "1012", "1013"),
		monument(horizontalID, "gorizontalnyy-plita", "Горизонтальный памятник 'Плита'", 17000, 23000, standardModifiers(), "1018"),
		monument(horizontalID, "gorizontalnyy-ten", "Горизонтальный памятник 'Тень'", 16000, 16000, standardModifiers(), "1015"),
		monument(horizontalID, "gorizontalnyy-vysota", "Горизонтальный памятник 'Высота'", 18000, 18000, standardModifiers(), "1017", "1028"),
		monument(horizontalID, "gorizontalnyy-vernost", "Горизонтальный памятник 'Верность'", 19000, 22000, standardModifiers(), "1019", "1024", "1025"),
		monument(horizontalID, "gorizontalnyy-veter", "Горизонтальный памятник 'Ветер'", 19000, 22000, standardModifiers(), "1026", "1027"),
	}

	productRepo := repository.NewProductRepository(models.DB)
	for _, product := range products {
		existing, err := productRepo.GetBySlug(product.Slug, false)
		if err != nil {
			stdLog.Printf("Failed to look up product %s: %v", product.Slug, err)
			continue
		}
		if existing == nil {
			if err := productRepo.Create(&product); err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
			continue
		}
		// 已存在则按种子数据覆盖，保持主键与创建时间
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
		if err := productRepo.Update(&product); err != nil {
			stdLog.Printf("Failed to update product %s: %v", product.Slug, err)
		} else {
			stdLog.Printf("Updated product: %s", product.Slug)
		}
	}

	stdLog.Println("Seeding completed")
}

// monument 按目录缺省值构造一个商品，图片参数为 /images 下的文件名
func monument(categoryID uint, slug, title string, price, discount int64, modifiers models.PriceModifiers, images ...string) models.Product {
	gallery := make(models.ProductImages, 0, len(images))
	for i, img := range images {
		gallery = append(gallery, models.ProductImage{
			ID:     i + 1,
			URL:    "/images/" + img + ".png",
			IsMain: i == 0,
		})
	}
	discountPrice := models.NewMoneyFromInt(discount)
	return models.Product{
		CategoryID:    categoryID,
		Slug:          slug,
		Title:         title,
		Description:   monumentDescription,
		Price:         models.NewMoneyFromInt(price),
		BasePrice:     models.NewMoneyFromInt(price),
		DiscountPrice: &discountPrice,
		Images:        gallery,
		Modifiers:     modifiers,
		IsActive:      true,
	}
}

func opt(key, label string, delta int64) models.ModifierOption {
	return models.ModifierOption{Key: key, Label: label, PriceDelta: models.NewMoneyFromInt(delta)}
}

// standardModifiers 大多数型号共用的配置表
func standardModifiers() models.PriceModifiers {
	return models.PriceModifiers{
		Sizes: models.ModifierTable{
			opt("90x45x5", "90x45x5 см (Стандарт)", 0),
			opt("110x50x5", "110x50x5 см (+2500 ₽)", 2500),
			opt("130x60x5", "130x60x5 см (+5000 ₽)", 5000),
		},
		BaseSizes: models.ModifierTable{
			opt("50x15x15", "50x15x15 см (Стандарт)", 0),
			opt("70x20x15", "70x20x15 см (+1800 ₽)", 1800),
			opt("90x25x15", "90x25x15 см (+3500 ₽)", 3500),
		},
		FlowerSizes: models.ModifierTable{
			opt("90x45", "90x45 см (Стандарт)", 0),
			opt("110x50", "110x50 см (+1200 ₽)", 1200),
			opt("130x60", "130x60 см (+2400 ₽)", 2400),
		},
		PolishTypes: models.ModifierTable{
			opt("mirror", "Зеркальная (Стандарт)", 0),
			opt("combined", "Комбинированная (+15% к цене)", 0),
		},
		Materials: models.ModifierTable{
			opt("black_granite", "Гранит черный", 0),
			opt("gray_granite", "Гранит серый", 2500),
			opt("marble", "Мрамор", 6000),
		},
		Engravings: models.ModifierTable{
			opt("text", "Текст", 1700),
			opt("portrait", "Портрет", 3200),
			opt("ornament", "Орнамент", 1550),
		},
	}
}

// volnaModifiers 型号 «Волна» 使用缩小的规格表
func volnaModifiers() models.PriceModifiers {
	return models.PriceModifiers{
		Sizes: models.ModifierTable{
			opt("80x40x5", "80x40x5 см (Стандарт)", 0),
			opt("100x50x5", "100x50x5 см (+2000 ₽)", 2000),
			opt("120x60x5", "120x60x5 см (+4000 ₽)", 4000),
		},
		BaseSizes: models.ModifierTable{
			opt("45x15x15", "45x15x15 см (Стандарт)", 0),
			opt("65x20x15", "65x20x15 см (+1500 ₽)", 1500),
			opt("85x25x15", "85x25x15 см (+3000 ₽)", 3000),
		},
		FlowerSizes: models.ModifierTable{
			opt("80x40", "80x40 см (Стандарт)", 0),
			opt("100x50", "100x50 см (+1000 ₽)", 1000),
			opt("120x60", "120x60 см (+2000 ₽)", 2000),
		},
		PolishTypes: models.ModifierTable{
			opt("mirror", "Зеркальная (Стандарт)", 0),
			opt("combined", "Комбинированная (+15% к цене)", 0),
		},
		Materials: models.ModifierTable{
			opt("black_granite", "Гранит черный", 0),
			opt("gray_granite", "Гранит серый", 2000),
			opt("marble", "Мрамор", 5000),
		},
		Engravings: models.ModifierTable{
			opt("text", "Текст", 1000),
			opt("portrait", "Портрет", 3500),
			opt("ornament", "Орнамент", 1000),
		},
	}
}
