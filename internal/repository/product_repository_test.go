package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/granit-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, slug, title string, categoryID uint, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  categoryID,
		Slug:        slug,
		Title:       title,
		Description: "Классический памятник из гранита",
		Price:       models.NewMoneyFromInt(19000),
		BasePrice:   models.NewMoneyFromInt(19000),
		Images:      models.ProductImages{{ID: 1, URL: "/images/0000.png", IsMain: true}},
		Modifiers: models.PriceModifiers{
			Sizes: models.ModifierTable{
				{Key: "90x45x5", Label: "90x45x5 см (Стандарт)", PriceDelta: models.NewMoneyFromInt(0)},
				{Key: "110x50x5", Label: "110x50x5 см (+2500 ₽)", PriceDelta: models.NewMoneyFromInt(2500)},
			},
		},
		IsActive: active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product %s failed: %v", slug, err)
	}
	// default:true 使 Create 忽略 false 零值并把结构体字段回填为 true，下架需恢复 false 后单独 Update
	if !active {
		product.IsActive = false
		if err := repo.Update(product); err != nil {
			t.Fatalf("deactivate product %s failed: %v", slug, err)
		}
	}
	return product
}

func TestProductRepositoryListFilters(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	category := models.Category{Name: "Вертикальные памятники", Slug: "vertikalnye"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	other := models.Category{Name: "Горизонтальные памятники", Slug: "gorizontalnye"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	createTestProduct(t, repo, "klassika", "Памятник 'Классика'", category.ID, true)
	createTestProduct(t, repo, "volna", "Памятник 'Волна'", category.ID, true)
	createTestProduct(t, repo, "angel", "Памятник 'Ангел'", category.ID, false)
	createTestProduct(t, repo, "gorizontalnyy-klassika", "Горизонтальный памятник 'Классика'", other.ID, true)

	_, total, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("active total = %d, want 3", total)
	}

	_, total, err = repo.List(ProductListFilter{CategoryID: fmt.Sprint(other.ID)})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("category total = %d, want 1", total)
	}

	_, total, err = repo.List(ProductListFilter{Search: "Волна"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("search total = %d, want 1", total)
	}

	page, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	if len(page) != 1 {
		t.Fatalf("page 2 = %d items, want 1", len(page))
	}
}

func TestProductRepositoryListAllPreloadsCategory(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	category := models.Category{Name: "Вертикальные памятники", Slug: "vertikalnye"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	createTestProduct(t, repo, "klassika", "Памятник 'Классика'", category.ID, true)
	createTestProduct(t, repo, "angel", "Памятник 'Ангел'", category.ID, false)

	active, err := repo.ListAll(true)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("active products = %d, want 1", len(active))
	}
	if active[0].Category.Slug != "vertikalnye" {
		t.Fatalf("category not preloaded: %+v", active[0].Category)
	}

	all, err := repo.ListAll(false)
	if err != nil {
		t.Fatalf("list all (inactive included) failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all products = %d, want 2", len(all))
	}
}

func TestProductRepositoryGetBySlug(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	category := models.Category{Name: "Вертикальные памятники", Slug: "vertikalnye"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	createTestProduct(t, repo, "klassika", "Памятник 'Классика'", category.ID, true)
	createTestProduct(t, repo, "angel", "Памятник 'Ангел'", category.ID, false)

	product, err := repo.GetBySlug("klassika", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if product == nil {
		t.Fatal("product not found")
	}
	if len(product.Modifiers.Sizes) != 2 {
		t.Fatalf("modifier table not restored: %d options", len(product.Modifiers.Sizes))
	}
	if product.Modifiers.Sizes[1].Key != "110x50x5" {
		t.Fatalf("modifier order lost: %q", product.Modifiers.Sizes[1].Key)
	}

	hidden, err := repo.GetBySlug("angel", true)
	if err != nil {
		t.Fatalf("get inactive failed: %v", err)
	}
	if hidden != nil {
		t.Fatal("inactive product returned with onlyActive")
	}

	missing, err := repo.GetBySlug("absent", false)
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatal("missing slug must return nil")
	}
}

func TestProductRepositoryUpdateOverwrites(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	category := models.Category{Name: "Вертикальные памятники", Slug: "vertikalnye"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	created := createTestProduct(t, repo, "klassika", "Памятник 'Классика'", category.ID, true)

	created.Price = models.NewMoneyFromInt(21000)
	created.IsActive = false
	if err := repo.Update(created); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := repo.GetBySlug("klassika", false)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored == nil {
		t.Fatal("product missing after update")
	}
	if !stored.Price.Equal(models.NewMoneyFromInt(21000)) {
		t.Fatalf("price = %s, want 21000", stored.Price.String())
	}
	// Save 全字段覆盖，false 零值也要写入
	if stored.IsActive {
		t.Fatal("is_active not overwritten to false")
	}
}
