// Package store is the storage layer: schema creation, user/product/order
// access, catalog seeding, and the checkout transaction. Every method wraps
// the shared *gorm.DB handle; callers never touch GORM directly.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/issa01818/ClickShop1/models"
)

// ErrDuplicateUser means the username or email is already registered.
var ErrDuplicateUser = errors.New("username or email already registered")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates the users, products and orders tables if absent.
// Idempotent; called explicitly once at process start. There is no schema
// versioning — column changes require manual intervention.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	)
}

// FindUserByEmail returns at most one user; email is the login key.
// Returns (nil, nil) when no user matches.
func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user. Uniqueness of username and email is
// enforced by the database; two concurrent registrations with the same email
// race there and the loser gets ErrDuplicateUser.
func (s *Store) CreateUser(username, email, passwordHash string) (*models.User, error) {
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return &user, nil
}

// ListProducts returns the full catalog in insertion order.
func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindProduct returns (nil, nil) when the id matches no product.
func (s *Store) FindProduct(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SeedProductsIfEmpty inserts the seed rows only when the products table is
// empty. The emptiness check is the only idempotence guard: if rows are later
// removed by hand, the next start reseeds the defaults.
func (s *Store) SeedProductsIfEmpty(products []models.Product) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.Create(&products).Error
}

// CreateOrder inserts a single order line.
func (s *Store) CreateOrder(userID, productID uint, quantity int, totalPrice float64) (*models.Order, error) {
	order := models.Order{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		Reference:  generateOrderRef(),
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// PlaceOrder turns a cart into order rows, one per cart entry, quantity 1,
// total_price equal to the product's current price. Cart IDs with no matching
// product are skipped without error. The whole loop runs in one transaction,
// so a failure mid-checkout records nothing.
func (s *Store) PlaceOrder(userID uint, cartIDs []uint) (placed int, total float64, err error) {
	ref := generateOrderRef()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, productID := range cartIDs {
			var product models.Product
			if err := tx.First(&product, "id = ?", productID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			order := models.Order{
				UserID:     userID,
				ProductID:  product.ID,
				Quantity:   1,
				TotalPrice: product.Price,
				Reference:  ref,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			placed++
			total += product.Price
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return placed, total, nil
}

// generateOrderRef builds a unique checkout reference, e.g.
// 20250901130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
