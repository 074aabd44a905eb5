package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/aishwaryaxerox/print_shop/internal/models"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Create persists the order and all its file rows in a single transaction.
// Either everything is visible afterwards or nothing is: a failure on any
// file insert rolls the order row back too.
func (s *OrderService) Create(ctx context.Context, order *models.Order, files []models.OrderFile) (string, error) {
	if order.OrderID == "" {
		return "", fmt.Errorf("%w: order_id required", ErrValidation)
	}
	if order.TotalCost < 0 {
		return "", fmt.Errorf("%w: total_cost must be >= 0", ErrValidation)
	}
	for i := range files {
		if files[i].FileName == "" {
			return "", fmt.Errorf("%w: file name required", ErrValidation)
		}
		if files[i].FileSize < 0 {
			return "", fmt.Errorf("%w: file size must be >= 0", ErrValidation)
		}
	}

	if order.Copies <= 0 {
		order.Copies = 1
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		err := tx.Where("order_id = ?", order.OrderID).First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: order %s already exists", ErrConflict, order.OrderID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check order: %w", err)
		}

		if err := tx.Omit("Files").Create(order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range files {
			files[i].OrderID = order.OrderID
			if err := tx.Create(&files[i]).Error; err != nil {
				return fmt.Errorf("insert file %q: %w", files[i].FileName, err)
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	order.Files = files
	return order.OrderID, nil
}

// Get returns the order with its files in insertion order. The file list is
// an empty slice, never nil, when the order has no attachments.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("order_id = ?", orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.Files == nil {
		order.Files = []models.OrderFile{}
	}
	return &order, nil
}

// List returns every order, newest first, each with its own file list. The
// order/file merge happens here in application code rather than in a
// string-assembled SQL join.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	for i := range orders {
		if orders[i].Files == nil {
			orders[i].Files = []models.OrderFile{}
		}
	}
	return orders, nil
}

// UpdateStatus sets the status of one order and refreshes its update
// timestamp. Any non-empty string is accepted; the shop drives its own
// lifecycle vocabulary.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if status == "" {
		return fmt.Errorf("%w: status required", ErrValidation)
	}

	res := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}

	return nil
}

// DeleteAll removes every file row and then every order row. Files go first
// so the result does not depend on the driver enforcing the cascade.
func (s *OrderService) DeleteAll(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM order_files`).Error; err != nil {
			return fmt.Errorf("delete order files: %w", err)
		}
		if err := tx.Exec(`DELETE FROM orders`).Error; err != nil {
			return fmt.Errorf("delete orders: %w", err)
		}
		return nil
	})
}
