package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aishwaryaxerox/print_shop/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// A pooled :memory: database is one database per connection; pin the
	// pool to a single connection so every query sees the same data.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	if err := db.AutoMigrate(&models.Order{}, &models.OrderFile{}, &models.AdminUser{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func testOrder(orderID string) models.Order {
	return models.Order{
		OrderID:     orderID,
		FullName:    "Aishwarya",
		PhoneNumber: "9876543210",
		PrintType:   "black_white",
		PaperSize:   "A4",
		PrintSide:   "double",
		TotalCost:   42.50,
	}
}

func TestCreateAndGetOrderWithFiles(t *testing.T) {
	svc := NewOrderService(initTestDB(t))
	ctx := context.Background()

	order := testOrder("ORD-100")
	files := []models.OrderFile{
		{FileName: "thesis.pdf", FileSize: 1024, FileType: "application/pdf", FilePath: strPtr("uploads/thesis.pdf")},
		{FileName: "cover.docx", FileSize: 256, FileType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{FileName: "refs.pdf", FileSize: 0, FileType: "application/pdf", FilePath: strPtr("uploads/refs.pdf")},
	}

	orderID, err := svc.Create(ctx, &order, files)
	require.NoError(t, err)
	require.Equal(t, "ORD-100", orderID)

	got, err := svc.Get(ctx, "ORD-100")
	require.NoError(t, err)

	require.Len(t, got.Files, 3)
	assert.Equal(t, "thesis.pdf", got.Files[0].FileName)
	assert.Equal(t, "cover.docx", got.Files[1].FileName)
	assert.Equal(t, "refs.pdf", got.Files[2].FileName)
	assert.Nil(t, got.Files[1].FilePath)

	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, 1, got.Copies)
	assert.False(t, got.OrderDate.IsZero())
	assert.InDelta(t, 42.50, got.TotalCost, 0.001)
}

func TestCreateValidation(t *testing.T) {
	svc := NewOrderService(initTestDB(t))
	ctx := context.Background()

	tests := []struct {
		name  string
		order models.Order
		files []models.OrderFile
	}{
		{name: "missing order id", order: models.Order{FullName: "x"}},
		{name: "negative total cost", order: models.Order{OrderID: "ORD-1", TotalCost: -1}},
		{
			name:  "negative file size",
			order: testOrder("ORD-2"),
			files: []models.OrderFile{{FileName: "a.pdf", FileSize: -5, FileType: "application/pdf"}},
		},
		{
			name:  "empty file name",
			order: testOrder("ORD-3"),
			files: []models.OrderFile{{FileName: "", FileSize: 5, FileType: "application/pdf"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := tt.order
			_, err := svc.Create(ctx, &order, tt.files)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateDuplicateLeavesOriginalUntouched(t *testing.T) {
	db := initTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	original := testOrder("ORD-1")
	_, err := svc.Create(ctx, &original, []models.OrderFile{
		{FileName: "one.pdf", FileSize: 10, FileType: "application/pdf"},
	})
	require.NoError(t, err)

	dup := testOrder("ORD-1")
	dup.FullName = "Somebody Else"
	_, err = svc.Create(ctx, &dup, []models.OrderFile{
		{FileName: "two.pdf", FileSize: 20, FileType: "application/pdf"},
		{FileName: "three.pdf", FileSize: 30, FileType: "application/pdf"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := svc.Get(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "Aishwarya", got.FullName)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "one.pdf", got.Files[0].FileName)

	var fileRows int64
	require.NoError(t, db.Model(&models.OrderFile{}).Count(&fileRows).Error)
	assert.EqualValues(t, 1, fileRows)
}

func TestCreateRollsBackOnBadFile(t *testing.T) {
	db := initTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order := testOrder("ORD-1")
	_, err := svc.Create(ctx, &order, []models.OrderFile{
		{FileName: "ok.pdf", FileSize: 10, FileType: "application/pdf"},
		{FileName: "bad.pdf", FileSize: -1, FileType: "application/pdf"},
		{FileName: "never.pdf", FileSize: 10, FileType: "application/pdf"},
	})
	require.Error(t, err)

	_, err = svc.Get(ctx, "ORD-1")
	assert.ErrorIs(t, err, ErrNotFound)

	var orderRows, fileRows int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderRows).Error)
	require.NoError(t, db.Model(&models.OrderFile{}).Count(&fileRows).Error)
	assert.Zero(t, orderRows)
	assert.Zero(t, fileRows)
}

func TestGetNotFound(t *testing.T) {
	svc := NewOrderService(initTestDB(t))

	_, err := svc.Get(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirstWithEmptyFileLists(t *testing.T) {
	db := initTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	older := testOrder("ORD-OLD")
	_, err := svc.Create(ctx, &older, nil)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Order{}).
		Where("order_id = ?", "ORD-OLD").
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := testOrder("ORD-NEW")
	_, err = svc.Create(ctx, &newer, []models.OrderFile{
		{FileName: "a.pdf", FileSize: 1, FileType: "application/pdf"},
	})
	require.NoError(t, err)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "ORD-NEW", orders[0].OrderID)
	assert.Equal(t, "ORD-OLD", orders[1].OrderID)

	require.NotNil(t, orders[1].Files)
	assert.Empty(t, orders[1].Files)
	assert.Len(t, orders[0].Files, 1)
}

func TestUpdateStatus(t *testing.T) {
	svc := NewOrderService(initTestDB(t))
	ctx := context.Background()

	order := testOrder("ORD-1")
	_, err := svc.Create(ctx, &order, nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, "ORD-1", "printing"))

	got, err := svc.Get(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "printing", got.Status)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestUpdateStatusNotFound(t *testing.T) {
	db := initTestDB(t)
	svc := NewOrderService(db)

	err := svc.UpdateStatus(context.Background(), "NOPE", "printing")
	assert.ErrorIs(t, err, ErrNotFound)

	var orderRows int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderRows).Error)
	assert.Zero(t, orderRows)
}

func TestUpdateStatusEmptyRejected(t *testing.T) {
	svc := NewOrderService(initTestDB(t))

	err := svc.UpdateStatus(context.Background(), "ORD-1", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteAll(t *testing.T) {
	db := initTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	for _, id := range []string{"ORD-1", "ORD-2"} {
		order := testOrder(id)
		_, err := svc.Create(ctx, &order, []models.OrderFile{
			{FileName: "doc.pdf", FileSize: 10, FileType: "application/pdf"},
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteAll(ctx))

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = svc.Get(ctx, "ORD-1")
	assert.ErrorIs(t, err, ErrNotFound)

	var fileRows int64
	require.NoError(t, db.Model(&models.OrderFile{}).Count(&fileRows).Error)
	assert.Zero(t, fileRows)
}
