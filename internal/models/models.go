package models

import (
	"time"
)

// StatusPending is the initial lifecycle status of every order.
const StatusPending = "pending"

type Order struct {
	ID                  uint        `gorm:"primaryKey;autoIncrement"     json:"id"`
	OrderID             string      `gorm:"uniqueIndex;not null"         json:"order_id"`
	FullName            string      `gorm:"not null"                     json:"full_name"`
	PhoneNumber         string      `gorm:"not null"                     json:"phone_number"`
	PrintType           string      `gorm:"not null"                     json:"print_type"`
	BindingColorType    string      `json:"binding_color_type"`
	Copies              int         `gorm:"default:1"                    json:"copies"`
	PaperSize           string      `json:"paper_size"`
	PrintSide           string      `json:"print_side"`
	SelectedPages       string      `json:"selected_pages"`
	ColorPages          string      `json:"color_pages"`
	BWPages             string      `gorm:"column:bw_pages"              json:"bw_pages"`
	SpecialInstructions string      `json:"special_instructions"`
	OrderDate           time.Time   `gorm:"not null"                     json:"order_date"`
	Status              string      `gorm:"not null;default:pending"     json:"status"`
	TotalCost           float64     `gorm:"type:numeric(10,2);default:0" json:"total_cost"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
	Files               []OrderFile `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"files"`
}

// OrderFile holds the metadata of one attached file. The bytes themselves
// live in an external object store; FilePath is an opaque reference to them.
type OrderFile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string    `gorm:"index;not null"           json:"-"`
	FileName  string    `gorm:"not null"                 json:"name"`
	FileSize  int64     `gorm:"not null"                 json:"size"`
	FileType  string    `gorm:"not null"                 json:"type"`
	FilePath  *string   `gorm:"size:500"                 json:"path"`
	CreatedAt time.Time `json:"-"`
}

type AdminUser struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"unique;not null"          json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
