package transport

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type OrderFilePayload struct {
	Name string  `json:"name"`
	Size int64   `json:"size"`
	Type string  `json:"type"`
	Path *string `json:"path"`
}

// CreateOrderRequest mirrors what the customer order form submits.
type CreateOrderRequest struct {
	OrderID             string             `json:"orderId"`
	FullName            string             `json:"fullName"`
	PhoneNumber         string             `json:"phoneNumber"`
	PrintType           string             `json:"printType"`
	BindingColorType    string             `json:"bindingColorType"`
	Copies              int                `json:"copies"`
	PaperSize           string             `json:"paperSize"`
	PrintSide           string             `json:"printSide"`
	SelectedPages       string             `json:"selectedPages"`
	ColorPages          string             `json:"colorPages"`
	BWPages             string             `json:"bwPages"`
	SpecialInstructions string             `json:"specialInstructions"`
	OrderDate           time.Time          `json:"orderDate"`
	Status              string             `json:"status"`
	TotalCost           float64            `json:"totalCost"`
	Files               []OrderFilePayload `json:"files"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
