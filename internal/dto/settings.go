package dto

import "time"

type SettingsDTO struct {
	Name   string `json:"name" example:"My Shop"`
	Logo   string `json:"logo" example:"https://cdn.example.com/logo.png"`
	Banner string `json:"banner" example:"Grand opening sale"`
}

type UpdateSettingsRequestDTO struct {
	Name   *string `json:"name,omitempty" example:"My Shop"`
	Logo   *string `json:"logo,omitempty"`
	Banner *string `json:"banner,omitempty"`
}

type OrderDTO struct {
	ID        int           `json:"id" example:"1"`
	UserID    int           `json:"userId" example:"2"`
	Items     []CartLineDTO `json:"items"`
	Total     int           `json:"total" example:"300"`
	CreatedAt time.Time     `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}

type ReportResponseDTO struct {
	Orders     []OrderDTO `json:"orders"`
	TotalSales int        `json:"totalSales" example:"300"`
}
