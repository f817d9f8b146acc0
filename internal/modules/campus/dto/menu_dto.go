package dto

import (
	"github.com/google/uuid"

	"smat.com/campusapi/internal/entity"
)

type MenusByDateRequest struct {
	Date string `form:"date" binding:"required"`
}

type MenuSearchRequest struct {
	Date     string `form:"date" binding:"required"`
	TimeType string `form:"timeType" binding:"required,mealperiod"`
}

type MenuResponse struct {
	ID             uuid.UUID         `json:"id"`
	Date           string            `json:"date"`
	TimeType       entity.MealPeriod `json:"timeType"`
	MenuName       string            `json:"menuName"`
	Price          *int              `json:"price"`
	RestaurantName string            `json:"restaurantName"`
}
