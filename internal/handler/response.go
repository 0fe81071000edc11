package handler

import (
	"time"

	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/google/uuid"
)

type createdResponse struct {
	ID uuid.UUID `json:"id"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userDetailResponse struct {
	userResponse
	Restaurants []restaurantResponse `json:"restaurants"`
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type restaurantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ImageURL     *string   `json:"image_url"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Street       string    `json:"street"`
	Number       int       `json:"number"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	StateAbbr    string    `json:"state_abbr"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type restaurantListResponse struct {
	restaurantResponse
	Schedules []restaurantScheduleResponse `json:"schedules"`
}

type restaurantDetailResponse struct {
	restaurantResponse
	Products []productResponse `json:"products"`
}

type restaurantScheduleResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	DayType      string    `json:"day_type"`
	StartDay     string    `json:"start_day"`
	EndDay       string    `json:"end_day"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type productResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	CategoryID   uuid.UUID `json:"category_id"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type productListResponse struct {
	productResponse
	Category *categoryResponse `json:"category"`
}

type productDetailResponse struct {
	productResponse
	Offers []offerResponse `json:"offers"`
}

type offerResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Price     float64   `json:"price"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type offerDetailResponse struct {
	offerResponse
	Schedules []offerScheduleResponse `json:"schedules"`
}

type offerScheduleResponse struct {
	ID        uuid.UUID `json:"id"`
	OfferID   uuid.UUID `json:"offer_id"`
	Day       string    `json:"day"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Repeats   bool      `json:"repeats"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// mapSlice converts every item and never returns nil, so empty
// collections are encoded as [] instead of null.
func mapSlice[S, D any](items []S, convert func(S) D) []D {
	converted := make([]D, 0, len(items))
	for _, item := range items {
		converted = append(converted, convert(item))
	}
	return converted
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserDetailResponse(user model.User) userDetailResponse {
	return userDetailResponse{
		userResponse: toUserResponse(user),
		Restaurants:  mapSlice(user.Restaurants, toRestaurantResponse),
	}
}

func toCategoryResponse(category model.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func toRestaurantResponse(restaurant model.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		ImageURL:     restaurant.ImageURL,
		OwnerID:      restaurant.OwnerID,
		Street:       restaurant.Street,
		Number:       restaurant.Number,
		Neighborhood: restaurant.Neighborhood,
		City:         restaurant.City,
		StateAbbr:    restaurant.StateAbbr,
		CreatedAt:    restaurant.CreatedAt,
		UpdatedAt:    restaurant.UpdatedAt,
	}
}

func toRestaurantListResponse(restaurant model.Restaurant) restaurantListResponse {
	return restaurantListResponse{
		restaurantResponse: toRestaurantResponse(restaurant),
		Schedules:          mapSlice(restaurant.Schedules, toRestaurantScheduleResponse),
	}
}

func toRestaurantDetailResponse(restaurant model.Restaurant) restaurantDetailResponse {
	return restaurantDetailResponse{
		restaurantResponse: toRestaurantResponse(restaurant),
		Products:           mapSlice(restaurant.Products, toProductResponse),
	}
}

func toRestaurantScheduleResponse(schedule model.RestaurantSchedule) restaurantScheduleResponse {
	return restaurantScheduleResponse{
		ID:           schedule.ID,
		RestaurantID: schedule.RestaurantID,
		DayType:      string(schedule.DayType),
		StartDay:     string(schedule.StartDay),
		EndDay:       string(schedule.EndDay),
		StartTime:    schedule.StartTime.String(),
		EndTime:      schedule.EndTime.String(),
		CreatedAt:    schedule.CreatedAt,
		UpdatedAt:    schedule.UpdatedAt,
	}
}

func toProductResponse(product model.Product) productResponse {
	return productResponse{
		ID:           product.ID,
		RestaurantID: product.RestaurantID,
		Name:         product.Name,
		Price:        product.Price,
		CategoryID:   product.CategoryID,
		ImageURL:     product.ImageURL,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

func toProductListResponse(product model.Product) productListResponse {
	response := productListResponse{productResponse: toProductResponse(product)}
	if product.Category != nil {
		category := toCategoryResponse(*product.Category)
		response.Category = &category
	}
	return response
}

func toProductDetailResponse(product model.Product) productDetailResponse {
	return productDetailResponse{
		productResponse: toProductResponse(product),
		Offers:          mapSlice(product.Offers, toOfferResponse),
	}
}

func toOfferResponse(offer model.Offer) offerResponse {
	return offerResponse{
		ID:        offer.ID,
		ProductID: offer.ProductID,
		Price:     offer.Price,
		Active:    offer.Active,
		CreatedAt: offer.CreatedAt,
		UpdatedAt: offer.UpdatedAt,
	}
}

func toOfferDetailResponse(offer model.Offer) offerDetailResponse {
	return offerDetailResponse{
		offerResponse: toOfferResponse(offer),
		Schedules:     mapSlice(offer.Schedules, toOfferScheduleResponse),
	}
}

func toOfferScheduleResponse(schedule model.OfferSchedule) offerScheduleResponse {
	return offerScheduleResponse{
		ID:        schedule.ID,
		OfferID:   schedule.OfferID,
		Day:       string(schedule.Day),
		StartTime: schedule.StartTime.String(),
		EndTime:   schedule.EndTime.String(),
		Repeats:   schedule.Repeats,
		CreatedAt: schedule.CreatedAt,
		UpdatedAt: schedule.UpdatedAt,
	}
}
