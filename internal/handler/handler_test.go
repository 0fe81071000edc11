package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/RafaelEmery/rafood-api/internal/service"
	"github.com/RafaelEmery/rafood-api/pkg/config"
	"github.com/RafaelEmery/rafood-api/pkg/database"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm/logger"
)

const prefix = "/api/v1"

// newTestServer wires the real stores, services and routes to an in-memory database
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := database.Open(config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
		LogLevel:   logger.Silent,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db, model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	e := echo.New()
	Configure(e)
	Register(e, prefix, service.New(repository.NewStores(db), events.NoopPublisher{}))
	return e
}

func do(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("failed to decode %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
}

// create posts body and returns the id of the created resource
func create(t *testing.T, e *echo.Echo, path string, body interface{}) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, prefix+path, body)
	expectStatus(t, rec, http.StatusCreated)

	var created struct {
		ID string `json:"id"`
	}
	decode(t, rec, &created)
	return created.ID
}

type catalog struct {
	ownerID      string
	categoryID   string
	restaurantID string
	productID    string
}

func seedCatalog(t *testing.T, e *echo.Echo) catalog {
	t.Helper()

	var c catalog
	c.ownerID = create(t, e, "/users", map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@rafood.dev",
		"password":   "secret",
	})
	c.categoryID = create(t, e, "/categories", map[string]interface{}{"name": "Burgers"})
	c.restaurantID = create(t, e, "/restaurants", map[string]interface{}{
		"name":         "Casa",
		"owner_id":     c.ownerID,
		"street":       "Rua A",
		"number":       10,
		"neighborhood": "Centro",
		"city":         "Vitoria",
		"state_abbr":   "ES",
	})
	c.productID = create(t, e, "/products", map[string]interface{}{
		"restaurant_id": c.restaurantID,
		"category_id":   c.categoryID,
		"name":          "X-Burger",
		"price":         25.5,
	})
	return c
}

func schedulePayload(start string) map[string]interface{} {
	return map[string]interface{}{
		"day_type":   "weekday",
		"start_day":  "monday",
		"end_day":    "friday",
		"start_time": start,
		"end_time":   "22:00:00",
	}
}

func TestPing(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/ping", nil)
	expectStatus(t, rec, http.StatusOK)

	var body map[string]string
	decode(t, rec, &body)
	if body["message"] != "pong" {
		t.Fatalf("expected pong, got %v", body)
	}
}

func TestRestaurantDetailShowsOwnerAndProducts(t *testing.T) {
	e := newTestServer(t)

	ownerID := create(t, e, "/users", map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@rafood.dev",
		"password":   "secret",
	})
	restaurantID := create(t, e, "/restaurants", map[string]interface{}{
		"name":         "Casa",
		"owner_id":     ownerID,
		"street":       "Rua A",
		"number":       10,
		"neighborhood": "Centro",
		"city":         "Vitoria",
		"state_abbr":   "ES",
	})

	rec := do(t, e, http.MethodGet, prefix+"/restaurants/"+restaurantID, nil)
	expectStatus(t, rec, http.StatusOK)

	var body map[string]interface{}
	decode(t, rec, &body)
	if body["owner_id"] != ownerID {
		t.Fatalf("expected owner %s, got %v", ownerID, body["owner_id"])
	}
	products, ok := body["products"].([]interface{})
	if !ok || len(products) != 0 {
		t.Fatalf("expected an empty products list, got %v", body["products"])
	}

	rec = do(t, e, http.MethodGet, prefix+"/users/"+ownerID, nil)
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &body)
	if _, leaked := body["password"]; leaked {
		t.Fatal("user response must not include the password")
	}
	if restaurants := body["restaurants"].([]interface{}); len(restaurants) != 1 {
		t.Fatalf("expected one owned restaurant, got %d", len(restaurants))
	}
}

func TestProductDetailShowsOffers(t *testing.T) {
	e := newTestServer(t)
	c := seedCatalog(t, e)

	create(t, e, "/offers", map[string]interface{}{"product_id": c.productID, "price": 15.99})

	rec := do(t, e, http.MethodGet, prefix+"/products/"+c.productID, nil)
	expectStatus(t, rec, http.StatusOK)

	var body struct {
		Offers []struct {
			Price  float64 `json:"price"`
			Active bool    `json:"active"`
		} `json:"offers"`
	}
	decode(t, rec, &body)
	if len(body.Offers) != 1 || body.Offers[0].Price != 15.99 || !body.Offers[0].Active {
		t.Fatalf("unexpected offers: %+v", body.Offers)
	}

	rec = do(t, e, http.MethodGet, prefix+"/products?category_id="+c.categoryID, nil)
	expectStatus(t, rec, http.StatusOK)

	var list []struct {
		Category *struct {
			Name string `json:"name"`
		} `json:"category"`
	}
	decode(t, rec, &list)
	if len(list) != 1 || list[0].Category == nil || list[0].Category.Name != "Burgers" {
		t.Fatalf("expected the product with its category, got %s", rec.Body.String())
	}
}

func TestDeleteCategoryInUseFails(t *testing.T) {
	e := newTestServer(t)
	c := seedCatalog(t, e)

	rec := do(t, e, http.MethodDelete, prefix+"/categories/"+c.categoryID, nil)
	expectStatus(t, rec, http.StatusInternalServerError)

	var body internalErrorResponse
	decode(t, rec, &body)
	if body.Error != "categories_internal_error" {
		t.Fatalf("expected categories_internal_error, got %q", body.Error)
	}
	if body.Params["id"] != c.categoryID {
		t.Fatalf("expected the path params to be echoed, got %v", body.Params)
	}
}

func TestDuplicateCategoryFails(t *testing.T) {
	e := newTestServer(t)
	create(t, e, "/categories", map[string]interface{}{"name": "Pizza"})

	rec := do(t, e, http.MethodPost, prefix+"/categories", map[string]interface{}{"name": "Pizza"})
	expectStatus(t, rec, http.StatusInternalServerError)
}

func TestRestaurantScheduleLimit(t *testing.T) {
	e := newTestServer(t)
	c := seedCatalog(t, e)
	path := "/restaurants/" + c.restaurantID + "/schedules"

	for i := 0; i < model.MaxRestaurantSchedules; i++ {
		create(t, e, path, schedulePayload("08:00:00"))
	}

	rec := do(t, e, http.MethodPost, prefix+path, schedulePayload("08:00:00"))
	expectStatus(t, rec, http.StatusInternalServerError)

	var body internalErrorResponse
	decode(t, rec, &body)
	if body.Message != service.ErrScheduleLimitReached.Error() {
		t.Fatalf("expected the limit message, got %q", body.Message)
	}
	if body.Error != "restaurant_schedules_internal_error" {
		t.Fatalf("expected restaurant_schedules_internal_error, got %q", body.Error)
	}

	rec = do(t, e, http.MethodGet, prefix+"/restaurants", nil)
	expectStatus(t, rec, http.StatusOK)

	var list []struct {
		Schedules []struct {
			StartTime string `json:"start_time"`
		} `json:"schedules"`
	}
	decode(t, rec, &list)
	if len(list) != 1 || len(list[0].Schedules) != model.MaxRestaurantSchedules {
		t.Fatalf("expected one restaurant with three schedules, got %s", rec.Body.String())
	}
	if list[0].Schedules[0].StartTime != "08:00:00" {
		t.Fatalf("expected start time 08:00:00, got %q", list[0].Schedules[0].StartTime)
	}
}

func TestRestaurantScheduleRejectsInvalidClock(t *testing.T) {
	e := newTestServer(t)
	c := seedCatalog(t, e)

	rec := do(t, e, http.MethodPost, prefix+"/restaurants/"+c.restaurantID+"/schedules", schedulePayload("25:00:00"))
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	var body validationErrorResponse
	decode(t, rec, &body)
	if body.Error != "validation_error" || len(body.Details) == 0 || body.Details[0].Field != "start_time" {
		t.Fatalf("unexpected validation body: %s", rec.Body.String())
	}
}

func TestRestaurantScheduleOfAnotherRestaurant(t *testing.T) {
	e := newTestServer(t)
	c := seedCatalog(t, e)
	scheduleID := create(t, e, "/restaurants/"+c.restaurantID+"/schedules", schedulePayload("08:00:00"))

	other := uuid.New().String()
	rec := do(t, e, http.MethodDelete, prefix+"/restaurants/"+other+"/schedules/"+scheduleID, nil)
	expectStatus(t, rec, http.StatusNotFound)

	rec = do(t, e, http.MethodPatch, prefix+"/restaurants/"+c.restaurantID+"/schedules/"+scheduleID, schedulePayload("9:30:00"))
	expectStatus(t, rec, http.StatusOK)

	var body restaurantScheduleResponse
	decode(t, rec, &body)
	if body.StartTime != "09:30:00" {
		t.Fatalf("expected normalised start time 09:30:00, got %q", body.StartTime)
	}
}

func TestOfferUpdatePriceMustBePositive(t *testing.T) {
	e := newTestServer(t)
	c := seedCatalog(t, e)
	offerID := create(t, e, "/offers", map[string]interface{}{"product_id": c.productID, "price": 15.99})

	rec := do(t, e, http.MethodPatch, prefix+"/offers/"+offerID, map[string]interface{}{"price": 0})
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	rec = do(t, e, http.MethodPatch, prefix+"/offers/"+offerID, map[string]interface{}{"price": 0.01})
	expectStatus(t, rec, http.StatusOK)

	var body offerResponse
	decode(t, rec, &body)
	if body.Price != 0.01 || !body.Active {
		t.Fatalf("unexpected offer after update: %+v", body)
	}
}

func TestOfferSchedules(t *testing.T) {
	e := newTestServer(t)
	c := seedCatalog(t, e)
	offerID := create(t, e, "/offers", map[string]interface{}{"product_id": c.productID, "price": 9.9})

	create(t, e, "/offers/"+offerID+"/schedules", map[string]interface{}{
		"day":        "saturday",
		"start_time": "18:00:00",
		"end_time":   "23:00:00",
		"repeats":    true,
	})

	rec := do(t, e, http.MethodGet, prefix+"/offers/"+offerID, nil)
	expectStatus(t, rec, http.StatusOK)

	var body offerDetailResponse
	decode(t, rec, &body)
	if len(body.Schedules) != 1 || body.Schedules[0].Day != "saturday" || !body.Schedules[0].Repeats {
		t.Fatalf("unexpected offer schedules: %+v", body.Schedules)
	}

	rec = do(t, e, http.MethodPost, prefix+"/offers/"+uuid.New().String()+"/schedules", map[string]interface{}{
		"day":        "saturday",
		"start_time": "18:00:00",
		"end_time":   "23:00:00",
		"repeats":    false,
	})
	expectStatus(t, rec, http.StatusNotFound)
}

func TestDeleteTwice(t *testing.T) {
	e := newTestServer(t)
	id := create(t, e, "/categories", map[string]interface{}{"name": "Drinks"})

	expectStatus(t, do(t, e, http.MethodDelete, prefix+"/categories/"+id, nil), http.StatusNoContent)
	expectStatus(t, do(t, e, http.MethodDelete, prefix+"/categories/"+id, nil), http.StatusNotFound)
}

func TestUnknownIDReturnsNotFound(t *testing.T) {
	e := newTestServer(t)
	id := uuid.New().String()

	rec := do(t, e, http.MethodGet, prefix+"/users/"+id, nil)
	expectStatus(t, rec, http.StatusNotFound)

	var body map[string]interface{}
	decode(t, rec, &body)
	if body["title"] != "Not Found Error" || body["error"] != "user_not_found" {
		t.Fatalf("unexpected not found body: %v", body)
	}
	if body["message"] != "User "+id+" not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if _, ok := body["timestamp"]; !ok {
		t.Fatal("expected a timestamp")
	}
}

func TestMalformedIDIsRejected(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, prefix+"/products/not-a-uuid", nil)
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	rec = do(t, e, http.MethodGet, prefix+"/restaurants?owner_id=nope", nil)
	expectStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestInvalidBody(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, prefix+"/users", map[string]interface{}{
		"first_name": "Ada",
		"email":      "not-an-email",
	})
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	var body validationErrorResponse
	decode(t, rec, &body)
	fields := map[string]bool{}
	for _, detail := range body.Details {
		fields[detail.Field] = true
	}
	for _, field := range []string{"last_name", "email", "password"} {
		if !fields[field] {
			t.Fatalf("expected %s to be reported, got %+v", field, body.Details)
		}
	}
}

func TestTrailingSlashIsAccepted(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, prefix+"/categories/", nil)
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != "[]\n" {
		t.Fatalf("expected an empty list, got %q", rec.Body.String())
	}
}

func TestUnknownRouteUsesHTTPErrorShape(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/nowhere", nil)
	expectStatus(t, rec, http.StatusNotFound)

	var body httpErrorResponse
	decode(t, rec, &body)
	if body.Title != "Not Found" {
		t.Fatalf("unexpected title %q", body.Title)
	}
}
