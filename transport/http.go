package transport

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	carapp "github.com/mazhilunthu/car-marketplace/application/car"
	savedcarapp "github.com/mazhilunthu/car-marketplace/application/savedcar"
	testdriveapp "github.com/mazhilunthu/car-marketplace/application/testdrive"
	userapp "github.com/mazhilunthu/car-marketplace/application/user"
	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/model"
	utilsContext "github.com/mazhilunthu/car-marketplace/utils/context"
	"github.com/mazhilunthu/car-marketplace/utils/errors"
	validatorx "github.com/mazhilunthu/car-marketplace/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	CarApp       carapp.CarApp
	SavedCarApp  savedcarapp.SavedCarApp
	TestDriveApp testdriveapp.TestDriveApp
}

func NewTransport(UserApp userapp.UserApp, CarApp carapp.CarApp, SavedCarApp savedcarapp.SavedCarApp, TestDriveApp testdriveapp.TestDriveApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:      UserApp,
		CarApp:       CarApp,
		SavedCarApp:  SavedCarApp,
		TestDriveApp: TestDriveApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Browse routes (anonymous allowed, identity used when present)
	mux.HandleFunc("/v1/cars/filters", rh.GetCarFilters).Methods(http.MethodGet)
	mux.HandleFunc("/v1/cars", rh.GetCars).Methods(http.MethodGet)
	mux.HandleFunc("/v1/cars/{id}", rh.GetCarByID).Methods(http.MethodGet)

	// Protected routes
	mux.HandleFunc("/v1/cars/{id}/save", rh.ToggleSavedCar).Methods(http.MethodPost)
	mux.HandleFunc("/v1/saved-cars", rh.GetSavedCars).Methods(http.MethodGet)
	mux.HandleFunc("/v1/test-drives", rh.BookTestDrive).Methods(http.MethodPost)

	// Internal routes (API key, called by the revalidation consumer)
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/users/{id}/saved-cars/revalidate", rh.RevalidateSavedCars).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCarFilters handler
// @Summary Get car filters
// @Description Distinct facet values and price range among in-stock cars
// @Tags Cars
// @Produce json
// @Success 200 {object} model.CarFiltersData
// @Failure 500 {object} errors.CustomError
// @Router /v1/cars/filters [get]
func (s *RestHandler) GetCarFilters(w http.ResponseWriter, r *http.Request) {
	res, err := s.CarApp.GetCarFilters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// carsResponse preserves the listing payload shape: data plus pagination
// at the top level.
type carsResponse struct {
	Success    bool                  `json:"success"`
	Data       []model.SerializedCar `json:"data"`
	Pagination model.Pagination      `json:"pagination"`
}

// GetCars handler
// @Summary List cars
// @Description Filtered, sorted, paginated car listings with the caller's wishlist flags
// @Tags Cars
// @Produce json
// @Param search query string false "Free text search over make, model, description"
// @Param make query string false "Make filter"
// @Param bodyType query string false "Body type filter"
// @Param fuelType query string false "Fuel type filter"
// @Param transmission query string false "Transmission filter"
// @Param minPrice query number false "Lower price bound"
// @Param maxPrice query number false "Upper price bound"
// @Param sortBy query string false "newest | priceAsc | priceDesc"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size (default 6)"
// @Success 200 {object} model.CarListResponse
// @Failure 500 {object} errors.CustomError
// @Router /v1/cars [get]
func (s *RestHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	externalUserID, _ := utilsContext.GetExternalUserID(ctx)

	req := parseCarFilterRequest(r.URL.Query())

	res, err := s.CarApp.GetCars(ctx, externalUserID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, carsResponse{
		Success:    true,
		Data:       res.Data,
		Pagination: res.Pagination,
	})
}

// GetCarByID handler
// @Summary Get car details
// @Description Full car detail with wishlist flag and test drive info
// @Tags Cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} model.CarDetail
// @Failure 404 {object} errors.CustomError
// @Router /v1/cars/{id} [get]
func (s *RestHandler) GetCarByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	externalUserID, _ := utilsContext.GetExternalUserID(ctx)
	carID := mux.Vars(r)["id"]

	res, err := s.CarApp.GetCarByID(ctx, externalUserID, carID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type toggleSavedCarResponse struct {
	Success bool   `json:"success"`
	Saved   bool   `json:"saved"`
	Message string `json:"message,omitempty"`
}

// ToggleSavedCar handler
// @Summary Toggle saved car
// @Description Add or remove a car from the caller's wishlist
// @Tags SavedCars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} model.ToggleSavedCarResponse
// @Failure 401 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/cars/{id}/save [post]
func (s *RestHandler) ToggleSavedCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	externalUserID, _ := utilsContext.GetExternalUserID(ctx)
	carID := mux.Vars(r)["id"]

	res, err := s.SavedCarApp.ToggleSavedCar(ctx, externalUserID, carID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleSavedCarResponse{
		Success: true,
		Saved:   res.Saved,
		Message: res.Message,
	})
}

// GetSavedCars handler
// @Summary Get saved cars
// @Description The caller's saved cars, most recently saved first
// @Tags SavedCars
// @Produce json
// @Success 200 {array} model.SerializedCar
// @Failure 401 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/saved-cars [get]
func (s *RestHandler) GetSavedCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	externalUserID, _ := utilsContext.GetExternalUserID(ctx)

	res, err := s.SavedCarApp.GetSavedCars(ctx, externalUserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// BookTestDrive handler
// @Summary Book a test drive
// @Description Schedule a pending test drive booking for the caller
// @Tags TestDrives
// @Accept json
// @Produce json
// @Param request body model.BookTestDriveRequest true "Booking Request"
// @Success 200 {object} model.BookTestDriveResponse
// @Failure 400 {object} errors.CustomError
// @Failure 401 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/test-drives [post]
func (s *RestHandler) BookTestDrive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	externalUserID, _ := utilsContext.GetExternalUserID(ctx)

	var req model.BookTestDriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TestDriveApp.BookTestDrive(ctx, externalUserID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RevalidateSavedCars handler (internal)
func (s *RestHandler) RevalidateSavedCars(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SavedCarApp.InvalidateSavedCars(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// parseCarFilterRequest applies the documented defaults: malformed or
// missing numeric inputs coerce to safe defaults rather than erroring.
func parseCarFilterRequest(q url.Values) *model.CarFilterRequest {
	req := &model.CarFilterRequest{
		Search:       q.Get("search"),
		Make:         q.Get("make"),
		BodyType:     q.Get("bodyType"),
		FuelType:     q.Get("fuelType"),
		Transmission: q.Get("transmission"),
		MinPrice:     0,
		MaxPrice:     constant.PriceUnbounded,
		SortBy:       constant.SortByNewest,
		Page:         constant.DefaultPage,
		Limit:        constant.DefaultLimit,
	}

	if v := q.Get("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			req.MinPrice = f
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			req.MaxPrice = f
		}
	}
	if v := q.Get("sortBy"); v != "" {
		req.SortBy = v
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			req.Page = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			req.Limit = n
		}
	}

	return req
}
