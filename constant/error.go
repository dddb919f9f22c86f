package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrCarNotFound
	ErrUserNotFound
	ErrFetchCarFilters
	ErrFetchCars
	ErrFetchCarDetails
	ErrToggleSavedCar
	ErrFetchSavedCars
	ErrBookTestDrive
	ErrCarUnavailable
	ErrExistingBooking
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "Unauthorized",
	ErrCredentialExists: "email or phone already exists",
	ErrInvalidPassword:  "password invalid",
	ErrCarNotFound:      "Car not found",
	ErrUserNotFound:     "User not found",
	ErrFetchCarFilters:  "Error fetching car filters",
	ErrFetchCars:        "Error fetching cars",
	ErrFetchCarDetails:  "Error fetching car details",
	ErrToggleSavedCar:   "Error toggling saved car",
	ErrFetchSavedCars:   "Error fetching saved cars",
	ErrBookTestDrive:    "Error booking test drive",
	ErrCarUnavailable:   "Car is not available for test drive",
	ErrExistingBooking:  "You already have an active test drive for this car",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusBadRequest,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrCredentialExists: http.StatusBadRequest,
	ErrInvalidPassword:  http.StatusBadRequest,
	ErrCarNotFound:      http.StatusNotFound,
	ErrUserNotFound:     http.StatusNotFound,
	ErrFetchCarFilters:  http.StatusInternalServerError,
	ErrFetchCars:        http.StatusInternalServerError,
	ErrFetchCarDetails:  http.StatusInternalServerError,
	ErrToggleSavedCar:   http.StatusInternalServerError,
	ErrFetchSavedCars:   http.StatusInternalServerError,
	ErrBookTestDrive:    http.StatusInternalServerError,
	ErrCarUnavailable:   http.StatusBadRequest,
	ErrExistingBooking:  http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrCredentialExists: "0005",
	ErrInvalidPassword:  "0006",
	ErrCarNotFound:      "0007",
	ErrUserNotFound:     "0008",
	ErrFetchCarFilters:  "0009",
	ErrFetchCars:        "0010",
	ErrFetchCarDetails:  "0011",
	ErrToggleSavedCar:   "0012",
	ErrFetchSavedCars:   "0013",
	ErrBookTestDrive:    "0014",
	ErrCarUnavailable:   "0015",
	ErrExistingBooking:  "0016",
}
