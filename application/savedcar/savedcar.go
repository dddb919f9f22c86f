package savedcar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mazhilunthu/car-marketplace/cmd/config"
	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/model"
	carrepo "github.com/mazhilunthu/car-marketplace/repository/car"
	redisrepo "github.com/mazhilunthu/car-marketplace/repository/redis"
	savedcarrepo "github.com/mazhilunthu/car-marketplace/repository/savedcar"
	userrepo "github.com/mazhilunthu/car-marketplace/repository/user"
	"github.com/mazhilunthu/car-marketplace/thirdparty/rabbitmq"
	"github.com/mazhilunthu/car-marketplace/utils/errors"
	"github.com/mazhilunthu/car-marketplace/utils/logger"
	"go.uber.org/zap"
)

type SavedCarApp interface {
	// ToggleSavedCar flips the caller's wishlist state for a car and
	// reports the resulting state.
	ToggleSavedCar(ctx context.Context, externalUserID, carID string) (*model.ToggleSavedCarResponse, error)
	// GetSavedCars returns the caller's saved cars, most recently saved
	// first.
	GetSavedCars(ctx context.Context, externalUserID string) ([]model.SerializedCar, error)
	// InvalidateSavedCars drops the cached saved-cars view for a user.
	// Invoked by the internal revalidation endpoint.
	InvalidateSavedCars(ctx context.Context, userID uint64) error
}

type savedCarAppImpl struct {
	config       *config.Config
	userRepo     userrepo.UserRepository
	carRepo      carrepo.CarRepository
	savedCarRepo savedcarrepo.SavedCarRepository
	redisRepo    redisrepo.Repository
	publisher    *rabbitmq.Publisher
}

func NewSavedCarApp(
	config *config.Config,
	userRepo userrepo.UserRepository,
	carRepo carrepo.CarRepository,
	savedCarRepo savedcarrepo.SavedCarRepository,
	redisRepo redisrepo.Repository,
	publisher *rabbitmq.Publisher,
) SavedCarApp {
	return &savedCarAppImpl{
		config:       config,
		userRepo:     userRepo,
		carRepo:      carRepo,
		savedCarRepo: savedCarRepo,
		redisRepo:    redisRepo,
		publisher:    publisher,
	}
}

func (s *savedCarAppImpl) ToggleSavedCar(ctx context.Context, externalUserID, carID string) (*model.ToggleSavedCarResponse, error) {
	if externalUserID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ExternalID: externalUserID})
	if err != nil {
		logger.Error("[ToggleSavedCar] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrToggleSavedCar)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	// Verify the car exists before mutating anything
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[ToggleSavedCar] error carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrToggleSavedCar)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrCarNotFound)
	}

	existing, err := s.savedCarRepo.Get(ctx, user.ID, carID)
	if err != nil {
		logger.Error("[ToggleSavedCar] error savedCarRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrToggleSavedCar)
	}

	var res *model.ToggleSavedCarResponse
	if existing != nil {
		if err := s.savedCarRepo.Delete(ctx, user.ID, carID); err != nil {
			logger.Error("[ToggleSavedCar] error savedCarRepo.Delete", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrToggleSavedCar)
		}
		res = &model.ToggleSavedCarResponse{
			Saved:   false,
			Message: "Car removed from favorites",
		}
	} else {
		// The unique (user_id, car_id) constraint backstops concurrent
		// toggles; one of two racing saves fails its insert.
		if err := s.savedCarRepo.Create(ctx, user.ID, carID); err != nil {
			logger.Error("[ToggleSavedCar] error savedCarRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrToggleSavedCar)
		}
		res = &model.ToggleSavedCarResponse{
			Saved:   true,
			Message: "Car added to favorites",
		}
	}

	s.signalSavedCarsChanged(ctx, user.ID, carID, res.Saved)

	return res, nil
}

// signalSavedCarsChanged marks the user's saved-cars view stale: the
// local cache entry is dropped and an event is published for other
// consumers. Failures are logged, never surfaced; the toggle itself has
// already committed.
func (s *savedCarAppImpl) signalSavedCarsChanged(ctx context.Context, userID uint64, carID string, saved bool) {
	if err := s.redisRepo.Delete(ctx, redisrepo.SavedCarsCacheKey(userID)); err != nil {
		logger.Warn("[ToggleSavedCar] error redisRepo.Delete", zap.String("error", err.Error()))
	}

	if s.publisher == nil {
		return
	}
	msg := rabbitmq.SavedCarsChangedMessage{
		UserID:     userID,
		CarID:      carID,
		Saved:      saved,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishSavedCarsChanged(msg); err != nil {
		logger.Error("[ToggleSavedCar] error publish saved cars changed", zap.String("error", err.Error()))
	}
}

func (s *savedCarAppImpl) GetSavedCars(ctx context.Context, externalUserID string) ([]model.SerializedCar, error) {
	if externalUserID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ExternalID: externalUserID})
	if err != nil {
		logger.Error("[GetSavedCars] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchSavedCars)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	cacheKey := redisrepo.SavedCarsCacheKey(user.ID)
	if cached, err := s.redisRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var cars []model.SerializedCar
		if err := json.Unmarshal([]byte(cached), &cars); err == nil {
			return cars, nil
		}
	}

	entities, err := s.savedCarRepo.ListCars(ctx, user.ID)
	if err != nil {
		logger.Error("[GetSavedCars] error savedCarRepo.ListCars", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchSavedCars)
	}

	cars := make([]model.SerializedCar, 0, len(entities))
	for i := range entities {
		cars = append(cars, model.SerializeCar(&entities[i], true))
	}

	if raw, err := json.Marshal(cars); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(raw), s.config.Cache.SavedCarsTTL); err != nil {
			logger.Warn("[GetSavedCars] error redisRepo.SetWithTTL", zap.String("error", err.Error()))
		}
	}

	return cars, nil
}

func (s *savedCarAppImpl) InvalidateSavedCars(ctx context.Context, userID uint64) error {
	if err := s.redisRepo.Delete(ctx, redisrepo.SavedCarsCacheKey(userID)); err != nil {
		logger.Error("[InvalidateSavedCars] error redisRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
