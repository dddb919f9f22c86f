package car

import (
	"context"
	"encoding/json"

	"github.com/mazhilunthu/car-marketplace/cmd/config"
	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/model"
	carrepo "github.com/mazhilunthu/car-marketplace/repository/car"
	dealershiprepo "github.com/mazhilunthu/car-marketplace/repository/dealership"
	redisrepo "github.com/mazhilunthu/car-marketplace/repository/redis"
	savedcarrepo "github.com/mazhilunthu/car-marketplace/repository/savedcar"
	testdriverepo "github.com/mazhilunthu/car-marketplace/repository/testdrive"
	userrepo "github.com/mazhilunthu/car-marketplace/repository/user"
	"github.com/mazhilunthu/car-marketplace/utils/errors"
	"github.com/mazhilunthu/car-marketplace/utils/logger"
	"go.uber.org/zap"
)

type CarApp interface {
	// GetCarFilters resolves the facet values and price range available
	// among in-stock cars, to populate the filter controls.
	GetCarFilters(ctx context.Context) (*model.CarFiltersData, error)
	// GetCars runs one paginated, sorted listing query and flags each
	// result with the caller's wishlist state. externalUserID may be
	// empty for anonymous callers.
	GetCars(ctx context.Context, externalUserID string, req *model.CarFilterRequest) (*model.CarListResponse, error)
	GetCarByID(ctx context.Context, externalUserID, carID string) (*model.CarDetail, error)
}

type carAppImpl struct {
	config         *config.Config
	carRepo        carrepo.CarRepository
	savedCarRepo   savedcarrepo.SavedCarRepository
	userRepo       userrepo.UserRepository
	testDriveRepo  testdriverepo.TestDriveRepository
	dealershipRepo dealershiprepo.DealershipRepository
	redisRepo      redisrepo.Repository
}

func NewCarApp(
	config *config.Config,
	carRepo carrepo.CarRepository,
	savedCarRepo savedcarrepo.SavedCarRepository,
	userRepo userrepo.UserRepository,
	testDriveRepo testdriverepo.TestDriveRepository,
	dealershipRepo dealershiprepo.DealershipRepository,
	redisRepo redisrepo.Repository,
) CarApp {
	return &carAppImpl{
		config:         config,
		carRepo:        carRepo,
		savedCarRepo:   savedCarRepo,
		userRepo:       userRepo,
		testDriveRepo:  testDriveRepo,
		dealershipRepo: dealershipRepo,
		redisRepo:      redisRepo,
	}
}

func (s *carAppImpl) GetCarFilters(ctx context.Context) (*model.CarFiltersData, error) {
	// Serve from cache when present; facets only change with inventory.
	if cached, err := s.redisRepo.Get(ctx, redisrepo.FiltersCacheKey); err == nil && cached != "" {
		var data model.CarFiltersData
		if err := json.Unmarshal([]byte(cached), &data); err == nil {
			return &data, nil
		}
	}

	makes, err := s.carRepo.DistinctMakes(ctx)
	if err != nil {
		logger.Error("[GetCarFilters] error carRepo.DistinctMakes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCarFilters)
	}

	bodyTypes, err := s.carRepo.DistinctBodyTypes(ctx)
	if err != nil {
		logger.Error("[GetCarFilters] error carRepo.DistinctBodyTypes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCarFilters)
	}

	fuelTypes, err := s.carRepo.DistinctFuelTypes(ctx)
	if err != nil {
		logger.Error("[GetCarFilters] error carRepo.DistinctFuelTypes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCarFilters)
	}

	transmissions, err := s.carRepo.DistinctTransmissions(ctx)
	if err != nil {
		logger.Error("[GetCarFilters] error carRepo.DistinctTransmissions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCarFilters)
	}

	agg, err := s.carRepo.PriceRange(ctx)
	if err != nil {
		logger.Error("[GetCarFilters] error carRepo.PriceRange", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCarFilters)
	}

	// MIN/MAX are NULL with no in-stock rows; the slider defaults must be
	// exactly 0 and 100000.
	priceRange := model.PriceRange{
		Min: constant.DefaultPriceRangeMin,
		Max: constant.DefaultPriceRangeMax,
	}
	if agg != nil && agg.Min != nil {
		priceRange.Min = *agg.Min
	}
	if agg != nil && agg.Max != nil {
		priceRange.Max = *agg.Max
	}

	data := &model.CarFiltersData{
		Makes:         makes,
		BodyTypes:     bodyTypes,
		FuelTypes:     fuelTypes,
		Transmissions: transmissions,
		PriceRange:    priceRange,
	}

	if raw, err := json.Marshal(data); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, redisrepo.FiltersCacheKey, string(raw), s.config.Cache.FiltersTTL); err != nil {
			logger.Warn("[GetCarFilters] error redisRepo.SetWithTTL", zap.String("error", err.Error()))
		}
	}

	return data, nil
}

func (s *carAppImpl) GetCars(ctx context.Context, externalUserID string, req *model.CarFilterRequest) (*model.CarListResponse, error) {
	page := req.Page
	if page <= 0 {
		page = constant.DefaultPage
	}
	limit := req.Limit
	if limit <= 0 {
		limit = constant.DefaultLimit
	}

	// Resolve the caller to a local user; an unknown subject browses
	// anonymously rather than failing the listing.
	user, err := s.resolveUser(ctx, externalUserID)
	if err != nil {
		logger.Error("[GetCars] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCars)
	}

	query := &model.CarQuery{
		Search:       req.Search,
		Make:         req.Make,
		BodyType:     req.BodyType,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		SortBy:       req.SortBy,
	}

	total, err := s.carRepo.Count(ctx, query)
	if err != nil {
		logger.Error("[GetCars] error carRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCars)
	}

	offset := (page - 1) * limit
	cars, err := s.carRepo.List(ctx, query, limit, offset)
	if err != nil {
		logger.Error("[GetCars] error carRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCars)
	}

	// Anonymous callers skip the saved-set lookup entirely.
	wishlisted := make(map[string]struct{})
	if user != nil {
		ids, err := s.savedCarRepo.ListCarIDs(ctx, user.ID)
		if err != nil {
			logger.Error("[GetCars] error savedCarRepo.ListCarIDs", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrFetchCars)
		}
		for _, id := range ids {
			wishlisted[id] = struct{}{}
		}
	}

	data := make([]model.SerializedCar, 0, len(cars))
	for i := range cars {
		_, saved := wishlisted[cars[i].ID]
		data = append(data, model.SerializeCar(&cars[i], saved))
	}

	return &model.CarListResponse{
		Data: data,
		Pagination: model.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}, nil
}

func (s *carAppImpl) GetCarByID(ctx context.Context, externalUserID, carID string) (*model.CarDetail, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[GetCarByID] error carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCarDetails)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrCarNotFound)
	}

	user, err := s.resolveUser(ctx, externalUserID)
	if err != nil {
		logger.Error("[GetCarByID] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCarDetails)
	}

	isWishlisted := false
	var userTestDrive *model.UserTestDrive
	if user != nil {
		saved, err := s.savedCarRepo.Get(ctx, user.ID, carID)
		if err != nil {
			logger.Error("[GetCarByID] error savedCarRepo.Get", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrFetchCarDetails)
		}
		isWishlisted = saved != nil

		booking, err := s.testDriveRepo.GetLatestActive(ctx, user.ID, carID)
		if err != nil {
			logger.Error("[GetCarByID] error testDriveRepo.GetLatestActive", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrFetchCarDetails)
		}
		if booking != nil {
			userTestDrive = &model.UserTestDrive{
				ID:          booking.ID,
				Status:      booking.Status,
				BookingDate: booking.BookingDate.Format("2006-01-02"),
			}
		}
	}

	dealership, err := s.dealershipRepo.GetWithWorkingHours(ctx)
	if err != nil {
		logger.Error("[GetCarByID] error dealershipRepo.GetWithWorkingHours", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrFetchCarDetails)
	}

	return &model.CarDetail{
		SerializedCar: model.SerializeCar(car, isWishlisted),
		TestDriveInfo: model.TestDriveInfo{
			UserTestDrive: userTestDrive,
			Dealership:    model.SerializeDealership(dealership),
		},
	}, nil
}

func (s *carAppImpl) resolveUser(ctx context.Context, externalUserID string) (*model.UserEntity, error) {
	if externalUserID == "" {
		return nil, nil
	}
	return s.userRepo.Get(ctx, &model.UserFilter{ExternalID: externalUserID})
}
