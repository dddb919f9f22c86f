package savedcar_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appsavedcar "github.com/mazhilunthu/car-marketplace/application/savedcar"
	"github.com/mazhilunthu/car-marketplace/cmd/config"
	"github.com/mazhilunthu/car-marketplace/constant"
	carmocks "github.com/mazhilunthu/car-marketplace/mocks/repository/car"
	redismocks "github.com/mazhilunthu/car-marketplace/mocks/repository/redis"
	savedcarmocks "github.com/mazhilunthu/car-marketplace/mocks/repository/savedcar"
	usermocks "github.com/mazhilunthu/car-marketplace/mocks/repository/user"
	"github.com/mazhilunthu/car-marketplace/model"
	redisrepo "github.com/mazhilunthu/car-marketplace/repository/redis"
	cerr "github.com/mazhilunthu/car-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			FiltersTTL:   time.Minute,
			SavedCarsTTL: time.Minute,
		},
	}
}

var (
	testUser = model.UserEntity{ID: 7, ExternalID: "ext-1", Name: "Test User"}

	carCivic = model.CarEntity{
		ID:           "car-1",
		Make:         "Honda",
		Model:        "Civic",
		Year:         2022,
		Price:        30000,
		FuelType:     "Petrol",
		Transmission: "Automatic",
		BodyType:     "Sedan",
		Status:       constant.CarStatusAvailable,
		Images:       model.StringList{"civic-front.jpg"},
		CreatedAt:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	carCorolla = model.CarEntity{
		ID:           "car-2",
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2021,
		Price:        20000,
		FuelType:     "Petrol",
		Transmission: "Manual",
		BodyType:     "Sedan",
		Status:       constant.CarStatusAvailable,
		Images:       model.StringList{"corolla-front.jpg"},
		CreatedAt:    time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
)

func TestSavedCarApp_ToggleSavedCar(t *testing.T) {
	type fields struct {
		config       *config.Config
		userRepo     *usermocks.UserRepository
		carRepo      *carmocks.CarRepository
		savedCarRepo *savedcarmocks.SavedCarRepository
		redisRepo    *redismocks.Repository
	}
	type args struct {
		ctx            context.Context
		externalUserID string
		carID          string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ToggleSavedCarResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: saves a car that is not yet saved",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				carID:          "car-1",
			},
			mockCall: func(f fields) {
				user := testUser
				car := carCivic
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&user, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-1").
					Return(&car, nil).
					Once()
				f.savedCarRepo.
					On("Get", mock.Anything, uint64(7), "car-1").
					Return(nil, nil).
					Once()
				f.savedCarRepo.
					On("Create", mock.Anything, uint64(7), "car-1").
					Return(nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, redisrepo.SavedCarsCacheKey(7)).
					Return(nil).
					Once()
			},
			want: &model.ToggleSavedCarResponse{
				Saved:   true,
				Message: "Car added to favorites",
			},
			wantErr: false,
		},
		{
			name: "success: unsaves a car that is already saved",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				carID:          "car-1",
			},
			mockCall: func(f fields) {
				user := testUser
				car := carCivic
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&user, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-1").
					Return(&car, nil).
					Once()
				f.savedCarRepo.
					On("Get", mock.Anything, uint64(7), "car-1").
					Return(&model.SavedCarEntity{UserID: 7, CarID: "car-1"}, nil).
					Once()
				f.savedCarRepo.
					On("Delete", mock.Anything, uint64(7), "car-1").
					Return(nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, redisrepo.SavedCarsCacheKey(7)).
					Return(nil).
					Once()
			},
			want: &model.ToggleSavedCarResponse{
				Saved:   false,
				Message: "Car removed from favorites",
			},
			wantErr: false,
		},
		{
			name: "error: unauthenticated caller",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "",
				carID:          "car-1",
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrUnauthorize,
		},
		{
			name: "error: unknown user",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-ghost",
				carID:          "car-1",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-ghost"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name: "error: car not found leaves wishlist untouched",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				carID:          "car-missing",
			},
			mockCall: func(f fields) {
				user := testUser
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&user, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-missing").
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCarNotFound,
		},
		{
			name: "error: save fails",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				carID:          "car-1",
			},
			mockCall: func(f fields) {
				user := testUser
				car := carCivic
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&user, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-1").
					Return(&car, nil).
					Once()
				f.savedCarRepo.
					On("Get", mock.Anything, uint64(7), "car-1").
					Return(nil, nil).
					Once()
				f.savedCarRepo.
					On("Create", mock.Anything, uint64(7), "car-1").
					Return(errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrToggleSavedCar,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appsavedcar.NewSavedCarApp(
				tt.fields.config,
				tt.fields.userRepo,
				tt.fields.carRepo,
				tt.fields.savedCarRepo,
				tt.fields.redisRepo,
				nil,
			)

			got, err := app.ToggleSavedCar(tt.args.ctx, tt.args.externalUserID, tt.args.carID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToggleSavedCar() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ToggleSavedCar() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSavedCarApp_GetSavedCars(t *testing.T) {
	type fields struct {
		config       *config.Config
		userRepo     *usermocks.UserRepository
		carRepo      *carmocks.CarRepository
		savedCarRepo *savedcarmocks.SavedCarRepository
		redisRepo    *redismocks.Repository
	}
	type args struct {
		ctx            context.Context
		externalUserID string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     []model.SerializedCar
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: saved cars in store order with wishlist flags set",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
			},
			mockCall: func(f fields) {
				user := testUser
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&user, nil).
					Once()
				f.redisRepo.
					On("Get", mock.Anything, redisrepo.SavedCarsCacheKey(7)).
					Return("", errors.New("redis: nil")).
					Once()
				f.savedCarRepo.
					On("ListCars", mock.Anything, uint64(7)).
					Return([]model.CarEntity{carCorolla, carCivic}, nil).
					Once()
				f.redisRepo.
					On("SetWithTTL", mock.Anything, redisrepo.SavedCarsCacheKey(7), mock.AnythingOfType("string"), time.Minute).
					Return(nil).
					Once()
			},
			want: []model.SerializedCar{
				model.SerializeCar(&carCorolla, true),
				model.SerializeCar(&carCivic, true),
			},
			wantErr: false,
		},
		{
			name: "success: served from cache without hitting the store",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
			},
			mockCall: func(f fields) {
				user := testUser
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&user, nil).
					Once()
				f.redisRepo.
					On("Get", mock.Anything, redisrepo.SavedCarsCacheKey(7)).
					Return(`[{"id":"car-2","make":"Toyota","model":"Corolla","year":2021,"price":20000,"mileage":0,"color":"","fuelType":"Petrol","transmission":"Manual","bodyType":"Sedan","description":"","status":"AVAILABLE","featured":false,"images":["corolla-front.jpg"],"wishlisted":true}]`, nil).
					Once()
			},
			want: []model.SerializedCar{
				{
					ID:           "car-2",
					Make:         "Toyota",
					Model:        "Corolla",
					Year:         2021,
					Price:        20000,
					FuelType:     "Petrol",
					Transmission: "Manual",
					BodyType:     "Sedan",
					Status:       constant.CarStatusAvailable,
					Images:       []string{"corolla-front.jpg"},
					Wishlisted:   true,
				},
			},
			wantErr: false,
		},
		{
			name: "error: unauthenticated caller",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "",
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrUnauthorize,
		},
		{
			name: "error: store failure",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
			},
			mockCall: func(f fields) {
				user := testUser
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&user, nil).
					Once()
				f.redisRepo.
					On("Get", mock.Anything, redisrepo.SavedCarsCacheKey(7)).
					Return("", errors.New("redis: nil")).
					Once()
				f.savedCarRepo.
					On("ListCars", mock.Anything, uint64(7)).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrFetchSavedCars,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appsavedcar.NewSavedCarApp(
				tt.fields.config,
				tt.fields.userRepo,
				tt.fields.carRepo,
				tt.fields.savedCarRepo,
				tt.fields.redisRepo,
				nil,
			)

			got, err := app.GetSavedCars(tt.args.ctx, tt.args.externalUserID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetSavedCars() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetSavedCars() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSavedCarApp_InvalidateSavedCars(t *testing.T) {
	type fields struct {
		config       *config.Config
		userRepo     *usermocks.UserRepository
		carRepo      *carmocks.CarRepository
		savedCarRepo *savedcarmocks.SavedCarRepository
		redisRepo    *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		userID   uint64
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: drops the cached view",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			userID: 7,
			mockCall: func(f fields) {
				f.redisRepo.
					On("Delete", mock.Anything, redisrepo.SavedCarsCacheKey(7)).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: cache delete fails",
			fields: fields{
				config:       testConfig(),
				userRepo:     usermocks.NewUserRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
				savedCarRepo: savedcarmocks.NewSavedCarRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			userID: 7,
			mockCall: func(f fields) {
				f.redisRepo.
					On("Delete", mock.Anything, redisrepo.SavedCarsCacheKey(7)).
					Return(errors.New("redis down")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appsavedcar.NewSavedCarApp(
				tt.fields.config,
				tt.fields.userRepo,
				tt.fields.carRepo,
				tt.fields.savedCarRepo,
				tt.fields.redisRepo,
				nil,
			)

			err := app.InvalidateSavedCars(context.Background(), tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InvalidateSavedCars() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
