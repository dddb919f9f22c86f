package testdrive_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apptestdrive "github.com/mazhilunthu/car-marketplace/application/testdrive"
	"github.com/mazhilunthu/car-marketplace/constant"
	carmocks "github.com/mazhilunthu/car-marketplace/mocks/repository/car"
	testdrivemocks "github.com/mazhilunthu/car-marketplace/mocks/repository/testdrive"
	usermocks "github.com/mazhilunthu/car-marketplace/mocks/repository/user"
	"github.com/mazhilunthu/car-marketplace/model"
	cerr "github.com/mazhilunthu/car-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestTestDriveApp_BookTestDrive(t *testing.T) {
	availableCar := model.CarEntity{
		ID:     "car-1",
		Make:   "Honda",
		Model:  "Civic",
		Price:  30000,
		Status: constant.CarStatusAvailable,
	}
	soldCar := model.CarEntity{
		ID:     "car-2",
		Make:   "Toyota",
		Model:  "Supra",
		Price:  55000,
		Status: constant.CarStatusSold,
	}

	type fields struct {
		userRepo      *usermocks.UserRepository
		carRepo       *carmocks.CarRepository
		testDriveRepo *testdrivemocks.TestDriveRepository
	}
	type args struct {
		ctx            context.Context
		externalUserID string
		req            *model.BookTestDriveRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.BookTestDriveResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: books a pending test drive",
			fields: fields{
				userRepo:      usermocks.NewUserRepository(t),
				carRepo:       carmocks.NewCarRepository(t),
				testDriveRepo: testdrivemocks.NewTestDriveRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				req: &model.BookTestDriveRequest{
					CarID:       "car-1",
					BookingDate: "2026-09-15",
					StartTime:   "10:00",
					EndTime:     "11:00",
					Notes:       "First visit",
				},
			},
			mockCall: func(f fields) {
				car := availableCar
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&model.UserEntity{ID: 7, ExternalID: "ext-1"}, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-1").
					Return(&car, nil).
					Once()
				f.testDriveRepo.
					On("HasOpenBooking", mock.Anything, uint64(7), "car-1").
					Return(false, nil).
					Once()
				f.testDriveRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(b *model.TestDriveBookingEntity) bool {
						return b.ID != "" &&
							b.CarID == "car-1" &&
							b.UserID == 7 &&
							b.BookingDate.Equal(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)) &&
							b.StartTime == "10:00" &&
							b.EndTime == "11:00" &&
							b.Status == constant.TestDriveStatusPending &&
							b.Notes == "First visit"
					})).
					Return(nil).
					Once()
			},
			want: &model.BookTestDriveResponse{
				Status:      constant.TestDriveStatusPending,
				BookingDate: "2026-09-15",
			},
			wantErr: false,
		},
		{
			name: "error: unauthenticated caller",
			fields: fields{
				userRepo:      usermocks.NewUserRepository(t),
				carRepo:       carmocks.NewCarRepository(t),
				testDriveRepo: testdrivemocks.NewTestDriveRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "",
				req: &model.BookTestDriveRequest{
					CarID:       "car-1",
					BookingDate: "2026-09-15",
					StartTime:   "10:00",
					EndTime:     "11:00",
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrUnauthorize,
		},
		{
			name: "error: car not found",
			fields: fields{
				userRepo:      usermocks.NewUserRepository(t),
				carRepo:       carmocks.NewCarRepository(t),
				testDriveRepo: testdrivemocks.NewTestDriveRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				req: &model.BookTestDriveRequest{
					CarID:       "car-missing",
					BookingDate: "2026-09-15",
					StartTime:   "10:00",
					EndTime:     "11:00",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&model.UserEntity{ID: 7, ExternalID: "ext-1"}, nil).
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
			name: "error: car not available for test drive",
			fields: fields{
				userRepo:      usermocks.NewUserRepository(t),
				carRepo:       carmocks.NewCarRepository(t),
				testDriveRepo: testdrivemocks.NewTestDriveRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				req: &model.BookTestDriveRequest{
					CarID:       "car-2",
					BookingDate: "2026-09-15",
					StartTime:   "10:00",
					EndTime:     "11:00",
				},
			},
			mockCall: func(f fields) {
				car := soldCar
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&model.UserEntity{ID: 7, ExternalID: "ext-1"}, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-2").
					Return(&car, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCarUnavailable,
		},
		{
			name: "error: caller already has an active booking",
			fields: fields{
				userRepo:      usermocks.NewUserRepository(t),
				carRepo:       carmocks.NewCarRepository(t),
				testDriveRepo: testdrivemocks.NewTestDriveRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				req: &model.BookTestDriveRequest{
					CarID:       "car-1",
					BookingDate: "2026-09-15",
					StartTime:   "10:00",
					EndTime:     "11:00",
				},
			},
			mockCall: func(f fields) {
				car := availableCar
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&model.UserEntity{ID: 7, ExternalID: "ext-1"}, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-1").
					Return(&car, nil).
					Once()
				f.testDriveRepo.
					On("HasOpenBooking", mock.Anything, uint64(7), "car-1").
					Return(true, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrExistingBooking,
		},
		{
			name: "error: malformed booking date",
			fields: fields{
				userRepo:      usermocks.NewUserRepository(t),
				carRepo:       carmocks.NewCarRepository(t),
				testDriveRepo: testdrivemocks.NewTestDriveRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				req: &model.BookTestDriveRequest{
					CarID:       "car-1",
					BookingDate: "15-09-2026",
					StartTime:   "10:00",
					EndTime:     "11:00",
				},
			},
			mockCall: func(f fields) {
				car := availableCar
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&model.UserEntity{ID: 7, ExternalID: "ext-1"}, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-1").
					Return(&car, nil).
					Once()
				f.testDriveRepo.
					On("HasOpenBooking", mock.Anything, uint64(7), "car-1").
					Return(false, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: booking insert fails",
			fields: fields{
				userRepo:      usermocks.NewUserRepository(t),
				carRepo:       carmocks.NewCarRepository(t),
				testDriveRepo: testdrivemocks.NewTestDriveRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				externalUserID: "ext-1",
				req: &model.BookTestDriveRequest{
					CarID:       "car-1",
					BookingDate: "2026-09-15",
					StartTime:   "10:00",
					EndTime:     "11:00",
				},
			},
			mockCall: func(f fields) {
				car := availableCar
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ExternalID: "ext-1"}).
					Return(&model.UserEntity{ID: 7, ExternalID: "ext-1"}, nil).
					Once()
				f.carRepo.
					On("GetByID", mock.Anything, "car-1").
					Return(&car, nil).
					Once()
				f.testDriveRepo.
					On("HasOpenBooking", mock.Anything, uint64(7), "car-1").
					Return(false, nil).
					Once()
				f.testDriveRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.TestDriveBookingEntity")).
					Return(errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrBookTestDrive,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := apptestdrive.NewTestDriveApp(
				tt.fields.userRepo,
				tt.fields.carRepo,
				tt.fields.testDriveRepo,
				nil,
			)

			got, err := app.BookTestDrive(tt.args.ctx, tt.args.externalUserID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BookTestDrive() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.BookingID == "" {
				t.Fatal("BookTestDrive() booking id should not be empty")
			}
			if got.Status != tt.want.Status {
				t.Fatalf("BookTestDrive() status = %s, want %s", got.Status, tt.want.Status)
			}
			if got.BookingDate != tt.want.BookingDate {
				t.Fatalf("BookTestDrive() booking date = %s, want %s", got.BookingDate, tt.want.BookingDate)
			}
		})
	}
}
