package testdrive

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/model"
	carrepo "github.com/mazhilunthu/car-marketplace/repository/car"
	testdriverepo "github.com/mazhilunthu/car-marketplace/repository/testdrive"
	userrepo "github.com/mazhilunthu/car-marketplace/repository/user"
	"github.com/mazhilunthu/car-marketplace/thirdparty/rabbitmq"
	"github.com/mazhilunthu/car-marketplace/utils/errors"
	"github.com/mazhilunthu/car-marketplace/utils/logger"
	"go.uber.org/zap"
)

const bookingDateLayout = "2006-01-02"

type TestDriveApp interface {
	BookTestDrive(ctx context.Context, externalUserID string, req *model.BookTestDriveRequest) (*model.BookTestDriveResponse, error)
}

type testDriveAppImpl struct {
	userRepo      userrepo.UserRepository
	carRepo       carrepo.CarRepository
	testDriveRepo testdriverepo.TestDriveRepository
	publisher     *rabbitmq.Publisher
}

func NewTestDriveApp(
	userRepo userrepo.UserRepository,
	carRepo carrepo.CarRepository,
	testDriveRepo testdriverepo.TestDriveRepository,
	publisher *rabbitmq.Publisher,
) TestDriveApp {
	return &testDriveAppImpl{
		userRepo:      userRepo,
		carRepo:       carRepo,
		testDriveRepo: testDriveRepo,
		publisher:     publisher,
	}
}

func (s *testDriveAppImpl) BookTestDrive(ctx context.Context, externalUserID string, req *model.BookTestDriveRequest) (*model.BookTestDriveResponse, error) {
	if externalUserID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ExternalID: externalUserID})
	if err != nil {
		logger.Error("[BookTestDrive] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrBookTestDrive)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		logger.Error("[BookTestDrive] error carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrBookTestDrive)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrCarNotFound)
	}
	if car.Status != constant.CarStatusAvailable {
		return nil, errors.SetCustomError(constant.ErrCarUnavailable)
	}

	open, err := s.testDriveRepo.HasOpenBooking(ctx, user.ID, req.CarID)
	if err != nil {
		logger.Error("[BookTestDrive] error testDriveRepo.HasOpenBooking", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrBookTestDrive)
	}
	if open {
		return nil, errors.SetCustomError(constant.ErrExistingBooking)
	}

	bookingDate, err := time.Parse(bookingDateLayout, req.BookingDate)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	booking := &model.TestDriveBookingEntity{
		ID:          uuid.NewString(),
		CarID:       req.CarID,
		UserID:      user.ID,
		BookingDate: bookingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      constant.TestDriveStatusPending,
		Notes:       req.Notes,
	}
	if err := s.testDriveRepo.Create(ctx, booking); err != nil {
		logger.Error("[BookTestDrive] error testDriveRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrBookTestDrive)
	}

	if s.publisher != nil {
		msg := rabbitmq.TestDriveBookedMessage{
			BookingID:   booking.ID,
			CarID:       booking.CarID,
			UserID:      booking.UserID,
			BookingDate: booking.BookingDate,
		}
		if err := s.publisher.PublishTestDriveBooked(msg); err != nil {
			logger.Error("[BookTestDrive] error publish test drive booked", zap.String("error", err.Error()))
		}
	}

	return &model.BookTestDriveResponse{
		BookingID:   booking.ID,
		Status:      booking.Status,
		BookingDate: booking.BookingDate.Format(bookingDateLayout),
	}, nil
}
