package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"roomio/config"
	"roomio/infras/otel/mocks"
	bookingMocks "roomio/internal/domains/booking/mocks"
	bookingModel "roomio/internal/domains/booking/model"
	roomMocks "roomio/internal/domains/room/mocks"
	"roomio/internal/domains/room/model"
	"roomio/internal/domains/room/model/dto"
	"roomio/internal/domains/room/service"
	"roomio/shared/cache"
	cacheMocks "roomio/shared/cache/mocks"
	"roomio/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo        *roomMocks.MockRoom
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	svc         service.Room
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		repo:        roomMocks.NewMockRoom(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.bookingRepo, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
						room.ID = 1

						return room, nil
					})
				f.cache.EXPECT().Incr(gomock.Any(), "version:listing").Return(int64(1), nil)
				f.cache.EXPECT().Clear(gomock.Any(), "listing:*").Return(nil)
			},
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), dto.CreateRoomRequest{
				RoomName:      "Room A",
				NumberOfSeats: 10,
				PricePerHour:  50,
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.RoomID)
			assert.Equal(t, "Room A", res.RoomName)
			assert.Equal(t, []string{}, res.Amenities)
			assert.NotEmpty(t, res.CreatedAt)
		})
	}
}

func TestRoomService_RoomsWithBookings(t *testing.T) {
	f := newFixture(t)

	rooms := []model.Room{
		{ID: 1, Name: "A", CreatedAt: time.Now()},
		{ID: 2, Name: "B", CreatedAt: time.Now()},
	}
	bookings := []bookingModel.Booking{
		{ID: 1, RoomID: 2, Date: "2024-01-01", StartTime: 540, EndTime: 600, Status: bookingModel.StatusConfirmed},
		{ID: 2, RoomID: 1, Date: "2024-01-01", StartTime: 540, EndTime: 600, Status: bookingModel.StatusConfirmed},
		{ID: 3, RoomID: 2, Date: "2024-01-01", StartTime: 600, EndTime: 660, Status: bookingModel.StatusConfirmed},
		{ID: 4, RoomID: 99, Date: "2024-01-01", StartTime: 600, EndTime: 660, Status: bookingModel.StatusConfirmed},
	}

	f.cache.EXPECT().Get(gomock.Any(), "version:listing", gomock.Any()).Return(cache.Nil)
	f.cache.EXPECT().Get(gomock.Any(), "listing:0:rooms", gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().GetAll(gomock.Any()).Return(rooms, nil)
	f.bookingRepo.EXPECT().GetAll(gomock.Any(), bookingModel.Filter{}).Return(bookings, nil)
	f.cache.EXPECT().Save(gomock.Any(), "listing:0:rooms", gomock.Any(), 60).Return(nil).AnyTimes()

	res, err := f.svc.RoomsWithBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, int64(1), res[0].RoomID)
	require.Len(t, res[0].Bookings, 1)
	assert.Equal(t, int64(2), res[0].Bookings[0].BookingID)

	assert.Equal(t, int64(2), res[1].RoomID)
	require.Len(t, res[1].Bookings, 2)
	assert.Equal(t, int64(1), res[1].Bookings[0].BookingID)
	assert.Equal(t, int64(3), res[1].Bookings[1].BookingID)
}

func TestRoomService_RoomsWithBookingsCacheHit(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "version:listing", gomock.Any()).Return(cache.Nil)
	f.cache.EXPECT().
		Get(gomock.Any(), "listing:0:rooms", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, _ := value.(*dto.GetRoomsResponse)
			*res = dto.GetRoomsResponse{{RoomResponse: dto.RoomResponse{RoomID: 7}}}

			return nil
		})

	res, err := f.svc.RoomsWithBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(7), res[0].RoomID)
}

func TestRoomService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "version:listing", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				*value.(*int64) = 3

				return nil
			})
		f.cache.EXPECT().Get(gomock.Any(), "listing:3:room:1", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), int64(1)).Return(model.Room{ID: 1, Name: "A"}, nil)
		f.bookingRepo.EXPECT().GetAll(gomock.Any(), bookingModel.Filter{RoomID: 1}).Return(nil, nil)
		f.cache.EXPECT().Save(gomock.Any(), "listing:3:room:1", gomock.Any(), 60).Return(nil).AnyTimes()

		res, err := f.svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "A", res.RoomName)
		assert.NotNil(t, res.Bookings)
		assert.Empty(t, res.Bookings)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "version:listing", gomock.Any()).Return(cache.Nil)
		f.cache.EXPECT().Get(gomock.Any(), "listing:0:room:5", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), 5)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.True(t, errors.Is(err, bookingModel.ErrRoomNotFound))
	})
}

func TestRoomService_RoomsWithBookingsCacheUnavailable(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "version:listing", gomock.Any()).Return(errors.New("redis down"))
	f.repo.EXPECT().GetAll(gomock.Any()).Return([]model.Room{{ID: 1, Name: "A"}}, nil)
	f.bookingRepo.EXPECT().GetAll(gomock.Any(), bookingModel.Filter{}).Return(nil, nil)

	res, err := f.svc.RoomsWithBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Empty(t, res[0].Bookings)
}
