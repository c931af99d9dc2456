package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cinetick/booking-engine/internal/adapter/handler"
	"github.com/cinetick/booking-engine/internal/core/domain"
	"github.com/cinetick/booking-engine/internal/core/ports/mocks"
	"github.com/cinetick/booking-engine/internal/core/services"
)

type routerFixture struct {
	seats    *mocks.SeatInventory
	orders   *mocks.OrderRepository
	staffOps *mocks.StaffOperationLog
	catalog  *mocks.Catalog
	server   *httptest.Server
	now      time.Time
}

func newRouterFixture(t *testing.T) *routerFixture {
	f := &routerFixture{
		seats:    mocks.NewSeatInventory(t),
		orders:   mocks.NewOrderRepository(t),
		staffOps: mocks.NewStaffOperationLog(t),
		catalog:  mocks.NewCatalog(t),
		now:      time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
	}
	db, _ := redismock.NewClientMock()

	svc := services.NewOrderService(f.seats, f.orders, f.staffOps, f.catalog, db,
		services.WithClock(func() time.Time { return f.now }))

	f.server = httptest.NewServer(handler.NewRouter(svc))
	t.Cleanup(f.server.Close)
	return f
}

func (f *routerFixture) post(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(f.server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (f *routerFixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(f.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	f := newRouterFixture(t)

	resp := f.post(t, "/orders", "{not json")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateOrder_EmptySelectionIsBadRequest(t *testing.T) {
	f := newRouterFixture(t)

	body := fmt.Sprintf(`{"user_id":%q,"showtime_id":%q,"seat_ids":[],"ticket_type":"normal"}`,
		uuid.New(), uuid.New())
	resp := f.post(t, "/orders", body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateOrder_SeatsTakenIsConflict(t *testing.T) {
	f := newRouterFixture(t)
	showtimeID := uuid.New()
	seatID := uuid.New()
	start := f.now.Add(5 * time.Hour)

	f.catalog.On("GetShowtime", mock.Anything, showtimeID).Return(&domain.Showtime{
		ID: showtimeID, StartTime: start, EndTime: start.Add(2 * time.Hour),
		BasePrices: map[domain.TicketType]float64{domain.TicketNormal: 100},
	}, nil)
	f.seats.On("GetSeatsByID", mock.Anything, showtimeID, []uuid.UUID{seatID}).
		Return([]domain.Seat{{ID: seatID}}, nil)
	f.catalog.On("ActivePricingStrategies", mock.Anything, showtimeID, f.now).Return(nil, nil)
	f.seats.On("ReserveSeats", mock.Anything, showtimeID, []uuid.UUID{seatID}).
		Return(domain.ErrSeatsUnavailable)

	body := fmt.Sprintf(`{"user_id":%q,"showtime_id":%q,"seat_ids":[%q],"ticket_type":"normal"}`,
		uuid.New(), showtimeID, seatID)
	resp := f.post(t, "/orders", body)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPayOrder_UnknownOrderIsNotFound(t *testing.T) {
	f := newRouterFixture(t)
	orderID := uuid.New()

	f.orders.On("GetByID", mock.Anything, orderID).Return(nil, domain.ErrOrderNotFound)

	resp := f.post(t, "/orders/"+orderID.String()+"/pay", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPayOrder_MalformedIDIsBadRequest(t *testing.T) {
	f := newRouterFixture(t)

	resp := f.post(t, "/orders/not-a-uuid/pay", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPayOrder_AlreadyPaidIsConflict(t *testing.T) {
	f := newRouterFixture(t)
	orderID := uuid.New()

	f.orders.On("GetByID", mock.Anything, orderID).Return(&domain.Order{
		ID: orderID, Status: domain.OrderPaid,
	}, nil)

	resp := f.post(t, "/orders/"+orderID.String()+"/pay", "")

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCheckTicket_TooEarlyIsUnprocessable(t *testing.T) {
	f := newRouterFixture(t)
	orderID := uuid.New()
	showtimeID := uuid.New()
	start := f.now.Add(2 * time.Hour)

	f.orders.On("GetByID", mock.Anything, orderID).Return(&domain.Order{
		ID: orderID, ShowtimeID: showtimeID, Status: domain.OrderPaid,
	}, nil)
	f.catalog.On("GetShowtime", mock.Anything, showtimeID).Return(&domain.Showtime{
		ID: showtimeID, StartTime: start, EndTime: start.Add(2 * time.Hour),
	}, nil)

	body := fmt.Sprintf(`{"staff_id":%q}`, uuid.New())
	resp := f.post(t, "/staff/orders/"+orderID.String()+"/check", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCheckTicket_AlreadyCheckedIsConflict(t *testing.T) {
	f := newRouterFixture(t)
	orderID := uuid.New()
	checkedAt := f.now.Add(-time.Hour)

	f.orders.On("GetByID", mock.Anything, orderID).Return(&domain.Order{
		ID: orderID, Status: domain.OrderPaid, CheckedAt: &checkedAt,
	}, nil)

	body := fmt.Sprintf(`{"staff_id":%q}`, uuid.New())
	resp := f.post(t, "/staff/orders/"+orderID.String()+"/check", body)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRefundTicket_PolicyDenialIsUnprocessable(t *testing.T) {
	f := newRouterFixture(t)
	orderID := uuid.New()
	showtimeID := uuid.New()
	start := f.now.Add(30 * time.Minute)

	f.orders.On("GetByID", mock.Anything, orderID).Return(&domain.Order{
		ID: orderID, ShowtimeID: showtimeID, Status: domain.OrderPaid, TotalPrice: 200,
	}, nil)
	f.catalog.On("GetShowtime", mock.Anything, showtimeID).Return(&domain.Showtime{
		ID: showtimeID, StartTime: start, EndTime: start.Add(2 * time.Hour),
	}, nil)

	body := fmt.Sprintf(`{"staff_id":%q,"reason":"changed plans"}`, uuid.New())
	resp := f.post(t, "/staff/orders/"+orderID.String()+"/refund", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetSeats_StorageFailureIsInternal(t *testing.T) {
	f := newRouterFixture(t)
	showtimeID := uuid.New()

	f.seats.On("GetSeats", mock.Anything, showtimeID).Return(nil, fmt.Errorf("connection refused"))

	resp := f.get(t, "/showtimes/"+showtimeID.String()+"/seats")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestStaffOperations_OK(t *testing.T) {
	f := newRouterFixture(t)

	f.staffOps.On("All", mock.Anything).Return([]domain.StaffOperation{}, nil)

	resp := f.get(t, "/staff/operations")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
