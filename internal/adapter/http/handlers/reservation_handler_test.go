package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"visitme_reservas/internal/adapter/http/handlers/mocks"
	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type reservationHandlerFixture struct {
	reservations *mocks.MockIReservationUseCase
	booking      *mocks.MockIBookingUseCase
	cancellation *mocks.MockICancellationUseCase
	eligibility  *mocks.MockIEligibilityUseCase
	catalog      *mocks.MockICatalogUseCase
	router       *gin.Engine
}

func newReservationHandlerFixture(ctrl *gomock.Controller) *reservationHandlerFixture {
	f := &reservationHandlerFixture{
		reservations: mocks.NewMockIReservationUseCase(ctrl),
		booking:      mocks.NewMockIBookingUseCase(ctrl),
		cancellation: mocks.NewMockICancellationUseCase(ctrl),
		eligibility:  mocks.NewMockIEligibilityUseCase(ctrl),
		catalog:      mocks.NewMockICatalogUseCase(ctrl),
	}
	h := NewReservationHandler(f.reservations, f.booking, f.cancellation, f.eligibility, f.catalog)

	f.router = gin.New()
	f.router.POST("/v1/reservations", h.CreateReservation)
	f.router.GET("/v1/reservations/:reservation_id/calendar", h.ExportCalendar)
	f.router.PATCH("/v1/reservations/:reservation_id/cancel", h.CancelReservation)
	return f
}

func TestReservationHandler_CreateReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	createBody := `{"community_id":"com-1","space_id":"sp-1","department_id":"dep-1","date":"2026-03-12","block":"morning"}`

	t.Run("missing resident header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Resident-ID", "res-1")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("active cooldown answers 200 with the notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		f.eligibility.EXPECT().CheckCooldown(gomock.Any(), "com-1", "res-1").Return(usecase.CooldownStatus{Blocked: true, RemainingDays: 4}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Resident-ID", "res-1")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["cooldown_active"] != true || body["remaining_days"] != float64(4) {
			t.Fatalf("unexpected cooldown payload %v", body)
		}
	})

	t.Run("slot taken answers 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		f.eligibility.EXPECT().CheckCooldown(gomock.Any(), "com-1", "res-1").Return(usecase.CooldownStatus{}, nil)
		f.catalog.EXPECT().GetSpace(gomock.Any(), "com-1", "sp-1").Return(entities.CommonSpace{ID: "sp-1", CommunityID: "com-1", BlockDurationHours: 4, Active: true}, nil)
		f.eligibility.EXPECT().QuoteCost(gomock.Any(), "com-1", "res-1", gomock.Any()).Return(usecase.CostQuote{CostApplied: 25000}, nil)
		f.booking.EXPECT().Book(gomock.Any(), gomock.Any()).Return(entities.Reservation{}, usecase.ErrSlotTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Resident-ID", "res-1")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		f.eligibility.EXPECT().CheckCooldown(gomock.Any(), "com-1", "res-1").Return(usecase.CooldownStatus{}, nil)
		f.catalog.EXPECT().GetSpace(gomock.Any(), "com-1", "sp-1").Return(entities.CommonSpace{ID: "sp-1", CommunityID: "com-1", BlockDurationHours: 4, Active: true}, nil)
		f.eligibility.EXPECT().QuoteCost(gomock.Any(), "com-1", "res-1", gomock.Any()).Return(usecase.CostQuote{IsGraceUse: true}, nil)
		f.booking.EXPECT().Book(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.BookingCommand) (entities.Reservation, error) {
				if cmd.ResidentID != "res-1" || cmd.DurationHours != 4 || !cmd.IsGraceUse {
					t.Fatalf("unexpected command %+v", cmd)
				}
				return entities.Reservation{ID: "r-1", Date: cmd.Date, Block: cmd.Block, Status: entities.ReservationStatusAgendado, IsGraceUse: true}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Resident-ID", "res-1")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"id":"r-1"`) {
			t.Fatalf("expected created reservation in body, got %s", w.Body.String())
		}
	})
}

func TestReservationHandler_CancelReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reason too short maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		f.cancellation.EXPECT().Cancel(gomock.Any(), "r-1", "res-1", "no").Return(entities.Reservation{}, usecase.ErrReasonTooShort)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/r-1/cancel", bytes.NewBufferString(`{"reason":"no"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Resident-ID", "res-1")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cutoff maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		f.cancellation.EXPECT().Cancel(gomock.Any(), "r-1", "res-1", "cambio de planes").Return(entities.Reservation{}, usecase.ErrCancellationCutoff)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/r-1/cancel", bytes.NewBufferString(`{"reason":"cambio de planes"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Resident-ID", "res-1")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("foreign reservation maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		f.cancellation.EXPECT().Cancel(gomock.Any(), "r-1", "res-1", "cambio de planes").Return(entities.Reservation{}, usecase.ErrReservationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/r-1/cancel", bytes.NewBufferString(`{"reason":"cambio de planes"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Resident-ID", "res-1")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReservationHandler_ExportCalendar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders a downloadable event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservationHandlerFixture(ctrl)

		start := time.Date(2026, time.March, 12, 8, 0, 0, 0, time.UTC)
		f.reservations.EXPECT().CalendarEvent(gomock.Any(), "r-1", "res-1").Return(usecase.CalendarEvent{
			Summary: "Reserva: Quincho",
			Start:   start,
			End:     start.Add(4 * time.Hour),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reservations/r-1/calendar", nil)
		req.Header.Set("X-Resident-ID", "res-1")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
			t.Fatalf("expected text/calendar, got %q", ct)
		}
		if !strings.Contains(w.Body.String(), "SUMMARY:Reserva: Quincho") {
			t.Fatalf("expected VEVENT body, got %s", w.Body.String())
		}
	})
}
