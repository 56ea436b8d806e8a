package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paintshop_lots/internal/adapter/http/handlers/mocks"
	"paintshop_lots/internal/adapter/http/middleware"
	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type lotHandlerDeps struct {
	lots       *mocks.MockILotUseCase
	scheduling *mocks.MockISchedulingUseCase
	prompts    *mocks.MockISettlementPrompt
	router     *gin.Engine
}

func newLotHandlerDeps(t *testing.T) lotHandlerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := lotHandlerDeps{
		lots:       mocks.NewMockILotUseCase(ctrl),
		scheduling: mocks.NewMockISchedulingUseCase(ctrl),
		prompts:    mocks.NewMockISettlementPrompt(ctrl),
		router:     gin.New(),
	}
	h := NewLotHandler(d.lots, d.scheduling, d.prompts)
	d.router.Use(middleware.ActorRole())
	d.router.POST("/v1/lots", h.CreateLot)
	d.router.GET("/v1/lots/board", h.Board)
	d.router.GET("/v1/lots/:id", h.GetLot)
	d.router.DELETE("/v1/lots/:id", h.DeleteLot)
	d.router.POST("/v1/lots/:id/status/:field", h.ToggleStatus)
	d.router.PUT("/v1/lots/:id/schedule", h.Schedule)
	d.router.DELETE("/v1/lots/:id/schedule", h.Unschedule)
	d.router.PUT("/v1/lots/:id/painted", h.SetPainted)
	d.router.POST("/v1/lots/:id/scan", h.ScanPainted)
	d.router.PUT("/v1/lots/:id/promised", h.SetPromised)
	d.router.GET("/v1/lots/:id/deliverable", h.CanDeliver)
	d.router.POST("/v1/lots/:id/deliver", h.Deliver)
	return d
}

func doJSON(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestLotHandler_CreateLot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		w := doJSON(d.router, http.MethodPost, "/v1/lots", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		w := doJSON(d.router, http.MethodPost, "/v1/lots", `{"client":"ACME","quantity":2,"delivery_due":"soon"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lot{}, usecase.ErrInvalidLotDetails)
		w := doJSON(d.router, http.MethodPost, "/v1/lots", `{"client":"ACME","quantity":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		now := time.Now().UTC()
		d.lots.EXPECT().Create(gomock.Any(), entities.LotDetails{Client: "ACME", Color: "red", Quantity: 2}).
			Return(entities.Lot{ID: "lot-1", Client: "ACME", Color: "red", Quantity: 2, Payment: entities.StatusUnanalysed, CreatedAt: now, UpdatedAt: now, Version: 1}, nil)

		w := doJSON(d.router, http.MethodPost, "/v1/lots", `{"client":"ACME","color":"red","quantity":2}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "lot-1" || body["stage"] != "received" || body["can_deliver"] != false {
			t.Fatalf("unexpected response body: %+v", body)
		}
	})
}

func TestLotHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Lot{}, usecase.ErrLotNotFound)
		w := doJSON(d.router, http.MethodGet, "/v1/lots/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "LOT_NOT_FOUND" {
			t.Fatalf("unexpected error code: %+v", body)
		}
	})

	t.Run("delete forwards operator role", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().Delete(gomock.Any(), "lot-1", entities.RoleOperator).Return(usecase.ErrPermissionDenied)
		w := doJSON(d.router, http.MethodDelete, "/v1/lots/lot-1", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("delete as admin", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().Delete(gomock.Any(), "lot-1", entities.RoleAdmin).Return(nil)
		w := doJSON(d.router, http.MethodDelete, "/v1/lots/lot-1", "", middleware.RoleHeader, "admin")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestLotHandler_Board(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid tri-state filter", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		w := doJSON(d.router, http.MethodGet, "/v1/lots/board?payment=maybe", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid station", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		w := doJSON(d.router, http.MethodGet, "/v1/lots/board?station=x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters are forwarded", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		want := usecase.BoardFilter{Search: "acme", Payment: entities.StatusOK, Station: 2}
		d.lots.EXPECT().Board(gomock.Any(), want).Return(usecase.Board{
			Received: []entities.Lot{{ID: "a"}},
			Stats:    usecase.BoardStats{Total: 1, Received: 1},
		}, nil)

		w := doJSON(d.router, http.MethodGet, "/v1/lots/board?search=acme&payment=ok&measurement=any&station=2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if rec, ok := body["received"].([]any); !ok || len(rec) != 1 {
			t.Fatalf("unexpected received column: %+v", body)
		}
	})
}

func TestLotHandler_ToggleStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payment to ok offers a settlement prompt", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		now := time.Now().UTC()
		opp := entities.SettlementOpportunity{LotID: "lot-1", Client: "ACME", At: now}
		d.lots.EXPECT().ToggleStatus(gomock.Any(), "lot-1", entities.FieldPayment, entities.RoleOperator).
			Return(usecase.ToggleResult{Lot: entities.Lot{ID: "lot-1", Payment: entities.StatusOK}, Opportunity: &opp}, nil)
		d.prompts.EXPECT().Offer(gomock.Any(), opp).
			Return(entities.SettlementPrompt{LotID: "lot-1", State: entities.PromptOffered, OfferedAt: now, ExpiresAt: now.Add(8 * time.Second)}, nil)

		w := doJSON(d.router, http.MethodPost, "/v1/lots/lot-1/status/payment", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		prompt, ok := body["settlement_prompt"].(map[string]any)
		if !ok || prompt["state"] != "offered" {
			t.Fatalf("expected offered prompt, got %+v", body)
		}
	})

	t.Run("prompt failure does not fail the toggle", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		opp := entities.SettlementOpportunity{LotID: "lot-1"}
		d.lots.EXPECT().ToggleStatus(gomock.Any(), "lot-1", entities.FieldPayment, entities.RoleOperator).
			Return(usecase.ToggleResult{Lot: entities.Lot{ID: "lot-1"}, Opportunity: &opp}, nil)
		d.prompts.EXPECT().Offer(gomock.Any(), opp).Return(entities.SettlementPrompt{}, errors.New("boom"))

		w := doJSON(d.router, http.MethodPost, "/v1/lots/lot-1/status/payment", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if _, ok := decodeBody(t, w)["settlement_prompt"]; ok {
			t.Fatal("expected no prompt in response")
		}
	})

	t.Run("invoice toggle without privilege", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().ToggleStatus(gomock.Any(), "lot-1", entities.FieldInvoice, entities.RoleOperator).
			Return(usecase.ToggleResult{}, usecase.ErrPermissionDenied)

		w := doJSON(d.router, http.MethodPost, "/v1/lots/lot-1/status/invoice", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "PERMISSION_DENIED" {
			t.Fatalf("unexpected error code: %+v", body)
		}
	})
}

func TestLotHandler_Flags(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("schedule requires a station", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		w := doJSON(d.router, http.MethodPut, "/v1/lots/lot-1/schedule", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("schedule", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		station, order := 3, 0
		d.scheduling.EXPECT().AssignStation(gomock.Any(), "lot-1", 3).
			Return(entities.Lot{ID: "lot-1", Scheduled: true, Station: &station, PaintOrder: &order}, nil)
		w := doJSON(d.router, http.MethodPut, "/v1/lots/lot-1/schedule", `{"station":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["stage"] != "scheduled" || body["station"] != float64(3) {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unschedule", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().SetScheduled(gomock.Any(), "lot-1", false).Return(entities.Lot{ID: "lot-1"}, nil)
		w := doJSON(d.router, http.MethodDelete, "/v1/lots/lot-1/schedule", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("painted false is not a missing value", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().SetPainted(gomock.Any(), "lot-1", false).Return(entities.Lot{ID: "lot-1"}, nil)
		w := doJSON(d.router, http.MethodPut, "/v1/lots/lot-1/painted", `{"value":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("painted without value", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		w := doJSON(d.router, http.MethodPut, "/v1/lots/lot-1/painted", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("promise on unscheduled lot", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().SetPromised(gomock.Any(), "lot-1", true).Return(entities.Lot{}, usecase.ErrInvalidTransition)
		w := doJSON(d.router, http.MethodPut, "/v1/lots/lot-1/promised", `{"value":true}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("scan reports whether it changed the lot", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().MarkPaintedByScan(gomock.Any(), "lot-1").Return(entities.Lot{ID: "lot-1", Painted: true}, false, nil)
		w := doJSON(d.router, http.MethodPost, "/v1/lots/lot-1/scan", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["changed"] != false {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestLotHandler_Deliver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deliverable", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().CanDeliver(gomock.Any(), "lot-1").Return(true, nil)
		w := doJSON(d.router, http.MethodGet, "/v1/lots/lot-1/deliverable", "")
		if body := decodeBody(t, w); w.Code != http.StatusOK || body["can_deliver"] != true {
			t.Fatalf("unexpected response %d %+v", w.Code, body)
		}
	})

	t.Run("not ready", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().Deliver(gomock.Any(), "lot-1").Return(entities.HistoryEntry{}, usecase.ErrNotReady)
		w := doJSON(d.router, http.MethodPost, "/v1/lots/lot-1/deliver", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("partial move asks for reconcile", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		d.lots.EXPECT().Deliver(gomock.Any(), "lot-1").
			Return(entities.HistoryEntry{}, &usecase.PartialMoveError{LotID: "lot-1", Err: errors.New("delete failed")})
		w := doJSON(d.router, http.MethodPost, "/v1/lots/lot-1/deliver", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "PARTIAL_MOVE_FAILURE" || body["hint"] != "reconcile" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if _, leaked := body["detail"]; leaked {
			t.Fatalf("server error must not expose detail: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		d := newLotHandlerDeps(t)
		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		d.lots.EXPECT().Deliver(gomock.Any(), "lot-1").
			Return(entities.HistoryEntry{Lot: entities.Lot{ID: "lot-1", Painted: true}, DeliveredAt: at}, nil)
		w := doJSON(d.router, http.MethodPost, "/v1/lots/lot-1/deliver", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"] != "lot-1" || body["delivered_at"] != "2024-05-01T12:00:00Z" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
