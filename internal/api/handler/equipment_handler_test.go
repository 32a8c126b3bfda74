package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

type stubEquipmentService struct {
	listFn   func(ctx context.Context, filter ports.EquipmentFilter) ([]domain.Equipment, error)
	createFn func(ctx context.Context, input ports.CreateEquipmentInput) (*domain.Equipment, error)
	getFn    func(ctx context.Context, id string) (*domain.Equipment, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubEquipmentService) List(ctx context.Context, filter ports.EquipmentFilter) ([]domain.Equipment, error) {
	return s.listFn(ctx, filter)
}

func (s *stubEquipmentService) Create(ctx context.Context, input ports.CreateEquipmentInput) (*domain.Equipment, error) {
	return s.createFn(ctx, input)
}

func (s *stubEquipmentService) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.getFn(ctx, id)
}

func (s *stubEquipmentService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func equipmentContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestEquipmentList_ForwardsFilters(t *testing.T) {
	var got ports.EquipmentFilter
	svc := &stubEquipmentService{
		listFn: func(_ context.Context, filter ports.EquipmentFilter) ([]domain.Equipment, error) {
			got = filter
			return []domain.Equipment{{ID: "a", Name: "Conveyor A"}}, nil
		},
	}
	h := NewEquipmentHandler(svc)

	c, rec := equipmentContext(t, http.MethodGet, "/v1/equipment?status=maintenance&q=conveyor", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Status != domain.EquipmentMaintenance || got.Search != "conveyor" {
		t.Fatalf("query params not forwarded: %+v", got)
	}

	var resp equipmentListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Equipment) != 1 {
		t.Fatalf("wrong list shape: %+v", resp)
	}
}

func TestEquipmentList_EmptyResultIsArray(t *testing.T) {
	svc := &stubEquipmentService{
		listFn: func(context.Context, ports.EquipmentFilter) ([]domain.Equipment, error) {
			return nil, nil
		},
	}
	h := NewEquipmentHandler(svc)

	c, rec := equipmentContext(t, http.MethodGet, "/v1/equipment", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"equipment":[]`) {
		t.Fatalf("empty list must serialize as [], got %s", rec.Body.String())
	}
}

func TestEquipmentCreate_Created(t *testing.T) {
	svc := &stubEquipmentService{
		createFn: func(_ context.Context, input ports.CreateEquipmentInput) (*domain.Equipment, error) {
			return &domain.Equipment{
				ID:           "eq1",
				Name:         input.Name,
				SerialNumber: input.SerialNumber,
				Status:       domain.EquipmentOperational,
				Location:     input.Location,
			}, nil
		},
	}
	h := NewEquipmentHandler(svc)

	c, rec := equipmentContext(t, http.MethodPost, "/v1/equipment",
		`{"name":"Conveyor A","serial_number":"CNV-001","location":"Hall 2"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestEquipmentCreate_MissingFields(t *testing.T) {
	svc := &stubEquipmentService{
		createFn: func(context.Context, ports.CreateEquipmentInput) (*domain.Equipment, error) {
			t.Fatalf("invalid payload must not reach the service")
			return nil, nil
		},
	}
	h := NewEquipmentHandler(svc)

	c, rec := equipmentContext(t, http.MethodPost, "/v1/equipment", `{"name":"Conveyor A"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error instead of JSON: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEquipmentCreate_RejectsUnknownStatus(t *testing.T) {
	svc := &stubEquipmentService{
		createFn: func(context.Context, ports.CreateEquipmentInput) (*domain.Equipment, error) {
			t.Fatalf("invalid payload must not reach the service")
			return nil, nil
		},
	}
	h := NewEquipmentHandler(svc)

	c, rec := equipmentContext(t, http.MethodPost, "/v1/equipment",
		`{"name":"Conveyor A","serial_number":"CNV-001","location":"Hall 2","status":"broken"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error instead of JSON: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEquipmentGet_PropagatesNotFound(t *testing.T) {
	svc := &stubEquipmentService{
		getFn: func(context.Context, string) (*domain.Equipment, error) {
			return nil, domain.ErrEquipmentNotFound
		},
	}
	h := NewEquipmentHandler(svc)

	c, _ := equipmentContext(t, http.MethodGet, "/v1/equipment/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := h.Get(c)
	if err != domain.ErrEquipmentNotFound {
		t.Fatalf("not-found must flow to the error handler, got %v", err)
	}
}

func TestEquipmentDelete_Success(t *testing.T) {
	var deleted string
	svc := &stubEquipmentService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewEquipmentHandler(svc)

	c, rec := equipmentContext(t, http.MethodDelete, "/v1/equipment/eq1", "")
	c.SetParamNames("id")
	c.SetParamValues("eq1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusOK || deleted != "eq1" {
		t.Fatalf("delete not forwarded, code=%d id=%q", rec.Code, deleted)
	}
}
