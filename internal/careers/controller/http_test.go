package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/fahad1722/mail-sender/internal/careers/domain"
	"github.com/fahad1722/mail-sender/internal/logger"
	"github.com/fahad1722/mail-sender/internal/platform/validation"
)

// fakeService is an in-memory domain.Service for handler tests.
type fakeService struct {
	nextID  int64
	careers map[int64]domain.Career
}

func newFakeService() *fakeService {
	return &fakeService{careers: map[int64]domain.Career{}}
}

func (f *fakeService) Create(ctx context.Context, companyName, careerLink string) (domain.Career, error) {
	f.nextID++
	c := domain.Career{ID: f.nextID, CompanyName: companyName, CareerLink: careerLink}
	f.careers[c.ID] = c
	return c, nil
}

func (f *fakeService) List(ctx context.Context) ([]domain.Career, error) {
	out := []domain.Career{}
	for _, c := range f.careers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeService) Update(ctx context.Context, id int64, companyName, careerLink string) (domain.Career, error) {
	if _, ok := f.careers[id]; !ok {
		return domain.Career{}, domain.ErrNotFound
	}
	c := domain.Career{ID: id, CompanyName: companyName, CareerLink: careerLink}
	f.careers[id] = c
	return c, nil
}

func (f *fakeService) Delete(ctx context.Context, id int64) error {
	if _, ok := f.careers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.careers, id)
	return nil
}

func newTestServer(svc domain.Service) *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	New(svc, logger.Nop()).Register(e)
	return e
}

func TestCreateCareer_ReturnsSavedEntity(t *testing.T) {
	e := newTestServer(newFakeService())

	req := httptest.NewRequest(http.MethodPost, "/api/careers",
		strings.NewReader(`{"companyName":"Acme","careerLink":"https://acme.example/jobs"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Career
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, "https://acme.example/jobs", got.CareerLink)
}

func TestCreateCareer_MissingFieldIs400(t *testing.T) {
	e := newTestServer(newFakeService())

	req := httptest.NewRequest(http.MethodPost, "/api/careers",
		strings.NewReader(`{"companyName":"Acme"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "careerlink")
}

func TestListCareers(t *testing.T) {
	svc := newFakeService()
	_, _ = svc.Create(context.Background(), "Acme", "https://acme.example/jobs")
	e := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/careers", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Career
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestUpdateCareer_UnknownIDIs404EmptyBody(t *testing.T) {
	e := newTestServer(newFakeService())

	req := httptest.NewRequest(http.MethodPut, "/api/careers/999",
		strings.NewReader(`{"companyName":"Acme","careerLink":"https://acme.example/jobs"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateCareer_OverwritesAllFields(t *testing.T) {
	svc := newFakeService()
	created, _ := svc.Create(context.Background(), "Acme", "https://old.example")
	e := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/careers/1",
		strings.NewReader(`{"companyName":"Acme Corp","careerLink":"https://new.example"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Career
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Acme Corp", got.CompanyName)
	assert.Equal(t, "https://new.example", got.CareerLink)
}

func TestUpdateCareer_NonNumericIDIs400(t *testing.T) {
	e := newTestServer(newFakeService())

	req := httptest.NewRequest(http.MethodPut, "/api/careers/abc",
		strings.NewReader(`{"companyName":"Acme","careerLink":"https://acme.example"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCareer(t *testing.T) {
	svc := newFakeService()
	_, _ = svc.Create(context.Background(), "Acme", "https://acme.example/jobs")
	e := newTestServer(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/careers/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// a second delete is a 404
	req = httptest.NewRequest(http.MethodDelete, "/api/careers/1", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
