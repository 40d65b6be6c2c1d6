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

	"github.com/fahad1722/mail-sender/internal/logger"
	"github.com/fahad1722/mail-sender/internal/platform/validation"
	domain "github.com/fahad1722/mail-sender/internal/referrals/domain"
)

type fakeService struct {
	nextID int64
	items  map[int64]domain.Referral
}

func newFakeService() *fakeService {
	return &fakeService{items: map[int64]domain.Referral{}}
}

func (f *fakeService) Create(ctx context.Context, companyName, linkedInURL string) (domain.Referral, error) {
	f.nextID++
	r := domain.Referral{ID: f.nextID, CompanyName: companyName, LinkedInURL: linkedInURL}
	f.items[r.ID] = r
	return r, nil
}

func (f *fakeService) List(ctx context.Context) ([]domain.Referral, error) {
	out := make([]domain.Referral, 0, len(f.items))
	for id := int64(1); id <= f.nextID; id++ {
		if r, ok := f.items[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeService) Update(ctx context.Context, id int64, companyName, linkedInURL string) (domain.Referral, error) {
	if _, ok := f.items[id]; !ok {
		return domain.Referral{}, domain.ErrNotFound
	}
	r := domain.Referral{ID: id, CompanyName: companyName, LinkedInURL: linkedInURL}
	f.items[id] = r
	return r, nil
}

func (f *fakeService) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func newTestServer(svc domain.Service) *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	New(svc, logger.Nop()).Register(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateReferral_ReturnsStoredEntity(t *testing.T) {
	e := newTestServer(newFakeService())

	rec := doJSON(e, http.MethodPost, "/api/referrals",
		`{"companyName":"Acme","linkedInUrl":"https://linkedin.com/in/jane"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Referral
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, "https://linkedin.com/in/jane", got.LinkedInURL)
}

func TestCreateReferral_MissingFieldRejected(t *testing.T) {
	e := newTestServer(newFakeService())

	rec := doJSON(e, http.MethodPost, "/api/referrals", `{"companyName":"Acme"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, strings.ToLower(rec.Body.String()), "linkedinurl")
}

func TestListReferrals(t *testing.T) {
	svc := newFakeService()
	_, err := svc.Create(context.Background(), "Acme", "https://linkedin.com/in/jane")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Globex", "https://linkedin.com/in/john")
	require.NoError(t, err)
	e := newTestServer(svc)

	rec := doJSON(e, http.MethodGet, "/api/referrals", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Referral
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Globex", got[1].CompanyName)
}

func TestUpdateReferral_UnknownIDIsNotFound(t *testing.T) {
	e := newTestServer(newFakeService())

	rec := doJSON(e, http.MethodPut, "/api/referrals/999",
		`{"companyName":"Acme","linkedInUrl":"https://linkedin.com/in/jane"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateReferral_OverwritesFields(t *testing.T) {
	svc := newFakeService()
	_, err := svc.Create(context.Background(), "Acme", "https://linkedin.com/in/jane")
	require.NoError(t, err)
	e := newTestServer(svc)

	rec := doJSON(e, http.MethodPut, "/api/referrals/1",
		`{"companyName":"Initech","linkedInUrl":"https://linkedin.com/in/peter"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Referral
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Initech", got.CompanyName)
	assert.Equal(t, "https://linkedin.com/in/peter", got.LinkedInURL)
}

func TestDeleteReferral_SecondDeleteIsNotFound(t *testing.T) {
	svc := newFakeService()
	_, err := svc.Create(context.Background(), "Acme", "https://linkedin.com/in/jane")
	require.NoError(t, err)
	e := newTestServer(svc)

	rec := doJSON(e, http.MethodDelete, "/api/referrals/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/referrals/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
