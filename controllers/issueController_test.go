package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"fixitsl-be/errs"
	"fixitsl-be/middlewares"
	"fixitsl-be/models"
	"fixitsl-be/services"
	authUtils "fixitsl-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memIssueRepo struct {
	issues []models.Issue
	next   int
}

func (m *memIssueRepo) Insert(_ context.Context, issue *models.Issue) (*models.Issue, error) {
	m.next++
	issue.ID = primitive.NewObjectID()
	issue.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.next) * time.Minute)
	m.issues = append(m.issues, *issue)
	return issue, nil
}

func (m *memIssueRepo) FindAll(_ context.Context) ([]models.Issue, error) {
	out := make([]models.Issue, len(m.issues))
	copy(out, m.issues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memIssueRepo) FindByID(_ context.Context, id string) (*models.Issue, error) {
	for i := range m.issues {
		if m.issues[i].ID.Hex() == id {
			issue := m.issues[i]
			return &issue, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *memIssueRepo) UpdateStatus(_ context.Context, id string, status models.IssueStatus) (*models.Issue, error) {
	for i := range m.issues {
		if m.issues[i].ID.Hex() == id {
			m.issues[i].Status = status
			issue := m.issues[i]
			return &issue, nil
		}
	}
	return nil, errs.ErrNotFound
}

type stubUploader struct {
	url string
	err error
}

func (s *stubUploader) Upload(context.Context, []byte, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func setupIssueRouter(t *testing.T, repo *memIssueRepo, uploader services.MediaUploader) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	svc := services.NewIssueService(repo, uploader, authUtils.VerifyToken)
	ic := NewIssueController(svc)

	r := gin.New()
	r.POST("/api/issues/report", ic.ReportIssue)
	r.GET("/api/issues", ic.GetAllIssues)
	r.GET("/api/issues/map", ic.GetMapView)
	r.PUT("/api/issues/:id/status", middlewares.BearerCredential(), ic.UpdateIssueStatus)
	return r
}

func reportForm(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%q) error = %v", k, err)
		}
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "photo.jpg")
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("writing image part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func submitReport(t *testing.T, r *gin.Engine, fields map[string]string, image []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := reportForm(t, fields, image)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/issues/report", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	return w
}

func validReportFields() map[string]string {
	return map[string]string{
		"title":       "Deep Pothole",
		"description": "A very deep pothole near the school entrance.",
		"category":    "Pothole",
		"latitude":    "6.9271",
		"longitude":   "79.8612",
	}
}

func TestReportIssueAndList(t *testing.T) {
	repo := &memIssueRepo{}
	r := setupIssueRouter(t, repo, &stubUploader{})

	w := submitReport(t, r, validReportFields(), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("report status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var created models.Issue
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created issue: %v", err)
	}
	if created.Status != models.Open {
		t.Fatalf("created status = %q, want %q", created.Status, models.Open)
	}
	if created.ImageURL != nil {
		t.Fatalf("created imageUrl = %v, want null", *created.ImageURL)
	}
	if !strings.Contains(w.Body.String(), `"imageUrl":null`) {
		t.Fatalf("response does not carry a null imageUrl: %s", w.Body.String())
	}

	fields := validReportFields()
	fields["title"] = "Flooded Intersection"
	fields["category"] = "Flood"
	if w := submitReport(t, r, fields, nil); w.Code != http.StatusCreated {
		t.Fatalf("second report status = %d, want %d", w.Code, http.StatusCreated)
	}

	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, httptest.NewRequest(http.MethodGet, "/api/issues", nil))
	if lw.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", lw.Code, http.StatusOK)
	}

	var listed []models.Issue
	if err := json.Unmarshal(lw.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("list returned %d issues, want 2", len(listed))
	}
	if listed[0].Title != "Flooded Intersection" {
		t.Fatalf("newest issue first: got %q", listed[0].Title)
	}
}

func TestReportIssueMissingLocation(t *testing.T) {
	repo := &memIssueRepo{}
	r := setupIssueRouter(t, repo, &stubUploader{})

	fields := validReportFields()
	delete(fields, "latitude")

	if w := submitReport(t, r, fields, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if len(repo.issues) != 0 {
		t.Fatal("issue persisted despite missing latitude")
	}
}

func TestReportIssueWithImage(t *testing.T) {
	repo := &memIssueRepo{}
	uploader := &stubUploader{url: "https://blobs.example/reports/abc.jpg"}
	r := setupIssueRouter(t, repo, uploader)

	w := submitReport(t, r, validReportFields(), []byte("jpeg bytes"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var created models.Issue
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created issue: %v", err)
	}
	if created.ImageURL == nil || *created.ImageURL != uploader.url {
		t.Fatalf("imageUrl = %v, want %q", created.ImageURL, uploader.url)
	}
}

func TestReportIssueUploadFailure(t *testing.T) {
	repo := &memIssueRepo{}
	r := setupIssueRouter(t, repo, &stubUploader{err: errs.ErrMediaUpload})

	if w := submitReport(t, r, validReportFields(), []byte("jpeg bytes")); w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	if len(repo.issues) != 0 {
		t.Fatal("issue persisted despite the upload failing")
	}
}

func putStatus(t *testing.T, r *gin.Engine, id, status, token string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/issues/"+id+"/status",
		strings.NewReader(`{"status":"`+status+`"}`))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := &memIssueRepo{}
	r := setupIssueRouter(t, repo, &stubUploader{})

	w := submitReport(t, r, validReportFields(), nil)
	var created models.Issue
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created issue: %v", err)
	}

	token, err := authUtils.GenerateToken("admin-1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	uw := putStatus(t, r, created.ID.Hex(), "Resolved", token)
	if uw.Code != http.StatusOK {
		t.Fatalf("update status = %d, want %d: %s", uw.Code, http.StatusOK, uw.Body.String())
	}

	var updated models.Issue
	if err := json.Unmarshal(uw.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decoding updated issue: %v", err)
	}
	if updated.Status != models.Resolved {
		t.Fatalf("updated status = %q, want %q", updated.Status, models.Resolved)
	}

	mw := httptest.NewRecorder()
	r.ServeHTTP(mw, httptest.NewRequest(http.MethodGet, "/api/issues/map", nil))
	if mw.Code != http.StatusOK {
		t.Fatalf("map status = %d, want %d", mw.Code, http.StatusOK)
	}
	var view services.MapView
	if err := json.Unmarshal(mw.Body.Bytes(), &view); err != nil {
		t.Fatalf("decoding map view: %v", err)
	}
	if len(view.Markers) != 1 || view.Markers[0].Status != services.MarkerResolved {
		t.Fatalf("map view = %+v, want one resolved marker", view.Markers)
	}
}

func TestUpdateStatusUnauthorized(t *testing.T) {
	repo := &memIssueRepo{}
	r := setupIssueRouter(t, repo, &stubUploader{})

	w := submitReport(t, r, validReportFields(), nil)
	var created models.Issue
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created issue: %v", err)
	}

	if uw := putStatus(t, r, created.ID.Hex(), "Resolved", ""); uw.Code != http.StatusUnauthorized {
		t.Fatalf("missing credential status = %d, want %d", uw.Code, http.StatusUnauthorized)
	}
	if uw := putStatus(t, r, created.ID.Hex(), "Resolved", "garbage"); uw.Code != http.StatusUnauthorized {
		t.Fatalf("bad credential status = %d, want %d", uw.Code, http.StatusUnauthorized)
	}

	stored, err := repo.FindByID(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.Status != models.Open {
		t.Fatalf("status changed to %q after failed updates", stored.Status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	r := setupIssueRouter(t, &memIssueRepo{}, &stubUploader{})

	token, err := authUtils.GenerateToken("admin-1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if w := putStatus(t, r, primitive.NewObjectID().Hex(), "Resolved", token); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetMapViewWithFocus(t *testing.T) {
	repo := &memIssueRepo{}
	r := setupIssueRouter(t, repo, &stubUploader{})

	w := submitReport(t, r, validReportFields(), nil)
	var created models.Issue
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created issue: %v", err)
	}

	mw := httptest.NewRecorder()
	r.ServeHTTP(mw, httptest.NewRequest(http.MethodGet,
		"/api/issues/map?focus="+created.ID.Hex()+"&lat=6.9271&lng=79.8612", nil))
	if mw.Code != http.StatusOK {
		t.Fatalf("map status = %d, want %d", mw.Code, http.StatusOK)
	}

	var view services.MapView
	if err := json.Unmarshal(mw.Body.Bytes(), &view); err != nil {
		t.Fatalf("decoding map view: %v", err)
	}
	if view.Zoom != 15 {
		t.Fatalf("focused zoom = %d, want 15", view.Zoom)
	}
	if view.Center.Latitude != 6.9271 || view.Center.Longitude != 79.8612 {
		t.Fatalf("focused center = %+v", view.Center)
	}
	if len(view.Markers) != 1 || !view.Markers[0].Focused {
		t.Fatalf("expected the single marker to be focused, got %+v", view.Markers)
	}
}
