package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/service"
)

func TestUploadImage(t *testing.T) {
	auth := &mockAuth{parsePrin: service.Principal{UserID: 1, Role: models.RoleWriter}}
	images := &mockImages{img: &models.Image{
		ID: 9, PostID: 3, URL: "/uploads/abc.png", Name: "abc.png", UploadedAt: time.Now(),
	}}
	r := newTestRouter(&service.Service{Authorization: auth, Images: images})

	body, contentType := multipartFormWithFile(t, map[string]string{
		"post_id": "3",
	}, "image", "photo.png", "fake-png-bytes")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/images", body)
	req.Header = authHeader("valid-token")
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if images.lastPostID != 3 || images.lastName != "photo.png" {
		t.Fatalf("service received post=%d name=%q", images.lastPostID, images.lastName)
	}
	var got models.Image
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != 9 || got.URL != "/uploads/abc.png" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestUploadImage_Errors(t *testing.T) {
	auth := &mockAuth{parsePrin: service.Principal{UserID: 1, Role: models.RoleWriter}}

	t.Run("missing file", func(t *testing.T) {
		r := newTestRouter(&service.Service{Authorization: auth, Images: &mockImages{}})

		body, contentType := multipartForm(t, map[string]string{"post_id": "3"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/images", body)
		req.Header = authHeader("valid-token")
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, want 400", w.Code)
		}
	})

	t.Run("malformed post_id", func(t *testing.T) {
		r := newTestRouter(&service.Service{Authorization: auth, Images: &mockImages{}})

		body, contentType := multipartFormWithFile(t, map[string]string{
			"post_id": "abc",
		}, "image", "photo.png", "fake-png-bytes")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/images", body)
		req.Header = authHeader("valid-token")
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, want 400", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		r := newTestRouter(&service.Service{
			Authorization: auth,
			Images:        &mockImages{err: errors.New("store image blob: disk full")},
		})

		body, contentType := multipartFormWithFile(t, nil, "image", "photo.png", "fake-png-bytes")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/images", body)
		req.Header = authHeader("valid-token")
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, want 500, body=%s", w.Code, w.Body.String())
		}
	})
}

func TestListImages(t *testing.T) {
	images := &mockImages{list: []models.Image{
		{ID: 9, PostID: 3, PostTitle: "Launch", URL: "/uploads/abc.png", Name: "abc.png"},
	}}
	r := newTestRouter(&service.Service{Images: images})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/images", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var got []models.Image
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].PostTitle != "Launch" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestUpdateImage(t *testing.T) {
	auth := &mockAuth{parsePrin: service.Principal{UserID: 1, Role: models.RoleEditor}}
	images := &mockImages{img: &models.Image{ID: 9, Name: "renamed.png"}}
	r := newTestRouter(&service.Service{Authorization: auth, Images: images})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/images/9",
		strings.NewReader(`{"name":"renamed.png","postId":0}`))
	req.Header = authHeader("valid-token")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	upd := images.lastUpd
	if upd.Name == nil || *upd.Name != "renamed.png" {
		t.Fatalf("name not forwarded: %+v", upd)
	}
	if upd.PostID == nil || *upd.PostID != 0 {
		t.Fatalf("postId 0 must be forwarded to detach the image: %+v", upd)
	}
	if upd.URL != nil {
		t.Fatalf("untouched url must stay nil: %+v", upd)
	}
}

func TestDeleteImage_RequiresAdmin(t *testing.T) {
	images := &mockImages{}

	for _, tc := range []struct {
		role     string
		wantCode int
	}{
		{models.RoleEditor, http.StatusForbidden},
		{models.RoleAdmin, http.StatusOK},
	} {
		auth := &mockAuth{parsePrin: service.Principal{UserID: 1, Role: tc.role}}
		r := newTestRouter(&service.Service{Authorization: auth, Images: images})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/images/9", nil)
		req.Header = authHeader("valid-token")
		r.ServeHTTP(w, req)

		if w.Code != tc.wantCode {
			t.Fatalf("role=%s: status=%d, want %d", tc.role, w.Code, tc.wantCode)
		}
	}
	if images.deletes != 1 {
		t.Fatalf("expected one delete call, got %d", images.deletes)
	}
}
