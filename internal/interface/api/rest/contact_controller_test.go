package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/infrastructure/uploads"
	"contact-manager-api/internal/interface/api/rest/dto/contact"
)

type FakeContactService struct {
	ListActiveFunc func(ctx context.Context) (domain.Contacts, error)
	CreateFunc     func(ctx context.Context, c domain.Contact) (*domain.Contact, error)
	SoftDeleteFunc func(ctx context.Context, id domain.ID) error
	RecoverAllFunc func(ctx context.Context) error
	RecoverOneFunc func(ctx context.Context, id domain.ID) error
}

func (f *FakeContactService) ListActive(ctx context.Context) (domain.Contacts, error) {
	if f.ListActiveFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListActiveFunc(ctx)
}
func (f *FakeContactService) Create(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, c)
}
func (f *FakeContactService) SoftDelete(ctx context.Context, id domain.ID) error {
	if f.SoftDeleteFunc == nil {
		return errors.New("not used")
	}
	return f.SoftDeleteFunc(ctx, id)
}
func (f *FakeContactService) RecoverAll(ctx context.Context) error {
	if f.RecoverAllFunc == nil {
		return errors.New("not used")
	}
	return f.RecoverAllFunc(ctx)
}
func (f *FakeContactService) RecoverOne(ctx context.Context, id domain.ID) error {
	if f.RecoverOneFunc == nil {
		return errors.New("not used")
	}
	return f.RecoverOneFunc(ctx, id)
}

type FakePictureStore struct {
	SaveFunc   func(originalName string, size int64, r io.Reader) (string, error)
	RemoveFunc func(name string) error
}

func (f *FakePictureStore) Save(originalName string, size int64, r io.Reader) (string, error) {
	if f.SaveFunc == nil {
		return "", errors.New("not used")
	}
	return f.SaveFunc(originalName, size, r)
}

func (f *FakePictureStore) Remove(name string) error {
	if f.RemoveFunc == nil {
		return nil
	}
	return f.RemoveFunc(name)
}

func setupRouter(t *testing.T, svc *FakeContactService, pics *FakePictureStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	if pics == nil {
		pics = &FakePictureStore{}
	}
	NewContactController(r, svc, pics, zap.NewNop())

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func multipartBody(t *testing.T, fields map[string]string, pictureName string, picture []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if pictureName != "" {
		fw, err := w.CreateFormFile("picture", pictureName)
		require.NoError(t, err)
		_, err = fw.Write(picture)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func validFormFields() map[string]string {
	return map[string]string{
		"firstName": "Ravi",
		"lastName":  "Kumar",
		"contact":   "+919812345678",
		"birthday":  "1990-01-01",
		"email":     "ravi@example.com",
	}
}

func someDomainContact(id domain.ID) *domain.Contact {
	return &domain.Contact{
		ID:        id,
		FirstName: "Ravi",
		LastName:  "Kumar",
		Phone:     "+919812345678",
		Birthday:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:     "ravi@example.com",
	}
}

func TestContactController_GetContactsHandler(t *testing.T) {
	t.Run("500 when service fails", func(t *testing.T) {
		r := setupRouter(t, &FakeContactService{
			ListActiveFunc: func(ctx context.Context) (domain.Contacts, error) {
				return nil, errors.New("db error")
			},
		}, nil)

		rr := doReq(t, r, http.MethodGet, "/api/contacts", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("200 returns active contacts newest first", func(t *testing.T) {
		r := setupRouter(t, &FakeContactService{
			ListActiveFunc: func(ctx context.Context) (domain.Contacts, error) {
				return domain.Contacts{someDomainContact(5), someDomainContact(1)}, nil
			},
		}, nil)

		rr := doReq(t, r, http.MethodGet, "/api/contacts", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var got contact.Contacts
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(5), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
		assert.Equal(t, "1990-01-01", got[0].Birthday)
		assert.False(t, got[0].IsDeleted)
	})
}

func TestContactController_CreateContactHandler(t *testing.T) {
	t.Run("201 without picture", func(t *testing.T) {
		var created domain.Contact
		r := setupRouter(t, &FakeContactService{
			CreateFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
				created = c
				out := c
				out.ID = 1
				return &out, nil
			},
		}, nil)

		body, ct := multipartBody(t, validFormFields(), "", nil)
		rr := doReq(t, r, http.MethodPost, "/api/contacts", body, ct)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Ravi", created.FirstName)
		assert.Empty(t, created.Picture)
		assert.Contains(t, rr.Body.String(), "contact saved successfully")
	})

	t.Run("201 with picture stores file and keeps the generated name", func(t *testing.T) {
		var created domain.Contact
		pics := &FakePictureStore{
			SaveFunc: func(name string, size int64, r io.Reader) (string, error) {
				assert.Equal(t, "me.png", name)
				return "1700000000-7.png", nil
			},
		}
		r := setupRouter(t, &FakeContactService{
			CreateFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
				created = c
				return &c, nil
			},
		}, pics)

		body, ct := multipartBody(t, validFormFields(), "me.png", []byte("png bytes"))
		rr := doReq(t, r, http.MethodPost, "/api/contacts", body, ct)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "1700000000-7.png", created.Picture)
	})

	t.Run("400 when a required field is missing", func(t *testing.T) {
		r := setupRouter(t, &FakeContactService{}, nil)

		fields := validFormFields()
		delete(fields, "email")
		body, ct := multipartBody(t, fields, "", nil)
		rr := doReq(t, r, http.MethodPost, "/api/contacts", body, ct)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "email is required")
	})

	t.Run("400 on malformed birthday", func(t *testing.T) {
		r := setupRouter(t, &FakeContactService{}, nil)

		fields := validFormFields()
		fields["birthday"] = "01/01/1990"
		body, ct := multipartBody(t, fields, "", nil)
		rr := doReq(t, r, http.MethodPost, "/api/contacts", body, ct)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("400 on rejected picture extension", func(t *testing.T) {
		pics := &FakePictureStore{
			SaveFunc: func(name string, size int64, r io.Reader) (string, error) {
				return "", uploads.ErrExtension
			},
		}
		r := setupRouter(t, &FakeContactService{}, pics)

		body, ct := multipartBody(t, validFormFields(), "malware.gif", []byte("gif"))
		rr := doReq(t, r, http.MethodPost, "/api/contacts", body, ct)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "allowed")
	})

	t.Run("500 on insert failure", func(t *testing.T) {
		r := setupRouter(t, &FakeContactService{
			CreateFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
				return nil, errors.New("insert failed")
			},
		}, nil)

		body, ct := multipartBody(t, validFormFields(), "", nil)
		rr := doReq(t, r, http.MethodPost, "/api/contacts", body, ct)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("insert failure removes the already-stored picture", func(t *testing.T) {
		var removed string
		pics := &FakePictureStore{
			SaveFunc: func(name string, size int64, r io.Reader) (string, error) {
				return "1700000000-7.png", nil
			},
			RemoveFunc: func(name string) error {
				removed = name
				return nil
			},
		}
		r := setupRouter(t, &FakeContactService{
			CreateFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
				return nil, errors.New("insert failed")
			},
		}, pics)

		body, ct := multipartBody(t, validFormFields(), "me.png", []byte("png bytes"))
		rr := doReq(t, r, http.MethodPost, "/api/contacts", body, ct)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "1700000000-7.png", removed, "no orphan file stays on disk")
	})
}

func TestContactController_DeleteContactHandler(t *testing.T) {
	t.Run("200 even for an id that does not exist", func(t *testing.T) {
		var gotID domain.ID
		r := setupRouter(t, &FakeContactService{
			SoftDeleteFunc: func(ctx context.Context, id domain.ID) error {
				gotID = id
				return nil
			},
		}, nil)

		rr := doReq(t, r, http.MethodDelete, "/api/contacts/12345", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.ID(12345), gotID)
		assert.Contains(t, rr.Body.String(), "marked as deleted")
	})

	t.Run("400 on non-numeric id", func(t *testing.T) {
		r := setupRouter(t, &FakeContactService{}, nil)
		rr := doReq(t, r, http.MethodDelete, "/api/contacts/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("500 on store failure", func(t *testing.T) {
		r := setupRouter(t, &FakeContactService{
			SoftDeleteFunc: func(ctx context.Context, id domain.ID) error {
				return errors.New("db down")
			},
		}, nil)

		rr := doReq(t, r, http.MethodDelete, "/api/contacts/1", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestContactController_RecoverHandlers(t *testing.T) {
	t.Run("recover all", func(t *testing.T) {
		called := false
		r := setupRouter(t, &FakeContactService{
			RecoverAllFunc: func(ctx context.Context) error {
				called = true
				return nil
			},
		}, nil)

		rr := doReq(t, r, http.MethodPost, "/api/contacts/recover", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called)
		assert.Contains(t, rr.Body.String(), "recovered")
	})

	t.Run("recover one", func(t *testing.T) {
		var gotID domain.ID
		r := setupRouter(t, &FakeContactService{
			RecoverOneFunc: func(ctx context.Context, id domain.ID) error {
				gotID = id
				return nil
			},
		}, nil)

		rr := doReq(t, r, http.MethodPost, "/api/contacts/recover/7", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.ID(7), gotID)
	})

	t.Run("recover one rejects bad id", func(t *testing.T) {
		r := setupRouter(t, &FakeContactService{}, nil)
		rr := doReq(t, r, http.MethodPost, "/api/contacts/recover/xyz", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// statefulService drives the create -> delete -> recover round trip end to
// end through the HTTP layer.
type statefulService struct {
	FakeContactService
	rows   map[domain.ID]*domain.Contact
	nextID domain.ID
}

func newStatefulService() *statefulService {
	s := &statefulService{rows: map[domain.ID]*domain.Contact{}, nextID: 1}
	s.ListActiveFunc = func(ctx context.Context) (domain.Contacts, error) {
		var out domain.Contacts
		for id := s.nextID - 1; id >= 1; id-- {
			if c, ok := s.rows[id]; ok && !c.IsDeleted {
				out = append(out, c)
			}
		}
		return out, nil
	}
	s.CreateFunc = func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
		c.ID = s.nextID
		s.nextID++
		s.rows[c.ID] = &c
		return &c, nil
	}
	s.SoftDeleteFunc = func(ctx context.Context, id domain.ID) error {
		if c, ok := s.rows[id]; ok {
			c.IsDeleted = true
		}
		return nil
	}
	s.RecoverAllFunc = func(ctx context.Context) error {
		for _, c := range s.rows {
			c.IsDeleted = false
		}
		return nil
	}
	return s
}

func TestContactLifecycle_CreateDeleteRecover(t *testing.T) {
	svc := newStatefulService()
	r := setupRouter(t, &svc.FakeContactService, nil)

	list := func() contact.Contacts {
		rr := doReq(t, r, http.MethodGet, "/api/contacts", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var got contact.Contacts
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		return got
	}

	body, ct := multipartBody(t, validFormFields(), "", nil)
	rr := doReq(t, r, http.MethodPost, "/api/contacts", body, ct)
	require.Equal(t, http.StatusCreated, rr.Code)

	got := list()
	require.Len(t, got, 1)
	id := got[0].ID
	assert.False(t, got[0].IsDeleted)

	rr = doReq(t, r, http.MethodDelete, "/api/contacts/1", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, list())

	rr = doReq(t, r, http.MethodPost, "/api/contacts/recover", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	got = list()
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
}
