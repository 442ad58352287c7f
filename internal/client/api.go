package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"contact-manager-api/internal/validation"
)

// Contact is the server's wire shape of a persisted contact.
type Contact struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"contact"`
	Birthday  string `json:"birthday"`
	Email     string `json:"email"`
	Picture   string `json:"picture"`
	IsDeleted bool   `json:"isDeleted"`
}

type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *APIClient) FetchContacts(ctx context.Context) ([]Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/contacts", nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch contacts: unexpected status %d", resp.StatusCode)
	}

	var cs []Contact
	if err = json.NewDecoder(resp.Body).Decode(&cs); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}

	return cs, nil
}

// CreateContact submits the record as multipart form data, attaching the
// picture file when a path is set.
func (a *APIClient) CreateContact(ctx context.Context, rec validation.Record, picturePath string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"firstName": rec.FirstName,
		"lastName":  rec.LastName,
		"contact":   rec.Contact,
		"birthday":  rec.Birthday,
		"email":     rec.Email,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}

	if picturePath != "" {
		f, err := os.Open(picturePath)
		if err != nil {
			return fmt.Errorf("open picture: %w", err)
		}
		defer f.Close()

		fw, err := w.CreateFormFile("picture", filepath.Base(picturePath))
		if err != nil {
			return err
		}
		if _, err = io.Copy(fw, f); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/contacts", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("create contact: unexpected status %d", resp.StatusCode)
	}

	return nil
}

func (a *APIClient) DeleteContact(ctx context.Context, id int64) error {
	return a.message(ctx, http.MethodDelete, fmt.Sprintf("%s/api/contacts/%d", a.baseURL, id))
}

func (a *APIClient) RecoverAll(ctx context.Context) error {
	return a.message(ctx, http.MethodPost, a.baseURL+"/api/contacts/recover")
}

func (a *APIClient) RecoverOne(ctx context.Context, id int64) error {
	return a.message(ctx, http.MethodPost, fmt.Sprintf("%s/api/contacts/recover/%d", a.baseURL, id))
}

func (a *APIClient) message(ctx context.Context, method, url string) error {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return err
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: unexpected status %d", method, url, resp.StatusCode)
	}

	return nil
}
