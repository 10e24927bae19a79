package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fliprhq/flipr-cms/internal/config"
	"github.com/fliprhq/flipr-cms/internal/handler"
	"github.com/fliprhq/flipr-cms/internal/model"
	"github.com/fliprhq/flipr-cms/internal/service"
	"github.com/fliprhq/flipr-cms/internal/validator"
)

type webEnv struct {
	router      *gin.Engine
	projects    *memProjectStore
	clients     *memClientStore
	contacts    *memContactStore
	subscribers *memSubscriberStore
}

func newWebEnv(t *testing.T) *webEnv {
	t.Helper()
	validator.Setup()

	env := &webEnv{
		projects:    &memProjectStore{},
		clients:     &memClientStore{},
		contacts:    &memContactStore{},
		subscribers: &memSubscriberStore{},
	}

	log := zerolog.Nop()
	projectService := service.NewProjectService(env.projects)
	clientService := service.NewClientService(env.clients)
	contactService := service.NewContactService(env.contacts)
	subscriberService := service.NewSubscriberService(env.subscribers, log)

	handlers := &WebHandlers{
		Home:       handler.NewHomeHandler(projectService, clientService, log),
		Contact:    handler.NewContactHandler(contactService, log),
		Subscriber: handler.NewSubscriberHandler(subscriberService, log),
		Project:    handler.NewProjectHandler(projectService, log),
		Client:     handler.NewClientHandler(clientService, log),
		Admin:      handler.NewAdminHandler(projectService, clientService, contactService, subscriberService, log),
	}

	cfg := &config.Config{GinMode: gin.TestMode, SecretKey: "test-secret"}
	env.router = SetupWebRouter(handlers, cfg)
	return env
}

func (e *webEnv) postForm(path string, values url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *webEnv) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestContactSubmitValid(t *testing.T) {
	env := newWebEnv(t)

	w := env.postForm("/contact", url.Values{
		"fullName": {"Jane Roe"},
		"email":    {"jane@example.com"},
		"mobile":   {"5550101"},
		"city":     {"Pune"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.Len(t, env.contacts.rows, 1)
	assert.Equal(t, "Jane Roe", env.contacts.rows[0].FullName)

	follow := env.get("/", w.Result().Cookies())
	assert.Contains(t, follow.Body.String(), "Thank you! Your contact details have been submitted.")
}

func TestContactMissingFieldWritesNothing(t *testing.T) {
	for _, missing := range []string{"fullName", "email", "mobile", "city"} {
		t.Run(missing, func(t *testing.T) {
			env := newWebEnv(t)
			values := url.Values{
				"fullName": {"Jane Roe"},
				"email":    {"jane@example.com"},
				"mobile":   {"5550101"},
				"city":     {"Pune"},
			}
			values.Del(missing)

			w := env.postForm("/contact", values, nil)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))
			assert.Empty(t, env.contacts.rows)

			follow := env.get("/", w.Result().Cookies())
			assert.Contains(t, follow.Body.String(), "Please fill all fields in the contact form.")
		})
	}
}

func TestContactBlankFieldRejected(t *testing.T) {
	env := newWebEnv(t)

	// Present-but-empty must behave exactly like missing.
	w := env.postForm("/contact", url.Values{
		"fullName": {""},
		"email":    {"jane@example.com"},
		"mobile":   {"5550101"},
		"city":     {"Pune"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, env.contacts.rows)
}

func TestSubscribeTwiceKeepsOneRow(t *testing.T) {
	env := newWebEnv(t)

	first := env.postForm("/subscribe", url.Values{"email": {"dup@example.com"}}, nil)
	assert.Equal(t, http.StatusFound, first.Code)
	followFirst := env.get("/", first.Result().Cookies())
	assert.Contains(t, followFirst.Body.String(), "Subscribed successfully to our newsletter!")

	second := env.postForm("/subscribe", url.Values{"email": {"dup@example.com"}}, nil)
	assert.Equal(t, http.StatusFound, second.Code)
	followSecond := env.get("/", second.Result().Cookies())
	assert.Contains(t, followSecond.Body.String(), "You are already subscribed!")

	assert.Len(t, env.subscribers.rows, 1)
}

func TestSubscribeEmptyEmailRejected(t *testing.T) {
	env := newWebEnv(t)

	w := env.postForm("/subscribe", url.Values{}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, env.subscribers.rows)

	follow := env.get("/", w.Result().Cookies())
	assert.Contains(t, follow.Body.String(), "Please enter an email address.")
}

func TestEditUnknownIDNotFound(t *testing.T) {
	env := newWebEnv(t)

	for _, path := range []string{
		"/admin/projects/999/edit",
		"/admin/clients/999/edit",
		"/admin/contacts/999/edit",
		"/admin/subscribers/999/edit",
	} {
		w := env.get(path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestNonNumericIDNotFound(t *testing.T) {
	env := newWebEnv(t)

	w := env.get("/admin/projects/abc/edit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.postForm("/admin/projects/abc/delete", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectAddValidationFailureWritesNothing(t *testing.T) {
	env := newWebEnv(t)

	w := env.postForm("/admin/projects", url.Values{
		"image_url": {"https://img.example.com/p.png"},
		"name":      {""},
		"description": {
			"A project",
		},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Empty(t, env.projects.rows)

	follow := env.get("/admin", w.Result().Cookies())
	assert.Contains(t, follow.Body.String(), "All project fields are required.")
}

func TestProjectAddAndPanelListsNewestFirst(t *testing.T) {
	env := newWebEnv(t)

	for _, name := range []string{"First", "Second"} {
		w := env.postForm("/admin/projects", url.Values{
			"image_url":   {"https://img.example.com/p.png"},
			"name":        {name},
			"description": {"desc"},
		}, nil)
		assert.Equal(t, http.StatusFound, w.Code)
	}

	require.Len(t, env.projects.rows, 2)
	listed, err := env.projects.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Second", listed[0].Name)

	follow := env.get("/admin", nil)
	assert.Equal(t, http.StatusOK, follow.Code)
	body := follow.Body.String()
	assert.Less(t, strings.Index(body, "Second"), strings.Index(body, "First"))
}

func TestProjectEditInvalidLeavesRowUnchanged(t *testing.T) {
	env := newWebEnv(t)
	p := &model.Project{ImageURL: "https://img.example.com/p.png", Name: "Original", Description: "original desc"}
	require.NoError(t, env.projects.Create(t.Context(), p))

	w := env.postForm("/admin/projects/1/edit", url.Values{
		"image_url":   {"https://img.example.com/new.png"},
		"name":        {""},
		"description": {"new desc"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/projects/1/edit", w.Header().Get("Location"))

	stored, err := env.projects.GetByID(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Name)
	assert.Equal(t, "https://img.example.com/p.png", stored.ImageURL)
	assert.Equal(t, "original desc", stored.Description)

	follow := env.get("/admin/projects/1/edit", w.Result().Cookies())
	assert.Contains(t, follow.Body.String(), "All project fields are required.")
}

func TestProjectEditValidUpdatesRow(t *testing.T) {
	env := newWebEnv(t)
	p := &model.Project{ImageURL: "https://img.example.com/p.png", Name: "Original", Description: "desc"}
	require.NoError(t, env.projects.Create(t.Context(), p))

	w := env.postForm("/admin/projects/1/edit", url.Values{
		"image_url":   {"https://img.example.com/new.png"},
		"name":        {"Renamed"},
		"description": {"new desc"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	stored, err := env.projects.GetByID(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "https://img.example.com/new.png", stored.ImageURL)
}

func TestProjectEditFormPrefilled(t *testing.T) {
	env := newWebEnv(t)
	p := &model.Project{ImageURL: "https://img.example.com/p.png", Name: "Showcase", Description: "desc"}
	require.NoError(t, env.projects.Create(t.Context(), p))

	w := env.get("/admin/projects/1/edit", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Showcase")
	assert.Contains(t, w.Body.String(), "https://img.example.com/p.png")
}

func TestProjectDeleteRemovesOnlyThatRow(t *testing.T) {
	env := newWebEnv(t)
	for _, name := range []string{"Keep", "Drop"} {
		require.NoError(t, env.projects.Create(t.Context(), &model.Project{
			ImageURL: "https://img.example.com/p.png", Name: name, Description: "desc",
		}))
	}

	w := env.postForm("/admin/projects/2/delete", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	require.Len(t, env.projects.rows, 1)
	assert.Equal(t, "Keep", env.projects.rows[0].Name)

	gone := env.get("/admin/projects/2/edit", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)

	again := env.postForm("/admin/projects/2/delete", nil, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestClientCRUD(t *testing.T) {
	env := newWebEnv(t)

	w := env.postForm("/admin/clients", url.Values{
		"image_url":   {"https://img.example.com/c.png"},
		"name":        {"Acme"},
		"description": {"desc"},
		"designation": {"CEO"},
	}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	require.Len(t, env.clients.rows, 1)

	// Designation missing fails the whole edit.
	w = env.postForm("/admin/clients/1/edit", url.Values{
		"image_url":   {"https://img.example.com/c.png"},
		"name":        {"Acme"},
		"description": {"desc"},
	}, nil)
	assert.Equal(t, "/admin/clients/1/edit", w.Header().Get("Location"))
	assert.Equal(t, "CEO", env.clients.rows[0].Designation)

	w = env.postForm("/admin/clients/1/edit", url.Values{
		"image_url":   {"https://img.example.com/c.png"},
		"name":        {"Acme"},
		"description": {"desc"},
		"designation": {"CTO"},
	}, nil)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, "CTO", env.clients.rows[0].Designation)

	w = env.postForm("/admin/clients/1/delete", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, env.clients.rows)
}

func TestContactAdminEditUsesSnakeCaseKeys(t *testing.T) {
	env := newWebEnv(t)
	require.NoError(t, env.contacts.Create(t.Context(), &model.Contact{
		FullName: "Jane Roe", Email: "jane@example.com", Mobile: "5550101", City: "Pune",
	}))

	// The public camelCase key must not satisfy the admin edit form.
	w := env.postForm("/admin/contacts/1/edit", url.Values{
		"fullName": {"Renamed"},
		"email":    {"jane@example.com"},
		"mobile":   {"5550101"},
		"city":     {"Pune"},
	}, nil)
	assert.Equal(t, "/admin/contacts/1/edit", w.Header().Get("Location"))
	assert.Equal(t, "Jane Roe", env.contacts.rows[0].FullName)

	w = env.postForm("/admin/contacts/1/edit", url.Values{
		"full_name": {"Renamed"},
		"email":     {"jane@example.com"},
		"mobile":    {"5550101"},
		"city":      {"Pune"},
	}, nil)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, "Renamed", env.contacts.rows[0].FullName)
}

func TestSubscriberAdminEditAndDelete(t *testing.T) {
	env := newWebEnv(t)
	require.NoError(t, env.subscribers.Create(t.Context(), &model.Subscriber{Email: "old@example.com"}))

	w := env.postForm("/admin/subscribers/1/edit", url.Values{"email": {""}}, nil)
	assert.Equal(t, "/admin/subscribers/1/edit", w.Header().Get("Location"))
	assert.Equal(t, "old@example.com", env.subscribers.rows[0].Email)

	w = env.postForm("/admin/subscribers/1/edit", url.Values{"email": {"new@example.com"}}, nil)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, "new@example.com", env.subscribers.rows[0].Email)

	w = env.postForm("/admin/subscribers/1/delete", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, env.subscribers.rows)
}

func TestLandingPageRendersListings(t *testing.T) {
	env := newWebEnv(t)
	require.NoError(t, env.projects.Create(t.Context(), &model.Project{
		ImageURL: "https://img.example.com/p.png", Name: "Skyline Tower", Description: "desc",
	}))
	require.NoError(t, env.clients.Create(t.Context(), &model.Client{
		ImageURL: "https://img.example.com/c.png", Name: "Acme", Description: "desc", Designation: "CEO",
	}))

	w := env.get("/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Skyline Tower")
	assert.Contains(t, w.Body.String(), "Acme")
}

func TestHealth(t *testing.T) {
	env := newWebEnv(t)

	w := env.get("/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
