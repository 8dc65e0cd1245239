package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsroom/internal/config"
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTest(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.RoleGroup{},
		&models.User{},
		&models.Publisher{},
		&models.Article{},
		&models.Newsletter{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "test-secret-key-that-is-long-enough!",
		Port:      "0",
		Env:       "test",
	}
	return NewServerWithDB(cfg, db), db
}

// authedApp builds a bare Fiber app with an auth shim that injects the given
// user ID, then lets the caller register routes.
func authedApp(userID uint, register func(app *fiber.App)) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	register(app)
	return app
}

func jsonRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestSignupAndLoginFlow(t *testing.T) {
	s, db := setupHandlerTest(t)

	app := fiber.New()
	app.Post("/auth/signup", s.Signup)
	app.Post("/auth/login", s.Login)

	resp := jsonRequest(t, app, http.MethodPost, "/auth/signup", fiber.Map{
		"username": "jane_doe",
		"email":    "jane@example.com",
		"password": "CorrectHorse42",
		"role":     "journalist",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", resp.StatusCode)
	}
	var signupBody struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &signupBody)
	if signupBody.Token == "" {
		t.Fatal("signup: expected a token")
	}
	if signupBody.User.Role != models.RoleJournalist {
		t.Fatalf("signup: expected journalist role, got %s", signupBody.User.Role)
	}

	// The role group is assigned on registration.
	var created models.User
	if err := db.Preload("RoleGroups").First(&created, signupBody.User.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if len(created.RoleGroups) != 1 || created.RoleGroups[0].Name != "Journalist" {
		t.Fatalf("expected Journalist role group, got %+v", created.RoleGroups)
	}

	resp = jsonRequest(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"email":    "jane@example.com",
		"password": "CorrectHorse42",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}

	resp = jsonRequest(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("login: expected 401 for bad password, got %d", resp.StatusCode)
	}
}

func TestApproveArticleEndpoint(t *testing.T) {
	s, db := setupHandlerTest(t)

	editor := models.User{Username: "ed", Email: "ed@example.com", Password: "pw", Role: models.RoleEditor}
	journalist := models.User{Username: "jo", Email: "jo@example.com", Password: "pw", Role: models.RoleJournalist}
	if err := db.Create(&editor).Error; err != nil {
		t.Fatalf("create editor: %v", err)
	}
	if err := db.Create(&journalist).Error; err != nil {
		t.Fatalf("create journalist: %v", err)
	}
	draft := models.Article{Title: "draft", Content: "c", AuthorID: journalist.ID}
	if err := db.Create(&draft).Error; err != nil {
		t.Fatalf("create article: %v", err)
	}

	t.Run("journalist cannot approve", func(t *testing.T) {
		app := authedApp(journalist.ID, func(app *fiber.App) {
			app.Post("/articles/:id/approve", s.ApproveArticle)
		})
		resp := jsonRequest(t, app, http.MethodPost, "/articles/1/approve", nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("editor approves, repeat is a no-op", func(t *testing.T) {
		app := authedApp(editor.ID, func(app *fiber.App) {
			app.Post("/articles/:id/approve", s.ApproveArticle)
		})

		resp := jsonRequest(t, app, http.MethodPost, "/articles/1/approve", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var stored models.Article
		if err := db.First(&stored, draft.ID).Error; err != nil {
			t.Fatalf("reload article: %v", err)
		}
		if !stored.Approved {
			t.Fatal("article should be approved")
		}

		resp = jsonRequest(t, app, http.MethodPost, "/articles/1/approve", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("second approve: expected 200, got %d", resp.StatusCode)
		}
	})
}

func TestSubscriptionAndFeedEndpoints(t *testing.T) {
	s, db := setupHandlerTest(t)

	reader := models.User{Username: "reader", Email: "r@example.com", Password: "pw", Role: models.RoleReader}
	journalist := models.User{Username: "jo", Email: "jo@example.com", Password: "pw", Role: models.RoleJournalist}
	publisher := models.Publisher{Name: "Acme Daily"}
	if err := db.Create(&reader).Error; err != nil {
		t.Fatalf("create reader: %v", err)
	}
	if err := db.Create(&journalist).Error; err != nil {
		t.Fatalf("create journalist: %v", err)
	}
	if err := db.Create(&publisher).Error; err != nil {
		t.Fatalf("create publisher: %v", err)
	}

	approved := models.Article{Title: "published", Content: "c", AuthorID: journalist.ID, PublisherID: &publisher.ID, Approved: true}
	pending := models.Article{Title: "pending", Content: "c", AuthorID: journalist.ID, PublisherID: &publisher.ID}
	if err := db.Create(&approved).Error; err != nil {
		t.Fatalf("create approved: %v", err)
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("create pending: %v", err)
	}

	app := authedApp(reader.ID, func(app *fiber.App) {
		app.Post("/publishers/:id/subscription", s.TogglePublisherSubscription)
		app.Get("/feed", s.GetFeed)
	})

	// Subscribe.
	resp := jsonRequest(t, app, http.MethodPost, "/publishers/1/subscription", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d", resp.StatusCode)
	}
	var toggleBody struct {
		Subscribed bool `json:"subscribed"`
	}
	decodeBody(t, resp, &toggleBody)
	if !toggleBody.Subscribed {
		t.Fatal("expected subscribed=true after first toggle")
	}

	// Feed shows only the approved article.
	resp = jsonRequest(t, app, http.MethodGet, "/feed", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("feed: expected 200, got %d", resp.StatusCode)
	}
	var feedBody struct {
		Articles []models.Article `json:"articles"`
		Count    int              `json:"count"`
	}
	decodeBody(t, resp, &feedBody)
	if feedBody.Count != 1 || len(feedBody.Articles) != 1 {
		t.Fatalf("expected one feed entry, got %d", feedBody.Count)
	}
	if feedBody.Articles[0].Title != "published" {
		t.Fatalf("unexpected feed entry %q", feedBody.Articles[0].Title)
	}

	// Toggle back off; feed is empty again.
	resp = jsonRequest(t, app, http.MethodPost, "/publishers/1/subscription", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second toggle: expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &toggleBody)
	if toggleBody.Subscribed {
		t.Fatal("expected subscribed=false after second toggle")
	}

	resp = jsonRequest(t, app, http.MethodGet, "/feed", nil)
	decodeBody(t, resp, &feedBody)
	if feedBody.Count != 0 {
		t.Fatalf("expected empty feed, got %d entries", feedBody.Count)
	}
}

func TestChangeMyRoleEndpoint(t *testing.T) {
	s, db := setupHandlerTest(t)

	reader := models.User{Username: "reader", Email: "r@example.com", Password: "pw", Role: models.RoleReader}
	publisher := models.Publisher{Name: "Acme Daily"}
	if err := db.Create(&reader).Error; err != nil {
		t.Fatalf("create reader: %v", err)
	}
	if err := db.Create(&publisher).Error; err != nil {
		t.Fatalf("create publisher: %v", err)
	}
	if err := db.Model(&reader).Association("SubscribedPublishers").Append(&publisher); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	app := authedApp(reader.ID, func(app *fiber.App) {
		app.Put("/users/me/role", s.ChangeMyRole)
	})

	resp := jsonRequest(t, app, http.MethodPut, "/users/me/role", fiber.Map{"role": "journalist"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var updated models.User
	if err := db.Preload("SubscribedPublishers").First(&updated, reader.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if updated.Role != models.RoleJournalist {
		t.Fatalf("expected journalist role, got %s", updated.Role)
	}
	if len(updated.SubscribedPublishers) != 0 {
		t.Fatal("subscriptions must be cleared when becoming a journalist")
	}

	resp = jsonRequest(t, app, http.MethodPut, "/users/me/role", fiber.Map{"role": "emperor"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", resp.StatusCode)
	}
}

func TestCreateArticleEndpoint(t *testing.T) {
	s, db := setupHandlerTest(t)

	journalist := models.User{Username: "jo", Email: "jo@example.com", Password: "pw", Role: models.RoleJournalist}
	reader := models.User{Username: "reader", Email: "r@example.com", Password: "pw", Role: models.RoleReader}
	if err := db.Create(&journalist).Error; err != nil {
		t.Fatalf("create journalist: %v", err)
	}
	if err := db.Create(&reader).Error; err != nil {
		t.Fatalf("create reader: %v", err)
	}

	t.Run("journalist creates a draft", func(t *testing.T) {
		app := authedApp(journalist.ID, func(app *fiber.App) {
			app.Post("/articles", s.CreateArticle)
		})
		resp := jsonRequest(t, app, http.MethodPost, "/articles", fiber.Map{
			"title":   "Hello",
			"content": "World",
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		var article models.Article
		decodeBody(t, resp, &article)
		if article.Approved {
			t.Fatal("new articles must start unapproved")
		}
		if article.PublisherID != nil {
			t.Fatal("expected independent article")
		}
	})

	t.Run("reader cannot create", func(t *testing.T) {
		app := authedApp(reader.ID, func(app *fiber.App) {
			app.Post("/articles", s.CreateArticle)
		})
		resp := jsonRequest(t, app, http.MethodPost, "/articles", fiber.Map{
			"title":   "Hello",
			"content": "World",
		})
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
	})
}
