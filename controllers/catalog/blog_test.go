package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"plumber-backend/constants"
	areaModel "plumber-backend/models/area"
	blogModel "plumber-backend/models/blog"
	serviceModel "plumber-backend/models/service"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func blogTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&serviceModel.Service{}, &areaModel.ServiceArea{}, &blogModel.BlogPost{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cc := NewCatalogController(db, nil)
	app := fiber.New()
	app.Get("/api/blog", cc.BlogPosts)
	app.Get("/api/blog/:slug", cc.BlogPostBySlug)
	return app, db
}

func seedPost(t *testing.T, db *gorm.DB, title, category string, published bool) blogModel.BlogPost {
	t.Helper()
	post := blogModel.BlogPost{
		Title:    title,
		Excerpt:  "Short summary of " + title,
		Content:  "Full article body for " + title,
		Category: category,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post %q: %v", title, err)
	}
	// default:false tags make explicit flags a separate update
	if published {
		if err := db.Model(&post).Update("is_published", true).Error; err != nil {
			t.Fatalf("publish post %q: %v", title, err)
		}
		post.IsPublished = true
	}
	return post
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]json.RawMessage) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	var parsed struct {
		Status  int                        `json:"status"`
		Message string                     `json:"message"`
		Data    map[string]json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, parsed.Data
}

func TestBlogPostsListsPublishedOnly(t *testing.T) {
	app, db := blogTestApp(t)
	seedPost(t, db, "Winterizing Outdoor Taps", constants.BlogCategorySeasonal, true)
	seedPost(t, db, "Unclog a Drain Yourself", constants.BlogCategoryDIY, true)
	seedPost(t, db, "Unfinished Draft", constants.BlogCategoryNews, false)

	status, data := getJSON(t, app, "/api/blog")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
	}

	var posts []blogModel.BlogPost
	if err := json.Unmarshal(data["posts"], &posts); err != nil {
		t.Fatalf("decode posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2 published", len(posts))
	}
	for _, p := range posts {
		if p.Title == "Unfinished Draft" {
			t.Error("unpublished post leaked into the public listing")
		}
	}
}

func TestBlogPostsFiltersByCategory(t *testing.T) {
	app, db := blogTestApp(t)
	seedPost(t, db, "Winterizing Outdoor Taps", constants.BlogCategorySeasonal, true)
	seedPost(t, db, "Unclog a Drain Yourself", constants.BlogCategoryDIY, true)

	status, data := getJSON(t, app, "/api/blog?category="+constants.BlogCategoryDIY)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
	}
	var posts []blogModel.BlogPost
	if err := json.Unmarshal(data["posts"], &posts); err != nil {
		t.Fatalf("decode posts: %v", err)
	}
	if len(posts) != 1 || posts[0].Category != constants.BlogCategoryDIY {
		t.Errorf("category filter returned %d posts", len(posts))
	}
}

func TestBlogPostBySlug(t *testing.T) {
	app, db := blogTestApp(t)
	published := seedPost(t, db, "Winterizing Outdoor Taps", constants.BlogCategorySeasonal, true)
	draft := seedPost(t, db, "Unfinished Draft", constants.BlogCategoryNews, false)

	if published.Slug != "winterizing-outdoor-taps" {
		t.Fatalf("slug = %q, want derived from title", published.Slug)
	}

	status, data := getJSON(t, app, "/api/blog/"+published.Slug)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
	}
	var post blogModel.BlogPost
	if err := json.Unmarshal(data["post"], &post); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	if post.ID != published.ID {
		t.Errorf("post id = %d, want %d", post.ID, published.ID)
	}
	if post.Views != 1 {
		t.Errorf("views = %d, want 1 after first read", post.Views)
	}

	var stored blogModel.BlogPost
	if err := db.First(&stored, published.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if stored.Views != 1 {
		t.Errorf("stored views = %d, want 1", stored.Views)
	}

	if status, _ := getJSON(t, app, "/api/blog/"+draft.Slug); status != fiber.StatusNotFound {
		t.Errorf("draft detail status = %d, want %d", status, fiber.StatusNotFound)
	}
	if status, _ := getJSON(t, app, "/api/blog/no-such-post"); status != fiber.StatusNotFound {
		t.Errorf("unknown slug status = %d, want %d", status, fiber.StatusNotFound)
	}
}
