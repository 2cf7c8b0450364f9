package catalog

import (
	"plumber-backend/constants"
	"plumber-backend/logger"
	blogModel "plumber-backend/models/blog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const blogPerPage = 6

// BlogPosts lists published articles, newest first, 6 per page, with the
// category choices and up to three featured posts for the sidebar.
func (cc *CatalogController) BlogPosts(c *fiber.Ctx) error {
	category := c.Query("category")
	search := c.Query("search")
	published := func() *gorm.DB {
		query := cc.DB.Model(&blogModel.BlogPost{}).Where("is_published = ?", true)
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if search != "" {
			pattern := "%" + search + "%"
			query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
		}
		return query
	}

	pageNum := c.QueryInt("page", 1)
	if pageNum < 1 {
		pageNum = 1
	}

	var total int64
	if err := published().Count(&total).Error; err != nil {
		logger.Error("Failed to count blog posts", err)
		return internalError(c)
	}

	var posts []blogModel.BlogPost
	if err := published().Order("created_at desc").
		Limit(blogPerPage).Offset((pageNum - 1) * blogPerPage).
		Find(&posts).Error; err != nil {
		logger.Error("Failed to load blog posts", err)
		return internalError(c)
	}

	var featured []blogModel.BlogPost
	if err := cc.DB.Where("is_published = ? AND is_featured = ?", true, true).
		Order("created_at desc").Limit(3).Find(&featured).Error; err != nil {
		logger.Error("Failed to load featured posts", err)
		return internalError(c)
	}

	return ok(c, "Blog posts retrieved successfully", fiber.Map{
		"posts":      posts,
		"featured":   featured,
		"categories": constants.ValidBlogCategories,
		"pagination": fiber.Map{
			"page":        pageNum,
			"per_page":    blogPerPage,
			"total":       total,
			"total_pages": (total + blogPerPage - 1) / blogPerPage,
		},
	})
}

// BlogPostBySlug returns one published article, bumps its view counter,
// and bundles up to three related posts from the same category.
func (cc *CatalogController) BlogPostBySlug(c *fiber.Ctx) error {
	var post blogModel.BlogPost
	err := cc.DB.Preload("RelatedService").Preload("RelatedArea").
		Where("slug = ? AND is_published = ?", c.Params("slug"), true).
		First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Blog post not found")
		}
		logger.Error("Failed to load blog post", err)
		return internalError(c)
	}

	if err := cc.DB.Model(&blogModel.BlogPost{}).Where("id = ?", post.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		logger.Warning("Failed to bump view counter: " + err.Error())
	} else {
		post.Views++
	}

	var related []blogModel.BlogPost
	if err := cc.DB.Where("is_published = ? AND category = ? AND id <> ?", true, post.Category, post.ID).
		Order("created_at desc").Limit(3).Find(&related).Error; err != nil {
		logger.Error("Failed to load related posts", err)
		return internalError(c)
	}

	return ok(c, "Blog post retrieved successfully", fiber.Map{
		"post":    post,
		"tags":    post.TagsList(),
		"related": related,
	})
}
