package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"crawler-dashboard/pkg/db"
	"crawler-dashboard/pkg/models"
	"crawler-dashboard/pkg/services"

	"github.com/gin-gonic/gin"
)

// URLService is what the handlers need from the service layer
type URLService interface {
	ListURLs(ctx context.Context) ([]models.URLItem, error)
	GetURL(ctx context.Context, id int64) (*models.URLDetail, error)
	CreateURL(ctx context.Context, create models.URLCreate) (*models.URLItem, error)
	DeleteURL(ctx context.Context, id int64) error
	RefreshURL(ctx context.Context, id int64) error
	StopURL(ctx context.Context, id int64) error
	StartURL(ctx context.Context, id int64) error
	Health(ctx context.Context) error
}

// ListURLs lists all URLs, newest first
func ListURLs(service URLService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := service.ListURLs(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// CreateURL queues a new URL
func CreateURL(service URLService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var create models.URLCreate
		if err := c.ShouldBindJSON(&create); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: url must be an absolute URL"})
			return
		}

		item, err := service.CreateURL(c.Request.Context(), create)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// GetURL returns a URL with headings and broken links
func GetURL(service URLService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		detail, err := service.GetURL(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, detail)
	}
}

// DeleteURL deletes a URL
func DeleteURL(service URLService) gin.HandlerFunc {
	return action(service.DeleteURL, "url deleted")
}

// RefreshURL re-queues a URL for crawling
func RefreshURL(service URLService) gin.HandlerFunc {
	return action(service.RefreshURL, "url queued for refresh")
}

// StopURL stops a running crawl
func StopURL(service URLService) gin.HandlerFunc {
	return action(service.StopURL, "url crawling stopped")
}

// StartURL re-queues a stopped URL
func StartURL(service URLService) gin.HandlerFunc {
	return action(service.StartURL, "url queued")
}

// HealthCheck reports whether the database is reachable
func HealthCheck(service URLService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Ping answers without touching the database
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func action(call func(context.Context, int64) error, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := call(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": message, "id": id})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps service errors to status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidURL):
		status = http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrNotRunning), errors.Is(err, db.ErrNotStopped):
		status = http.StatusConflict
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
