// Package rest wires the HTTP surface to the domain services.
package rest

import (
	"errors"
	"net/http"

	"wisecrackr-be/internal/middleware"
	"wisecrackr-be/internal/product"
	"wisecrackr-be/internal/seller"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	sellers  seller.Service
	products product.Service
}

func NewHandler(sellers seller.Service, products product.Service) *Handler {
	return &Handler{
		sellers:  sellers,
		products: products,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, tokens middleware.TokenVerifier) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	router.POST("/seller", h.registerSeller)
	router.POST("/login", h.login)
	router.GET("/products", h.listProducts)
	router.GET("/product/:id", h.getProduct)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authorized := router.Group("/")
	authorized.Use(middleware.AuthRequired(tokens))
	{
		authorized.POST("/product", h.createProduct)
		authorized.PUT("/product/:id", h.updateProduct)
		authorized.DELETE("/product/:id", h.deleteProduct)
	}
}

// writeError translates domain sentinels into HTTP statuses. Anything
// unrecognized is a 500 with a generic message; internals stay internal.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, seller.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, product.ErrSellerNotFound),
		errors.Is(err, seller.ErrSellerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, seller.ErrUsernameTaken),
		errors.Is(err, seller.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrNoFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
