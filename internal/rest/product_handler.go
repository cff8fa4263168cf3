package rest

import (
	"net/http"
	"strconv"

	"wisecrackr-be/internal/middleware"
	"wisecrackr-be/internal/product"

	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       *int   `json:"price" binding:"required"`
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
}

type sellerRef struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type productView struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Seller      sellerRef `json:"seller"`
}

func toProductView(p *product.Product) productView {
	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Seller: sellerRef{
			Username: p.SellerUsername,
			Email:    p.SellerEmail,
		},
	}
}

func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	username, ok := middleware.SellerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
		return
	}

	created, err := h.products.Create(c.Request.Context(), product.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}, username)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductView(created))
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.products.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	views := make([]productView, len(products))
	for i := range products {
		views[i] = toProductView(&products[i])
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	p, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductView(p))
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.products.Update(c.Request.Context(), id, product.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductView(updated))
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully", "id": id})
}
