package api

import (
	"errors"   // Sentinel matching
	"net/http" // HTTP status codes
	"net/url"  // Redirect query building

	"worldsporta/internal/domain" // Importing domain models
	"worldsporta/internal/route"  // Category filter
	"worldsporta/internal/state"  // Application state

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AddToCartRequest names the product to add
type AddToCartRequest struct {
	ProductID string `form:"product_id" json:"product_id" binding:"required"` // Catalog id
	Category  string `form:"category" json:"-"`                               // Store filter to return to
}

// AddToCartHandler adds one unit from the store page and returns to the same listing
func AddToCartHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			c.Redirect(http.StatusSeeOther, "/store")
			return
		}
		if _, err := addToCart(st, req.ProductID); err != nil {
			// Unknown product, nothing to add
			c.Redirect(http.StatusSeeOther, "/store")
			return
		}
		target := "/store"
		if cat, err := domain.ParseSportCategory(req.Category); err == nil && cat != domain.All {
			target += "?" + url.Values{"category": {string(cat)}}.Encode()
		}
		c.Redirect(http.StatusSeeOther, target)
	}
}

// ListProductsHandler returns the catalog, optionally filtered by category
func ListProductsHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := domain.ParseSportCategory(c.Query("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": route.FilterProducts(st.Products(), category)})
	}
}

// GetCartHandler returns the cart lines with their derived count and total
func GetCartHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(st))
	}
}

// AddToCartAPIHandler adds one unit of a product
func AddToCartAPIHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if _, err := addToCart(st, req.ProductID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(st))
	}
}

// addToCart looks the product up and adds it
func addToCart(st *state.State, productID string) (domain.Product, error) {
	p, err := st.Product(productID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logrus.WithError(err).Error("Product lookup failed")
		}
		return domain.Product{}, err
	}
	st.AddToCart(p)
	logrus.WithFields(logrus.Fields{
		"product_id": p.ID,           // Product added
		"cart_count": st.CartCount(), // Units after the add
	}).Info("Added to cart")
	return p, nil
}

func cartResponse(st *state.State) gin.H {
	return gin.H{
		"items": st.Cart(),      // Cart lines
		"count": st.CartCount(), // Units
		"total": st.CartTotal(), // Sum of subtotals
	}
}
