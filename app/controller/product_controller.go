package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"brioche-tracker/catalog"
	"brioche-tracker/models"
	"brioche-tracker/repository"
)

// ProductController handles HTTP requests for the product catalog
type ProductController struct {
	products repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(products repository.ProductRepositoryInterface) *ProductController {
	return &ProductController{products: products}
}

// List handles GET /api/products
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := c.products.List(r.Context())
	if err != nil {
		log.Printf("❌ List: Error loading products: %v", err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, models.ProductView{
			Product:     p,
			DisplayName: catalog.DisplayName(p),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ProductListResponse{Products: views})
}
