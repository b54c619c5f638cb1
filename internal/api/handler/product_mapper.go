package handler

import (
	"github.com/stockroom/inventory-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProductRequest) ports.CreateProductInput {
	in := ports.CreateProductInput{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	return in
}

func toUpdateInput(req updateProductRequest) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		IsDeleted:   req.IsDeleted,
	}
}

// --- Service result → HTTP response ---

func toListResponse(r *ports.ListProductsResult) listProductsResponse {
	return listProductsResponse{
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
		TotalItems: r.TotalItems,
		Data:       r.Items,
	}
}
