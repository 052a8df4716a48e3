package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/repositories"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const productNotFound = "Product Not Found"

type ProductService struct {
	db        *gorm.DB
	products  *repositories.ProductRepository
	suppliers *repositories.SupplierRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		db:        db,
		products:  repositories.NewProductRepository(db),
		suppliers: repositories.NewSupplierRepository(db),
	}
}

func (s *ProductService) List(ctx context.Context) ([]models.ProductDetail, error) {
	products, err := s.products.ListWithSuppliers(ctx)
	if err != nil {
		return nil, InternalError("Could not load products", err)
	}
	return products, nil
}

func (s *ProductService) ListBySupplier(ctx context.Context, supplierID uint) ([]models.Product, error) {
	if _, err := s.findSupplier(ctx, supplierID); err != nil {
		return nil, err
	}
	products, err := s.suppliers.Products(ctx, supplierID)
	if err != nil {
		return nil, InternalError("Could not load supplier products", err)
	}
	return products, nil
}

func (s *ProductService) ListOrderable(ctx context.Context) ([]models.OrderableProduct, error) {
	products, err := s.products.ListOrderable(ctx)
	if err != nil {
		return nil, InternalError("Could not load products", err)
	}
	return products, nil
}

// Create stores the product and its supplier link together.
func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*models.ProductDetail, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	supplier, err := s.suppliers.Get(ctx, req.SupplierID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ValidationError("The selected supplier id is invalid.")
	}
	if err != nil {
		return nil, InternalError("Could not load supplier", err)
	}

	product := &models.Product{Name: req.Name, Description: req.Description, Quantity: req.Quantity}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.products.WithTx(tx).Create(ctx, product, supplier.ID)
	})
	if err != nil {
		return nil, InternalError("Could not create product", err)
	}
	return &models.ProductDetail{Product: *product, Suppliers: []models.Supplier{*supplier}}, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.ProductDetail, error) {
	product, err := s.products.GetWithSuppliers(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError(productNotFound)
	}
	if err != nil {
		return nil, InternalError("Could not load product", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*models.Product, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.products.Update(ctx, product.ID, req.Name, req.Description, req.Quantity); err != nil {
		return nil, InternalError("Could not update product", err)
	}
	product.Name, product.Description, product.Quantity = req.Name, req.Description, req.Quantity
	return product, nil
}

// Delete refuses products still held by a live order.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	inOrder, err := s.products.InLiveOrder(ctx, product.ID)
	if err != nil {
		return InternalError("Could not delete product", err)
	}
	if inOrder {
		return ConflictError(fmt.Sprintf("%s is already included in an order, hence cannot be deleted", product.Name))
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.products.WithTx(tx)
		if err := products.DetachFirstSupplier(ctx, product.ID); err != nil {
			return err
		}
		return products.SoftDelete(ctx, product.ID)
	})
	if err != nil {
		return InternalError("Could not delete product", err)
	}
	return nil
}

var exportHeader = []interface{}{"ID", "Name", "Description", "Quantity", "Suppliers", "Created At"}

// Export renders the product listing as an xlsx workbook.
func (s *ProductService) Export(ctx context.Context) (*bytes.Buffer, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, InternalError("Could not export products", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, InternalError("Could not export products", err)
	}

	for i, p := range products {
		names := make([]string, 0, len(p.Suppliers))
		for _, sup := range p.Suppliers {
			names = append(names, sup.Name)
		}
		row := []interface{}{p.ID, p.Name, p.Description, p.Quantity, strings.Join(names, ", "), p.CreatedAt.Format("2006-01-02 15:04:05")}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, InternalError("Could not export products", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, InternalError("Could not export products", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, InternalError("Could not export products", err)
	}
	return buf, nil
}

func (s *ProductService) find(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError(productNotFound)
	}
	if err != nil {
		return nil, InternalError("Could not load product", err)
	}
	return product, nil
}

func (s *ProductService) findSupplier(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.suppliers.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError(supplierNotFound)
	}
	if err != nil {
		return nil, InternalError("Could not load supplier", err)
	}
	return supplier, nil
}
