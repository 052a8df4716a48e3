package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/repositories"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const supplierNotFound = "Supplier Not Found"

type SupplierService struct {
	suppliers *repositories.SupplierRepository
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{suppliers: repositories.NewSupplierRepository(db)}
}

func (s *SupplierService) List(ctx context.Context) ([]models.SupplierSummary, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, InternalError("Could not load suppliers", err)
	}
	return suppliers, nil
}

func (s *SupplierService) Create(ctx context.Context, req dto.SupplierRequest) (*models.Supplier, error) {
	req.Normalize()
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	supplier := &models.Supplier{Name: req.Name}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, InternalError("Could not create supplier", err)
	}
	return supplier, nil
}

func (s *SupplierService) Get(ctx context.Context, id uint) (*models.SupplierDetail, error) {
	supplier, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.suppliers.Products(ctx, supplier.ID)
	if err != nil {
		return nil, InternalError("Could not load supplier products", err)
	}
	return &models.SupplierDetail{Supplier: *supplier, Products: products}, nil
}

func (s *SupplierService) Update(ctx context.Context, id uint, req dto.SupplierRequest) (*models.Supplier, error) {
	req.Normalize()
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	supplier, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.UpdateName(ctx, supplier.ID, req.Name); err != nil {
		return nil, InternalError("Could not update supplier", err)
	}
	supplier.Name = req.Name
	return supplier, nil
}

// Delete soft-deletes the supplier only. Its products and links are left alone.
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	supplier, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.suppliers.SoftDelete(ctx, supplier.ID); err != nil {
		return InternalError("Could not delete supplier", err)
	}
	return nil
}

// Import creates one supplier per row of the first sheet, reading the name from column A.
// The first row is a header.
func (s *SupplierService) Import(ctx context.Context, r io.Reader) (*dto.SupplierImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ValidationError("Failed to read Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ValidationError("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ValidationError("Failed to read Excel rows")
	}

	result := &dto.SupplierImportResult{SkippedItems: []string{}, ErrorMessages: []string{}}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		result.TotalRows++

		name := ""
		if len(row) > 0 {
			name = strings.TrimSpace(row[0])
		}
		if name == "" {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, fmt.Sprintf("Row %d: empty name", i+1))
			continue
		}

		taken, err := s.suppliers.NameTaken(ctx, name)
		if err != nil {
			return nil, InternalError("Could not import suppliers", err)
		}
		if taken {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, name)
			continue
		}

		if _, err := s.Create(ctx, dto.SupplierRequest{Name: name}); err != nil {
			if KindOf(err) != KindValidation {
				return nil, err
			}
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: %s", i+1, err.Error()))
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

func (s *SupplierService) validate(ctx context.Context, req dto.SupplierRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	taken, err := s.suppliers.NameTaken(ctx, req.Name)
	if err != nil {
		return InternalError("Could not validate supplier", err)
	}
	if taken {
		return ValidationError("The name has already been taken.")
	}
	return nil
}

func (s *SupplierService) find(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.suppliers.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError(supplierNotFound)
	}
	if err != nil {
		return nil, InternalError("Could not load supplier", err)
	}
	return supplier, nil
}
