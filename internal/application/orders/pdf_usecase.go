package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// PDFUseCase genera el documento PDF de un pedido de compra para imprimir o
// enviar al proveedor.
type PDFUseCase struct {
	orderRepo repository.PurchaseOrderRepository
	generator OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(orderRepo repository.PurchaseOrderRepository, generator OrderPDFGenerator) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, generator: generator}
}

// GenerateOrderPDF busca el pedido y devuelve los bytes del PDF.
func (uc *PDFUseCase) GenerateOrderPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}
	return uc.generator.GenerateOrderPDF(ctx, order)
}
