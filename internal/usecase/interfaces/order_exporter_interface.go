package interfaces

import (
	"context"
	"growthbundles/internal/domain/entities"
)

// IOrderExporter abstracts the spreadsheet-export collaborator that receives
// one row per paid order. Export is best-effort: callers log failures and
// never roll back the order because of them.
type IOrderExporter interface {
	ExportOrder(ctx context.Context, o entities.Order) error
}
