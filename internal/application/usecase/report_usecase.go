package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/manufactura-api/internal/application/dto"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/report"
	"github.com/jhoicas/manufactura-api/internal/domain/repository"
	"github.com/jhoicas/manufactura-api/internal/domain/stock"
)

// InventoryPDFGenerator puerto de generación del reporte PDF de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, summary dto.InventorySummary, rollups []dto.CategoryRollup, alerts []dto.LowStockAlert) ([]byte, error)
}

// ReportUseCase deriva las vistas agregadas de reporting sobre un snapshot de
// la tabla de productos. El snapshot es read-committed: no refleja mutaciones
// confirmadas después de su lectura.
type ReportUseCase struct {
	repo repository.ProductRepository
	pdf  InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil (por ejemplo en
// tests de las vistas agregadas); en ese caso InventoryPDF falla con un error.
func NewReportUseCase(repo repository.ProductRepository, pdf InventoryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

func (uc *ReportUseCase) snapshot() ([]*entity.Product, error) {
	return uc.repo.List()
}

// Summary KPIs globales: conteos, unidades, valor total y conteos por severidad.
func (uc *ReportUseCase) Summary() (*dto.InventorySummary, error) {
	products, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return buildSummary(products), nil
}

func buildSummary(products []*entity.Product) *dto.InventorySummary {
	tiers := report.CountByTier(products)
	return &dto.InventorySummary{
		ProductCount:  len(products),
		TotalStock:    report.TotalStock(products),
		TotalValue:    report.TotalValue(products),
		LowStockCount: len(report.LowStock(products)),
		OutOfStock:    tiers[stock.TierOutOfStock],
		Critical:      tiers[stock.TierCritical],
		Warning:       tiers[stock.TierWarning],
		Healthy:       tiers[stock.TierHealthy],
	}
}

// Categories agregados por categoría, en orden de primera aparición en el snapshot.
func (uc *ReportUseCase) Categories() ([]dto.CategoryRollup, error) {
	products, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return buildRollups(products), nil
}

func buildRollups(products []*entity.Product) []dto.CategoryRollup {
	groups, categories := report.GroupByCategory(products)
	out := make([]dto.CategoryRollup, 0, len(categories))
	for _, cat := range categories {
		r := report.RollupOf(groups[cat])
		out = append(out, dto.CategoryRollup{
			Category: cat,
			Count:    r.Count,
			Stock:    r.Stock,
			Value:    r.Value,
			AvgPrice: r.AvgPrice,
		})
	}
	return out
}

// TopProducts el top-n de productos por valor de stock (descendente, empates estables).
func (uc *ReportUseCase) TopProducts(n int) ([]dto.TopProduct, error) {
	products, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	top := report.TopByValue(products, n)
	out := make([]dto.TopProduct, 0, len(top))
	for _, p := range top {
		out = append(out, dto.TopProduct{
			ID:        p.ID,
			ProductID: p.ProductID,
			Name:      p.Name,
			Category:  p.Category,
			Value:     p.Value(),
		})
	}
	return out, nil
}

// Alerts vista de alertas de bajo stock: usa el filtro del store (no la tabla
// completa) y deriva severidad, porcentaje y faltante del clasificador.
// Los productos más severos van primero (out_of_stock, critical, warning).
func (uc *ReportUseCase) Alerts() ([]dto.LowStockAlert, error) {
	low, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return buildAlerts(low), nil
}

var tierOrder = map[stock.Tier]int{
	stock.TierOutOfStock: 0,
	stock.TierCritical:   1,
	stock.TierWarning:    2,
	stock.TierHealthy:    3,
}

func buildAlerts(low []*entity.Product) []dto.LowStockAlert {
	out := make([]dto.LowStockAlert, 0, len(low))
	for _, p := range low {
		tier := stock.Classify(p)
		pct := -1 // indefinido cuando minStock == 0
		if v, err := stock.Percentage(p); err == nil {
			pct = v
		}
		out = append(out, dto.LowStockAlert{
			Product:         *dto.ToProductResponse(p),
			Tier:            string(tier),
			StockPercentage: pct,
			Shortage:        stock.Shortage(p),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return tierOrder[stock.Tier(out[i].Tier)] < tierOrder[stock.Tier(out[j].Tier)]
	})
	return out
}

// InventoryPDF genera el reporte PDF del inventario (resumen + categorías + alertas).
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, errors.New("reportes: generador PDF no configurado")
	}
	products, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	summary := buildSummary(products)
	rollups := buildRollups(products)
	alerts := buildAlerts(report.LowStock(products))
	return uc.pdf.GenerateInventoryPDF(ctx, *summary, rollups, alerts)
}
