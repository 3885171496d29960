package public

import (
	"context"

	"github.com/munraito/asset-web-service/internal/entities"
)

type Service interface {
	DailyRates(ctx context.Context) (entities.RateTable, error)
	KeyIndicators(ctx context.Context) (entities.RateTable, error)
	AddAsset(ctx context.Context, charCode, name string, capital, interest float64) (entities.Asset, error)
	ListAssets(ctx context.Context) []entities.Asset
	AssetsByName(ctx context.Context, names []string) []entities.Asset
	Cleanup(ctx context.Context)
	CalculateRevenue(ctx context.Context, periods []string) (map[string]float64, error)
}
