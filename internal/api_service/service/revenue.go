package service

import (
	"context"
	"strconv"

	"github.com/munraito/asset-web-service/internal/entities"
	"github.com/pkg/errors"
)

// homeCurrency always converts at 1, whatever the rate tables say.
const homeCurrency = "RUB"

// CalculateRevenue fetches both rate sources and projects the total revenue
// of every stored asset over each requested period. Periods arrive as raw
// query values and key the result map verbatim. The computation is
// all-or-nothing: any fetch, parse or period failure fails the whole request.
func (s *Service) CalculateRevenue(ctx context.Context, periods []string) (map[string]float64, error) {
	const op = "service.CalculateRevenue"

	indicators, err := s.KeyIndicators(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	daily, err := s.DailyRates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	assets := s.storage.List()

	totals := make(map[string]float64, len(periods))
	for _, raw := range periods {
		period, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: period %q", op, raw)
		}

		var total float64
		for _, asset := range assets {
			total += asset.Revenue(period, rateFor(asset.CharCode, indicators, daily))
		}

		totals[raw] = entities.Round8(total)
	}

	return totals, nil
}

// rateFor resolves the applicable rate for a char code: the home currency is
// fixed at 1, key indicators win over the daily table, and an unknown code
// contributes zero instead of failing the calculation.
func rateFor(code string, indicators, daily entities.RateTable) float64 {
	if code == homeCurrency {
		return 1
	}
	if rate, ok := indicators[code]; ok {
		return rate
	}
	return daily[code]
}
