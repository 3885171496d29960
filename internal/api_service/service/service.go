package service

import (
	"context"
	"html"

	"github.com/munraito/asset-web-service/deploy/config"
	"github.com/munraito/asset-web-service/internal/api_service/adapter/api_client/cbr"
	"github.com/munraito/asset-web-service/internal/entities"
	"github.com/pkg/errors"
)

type Service struct {
	storage Storage
	client  PageClient
	cfg     *config.Config
}

func NewService(storage Storage, client PageClient, cfg *config.Config) *Service {
	return &Service{
		storage: storage,
		client:  client,
		cfg:     cfg,
	}
}

// DailyRates fetches and parses the daily rates page. The table is built
// fresh on every call.
func (s *Service) DailyRates(ctx context.Context) (entities.RateTable, error) {
	const op = "service.DailyRates"

	page, err := s.fetchPage(ctx, s.cfg.Upstream.DailyURL)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	rates, err := cbr.ParseDailyRates(page)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	return rates, nil
}

// KeyIndicators fetches and parses the key indicators page.
func (s *Service) KeyIndicators(ctx context.Context) (entities.RateTable, error) {
	const op = "service.KeyIndicators"

	page, err := s.fetchPage(ctx, s.cfg.Upstream.IndicatorsURL)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	rates, err := cbr.ParseKeyIndicators(page)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	return rates, nil
}

// AddAsset builds an asset from externally supplied values and stores it.
// The textual fields are HTML-escaped before they are stored or echoed back.
func (s *Service) AddAsset(_ context.Context, charCode, name string, capital, interest float64) (entities.Asset, error) {
	const op = "service.AddAsset"

	asset := entities.NewAsset(html.EscapeString(charCode), html.EscapeString(name), capital, interest)

	if err := s.storage.Add(asset); err != nil {
		return entities.Asset{}, errors.Wrap(err, op)
	}

	return asset, nil
}

func (s *Service) ListAssets(_ context.Context) []entities.Asset {
	return s.storage.List()
}

func (s *Service) AssetsByName(_ context.Context, names []string) []entities.Asset {
	return s.storage.FindByNames(names)
}

func (s *Service) Cleanup(_ context.Context) {
	s.storage.Clear()
}

func (s *Service) fetchPage(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Upstream.Timeout)
	defer cancel()

	return s.client.FetchPage(ctx, url)
}
