package service

import "github.com/munraito/asset-web-service/internal/entities"

type Storage interface {
	Add(asset entities.Asset) error
	List() []entities.Asset
	FindByNames(names []string) []entities.Asset
	Clear()
}
