package service

import "context"

type PageClient interface {
	FetchPage(ctx context.Context, url string) (string, error)
}
