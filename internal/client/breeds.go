package client

import (
	"context"
	"fmt"

	"mockydog/breeds/internal/config"
	"mockydog/breeds/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

type BreedClient interface {
	FetchBreeds(ctx context.Context) ([]domain.Breed, error)
}

type breedClient struct {
	url        string
	httpClient *resty.Client
}

// NewBreedClient builds a client for the single breed endpoint.
// Requests are never retried and use the library's default timeout.
func NewBreedClient(cfg config.APIConfig) BreedClient {
	client := resty.New().
		SetRetryCount(0)

	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
		log.Infof("🔗 Using proxy: %s", cfg.Proxy)
	}

	return &breedClient{
		url:        cfg.BreedsURL(),
		httpClient: client,
	}
}

func (c *breedClient) FetchBreeds(ctx context.Context) ([]domain.Breed, error) {
	log.Debugf("Fetching breeds from %s", c.url)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(c.url)

	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, &TransportError{Kind: KindNetwork, URL: c.url, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &TransportError{
			Kind:       KindStatus,
			URL:        c.url,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}

	breeds, err := domain.DecodeBreeds([]byte(resp.String()))
	if err != nil {
		return nil, &TransportError{Kind: KindDecode, URL: c.url, StatusCode: resp.StatusCode(), Err: err}
	}

	log.Debugf("Successfully fetched %d breeds", len(breeds))
	return breeds, nil
}
