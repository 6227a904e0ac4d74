package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewExchangeRateClient creates a client for the exchangerate-api.com v4 API.
func NewExchangeRateClient(cfg *config.ExchangeConfig, logger *zap.Logger) repository.RateRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// FetchEURToNOK queries the latest EUR rates and picks out NOK.
func (c *client) FetchEURToNOK(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/v4/latest/EUR", c.baseURL)

	c.logger.Debug("Calling exchange rate API", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Exchange rate API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return 0, fmt.Errorf("exchange rate API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	rate, ok := parsed.Rates["NOK"]
	if !ok || rate <= 0 {
		c.logger.Error("Exchange rate response missing NOK rate")
		return 0, fmt.Errorf("exchange rate response missing NOK rate")
	}

	c.logger.Debug("Exchange rate API call successful", zap.Float64("eur_to_nok", rate))

	return rate, nil
}
