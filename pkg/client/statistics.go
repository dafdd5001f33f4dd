package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/inventaria/inventaria/pkg/domain"
)

// StatisticsService wraps the dashboard summaries and the country-scoped
// purge endpoints under /statistics.
type StatisticsService struct {
	client *Client
}

// CountrySummary fetches one country's aggregates.
func (s *StatisticsService) CountrySummary(ctx context.Context, code string) (*domain.CountrySummary, error) {
	var summary domain.CountrySummary
	path := "/statistics/country/" + url.PathEscape(code)
	if err := s.client.doRequest(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch summary for %s: %w", code, err)
	}
	return &summary, nil
}

// StockByCategory fetches the stock-by-category chart data.
func (s *StatisticsService) StockByCategory(ctx context.Context) ([]domain.CategoryStock, error) {
	var records []domain.CategoryStock
	if err := s.client.doRequest(ctx, http.MethodGet, "/statistics/stock-by-category", nil, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch stock by category: %w", err)
	}
	return records, nil
}

// MovementsTimeline fetches the last days of movement aggregates.
func (s *StatisticsService) MovementsTimeline(ctx context.Context, days int) ([]domain.MovementPoint, error) {
	var points []domain.MovementPoint
	req := s.client.http.R().SetContext(ctx).SetResult(&points).SetError(&APIError{})
	if days > 0 {
		req.SetQueryParam("days", strconv.Itoa(days))
	}
	resp, err := req.Get("/statistics/movements")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movements timeline: %w", err)
	}
	if resp.StatusCode() >= 400 {
		if apiErr, ok := resp.Error().(*APIError); ok && apiErr != nil {
			apiErr.StatusCode = resp.StatusCode()
			return nil, apiErr
		}
		return nil, &APIError{StatusCode: resp.StatusCode()}
	}
	return points, nil
}

// LowStockAlerts fetches products at or below the warning threshold.
func (s *StatisticsService) LowStockAlerts(ctx context.Context) ([]domain.LowStockAlert, error) {
	var alerts []domain.LowStockAlert
	if err := s.client.doRequest(ctx, http.MethodGet, "/statistics/low-stock", nil, &alerts); err != nil {
		return nil, fmt.Errorf("failed to fetch low stock alerts: %w", err)
	}
	return alerts, nil
}

// purgeRequest carries the operator credential for destructive deletes.
// The server authorizes the operation; the client never compares the
// password against anything locally.
type purgeRequest struct {
	Password string `json:"password"`
}

// PurgeProducts deletes every product in a country, optionally cascading to
// the products' movements.
func (s *StatisticsService) PurgeProducts(ctx context.Context, code string, includeMovements bool, password string) (*domain.PurgeResult, error) {
	var result domain.PurgeResult
	path := fmt.Sprintf("/statistics/country/%s/products?include_movements=%t",
		url.PathEscape(code), includeMovements)
	if err := s.client.doRequest(ctx, http.MethodDelete, path, purgeRequest{Password: password}, &result); err != nil {
		return nil, fmt.Errorf("failed to purge products for %s: %w", code, err)
	}
	return &result, nil
}

// PurgeMovements deletes every stock movement in a country.
func (s *StatisticsService) PurgeMovements(ctx context.Context, code string, password string) (*domain.PurgeResult, error) {
	var result domain.PurgeResult
	path := "/statistics/country/" + url.PathEscape(code) + "/movements"
	if err := s.client.doRequest(ctx, http.MethodDelete, path, purgeRequest{Password: password}, &result); err != nil {
		return nil, fmt.Errorf("failed to purge movements for %s: %w", code, err)
	}
	return &result, nil
}

// PurgeAll deletes every product and movement in a country.
func (s *StatisticsService) PurgeAll(ctx context.Context, code string, password string) (*domain.PurgeResult, error) {
	var result domain.PurgeResult
	path := "/statistics/country/" + url.PathEscape(code) + "/all"
	if err := s.client.doRequest(ctx, http.MethodDelete, path, purgeRequest{Password: password}, &result); err != nil {
		return nil, fmt.Errorf("failed to purge data for %s: %w", code, err)
	}
	return &result, nil
}
