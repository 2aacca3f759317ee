package api

import (
	json "github.com/json-iterator/go"
	"github.com/krownhq/krown-cli/pkg/analytics"
	"github.com/krownhq/krown-cli/pkg/client"
	"github.com/krownhq/krown-cli/pkg/logger"
)

type analyticsResponse struct {
	Data *analytics.RawResult `json:"data"`
}

// FetchAnalytics retrieves the range-scoped analytics payload. Absent
// search/cafe filters are omitted from the query string entirely.
func FetchAnalytics(q analytics.Query) (*analytics.RawResult, error) {
	logger.Debug("Fetching analytics", "range", q.Range, "search", q.Search, "cafeId", q.CafeID)

	resp, err := client.GetClient().
		R().
		SetQueryParams(q.Params()).
		Get("/bookings/krown-analytics")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var analyticsResp analyticsResponse
	if err := json.Unmarshal(resp.Body(), &analyticsResp); err != nil {
		return nil, err
	}

	return analyticsResp.Data, nil
}

// AnalyticsFetcher adapts FetchAnalytics to the aggregator's collaborator
// interface.
type AnalyticsFetcher struct{}

func (AnalyticsFetcher) FetchAnalytics(q analytics.Query) (*analytics.RawResult, error) {
	return FetchAnalytics(q)
}
