package rms

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const (
	// PageSize is the fixed per_page value for collection fetches.
	PageSize = 100

	// PageCeiling is the hard upper bound on pages per collection fetch.
	// It guards against unbounded loops on misbehaving remotes and is not
	// an error-recovery mechanism.
	PageCeiling = 50
)

// FetchAllPages retrieves every record of a paginated collection. The
// response envelope is expected to nest the record array under
// collectionKey. baseParams are merged into every page request; page and
// per_page are controlled here and overwrite anything in baseParams.
//
// Fetching stops on the first page shorter than PageSize, or at
// PageCeiling. Any transport or HTTP error aborts the whole fetch; no
// partial results are returned.
func (c *Client) FetchAllPages(ctx context.Context, path, collectionKey string, baseParams url.Values) ([]map[string]interface{}, error) {
	var all []map[string]interface{}

	for page := 1; page <= PageCeiling; page++ {
		query := url.Values{}
		for key, values := range baseParams {
			if key == "page" || key == "per_page" {
				continue
			}
			for _, value := range values {
				query.Add(key, value)
			}
		}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(PageSize))

		envelope, err := c.Get(ctx, path, query)
		if err != nil {
			return nil, fmt.Errorf("page %d of %s: %w", page, path, err)
		}

		items := extractCollection(envelope, collectionKey)
		all = append(all, items...)

		c.logger.Debug("Fetched collection page", map[string]interface{}{
			"path":  path,
			"page":  page,
			"items": len(items),
			"total": len(all),
		})

		if len(items) < PageSize {
			return all, nil
		}
	}

	c.logger.Warn("Page ceiling reached, returning partial collection", map[string]interface{}{
		"path":    path,
		"ceiling": PageCeiling,
		"total":   len(all),
	})

	return all, nil
}

// extractCollection pulls the record array out of a response envelope.
// A missing or malformed collection reads as empty rather than failing.
func extractCollection(envelope map[string]interface{}, key string) []map[string]interface{} {
	raw, ok := envelope[key].([]interface{})
	if !ok {
		return nil
	}

	items := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		if record, ok := entry.(map[string]interface{}); ok {
			items = append(items, record)
		}
	}

	return items
}
