package store

import "assetdeck/internal/config"

// clampPage normalizes pagination input: page is at least 1; perPage below 1
// falls back to the default page size; perPage above the maximum is capped.
func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = config.DefaultPageSize
	}
	if perPage > config.MaxPageSize {
		perPage = config.MaxPageSize
	}
	return page, perPage
}

// offsetFor returns the row offset for a normalized page/perPage pair.
func offsetFor(page, perPage int) int {
	return (page - 1) * perPage
}
