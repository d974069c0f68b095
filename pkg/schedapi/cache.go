package schedapi

import (
	"net/url"
	"strings"

	"horairectl/pkg/diskcache"
)

// catalogCacheName keeps one catalogue per server: "http://127.0.0.1:5000" -> "catalog_127.0.0.1_5000"
func catalogCacheName(baseURL string) string {
	host := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return "catalog_" + strings.NewReplacer(":", "_", "/", "_").Replace(host)
}

// readCatalogCache checks if a valid, unexpired catalogue exists for this server
func readCatalogCache(baseURL string) ([]string, bool) {
	return diskcache.Read[[]string](catalogCacheName(baseURL), diskcache.DefaultTTL)
}

// writeCatalogCache saves the catalogue to disk
func writeCatalogCache(baseURL string, codes []string) {
	diskcache.Write(catalogCacheName(baseURL), codes)
}
