package artifact_source

import (
	"context"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/dnscache"
	"golang.org/x/sync/semaphore"
)

// Remote sources share a single DNS resolver and dialer. Go does not cache DNS lookups,
// and every request would otherwise look up the same storage API host again.
//
// ENERGY_IMPORT_DNS_LOOKUP_MAX_PARALLEL limits the number of parallel DNS lookups.
// ENERGY_IMPORT_DNS_CACHE_REFRESH_INTERVAL_SECS sets how often cached entries are refreshed,
// 0 disables the refresh and -1 disables the cache completely.
// ENERGY_IMPORT_HTTP_TRANSPORT_MAX_CONNS_PER_HOST limits connections per host, 0 removes the limit.
var (
	dnsLookupMaxParallel         = readEnvVarToInt("ENERGY_IMPORT_DNS_LOOKUP_MAX_PARALLEL", 25)
	dnsCacheRefreshIntervalSecs  = readEnvVarToInt("ENERGY_IMPORT_DNS_CACHE_REFRESH_INTERVAL_SECS", 300)
	httpTransportMaxConnsPerHost = readEnvVarToInt("ENERGY_IMPORT_HTTP_TRANSPORT_MAX_CONNS_PER_HOST", 100)
)

type dialContextFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var resolver = newResolver()

func newResolver() *dnscache.Resolver {
	r := &dnscache.Resolver{}
	if dnsCacheRefreshIntervalSecs > 0 {
		go func() {
			t := time.NewTicker(time.Duration(dnsCacheRefreshIntervalSecs) * time.Second)
			defer t.Stop()
			for range t.C {
				r.Refresh(true)
			}
		}()
	}
	return r
}

// cachingDialContext wraps a dialer so that host lookups go through the shared DNS cache
// it returns nil if the DNS cache is disabled
func cachingDialContext(dialer *net.Dialer) dialContextFunc {
	if dnsCacheRefreshIntervalSecs < 0 {
		return nil
	}

	sem := semaphore.NewWeighted(int64(dnsLookupMaxParallel))

	return func(ctx context.Context, network string, addr string) (conn net.Conn, err error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		ips, err := resolver.LookupHost(ctx, host)
		sem.Release(1)
		if err != nil {
			return nil, err
		}

		// try each address in turn until a connection succeeds
		for _, ip := range ips {
			conn, err = dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
			if err == nil {
				break
			}
		}
		return
	}
}

// newHTTPTransport returns a clone of the default transport using the shared DNS cache
func newHTTPTransport() *http.Transport {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if httpTransportMaxConnsPerHost > 0 {
		tr.MaxConnsPerHost = httpTransportMaxConnsPerHost
	}
	if dial := cachingDialContext(&net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}); dial != nil {
		tr.DialContext = dial
	}
	return tr
}

var sharedHTTPClient = &http.Client{Transport: newHTTPTransport()}

func readEnvVarToInt(name string, defaultVal int) int {
	val := defaultVal
	if envValue := os.Getenv(name); envValue != "" {
		if i, err := strconv.Atoi(envValue); err == nil {
			val = i
		}
	}
	return val
}
