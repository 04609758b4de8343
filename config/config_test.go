package config

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)
	for _, k := range []string{"PORT", "STORE_DRIVER", "MONGO_DB", "BROWSE_LIMIT", "STORE_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	c.Assert(cfg.Port, qt.Equals, "3000")
	c.Assert(cfg.MongoDB, qt.Equals, "homeHeroDB")
	c.Assert(cfg.BrowseLimit, qt.Equals, 6)
	c.Assert(cfg.StoreTimeout, qt.Equals, 5*time.Second)
	c.Assert(cfg.UseMemoryStore(), qt.IsFalse)
	c.Assert(cfg.CORSOrigins(), qt.HasLen, 0)
}

func TestLoadOverrides(t *testing.T) {
	c := qt.New(t)
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("BROWSE_LIMIT", "12")
	t.Setenv("STORE_TIMEOUT", "bogus")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("ELASTICSEARCH_ADDRS", " http://a:9200, ,http://b:9200 ")
	cfg := Load()
	c.Assert(cfg.UseMemoryStore(), qt.IsTrue)
	c.Assert(cfg.BrowseLimit, qt.Equals, 12)
	c.Assert(cfg.StoreTimeout, qt.Equals, 5*time.Second)
	c.Assert(cfg.RateLimitEnabled, qt.IsFalse)
	c.Assert(cfg.ESAddrs(), qt.DeepEquals, []string{"http://a:9200", "http://b:9200"})
}

func TestMongoMaxPool(t *testing.T) {
	c := qt.New(t)
	for raw, want := range map[string]uint64{"": 20, "50": 50, "0": 0, "-5": 0, "lots": 20} {
		t.Setenv("MONGO_MAX_POOL", raw)
		c.Assert(Load().MongoMaxPool, qt.Equals, want, qt.Commentf("MONGO_MAX_POOL=%q", raw))
	}
}
