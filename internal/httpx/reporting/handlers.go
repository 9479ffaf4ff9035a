// Package reporting serves the merchant-facing read surface: dashboard
// stats, hot lead lists and the search endpoint over the lead index.
package reporting

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"visitor-iq/ent"
	"visitor-iq/ent/identitylink"
	"visitor-iq/internal/esx"
	"visitor-iq/internal/httpx/kit"
	"visitor-iq/internal/httpx/mw"
	"visitor-iq/internal/identity"
	"visitor-iq/internal/logx"
	"visitor-iq/internal/redisx"
)

var logger = logx.GetScope("reporting")

const dashboardCacheTTL = 30 * time.Second

// Cache stores rendered dashboard stats for a short window. Only the
// stats payload is cached, never the response envelope, so a cache hit
// and a cache miss serve the same shape with a fresh request id.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// RedisCache adapts a redis client to Cache.
type RedisCache struct {
	RDB *redisx.Client
}

func (r RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	return r.RDB.Get(ctx, key).Bytes()
}

func (r RedisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return r.RDB.Set(ctx, key, val, ttl).Err()
}

// DashboardHandler returns aggregated visitor stats for the merchant.
// Results are cached per merchant for a short window; the cache is
// best-effort and a Redis failure falls through to the store.
//
//	@Summary      Dashboard stats
//	@Tags         reporting
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  identity.DashboardStats
//	@Router       /api/v1/dashboard [get]
func DashboardHandler(engine *identity.Engine, cache Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		merchantID := mw.MerchantID(c)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		cacheKey := "dash:" + merchantID.String()
		if cache != nil {
			if raw, err := cache.Get(ctx, cacheKey); err == nil && len(raw) > 0 {
				return kit.OK(c, json.RawMessage(raw))
			}
		}

		stats, err := engine.Dashboard(ctx, merchantID)
		if err != nil {
			return kit.InternalError("dashboard query failed", err.Error())
		}

		if cache != nil {
			if body, mErr := json.Marshal(stats); mErr == nil {
				if err := cache.Set(ctx, cacheKey, body, dashboardCacheTTL); err != nil {
					logger.Sugar().Debugw("dashboard cache write failed", "err", err)
				}
			}
		}
		return kit.OK(c, stats)
	}
}

// HotLeadsHandler lists identified, engaged visitors that have not yet
// converted, sorted by engagement.
//
//	@Summary      Hot leads
//	@Tags         reporting
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {array}  ent.IdentityLink
//	@Router       /api/v1/leads/hot [get]
func HotLeadsHandler(engine *identity.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		leads, err := engine.HotLeads(ctx, mw.MerchantID(c))
		if err != nil {
			return kit.InternalError("hot leads query failed", err.Error())
		}
		return kit.OK(c, leads)
	}
}

// LeadsHandler lists identity links with filtering, sorting and paging.
// Offset mode supports whitelist sorting; cursor and snapshot modes page
// by (created_at, id) keyset so a moving table never skips or repeats
// rows.
//
//	@Summary      List leads
//	@Tags         reporting
//	@Produce      json
//	@Security     BearerAuth
//	@Param        intent   query  string  false  "filter by buyer intent"
//	@Param        segment  query  string  false  "filter by segment"
//	@Param        sort     query  string  false  "field:dir, e.g. engagement_score:desc"
//	@Param        limit    query  int     false  "page size"
//	@Param        offset   query  int     false  "offset (offset mode)"
//	@Param        cursor   query  string  false  "keyset cursor"
//	@Success      200      {array}  ent.IdentityLink
//	@Router       /api/v1/leads [get]
func LeadsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		merchantID := mw.MerchantID(c)
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		q := client.IdentityLink.Query().Where(identitylink.MerchantID(merchantID))
		if intent := c.Query("intent"); intent != "" {
			v := identitylink.BuyerIntent(intent)
			if err := identitylink.BuyerIntentValidator(v); err != nil {
				return kit.BadRequest("invalid intent", intent)
			}
			q = q.Where(identitylink.BuyerIntentEQ(v))
		}
		if segment := c.Query("segment"); segment != "" {
			v := identitylink.Segment(segment)
			if err := identitylink.SegmentValidator(v); err != nil {
				return kit.BadRequest("invalid segment", segment)
			}
			q = q.Where(identitylink.SegmentEQ(v))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if pg.Mode == "cursor" || pg.Mode == "snapshot" {
			if pg.Snapshot != nil {
				q = q.Where(identitylink.CreatedAtLTE(*pg.Snapshot))
			}
			if pg.CursorID != nil {
				if pg.CursorTS != nil {
					curTS := pg.CursorTS.UTC()
					q = q.Where(identitylink.Or(
						identitylink.CreatedAtLT(curTS),
						identitylink.And(identitylink.CreatedAtEQ(curTS), identitylink.IDLT(*pg.CursorID)),
					))
				} else {
					q = q.Where(identitylink.IDLT(*pg.CursorID))
				}
			}
			leads, err := q.
				Order(ent.Desc(identitylink.FieldCreatedAt), ent.Desc(identitylink.FieldID)).
				Limit(pg.Limit).
				All(ctx)
			if err != nil {
				return kit.InternalError("query leads failed", err.Error())
			}
			meta := kit.PageMeta{Limit: pg.Limit, Count: len(leads), HasMore: len(leads) == pg.Limit, Mode: pg.Mode}
			if len(leads) > 0 {
				last := leads[len(leads)-1]
				meta.NextCursorEnc = kit.EncodeCursor(last.ID.String(), last.CreatedAt)
			}
			if pg.Snapshot != nil {
				meta.Snapshot = pg.Snapshot.UTC().Format(time.RFC3339Nano)
			}
			return kit.List(c, leads, meta)
		}

		sort := pg.Sort
		if sort == "" {
			sort = "engagement_score:desc"
		}
		q, err = kit.ApplyLeadSort(q, sort)
		if err != nil {
			return err
		}
		leads, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query leads failed", err.Error())
		}
		nextOff := pg.Offset + len(leads)
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(leads), NextOffset: &nextOff, HasMore: len(leads) == pg.Limit, Mode: "offset"}
		if pg.WithTotal {
			tq := client.IdentityLink.Query().Where(identitylink.MerchantID(merchantID))
			if total, err := tq.Count(ctx); err == nil {
				meta.Total = &total
			}
		}
		return kit.List(c, leads, meta)
	}
}

// LeadSearchHandler performs a free-text search over the lead index.
// When no search backend is configured the endpoint degrades to an
// empty result rather than an error.
//
//	@Summary      Search leads
//	@Tags         reporting
//	@Produce      json
//	@Security     BearerAuth
//	@Param        q     query  string  false  "search text"
//	@Param        from  query  int     false  "offset"
//	@Param        size  query  int     false  "page size (max 100)"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/leads/search [get]
func LeadSearchHandler(engine *identity.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if engine.ES == nil {
			return kit.OK(c, fiber.Map{"total": 0, "hits": []any{}})
		}
		from := c.QueryInt("from", 0)
		size := c.QueryInt("size", 20)
		if from < 0 {
			from = 0
		}
		if size <= 0 || size > 100 {
			size = 20
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		out, err := esx.SearchLeads(ctx, engine.ES, mw.MerchantID(c).String(), c.Query("q"), from, size)
		if err != nil {
			return kit.InternalError("lead search failed", err.Error())
		}
		return kit.OK(c, out)
	}
}
