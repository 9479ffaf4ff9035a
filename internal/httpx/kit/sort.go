package kit

import (
	"strings"

	"visitor-iq/ent"
	"visitor-iq/ent/identitylink"

	"github.com/samber/lo"
)

type leadSortApplier struct {
	Asc  func(*ent.IdentityLinkQuery) *ent.IdentityLinkQuery
	Desc func(*ent.IdentityLinkQuery) *ent.IdentityLinkQuery
}

// LeadSortWhitelist defines allowed sort fields and their query modifiers
// for lead listings.
var LeadSortWhitelist = map[string]leadSortApplier{
	"engagement_score": {Asc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Asc(identitylink.FieldEngagementScore)) }, Desc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Desc(identitylink.FieldEngagementScore)) }},
	"match_confidence": {Asc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Asc(identitylink.FieldMatchConfidence)) }, Desc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Desc(identitylink.FieldMatchConfidence)) }},
	"updated_at":       {Asc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Asc(identitylink.FieldUpdatedAt)) }, Desc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Desc(identitylink.FieldUpdatedAt)) }},
	"created_at":       {Asc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Asc(identitylink.FieldCreatedAt)) }, Desc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Desc(identitylink.FieldCreatedAt)) }},
	"total_orders":     {Asc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Asc(identitylink.FieldTotalOrders)) }, Desc: func(q *ent.IdentityLinkQuery) *ent.IdentityLinkQuery { return q.Order(ent.Desc(identitylink.FieldTotalOrders)) }},
}

func parseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}

// ApplyLeadSort applies a validated sort spec to an IdentityLinkQuery.
func ApplyLeadSort(q *ent.IdentityLinkQuery, s string) (*ent.IdentityLinkQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := LeadSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}
