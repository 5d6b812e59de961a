package services

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// DefaultLimit caps product listings when the caller does not override it.
const DefaultLimit = 30

// ProductQuery carries the optional search parameters for a product listing.
// Zero values (empty strings, nil pointers) mean "not given".
type ProductQuery struct {
	Term     string   // free-text term matched against title and tags
	Category string   // exact category match
	MinPrice *float64 // inclusive lower price bound
	MaxPrice *float64 // inclusive upper price bound
	Limit    int64    // result cap; <= 0 falls back to DefaultLimit
}

// BuildFilter translates the query into a document store filter expression.
// Each given parameter contributes one independent constraint; constraints
// combine with logical AND. No parameters yields an empty filter (match all).
//
// Price bound ordering is not validated: inverted bounds legitimately
// produce an empty result set.
func (q ProductQuery) BuildFilter() bson.M {
	filter := bson.M{}

	if q.Category != "" {
		filter["category"] = q.Category
	}

	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}

	// Case-insensitive substring match on title OR any tag element.
	// This is deliberately not tokenized or ranked search.
	if q.Term != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": q.Term, "$options": "i"}},
			{"tags": bson.M{"$elemMatch": bson.M{"$regex": q.Term, "$options": "i"}}},
		}
	}

	return filter
}

// EffectiveLimit returns the caller's limit, or DefaultLimit when unset.
// No upper bound is enforced.
func (q ProductQuery) EffectiveLimit() int64 {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}

// CacheKey builds a stable cache key for this query. All listing keys share
// the productCachePrefix so seeding can invalidate them in one sweep.
func (q ProductQuery) CacheKey() string {
	var b strings.Builder
	b.WriteString(productCachePrefix)
	fmt.Fprintf(&b, "q=%s&category=%s", q.Term, q.Category)
	if q.MinPrice != nil {
		fmt.Fprintf(&b, "&min_price=%g", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		fmt.Fprintf(&b, "&max_price=%g", *q.MaxPrice)
	}
	fmt.Fprintf(&b, "&limit=%d", q.EffectiveLimit())
	return b.String()
}

const productCachePrefix = "products:list:"
