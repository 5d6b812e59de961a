package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/newtonbotics/labstore/app/models"
	"github.com/newtonbotics/labstore/app/repositories"
	"github.com/newtonbotics/labstore/pkg/cache"
	"github.com/newtonbotics/labstore/pkg/logger"
	"github.com/newtonbotics/labstore/pkg/metrics"
	"github.com/newtonbotics/labstore/pkg/validate"
)

// listCacheTTL keeps listings fresh enough that a seed (the only write
// path) never leaves stale results around for long; seeding also flushes
// the prefix explicitly.
const listCacheTTL = 60 * time.Second

// ProductService owns the catalogue read path and the demo seed.
type ProductService struct {
	repo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List runs the query against the store and adapts each document for the
// API: the store-native _id is removed and re-exposed as a string id field.
// Results pass through the Redis cache when it is available.
func (s *ProductService) List(ctx context.Context, q ProductQuery) ([]map[string]interface{}, error) {
	key := q.CacheKey()

	var cached []map[string]interface{}
	if cache.Get(key, &cached) {
		return cached, nil
	}

	docs, err := s.repo.Search(ctx, q.BuildFilter(), q.EffectiveLimit())
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		items = append(items, adaptID(doc))
	}

	if err := cache.Set(key, items, listCacheTTL); err != nil {
		logger.WithCtx(ctx).Warn("product list cache set failed", "error", err)
	}

	return items, nil
}

// adaptID renames the store-native identifier to a plain string id field,
// leaving every other field untouched.
func adaptID(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}

	switch id := doc["_id"].(type) {
	case nil:
	case primitive.ObjectID:
		out["id"] = id.Hex()
	case string:
		out["id"] = id
	default:
		out["id"] = fmt.Sprint(id)
	}

	return out
}

// Seed inserts the fixed demo products unless the collection already holds
// any document. Returns the number inserted and whether products already
// existed. The guard is collection-level only; there is no per-item upsert.
func (s *ProductService) Seed(ctx context.Context) (inserted int, alreadySeeded bool, err error) {
	exists, err := s.repo.Any(ctx)
	if err != nil {
		return 0, false, err
	}
	if exists {
		return 0, true, nil
	}

	for _, p := range SampleProducts() {
		if errs := validate.Struct(&p); validate.HasErrors(errs) {
			return inserted, false, fmt.Errorf("seed: invalid sample product %q: %v", p.Slug, errs)
		}
		if _, err := s.repo.Insert(ctx, p); err != nil {
			return inserted, false, err
		}
		inserted++
		metrics.ProductsSeeded.Inc()
	}

	if err := cache.ForgetPrefix(productCachePrefix); err != nil {
		logger.WithCtx(ctx).Warn("product list cache flush failed", "error", err)
	}

	return inserted, false, nil
}

// SampleProducts returns the fixed demo catalogue: one product per category.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Precision Servo Mount",
			Slug:        "precision-servo-mount",
			Description: "CNC-accurate 3D-printed mount for standard servos with M3 hardware.",
			Category:    models.CategoryPrinted,
			Price:       9.99,
			InStock:     true,
			Images:      []string{"/products/servo-mount-1.jpg"},
			Tags:        []string{"mount", "3d print", "servo"},
			Specs: &models.ProductSpec{
				DimensionsMM:    "40x20x18",
				Materials:       []string{"PLA+"},
				ToleranceMM:     0.2,
				MountingPattern: "M3 16mm",
			},
		},
		{
			Title:       "Laser-Engraved Control Panel Plate",
			Slug:        "control-panel-plate",
			Description: "Acrylic front panel with crisp vector engravings and pre-drilled holes.",
			Category:    models.CategoryEngraved,
			Price:       24.0,
			InStock:     true,
			Images:      []string{"/products/panel-plate-1.jpg"},
			Tags:        []string{"panel", "acrylic", "engraved"},
			Specs: &models.ProductSpec{
				DimensionsMM: "120x60x3",
				Materials:    []string{"Acrylic"},
			},
		},
		{
			Title:       "Robotics Power Distribution Board",
			Slug:        "pdb-12v",
			Description: "12V PDB with fused outputs, screw terminals, and status LEDs.",
			Category:    models.CategoryElectronics,
			Price:       39.5,
			InStock:     true,
			Images:      []string{"/products/pdb-12v-1.jpg"},
			Tags:        []string{"pdb", "12v", "electronics"},
			Specs: &models.ProductSpec{
				VoltageRangeV: "9-14V",
				CurrentMaxA:   10.0,
			},
		},
	}
}
