package repositories

import (
	"toyshop/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BuildToyCriteria turns a typed filter into a Mongo filter document, a sort
// document, and a skip offset.
//
//   - Txt matches name as a case-insensitive substring.
//   - InStock, when set, requires exact equality on the stock flag.
//   - Labels use $all: a toy matches only when tagged with every requested label.
//   - An explicit sort field keeps only the sign of the requested direction;
//     without one the listing is newest-first by createdAt.
func BuildToyCriteria(f domain.ToyFilter) (bson.M, bson.D, int64) {
	filter := bson.M{}

	if f.Txt != "" {
		filter["name"] = bson.M{"$regex": f.Txt, "$options": "i"}
	}
	if f.InStock != nil {
		filter["inStock"] = *f.InStock
	}
	if len(f.Labels) > 0 {
		filter["labels"] = bson.M{"$all": f.Labels}
	}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	if f.Sort.Field != "" {
		dir := 1
		if f.Sort.Dir < 0 {
			dir = -1
		}
		sort = bson.D{{Key: f.Sort.Field, Value: dir}}
	}

	return filter, sort, f.Skip()
}
