package repositories

import (
	"reflect"
	"testing"

	"toyshop/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBuildToyCriteria_Empty(t *testing.T) {
	filter, sort, skip := BuildToyCriteria(domain.ToyFilter{})

	if len(filter) != 0 {
		t.Fatalf("empty filter should produce no predicates, got %v", filter)
	}
	want := bson.D{{Key: "createdAt", Value: -1}}
	if !reflect.DeepEqual(sort, want) {
		t.Fatalf("default sort should be createdAt desc, got %v", sort)
	}
	if skip != 0 {
		t.Fatalf("default skip should be 0, got %d", skip)
	}
}

func TestBuildToyCriteria_Text(t *testing.T) {
	filter, _, _ := BuildToyCriteria(domain.ToyFilter{Txt: "kite"})

	name, ok := filter["name"].(bson.M)
	if !ok {
		t.Fatalf("text filter should target name, got %v", filter)
	}
	if name["$regex"] != "kite" || name["$options"] != "i" {
		t.Fatalf("text filter should be a case-insensitive regex, got %v", name)
	}
}

func TestBuildToyCriteria_Stock(t *testing.T) {
	inStock := false
	filter, _, _ := BuildToyCriteria(domain.ToyFilter{InStock: &inStock})
	if filter["inStock"] != false {
		t.Fatalf("stock filter should require exact equality, got %v", filter)
	}

	filter, _, _ = BuildToyCriteria(domain.ToyFilter{})
	if _, present := filter["inStock"]; present {
		t.Fatalf("absent stock flag must not filter, got %v", filter)
	}
}

func TestBuildToyCriteria_LabelsAllSemantics(t *testing.T) {
	labels := []string{"Art", "Doll"}
	filter, _, _ := BuildToyCriteria(domain.ToyFilter{Labels: labels})

	cond, ok := filter["labels"].(bson.M)
	if !ok {
		t.Fatalf("labels filter missing, got %v", filter)
	}
	if !reflect.DeepEqual(cond["$all"], labels) {
		t.Fatalf("labels must use $all (AND) semantics, got %v", cond)
	}
}

func TestBuildToyCriteria_SortDirectionSign(t *testing.T) {
	cases := []struct {
		dir  int
		want int
	}{
		{1, 1},
		{7, 1},
		{0, 1},
		{-1, -1},
		{-42, -1},
	}
	for _, tc := range cases {
		_, sort, _ := BuildToyCriteria(domain.ToyFilter{Sort: domain.ToySort{Field: "price", Dir: tc.dir}})
		if len(sort) != 1 || sort[0].Key != "price" {
			t.Fatalf("dir=%d: expected sort on price, got %v", tc.dir, sort)
		}
		if sort[0].Value != tc.want {
			t.Fatalf("dir=%d: expected direction %d, got %v", tc.dir, tc.want, sort[0].Value)
		}
	}
}

func TestBuildToyCriteria_Pagination(t *testing.T) {
	_, _, skip := BuildToyCriteria(domain.ToyFilter{PageIdx: 2})
	if skip != 2*domain.DefaultPageSize {
		t.Fatalf("expected skip %d, got %d", 2*domain.DefaultPageSize, skip)
	}

	_, _, skip = BuildToyCriteria(domain.ToyFilter{PageIdx: 3, PageSize: 10})
	if skip != 30 {
		t.Fatalf("expected skip 30 with page size 10, got %d", skip)
	}

	_, _, skip = BuildToyCriteria(domain.ToyFilter{PageIdx: -4})
	if skip != 0 {
		t.Fatalf("negative page index should clamp to 0, got %d", skip)
	}
}
