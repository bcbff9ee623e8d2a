// Command seed populates the toy and user collections with demo data when
// they are empty. Safe to run repeatedly.
package main

import (
	"context"
	"log"
	"time"

	intconfig "toyshop/internal/config"
	"toyshop/internal/domain/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

var demoToys = []models.Toy{
	{Name: "Remote Control Car", Price: 45, Labels: []string{"On wheels", "Battery Powered"}, CreatedAt: 1631031801011, InStock: true},
	{Name: "Chess Set", Price: 25, Labels: []string{"Box game", "Art"}, CreatedAt: 1642145678900, InStock: true},
	{Name: "Baby Mobile", Price: 30, Labels: []string{"Baby", "Art"}, CreatedAt: 1653259876543, InStock: true},
	{Name: "Building Blocks", Price: 20, Labels: []string{"Puzzle", "Outdoor"}, CreatedAt: 1664374567890, InStock: false},
	{Name: "Toy Robot", Price: 75, Labels: []string{"Battery Powered", "On wheels"}, CreatedAt: 1675489876543, InStock: true},
	{Name: "Wooden Dollhouse", Price: 90, Labels: []string{"Doll", "Art"}, CreatedAt: 1686604567890, InStock: false},
	{Name: "Jigsaw Puzzle", Price: 15, Labels: []string{"Puzzle", "Box game"}, CreatedAt: 1697718901234, InStock: true},
	{Name: "Tricycle", Price: 55, Labels: []string{"Outdoor", "On wheels", "Baby"}, CreatedAt: 1708834567890, InStock: true},
	{Name: "Action Figure", Price: 28, Labels: []string{"Doll", "Art"}, CreatedAt: 1719949876543, InStock: false},
	{Name: "Electronic Drum Set", Price: 110, Labels: []string{"Battery Powered", "Art"}, CreatedAt: 1731064567890, InStock: true},
}

func main() {
	env := intconfig.LoadEnv()
	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedToys(ctx)
	seedUsers(ctx)
}

func seedToys(ctx context.Context) {
	coll := intconfig.Collection("toy")
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("failed to count toys: %v", err)
	}
	if count > 0 {
		log.Printf("toy collection already populated (%d documents)", count)
		return
	}

	docs := make([]any, 0, len(demoToys))
	for _, toy := range demoToys {
		toy.Msgs = []models.ToyMsg{}
		docs = append(docs, toy)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("failed to insert demo toys: %v", err)
	}
	log.Printf("inserted %d demo toys", len(docs))
}

func seedUsers(ctx context.Context) {
	coll := intconfig.Collection("user")
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("failed to count users: %v", err)
	}
	if count > 0 {
		log.Printf("user collection already populated (%d documents)", count)
		return
	}

	users := []struct {
		username string
		fullname string
		password string
		isAdmin  bool
	}{
		{"admin", "Toy Admin", "admin123", true},
		{"puki", "Puki Norma", "puki123", false},
	}

	docs := make([]any, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password for %s: %v", u.username, err)
		}
		docs = append(docs, models.User{
			Username: u.username,
			Fullname: u.fullname,
			Password: string(hash),
			IsAdmin:  u.isAdmin,
		})
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("failed to insert demo users: %v", err)
	}
	log.Printf("inserted %d demo users", len(docs))
}
