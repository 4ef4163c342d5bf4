package repositories

import (
	"context"
	"log"
	"time"

	"fixitsl-be/config"
	"fixitsl-be/errs"
	"fixitsl-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository stores admin credential records
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository() *MongoUserRepository {
	return &MongoUserRepository{collection: config.GetCollection("users")}
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		log.Println("Error finding user:", err)
		return nil, errs.Wrap("find user", errs.ErrStore)
	}

	return &user, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		log.Println("Error inserting user:", err)
		return nil, errs.Wrap("insert user", errs.ErrStore)
	}

	return user, nil
}
