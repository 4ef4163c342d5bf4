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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IssueRepository is the persistence contract for issue records. The id
// and createdAt fields are assigned at insert time and never change.
type IssueRepository interface {
	Insert(ctx context.Context, issue *models.Issue) (*models.Issue, error)
	FindAll(ctx context.Context) ([]models.Issue, error)
	FindByID(ctx context.Context, id string) (*models.Issue, error)
	UpdateStatus(ctx context.Context, id string, status models.IssueStatus) (*models.Issue, error)
}

type MongoIssueRepository struct {
	collection *mongo.Collection
}

func NewMongoIssueRepository() *MongoIssueRepository {
	return &MongoIssueRepository{collection: config.GetCollection("issues")}
}

func (r *MongoIssueRepository) Insert(ctx context.Context, issue *models.Issue) (*models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	issue.ID = primitive.NewObjectID()
	issue.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, issue); err != nil {
		log.Println("Error inserting issue:", err)
		return nil, errs.Wrap("insert issue", errs.ErrStore)
	}

	return issue, nil
}

func (r *MongoIssueRepository) FindAll(ctx context.Context) ([]models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Println("Error finding issues:", err)
		return nil, errs.Wrap("find issues", errs.ErrStore)
	}
	defer cursor.Close(ctx)

	issues := make([]models.Issue, 0)
	if err := cursor.All(ctx, &issues); err != nil {
		log.Println("Error decoding issues:", err)
		return nil, errs.Wrap("decode issues", errs.ErrStore)
	}

	return issues, nil
}

func (r *MongoIssueRepository) FindByID(ctx context.Context, id string) (*models.Issue, error) {
	issueID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An unparseable id cannot reference any stored record
		return nil, errs.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = r.collection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		log.Println("Error finding issue:", err)
		return nil, errs.Wrap("find issue", errs.ErrStore)
	}

	return &issue, nil
}

func (r *MongoIssueRepository) UpdateStatus(ctx context.Context, id string, status models.IssueStatus) (*models.Issue, error) {
	issueID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.Issue
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": issueID},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		log.Println("Error updating issue status:", err)
		return nil, errs.Wrap("update issue status", errs.ErrStore)
	}

	return &updated, nil
}
