package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"journey-backend/models"
)

const (
	usersCollection    = "users"
	roadmapsCollection = "careerRoadmaps"
	adminsCollection   = "admins"
)

// Store wraps the document database. Users and admins are keyed by their
// identifier and written with full-document replace; roadmaps are looked
// up by userId (one per user, by query pattern) and written with
// merge-on-write.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	doc, err := s.findOne(ctx, usersCollection, bson.M{"_id": id})
	if err != nil {
		return models.User{}, err
	}
	return models.UserFromDocument(doc)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	doc, err := s.findOne(ctx, usersCollection, bson.M{"email": email})
	if err != nil {
		return models.User{}, err
	}
	return models.UserFromDocument(doc)
}

// SaveUser writes the full user document, creating it if absent.
func (s *Store) SaveUser(ctx context.Context, u models.User) error {
	return s.replaceOne(ctx, usersCollection, u.ID, u.Document())
}

func (s *Store) GetAdmin(ctx context.Context, id string) (models.Admin, error) {
	doc, err := s.findOne(ctx, adminsCollection, bson.M{"_id": id})
	if err != nil {
		return models.Admin{}, err
	}
	return models.AdminFromDocument(doc)
}

func (s *Store) SaveAdmin(ctx context.Context, a models.Admin) error {
	return s.replaceOne(ctx, adminsCollection, a.ID, a.Document())
}

// GetRoadmapByUser fetches the user's single roadmap. The document key is
// a generated identifier, so the lookup filters on userId.
func (s *Store) GetRoadmapByUser(ctx context.Context, userID string) (models.CareerRoadmap, error) {
	doc, err := s.findOne(ctx, roadmapsCollection, bson.M{"userId": userID})
	if err != nil {
		return models.CareerRoadmap{}, err
	}
	return models.RoadmapFromDocument(doc)
}

// SaveRoadmap merges the roadmap document onto the stored one, creating
// it if absent.
func (s *Store) SaveRoadmap(ctx context.Context, r models.CareerRoadmap) error {
	doc := r.Document()
	delete(doc, "_id")
	opts := options.Update().SetUpsert(true)
	_, err := s.db.Collection(roadmapsCollection).UpdateOne(ctx, bson.M{"_id": r.ID}, bson.M{"$set": doc}, opts)
	if err != nil {
		return fmt.Errorf("save roadmap: %w", err)
	}
	return nil
}

func (s *Store) findOne(ctx context.Context, collection string, filter bson.M) (models.Document, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	return doc, nil
}

func (s *Store) replaceOne(ctx context.Context, collection, id string, doc models.Document) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
	if err != nil {
		return fmt.Errorf("save in %s: %w", collection, err)
	}
	return nil
}
