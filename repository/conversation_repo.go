package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/docassist/docassist-be/types"
)

type ConversationRepo interface {
	Append(ctx context.Context, entry *types.ConversationEntry) error
	ListBySession(ctx context.Context, sessionID string) ([]*types.ConversationEntry, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type conversationRepo struct {
	collection *mongo.Collection
}

func NewConversationRepo(db *mongo.Database) ConversationRepo {
	collection := db.Collection("conversations")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "session_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
		},
	}
	if _, err := collection.Indexes().CreateMany(context.Background(), indexes); err != nil {
		log.Printf("Error creating indexes: %v", err)
	}

	return &conversationRepo{
		collection: collection,
	}
}

func (r *conversationRepo) Append(ctx context.Context, entry *types.ConversationEntry) error {
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *conversationRepo) ListBySession(ctx context.Context, sessionID string) ([]*types.ConversationEntry, error) {
	cursor, err := r.collection.Find(ctx,
		bson.D{{Key: "session_id", Value: sessionID}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*types.ConversationEntry
	for cursor.Next(ctx) {
		var entry types.ConversationEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

func (r *conversationRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.D{{Key: "session_id", Value: sessionID}})
	return err
}
