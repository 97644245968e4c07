package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"maternal-chat/models"
)

type ChatRepository struct {
	col *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{col: db.Collection("chats")}
}

// Insert creates a new session with the placeholder title and an empty log.
func (r *ChatRepository) Insert(ctx context.Context) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, bson.M{
		"title":      models.DefaultChatTitle,
		"created_at": time.Now(),
		"messages":   bson.A{},
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// AppendMessage pushes one entry onto the session's log. The returned count
// is the number of matched documents; appending to a missing id matches
// zero documents and is not an error.
func (r *ChatRepository) AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.Message) (int64, error) {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"messages": bson.M{"role": msg.Role, "text": msg.Text}},
	})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// FindByID returns a session by id, mongo.ErrNoDocuments when absent.
func (r *ChatRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ChatSession, error) {
	var s models.ChatSession
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ChatSummary is the projection returned by List.
type ChatSummary struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"title"`
}

// List returns all sessions ordered by creation time, descending.
func (r *ChatRepository) List(ctx context.Context) ([]ChatSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"title": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []ChatSummary
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ChatRepository) UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"title": title}})
	return err
}

func (r *ChatRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
