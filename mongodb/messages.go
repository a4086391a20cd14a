package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

// SaveMessage appends one conversation turn.
func (h *History) SaveMessage(ctx context.Context, msg *models.ChatMessage) error {
	if _, err := h.messages().InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("error saving chat message: %w", err)
	}
	return nil
}

// HistoryByConversation replays a conversation's turns oldest-first.
func (h *History) HistoryByConversation(ctx context.Context, conversationID string) ([]models.ChatTurn, error) {
	filter := bson.M{"conversation_id": conversationID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := h.messages().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching conversation history: %w", err)
	}
	defer cursor.Close(ctx)

	var turns []models.ChatTurn
	for cursor.Next(ctx) {
		var msg models.ChatMessage
		if err := cursor.Decode(&msg); err != nil {
			return nil, fmt.Errorf("error decoding chat message: %w", err)
		}
		turns = append(turns, models.ChatTurn{
			Sender:    msg.Sender,
			Message:   msg.Message,
			Timestamp: msg.Timestamp,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return turns, nil
}
