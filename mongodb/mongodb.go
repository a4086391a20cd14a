// Package mongodb stores conversation history for the multi-turn chat
// endpoint. Optional: when MONGO_URI is unset the chat endpoints still work,
// they just rely on caller-supplied history.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/logger"
)

const (
	database          = "conversations"
	messageCollection = "messages"
)

type History struct {
	client *mongo.Client
}

// Connect builds the history store against a MongoDB deployment.
func Connect(uri string) (*History, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB", zap.Error(err))
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	logger.Get().Info("successfully connected to MongoDB")
	return &History{client: client}, nil
}

// Close disconnects from MongoDB.
func (h *History) Close(ctx context.Context) {
	if err := h.client.Disconnect(ctx); err != nil {
		logger.Get().Error("failed to disconnect from MongoDB", zap.Error(err))
		return
	}
	logger.Get().Info("successfully disconnected from MongoDB")
}

func (h *History) messages() *mongo.Collection {
	return h.client.Database(database).Collection(messageCollection)
}
