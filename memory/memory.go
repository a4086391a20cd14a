// Package memory keeps an embedding index of expense lines in Qdrant. The
// chat pipeline retrieves a user's most similar past expenses and feeds them
// to the model as extra context. Optional: unset QDRANT_URL disables it.
package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/models"
)

const (
	expensesCollection = "expense_memory"
	vectorSize         = 768
)

// Embedder turns text into a vector. Satisfied by llm.Client.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

type Memory struct {
	client   *qdrant.Client
	embedder Embedder
}

// Connect builds the Qdrant-backed memory. Port 6334 is Qdrant's gRPC port.
func Connect(host string, port int, apiKey string, useTLS bool, embedder Embedder) (*Memory, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		logger.Get().Error("failed to connect to Qdrant",
			zap.String("host", host),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	logger.Get().Info("successfully connected to Qdrant", zap.String("host", host))
	return &Memory{client: client, embedder: embedder}, nil
}

// EnsureCollection creates the expense collection if it does not exist yet.
func (m *Memory) EnsureCollection(ctx context.Context) error {
	exists, err := m.client.CollectionExists(ctx, expensesCollection)
	if err != nil {
		return fmt.Errorf("error checking Qdrant collection: %w", err)
	}
	if exists {
		return nil
	}

	err = m.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: expensesCollection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("error creating Qdrant collection: %w", err)
	}

	logger.Get().Info("created Qdrant collection", zap.String("collection", expensesCollection))
	return nil
}

// RememberExpenses embeds and indexes freshly persisted expense rows.
func (m *Memory) RememberExpenses(ctx context.Context, userID string, expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(expenses))
	for _, e := range expenses {
		line := expenseLine(e)
		vector, err := m.embedder.EmbedText(ctx, line)
		if err != nil {
			return fmt.Errorf("error embedding expense line: %w", err)
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(uuid.NewString()),
			Vectors: qdrant.NewVectors(vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				"user_id":  userID,
				"text":     line,
				"category": e.Category,
				"amount":   e.Amount,
			}),
		})
	}

	wait := false
	_, err := m.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: expensesCollection,
		Points:         points,
		Wait:           &wait,
	})
	if err != nil {
		return fmt.Errorf("error upserting expense memory: %w", err)
	}

	logger.Get().Debug("indexed expense lines",
		zap.String("user_id", userID),
		zap.Int("count", len(points)))
	return nil
}

// SearchSimilar returns the text of the user's expense lines closest to the
// query, best match first.
func (m *Memory) SearchSimilar(ctx context.Context, userID, query string, limit int) ([]string, error) {
	vector, err := m.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error embedding query: %w", err)
	}

	maxResults := uint64(limit)
	scored, err := m.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: expensesCollection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &maxResults,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("user_id", userID),
			},
		},
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("error querying expense memory: %w", err)
	}

	lines := make([]string, 0, len(scored))
	for _, point := range scored {
		if text, ok := point.Payload["text"]; ok {
			lines = append(lines, text.GetStringValue())
		}
	}
	return lines, nil
}

func expenseLine(e models.Expense) string {
	return fmt.Sprintf("%s | %s | %.2f | %s", e.Name, e.Category, e.Amount, e.Mode)
}
