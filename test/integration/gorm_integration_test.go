package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"academy-chatbot-be/internal/repository/implementation"
	"academy-chatbot-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	ctx := context.Background()

	t.Run("Check Training Repository", func(t *testing.T) {
		repo := implementation.NewTrainingRepository(gormDB)
		trainings, err := repo.FindAllActive(ctx)
		assert.NoError(t, err)
		t.Logf("Active trainings: %d", len(trainings))
	})

	t.Run("Check Faq Repository", func(t *testing.T) {
		repo := implementation.NewFaqRepository(gormDB)
		faqs, err := repo.SearchByKeyword(ctx, "sertifikat")
		assert.NoError(t, err)
		t.Logf("FAQ hits: %d", len(faqs))
	})

	t.Run("Check Session Store Roundtrip", func(t *testing.T) {
		store := implementation.NewChatSessionStore(gormDB, 30*time.Minute)

		id := uuid.NewString()
		session, err := store.GetOrCreate(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, id, session.Id)

		session.PutData("name", "Integration Test")
		assert.NoError(t, store.Save(ctx, session))

		reloaded, err := store.Get(ctx, id)
		assert.NoError(t, err)
		assert.NotNil(t, reloaded)
		assert.Equal(t, "Integration Test", reloaded.Data("name"))

		assert.NoError(t, store.Delete(ctx, id))
	})
}
