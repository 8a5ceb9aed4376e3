package notes

import (
	"context"
	"precharting-service/internal/app/contracts"
	"precharting-service/internal/app/models"
	"precharting-service/internal/pkg/constvars"
	"precharting-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClinicalNoteMongoRepository struct {
	Collection *mongo.Collection
}

func NewClinicalNoteMongoRepository(db *mongo.Client, dbName string) contracts.ClinicalNoteRepository {
	return &ClinicalNoteMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClinicalNotes),
	}
}

func (repo *ClinicalNoteMongoRepository) InsertClinicalNote(ctx context.Context, note *models.ClinicalNote) error {
	_, err := repo.Collection.InsertOne(ctx, note)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *ClinicalNoteMongoRepository) FindClinicalNotes(ctx context.Context, limit int64) ([]models.ClinicalNote, error) {
	findOptions := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	// Listing an empty collection is a valid result, so the slice is
	// non-nil even when nothing matches.
	notes := make([]models.ClinicalNote, 0)
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return notes, nil
}
