// ABOUTME: MongoDB article archive implementing the ArticleStore interface
// ABOUTME: Maintains a unique url index so repeated runs skip stored articles

package mongo

import (
	"context"
	"time"

	"newsbrief/core/domain"
	"newsbrief/core/errors"
	"newsbrief/core/interfaces"
	"newsbrief/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collectionName  = "articles"
	defaultDatabase = "news_database"
)

// articleDocument is the archive schema for a stored article
type articleDocument struct {
	Title           string    `bson:"title"`
	Summary         string    `bson:"summary"`
	URL             string    `bson:"url"`
	Source          string    `bson:"source"`
	PublicationDate time.Time `bson:"publication_date"`
	Author          string    `bson:"author"`
	Tags            []string  `bson:"tags"`
}

// Store archives articles in a MongoDB collection
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     interfaces.Logger
}

// NewStore connects to MongoDB, verifies the connection, and ensures the
// unique url index exists.
func NewStore(ctx context.Context, cfg config.MongoConfig, logger interfaces.Logger) (*Store, error) {
	if cfg.URI == "" {
		return nil, &errors.ValidationError{
			Field:   "URI",
			Message: "mongo URI cannot be empty",
		}
	}

	database := cfg.Database
	if database == "" {
		database = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.WrapError(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.WrapError(err, "failed to ping mongodb")
	}

	collection := client.Database(database).Collection(collectionName)

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "url", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.WrapError(err, "failed to create url index")
	}

	return &Store{
		client:     client,
		collection: collection,
		logger:     logger,
	}, nil
}

// Save inserts an article into the archive. Inserting an article whose
// url is already stored returns an error.
func (s *Store) Save(ctx context.Context, article domain.Article) error {
	doc := documentFromArticle(article)

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.WrapError(err, "article already archived")
		}
		return errors.WrapError(err, "failed to insert article")
	}

	if s.logger != nil {
		s.logger.Info("article archived", map[string]interface{}{
			"id":  result.InsertedID,
			"url": article.Link,
		})
	}

	return nil
}

// Close disconnects from MongoDB
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// documentFromArticle maps a domain article onto the archive schema.
// The AI summary wins over the feed summary when both are present.
func documentFromArticle(article domain.Article) articleDocument {
	summary := article.Summary
	if article.HasAISummary() {
		summary = article.AISummary
	}

	published := article.Published
	if published.IsZero() {
		published = time.Now()
	}

	tags := article.Categories
	if tags == nil {
		tags = []string{}
	}

	return articleDocument{
		Title:           article.Title,
		Summary:         summary,
		URL:             article.Link,
		Source:          article.Source,
		PublicationDate: published,
		Author:          article.Author,
		Tags:            tags,
	}
}
