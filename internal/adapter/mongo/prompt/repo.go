// Package prompt implements the prompt history store on a MongoDB collection.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

type promptDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	UserID          string             `bson:"userId"`
	OriginalPrompt  string             `bson:"originalPrompt"`
	RewrittenPrompt string             `bson:"rewrittenPrompt"`
	Tone            string             `bson:"tone"`
	Type            string             `bson:"type"`
	IsFavorite      bool               `bson:"isFavorite"`
	CreatedAt       time.Time          `bson:"createdAt"`
	Metadata        metadataDoc        `bson:"metadata"`
}

type metadataDoc struct {
	WordCount      wordCountDoc `bson:"wordCount"`
	ProcessingTime int64        `bson:"processingTime"`
	Model          string       `bson:"model"`
	APICost        float64      `bson:"apiCost"`
}

type wordCountDoc struct {
	Original  int `bson:"original"`
	Rewritten int `bson:"rewritten"`
}

type statsDoc struct {
	TotalPrompts      int64   `bson:"totalPrompts"`
	FavoritePrompts   int64   `bson:"favoritePrompts"`
	MostUsedTone      string  `bson:"mostUsedTone"`
	MostUsedType      string  `bson:"mostUsedType"`
	AvgProcessingTime float64 `bson:"avgProcessingTime"`
	TotalAPICost      float64 `bson:"totalApiCost"`
}

type countDoc struct {
	Value string `bson:"_id"`
	Count int64  `bson:"count"`
}

type popularityDoc struct {
	ToneStats []countDoc `bson:"toneStats"`
	TypeStats []countDoc `bson:"typeStats"`
}

// Repo provides prompt persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new prompt repository.
func New(coll *mongo.Collection) *Repo {
	return &Repo{coll: coll}
}

// EnsureIndexes creates the indexes used by history listings.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "isFavorite", Value: 1}}},
		{Keys: bson.D{{Key: "tone", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create prompt indexes: %w", err)
	}
	return nil
}

// Ping checks that the deployment is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

// Create inserts rec with a new ObjectID and returns the stored record.
func (r *Repo) Create(ctx context.Context, rec domain.PromptRecord) (domain.PromptRecord, error) {
	rec.RecountWords()
	doc := toDoc(rec)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.PromptRecord{}, fmt.Errorf("insert prompt: %w", err)
	}
	return toDomain(doc), nil
}

// List returns one page of a user's matching records and the total match count.
func (r *Repo) List(ctx context.Context, userID string, filter domain.HistoryFilter, page domain.Page, sort domain.Sort) ([]domain.PromptRecord, int64, error) {
	f := buildFilter(userID, filter)

	total, err := r.coll.CountDocuments(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("count prompts: %w", err)
	}

	opts := options.Find().
		SetSort(sortSpec(sort)).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.Limit))

	cur, err := r.coll.Find(ctx, f, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find prompts: %w", err)
	}

	var docs []promptDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode prompts: %w", err)
	}

	out := make([]domain.PromptRecord, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDomain(d))
	}
	return out, total, nil
}

// Delete removes the record with id, restricted to ownerID when it is set.
// A malformed id matches nothing.
func (r *Repo) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	f, ok := byID(id, ownerID)
	if !ok {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, f)
	if err != nil {
		return false, fmt.Errorf("delete prompt %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

// ToggleFavorite flips isFavorite in a single update and returns the new document.
func (r *Repo) ToggleFavorite(ctx context.Context, id, ownerID string) (domain.PromptRecord, error) {
	f, ok := byID(id, ownerID)
	if !ok {
		return domain.PromptRecord{}, fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "isFavorite", Value: bson.D{{Key: "$not", Value: bson.A{"$isFavorite"}}}}}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc promptDoc
	err := r.coll.FindOneAndUpdate(ctx, f, update, opts).Decode(&doc)
	if err != nil {
		return domain.PromptRecord{}, mapError(err, id)
	}
	return toDomain(doc), nil
}

// UserStats aggregates a user's records. $first yields the tone and type of
// the oldest record, not the most frequent ones.
func (r *Repo) UserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userId", Value: userID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalPrompts", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "favoritePrompts", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{"$isFavorite", 1, 0}}}}}},
			{Key: "mostUsedTone", Value: bson.D{{Key: "$first", Value: "$tone"}}},
			{Key: "mostUsedType", Value: bson.D{{Key: "$first", Value: "$type"}}},
			{Key: "avgProcessingTime", Value: bson.D{{Key: "$avg", Value: "$metadata.processingTime"}}},
			{Key: "totalApiCost", Value: bson.D{{Key: "$sum", Value: "$metadata.apiCost"}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("aggregate user stats: %w", err)
	}

	var docs []statsDoc
	if err := cur.All(ctx, &docs); err != nil {
		return domain.UserStats{}, fmt.Errorf("decode user stats: %w", err)
	}
	if len(docs) == 0 {
		return domain.UserStats{}, nil
	}

	d := docs[0]
	return domain.UserStats{
		TotalPrompts:      d.TotalPrompts,
		FavoritePrompts:   d.FavoritePrompts,
		MostUsedTone:      domain.Tone(d.MostUsedTone),
		MostUsedType:      domain.PromptType(d.MostUsedType),
		AvgProcessingTime: d.AvgProcessingTime,
		TotalAPICost:      d.TotalAPICost,
	}, nil
}

// Popularity counts tones and types across all users in one $facet stage.
func (r *Repo) Popularity(ctx context.Context) (domain.Popularity, error) {
	countBy := func(field string) bson.A {
		return bson.A{
			bson.D{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$" + field}, {Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "toneStats", Value: countBy("tone")},
			{Key: "typeStats", Value: countBy("type")},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.Popularity{}, fmt.Errorf("aggregate popularity: %w", err)
	}

	var docs []popularityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return domain.Popularity{}, fmt.Errorf("decode popularity: %w", err)
	}

	p := domain.Popularity{ToneStats: []domain.CategoryCount{}, TypeStats: []domain.CategoryCount{}}
	if len(docs) == 0 {
		return p, nil
	}
	for _, c := range docs[0].ToneStats {
		p.ToneStats = append(p.ToneStats, domain.CategoryCount{Value: c.Value, Count: c.Count})
	}
	for _, c := range docs[0].TypeStats {
		p.TypeStats = append(p.TypeStats, domain.CategoryCount{Value: c.Value, Count: c.Count})
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildFilter(userID string, f domain.HistoryFilter) bson.D {
	out := bson.D{{Key: "userId", Value: userID}}
	if f.FavoritesOnly {
		out = append(out, bson.E{Key: "isFavorite", Value: true})
	}
	if f.Type != nil {
		out = append(out, bson.E{Key: "type", Value: string(*f.Type)})
	}
	if f.Tone != nil {
		out = append(out, bson.E{Key: "tone", Value: string(*f.Tone)})
	}
	if f.Search != nil {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(*f.Search), Options: "i"}
		out = append(out, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "originalPrompt", Value: re}},
			bson.D{{Key: "rewrittenPrompt", Value: re}},
		}})
	}
	return out
}

func sortSpec(s domain.Sort) bson.D {
	by := s.By
	if !by.IsValid() {
		by = domain.SortByCreatedAt
	}
	dir := 1
	if s.Descending {
		dir = -1
	}
	return bson.D{{Key: string(by), Value: dir}, {Key: "_id", Value: dir}}
}

func byID(id, ownerID string) (bson.D, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	f := bson.D{{Key: "_id", Value: oid}}
	if ownerID != "" {
		f = append(f, bson.E{Key: "userId", Value: ownerID})
	}
	return f, true
}

// mapError converts driver errors to domain errors.
func mapError(err error, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("prompt %s: %w", id, err)
}

func toDoc(r domain.PromptRecord) promptDoc {
	return promptDoc{
		UserID:          r.UserID,
		OriginalPrompt:  r.OriginalPrompt,
		RewrittenPrompt: r.RewrittenPrompt,
		Tone:            string(r.Tone),
		Type:            string(r.Type),
		IsFavorite:      r.IsFavorite,
		CreatedAt:       r.CreatedAt.UTC().Truncate(time.Millisecond),
		Metadata: metadataDoc{
			WordCount: wordCountDoc{
				Original:  r.Metadata.WordCount.Original,
				Rewritten: r.Metadata.WordCount.Rewritten,
			},
			ProcessingTime: r.Metadata.ProcessingTime,
			Model:          r.Metadata.Model,
			APICost:        r.Metadata.APICost,
		},
	}
}

func toDomain(d promptDoc) domain.PromptRecord {
	return domain.PromptRecord{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		OriginalPrompt:  d.OriginalPrompt,
		RewrittenPrompt: d.RewrittenPrompt,
		Tone:            domain.Tone(d.Tone),
		Type:            domain.PromptType(d.Type),
		IsFavorite:      d.IsFavorite,
		CreatedAt:       d.CreatedAt.UTC(),
		Metadata: domain.PromptMetadata{
			WordCount: domain.WordCount{
				Original:  d.Metadata.WordCount.Original,
				Rewritten: d.Metadata.WordCount.Rewritten,
			},
			ProcessingTime: d.Metadata.ProcessingTime,
			Model:          d.Metadata.Model,
			APICost:        d.Metadata.APICost,
		},
	}
}
