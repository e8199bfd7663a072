package docstore

import (
	"context"

	"saborhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	databaseName   = "persistencia_poliglota"
	collectionName = "restaurantes"
)

// Mongo stores restaurant documents in a MongoDB collection.
type Mongo struct {
	client *mongo.Client
	col    *mongo.Collection
}

// ConnectMongo connects to MongoDB and pings it before handing the store out.
func ConnectMongo(ctx context.Context, uri string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &Mongo{
		client: client,
		col:    client.Database(databaseName).Collection(collectionName),
	}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) InsertRestaurante(ctx context.Context, doc models.RestauranteDoc) error {
	preencherPadroes(&doc)
	_, err := m.col.InsertOne(ctx, doc)
	return err
}

func (m *Mongo) ListRestaurantes(ctx context.Context) ([]models.RestauranteDoc, error) {
	cur, err := m.col.Find(ctx, bson.D{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, err
	}
	docs := []models.RestauranteDoc{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo) PendingCoordenadas(ctx context.Context, limit int) ([]models.RestauranteDoc, error) {
	filter := bson.M{"coordenadas.lat": nil}
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(int64(limit))

	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	docs := []models.RestauranteDoc{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo) SetCoordenadas(ctx context.Context, nome, cidade string, lat, lon float64) error {
	filter := bson.M{"nome": nome, "cidade": cidade, "coordenadas.lat": nil}
	update := bson.M{"$set": bson.M{"coordenadas": bson.M{"lat": lat, "lon": lon}}}
	_, err := m.col.UpdateMany(ctx, filter, update)
	return err
}
