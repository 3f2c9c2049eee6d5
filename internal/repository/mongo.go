package repository

import (
	"context"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"ticketdesk/internal/model"
)

type ticketDocument struct {
	ID      primitive.ObjectID `bson:"_id"`
	Name    string             `bson:"name"`
	Problem string             `bson:"problem"`
}

func (d ticketDocument) toModel() model.Ticket {
	return model.Ticket{ID: d.ID.Hex(), Name: d.Name, Problem: d.Problem}
}

type MongoTicketRepository struct {
	collection *mongo.Collection
}

func (t *MongoTicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	document := ticketDocument{
		ID:      primitive.NewObjectID(),
		Name:    ticket.Name,
		Problem: ticket.Problem,
	}

	_, errInsert := t.collection.InsertOne(ctx, document)
	if errInsert != nil {
		return errInsert
	}

	ticket.SetID(document.ID.Hex())
	return nil
}

// FindAll relies on the collection's natural order, which is insertion order
// for a collection that is never updated in place.
func (t *MongoTicketRepository) FindAll(ctx context.Context) ([]model.Ticket, error) {
	cur, errFind := t.collection.Find(ctx, bson.D{})
	if errFind != nil {
		return nil, errFind
	}
	defer cur.Close(ctx)

	tickets := []model.Ticket{}
	for cur.Next(ctx) {
		var document ticketDocument
		if errDecode := cur.Decode(&document); errDecode != nil {
			return nil, errDecode
		}
		tickets = append(tickets, document.toModel())
	}

	if errCursor := cur.Err(); errCursor != nil {
		return nil, errCursor
	}

	return tickets, nil
}

// DeleteByID treats an identifier that is not a valid ObjectID as one that
// matches nothing.
func (t *MongoTicketRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, errParse := primitive.ObjectIDFromHex(id)
	if errParse != nil {
		return nil
	}

	_, errDelete := t.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	return errDelete
}

func NewMongoTicketRepository(collection *mongo.Collection) *MongoTicketRepository {
	return &MongoTicketRepository{collection: collection}
}
