package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

const adminsCollection = "admins"

func adminEmployeeIDIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

// AdminRepository persists admin directory entries.
type AdminRepository struct {
	conn *Connector
}

func NewAdminRepository(conn *Connector) *AdminRepository {
	return &AdminRepository{conn: conn}
}

type adminDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	EmployeeID string             `bson:"employee_id"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Phone      string             `bson:"phone,omitempty"`
	Address    string             `bson:"address,omitempty"`
	Role       string             `bson:"role"`
	CreatedBy  string             `bson:"created_by"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d *adminDoc) toDomain() *domain.AdminProfile {
	return &domain.AdminProfile{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		EmployeeID: d.EmployeeID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Address:    d.Address,
		Role:       domain.Role(d.Role),
		CreatedBy:  d.CreatedBy,
		CreatedAt:  d.CreatedAt,
	}
}

// Create inserts a directory entry. A duplicate-key failure on the
// unique employee_id index maps to domain.ErrEmployeeIDTaken.
func (r *AdminRepository) Create(ctx context.Context, profile *domain.AdminProfile) (*domain.AdminProfile, error) {
	col, err := r.conn.Collection(adminsCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := adminDoc{
		UserID:     profile.UserID,
		EmployeeID: profile.EmployeeID,
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Address:    profile.Address,
		Role:       string(profile.Role),
		CreatedBy:  profile.CreatedBy,
		CreatedAt:  profile.CreatedAt,
	}

	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmployeeIDTaken
		}
		return nil, fmt.Errorf("insert admin profile: %w", err)
	}

	created := *profile
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AdminRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*domain.AdminProfile, error) {
	col, err := r.conn.Collection(adminsCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc adminDoc
	if err := col.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin by employee id: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns the whole directory, newest first.
func (r *AdminRepository) List(ctx context.Context) ([]*domain.AdminProfile, error) {
	col, err := r.conn.Collection(adminsCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer cur.Close(ctx)

	var profiles []*domain.AdminProfile
	for cur.Next(ctx) {
		var doc adminDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode admin: %w", err)
		}
		profiles = append(profiles, doc.toDomain())
	}
	return profiles, cur.Err()
}
