package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/umputun/facultyscope/pkg/domain"
)

// profileDoc is a profile document, keyed by email
type profileDoc struct {
	Email       string        `bson:"_id"`
	Interests   []string      `bson:"interests"`
	Favorites   []favoriteDoc `bson:"favorites"`
	CreatedAt   time.Time     `bson:"createdAt"`
	LastUpdated time.Time     `bson:"lastUpdated"`
}

type favoriteDoc struct {
	FacultyID      int64     `bson:"facultyId"`
	FacultyName    string    `bson:"facultyName"`
	UniversityName string    `bson:"universityName"`
	AddedAt        time.Time `bson:"addedAt"`
}

// ProfileRepository stores one document per profile. Every mutation is a single conditional
// update, so concurrent calls on the same profile are serialized by the server.
type ProfileRepository struct {
	coll *mongo.Collection
}

// GetOrCreate returns the profile for email, creating an empty one if it doesn't exist
func (r *ProfileRepository) GetOrCreate(ctx context.Context, email string, now time.Time) (*domain.UserProfile, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc profileDoc
	err := retryDuplicate(func() error {
		return r.coll.FindOneAndUpdate(ctx, bson.M{"_id": email}, bson.M{"$setOnInsert": newProfileFields(now)}, opts).Decode(&doc)
	})
	if err != nil {
		return nil, fmt.Errorf("get or create profile: %w", err)
	}
	return doc.toDomain(), nil
}

// ReplaceInterests replaces the whole interest list, creating the profile if needed
func (r *ProfileRepository) ReplaceInterests(ctx context.Context, email string, interests []string, now time.Time) error {
	if interests == nil {
		interests = []string{}
	}
	update := bson.M{
		"$set":         bson.M{"interests": interests, "lastUpdated": now},
		"$setOnInsert": bson.M{"favorites": []favoriteDoc{}, "createdAt": now},
	}
	err := retryDuplicate(func() error {
		_, err := r.coll.UpdateOne(ctx, bson.M{"_id": email}, update, options.Update().SetUpsert(true))
		return err
	})
	if err != nil {
		return fmt.Errorf("replace interests: %w", err)
	}
	return nil
}

// AddInterest appends interest unless already present, creating the profile if needed
func (r *ProfileRepository) AddInterest(ctx context.Context, email, interest string, now time.Time) (bool, error) {
	if err := r.ensure(ctx, email, now); err != nil {
		return false, err
	}
	filter := bson.M{"_id": email, "interests": bson.M{"$ne": interest}}
	update := bson.M{"$push": bson.M{"interests": interest}, "$set": bson.M{"lastUpdated": now}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("add interest: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// RemoveInterest removes interest from an existing profile
func (r *ProfileRepository) RemoveInterest(ctx context.Context, email, interest string, now time.Time) (bool, error) {
	filter := bson.M{"_id": email, "interests": interest}
	update := bson.M{"$pull": bson.M{"interests": interest}, "$set": bson.M{"lastUpdated": now}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("remove interest: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// AddFavorite appends fav unless the faculty is already a favorite, creating the profile if needed
func (r *ProfileRepository) AddFavorite(ctx context.Context, email string, fav domain.FavoriteRecord, now time.Time) (bool, error) {
	if err := r.ensure(ctx, email, now); err != nil {
		return false, err
	}
	filter := bson.M{"_id": email, "favorites.facultyId": bson.M{"$ne": fav.FacultyID}}
	update := bson.M{
		"$push": bson.M{"favorites": favoriteDoc{
			FacultyID:      fav.FacultyID,
			FacultyName:    fav.FacultyName,
			UniversityName: fav.UniversityName,
			AddedAt:        fav.AddedAt,
		}},
		"$set": bson.M{"lastUpdated": now},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// RemoveFavorite removes the favorite for facultyID from an existing profile
func (r *ProfileRepository) RemoveFavorite(ctx context.Context, email string, facultyID int64, now time.Time) (bool, error) {
	filter := bson.M{"_id": email, "favorites.facultyId": facultyID}
	update := bson.M{"$pull": bson.M{"favorites": bson.M{"facultyId": facultyID}}, "$set": bson.M{"lastUpdated": now}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// Favorites returns favorites in the order they were added, empty for unknown profiles
func (r *ProfileRepository) Favorites(ctx context.Context, email string) ([]domain.FavoriteRecord, error) {
	var doc profileDoc
	opts := options.FindOne().SetProjection(bson.M{"favorites": 1})
	err := r.coll.FindOne(ctx, bson.M{"_id": email}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []domain.FavoriteRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	return doc.toDomain().FavoriteFaculty, nil
}

// IsFavorite checks if facultyID is among the favorites of email
func (r *ProfileRepository) IsFavorite(ctx context.Context, email string, facultyID int64) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": email, "favorites.facultyId": facultyID})
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return count > 0, nil
}

// ClearFavorites empties favorites of an existing profile and keeps its interests
func (r *ProfileRepository) ClearFavorites(ctx context.Context, email string, now time.Time) error {
	update := bson.M{"$set": bson.M{"favorites": []favoriteDoc{}, "lastUpdated": now}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": email}, update); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}

// DeleteProfile removes the profile document
func (r *ProfileRepository) DeleteProfile(ctx context.Context, email string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": email}); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// ensure inserts an empty profile document unless one exists
func (r *ProfileRepository) ensure(ctx context.Context, email string, now time.Time) error {
	err := retryDuplicate(func() error {
		_, err := r.coll.UpdateOne(ctx, bson.M{"_id": email}, bson.M{"$setOnInsert": newProfileFields(now)},
			options.Update().SetUpsert(true))
		return err
	})
	if err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}
	return nil
}

func newProfileFields(now time.Time) bson.M {
	return bson.M{"interests": []string{}, "favorites": []favoriteDoc{}, "createdAt": now, "lastUpdated": now}
}

// retryDuplicate repeats fn once if it fails with a duplicate key error. Two concurrent upserts
// of the same _id can race on insert; the second attempt sees the document and updates it.
func retryDuplicate(fn func() error) error {
	err := fn()
	if mongo.IsDuplicateKeyError(err) {
		err = fn()
	}
	return err
}

func (d profileDoc) toDomain() *domain.UserProfile {
	p := &domain.UserProfile{
		Email:           d.Email,
		Interests:       d.Interests,
		FavoriteFaculty: make([]domain.FavoriteRecord, len(d.Favorites)),
		CreatedAt:       d.CreatedAt.UTC(),
		LastUpdated:     d.LastUpdated.UTC(),
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	for i, f := range d.Favorites {
		p.FavoriteFaculty[i] = domain.FavoriteRecord{
			FacultyID:      f.FacultyID,
			FacultyName:    f.FacultyName,
			UniversityName: f.UniversityName,
			AddedAt:        f.AddedAt.UTC(),
		}
	}
	return p
}
