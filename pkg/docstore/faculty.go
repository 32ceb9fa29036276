package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/umputun/facultyscope/pkg/domain"
)

// DefaultPublicationsLimit is the number of top publications returned when no limit is given
const DefaultPublicationsLimit = 5

type facultyDoc struct {
	ID           int64         `bson:"id"`
	Name         string        `bson:"name"`
	Position     string        `bson:"position"`
	Email        string        `bson:"email"`
	Phone        string        `bson:"phone"`
	PhotoURL     string        `bson:"photoUrl"`
	Affiliation  universityDoc `bson:"affiliation"`
	Keywords     []keywordDoc  `bson:"keywords"`
	Publications []int64       `bson:"publications"`
}

type universityDoc struct {
	ID       int64  `bson:"id"`
	Name     string `bson:"name"`
	PhotoURL string `bson:"photoUrl"`
}

type keywordDoc struct {
	Name  string  `bson:"name"`
	Score float64 `bson:"score"`
}

type publicationDoc struct {
	ID           int64  `bson:"id"`
	Title        string `bson:"title"`
	Venue        string `bson:"venue"`
	Year         int    `bson:"year"`
	NumCitations int    `bson:"numCitations"`
}

// FacultyRepository reads the faculty and publications collections
type FacultyRepository struct {
	faculty      *mongo.Collection
	publications *mongo.Collection
}

// Resolve returns the faculty with its affiliation name, or domain.ErrFacultyNotFound
func (r *FacultyRepository) Resolve(ctx context.Context, facultyID int64) (*domain.Faculty, error) {
	var doc facultyDoc
	opts := options.FindOne().SetProjection(bson.M{"id": 1, "name": 1, "affiliation.name": 1})
	err := r.faculty.FindOne(ctx, bson.M{"id": facultyID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrFacultyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve faculty %d: %w", facultyID, err)
	}
	return &domain.Faculty{ID: doc.ID, Name: doc.Name, AffiliationName: doc.Affiliation.Name}, nil
}

// Universities returns distinct affiliation names in alphabetical order
func (r *FacultyRepository) Universities(ctx context.Context) ([]string, error) {
	vals, err := r.faculty.Distinct(ctx, "affiliation.name", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("get universities: %w", err)
	}
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			res = append(res, s)
		}
	}
	sort.Strings(res)
	return res, nil
}

// FacultyByUniversity returns faculty affiliated with university, ordered by name
func (r *FacultyRepository) FacultyByUniversity(ctx context.Context, university string) ([]domain.FacultyProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.faculty.Find(ctx, bson.M{"affiliation.name": university}, opts)
	if err != nil {
		return nil, fmt.Errorf("find faculty of %q: %w", university, err)
	}
	var docs []facultyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode faculty of %q: %w", university, err)
	}
	res := make([]domain.FacultyProfile, len(docs))
	for i, d := range docs {
		res[i] = d.toDomain()
	}
	return res, nil
}

// FacultyNames returns all faculty names in alphabetical order
func (r *FacultyRepository) FacultyNames(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1}).SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.faculty.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find faculty names: %w", err)
	}
	var docs []facultyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode faculty names: %w", err)
	}
	res := make([]string, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.Name)
	}
	return res, nil
}

// FacultyByName returns the faculty document with the exact name, or domain.ErrFacultyNotFound
func (r *FacultyRepository) FacultyByName(ctx context.Context, name string) (*domain.FacultyProfile, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

// FacultyByID returns the faculty document with the id, or domain.ErrFacultyNotFound
func (r *FacultyRepository) FacultyByID(ctx context.Context, id int64) (*domain.FacultyProfile, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// TopPublications returns publications with the given ids ordered by citations, most cited first
func (r *FacultyRepository) TopPublications(ctx context.Context, ids []int64, limit int) ([]domain.Publication, error) {
	if len(ids) == 0 {
		return []domain.Publication{}, nil
	}
	if limit <= 0 {
		limit = DefaultPublicationsLimit
	}
	opts := options.Find().SetSort(bson.D{{Key: "numCitations", Value: -1}, {Key: "id", Value: 1}}).SetLimit(int64(limit))
	cursor, err := r.publications.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find publications: %w", err)
	}
	var docs []publicationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode publications: %w", err)
	}
	res := make([]domain.Publication, len(docs))
	for i, d := range docs {
		res[i] = domain.Publication{ID: d.ID, Title: d.Title, Venue: d.Venue, Year: d.Year, NumCitations: d.NumCitations}
	}
	return res, nil
}

// KeywordTrend counts publications tagged with keyword (case-insensitive) per year in
// [fromYear, toYear]. Years without publications are reported with zero count.
func (r *FacultyRepository) KeywordTrend(ctx context.Context, keyword string, fromYear, toYear int) ([]domain.YearCount, error) {
	if fromYear > toYear {
		return []domain.YearCount{}, nil
	}
	cursor, err := r.publications.Aggregate(ctx, trendPipeline(keyword, fromYear, toYear))
	if err != nil {
		return nil, fmt.Errorf("aggregate trend for %q: %w", keyword, err)
	}
	var rows []struct {
		Year  int `bson:"_id"`
		Count int `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode trend for %q: %w", keyword, err)
	}
	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Year] = row.Count
	}
	return fillYears(counts, fromYear, toYear), nil
}

func (r *FacultyRepository) findOne(ctx context.Context, filter bson.M) (*domain.FacultyProfile, error) {
	var doc facultyDoc
	err := r.faculty.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrFacultyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find faculty: %w", err)
	}
	res := doc.toDomain()
	return &res, nil
}

// trendPipeline matches publications by keyword and year range and counts them per year
func trendPipeline(keyword string, fromYear, toYear int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"keywords.name": bson.M{"$regex": "^" + regexp.QuoteMeta(keyword) + "$", "$options": "i"},
			"year":          bson.M{"$gte": fromYear, "$lte": toYear},
		}}},
		{{Key: "$group", Value: bson.M{"_id": "$year", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
}

// fillYears returns one entry per year in [fromYear, toYear], zero for missing years
func fillYears(counts map[int]int, fromYear, toYear int) []domain.YearCount {
	res := make([]domain.YearCount, 0, toYear-fromYear+1)
	for y := fromYear; y <= toYear; y++ {
		res = append(res, domain.YearCount{Year: y, Count: counts[y]})
	}
	return res
}

func (d facultyDoc) toDomain() domain.FacultyProfile {
	p := domain.FacultyProfile{
		ID:             d.ID,
		Name:           d.Name,
		Position:       d.Position,
		Email:          d.Email,
		Phone:          d.Phone,
		PhotoURL:       d.PhotoURL,
		Affiliation:    domain.University{ID: d.Affiliation.ID, Name: d.Affiliation.Name, PhotoURL: d.Affiliation.PhotoURL},
		Keywords:       make([]domain.KeywordScore, len(d.Keywords)),
		PublicationIDs: d.Publications,
	}
	for i, k := range d.Keywords {
		p.Keywords[i] = domain.KeywordScore{Name: k.Name, Score: k.Score}
	}
	if p.PublicationIDs == nil {
		p.PublicationIDs = []int64{}
	}
	return p
}
