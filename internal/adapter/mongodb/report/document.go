package report

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// reportDoc is the stored document. Field names match the collection written
// by earlier deployments, which kept createdAt and updatedAt as ISO-8601
// strings. The driver decodes both forms; queries go through createdAtDate.
type reportDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Content         string             `bson:"content"`
	AuthorID        string             `bson:"authorId"`
	AuthorName      string             `bson:"authorName"`
	Status          string             `bson:"status"`
	Category        string             `bson:"category"`
	Priority        string             `bson:"priority"`
	Tags            []string           `bson:"tags"`
	Images          []imageDoc         `bson:"images"`
	Location        *locationDoc       `bson:"location,omitempty"`
	ReviewedBy      *string            `bson:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time         `bson:"reviewedAt,omitempty"`
	RejectionReason *string            `bson:"rejectionReason,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

type imageDoc struct {
	LocalURL  string `bson:"localUrl"`
	PublicURL string `bson:"publicUrl,omitempty"`
}

type locationDoc struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
	Address   string  `bson:"address,omitempty"`
}

func fromDomain(r *domain.Report) reportDoc {
	doc := reportDoc{
		Title:           r.Title,
		Content:         r.Content,
		AuthorID:        r.AuthorID,
		AuthorName:      r.AuthorName,
		Status:          string(r.Status),
		Category:        string(r.Category),
		Priority:        string(r.Priority),
		Tags:            r.Tags,
		Images:          toImageDocs(r.Images),
		Location:        toLocationDoc(r.Location),
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	return doc
}

func toDomain(d reportDoc) domain.Report {
	r := domain.Report{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Content:         d.Content,
		AuthorID:        d.AuthorID,
		AuthorName:      d.AuthorName,
		Status:          domain.ReportStatus(d.Status),
		Category:        domain.ReportCategory(d.Category),
		Priority:        domain.ReportPriority(d.Priority),
		Tags:            d.Tags,
		Images:          make([]domain.Image, 0, len(d.Images)),
		ReviewedBy:      d.ReviewedBy,
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	for _, img := range d.Images {
		r.Images = append(r.Images, domain.Image{LocalURL: img.LocalURL, PublicURL: img.PublicURL})
	}
	if d.Location != nil {
		r.Location = &domain.Location{
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
			Address:   d.Location.Address,
		}
	}
	if d.ReviewedAt != nil {
		t := d.ReviewedAt.UTC()
		r.ReviewedAt = &t
	}
	return r
}

func toImageDocs(images []domain.Image) []imageDoc {
	docs := make([]imageDoc, 0, len(images))
	for _, img := range images {
		docs = append(docs, imageDoc{LocalURL: img.LocalURL, PublicURL: img.PublicURL})
	}
	return docs
}

func toLocationDoc(loc *domain.Location) *locationDoc {
	if loc == nil {
		return nil
	}
	doc := &locationDoc{Latitude: loc.Latitude, Longitude: loc.Longitude}
	if loc.HasAddress() {
		doc.Address = loc.Address
	}
	return doc
}
