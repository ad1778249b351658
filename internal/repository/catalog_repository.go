package repository

import (
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/salon-booking/internal/domain"
	"github.com/spec-kit/salon-booking/internal/persistence"
)

const (
	servicesFile = "services.json"
	galleryFile  = "gallery.json"
)

// ServiceCatalog is the on-disk services document.
type ServiceCatalog struct {
	Services   []domain.Service `json:"services"`
	Categories []string         `json:"categories"`
}

// GalleryCatalog is the on-disk gallery document.
type GalleryCatalog struct {
	Gallery    []domain.GalleryItem `json:"gallery"`
	Categories []string             `json:"categories"`
}

// CatalogRepository serves the read-only service and gallery catalogs. The
// documents are loaded once at startup; missing files are seeded with the
// built-in defaults so operators can edit them afterwards.
type CatalogRepository struct {
	services     ServiceCatalog
	gallery      GalleryCatalog
	testimonials []domain.Testimonial
}

// NewCatalogRepository loads catalogs from the store, seeding defaults.
func NewCatalogRepository(store *persistence.FileStore, logger *zap.Logger) (*CatalogRepository, error) {
	r := &CatalogRepository{testimonials: defaultTestimonials()}

	if err := loadOrSeed(store, logger, servicesFile, &r.services, defaultServiceCatalog); err != nil {
		return nil, err
	}
	if err := loadOrSeed(store, logger, galleryFile, &r.gallery, defaultGalleryCatalog); err != nil {
		return nil, err
	}
	return r, nil
}

func loadOrSeed[T any](store *persistence.FileStore, logger *zap.Logger, name string, out *T, defaults func() T) error {
	err := store.Load(name, out)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, persistence.ErrNotFound) || errors.Is(err, persistence.ErrCorrupt):
		logger.Warn("seeding default catalog", zap.String("file", name), zap.Error(err))
		*out = defaults()
		return store.Save(name, *out)
	default:
		return err
	}
}

// Services returns catalog entries, optionally filtered by category, along
// with the category list.
func (r *CatalogRepository) Services(category string) ([]domain.Service, []string) {
	if category == "" || category == "all" {
		return r.services.Services, r.services.Categories
	}
	filtered := []domain.Service{}
	for _, svc := range r.services.Services {
		if svc.Category == category {
			filtered = append(filtered, svc)
		}
	}
	return filtered, r.services.Categories
}

// ServiceByID returns a single catalog entry.
func (r *CatalogRepository) ServiceByID(id int) (*domain.Service, error) {
	for _, svc := range r.services.Services {
		if svc.ID == id {
			found := svc
			return &found, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

// Gallery returns gallery items, optionally filtered by category.
func (r *CatalogRepository) Gallery(category string) ([]domain.GalleryItem, []string) {
	if category == "" || category == "all" {
		return r.gallery.Gallery, r.gallery.Categories
	}
	filtered := []domain.GalleryItem{}
	for _, item := range r.gallery.Gallery {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, r.gallery.Categories
}

// FeaturedGallery returns up to limit featured gallery items.
func (r *CatalogRepository) FeaturedGallery(limit int) []domain.GalleryItem {
	featured := []domain.GalleryItem{}
	for _, item := range r.gallery.Gallery {
		if !item.Featured {
			continue
		}
		featured = append(featured, item)
		if len(featured) == limit {
			break
		}
	}
	return featured
}

// Testimonials returns the static testimonial list.
func (r *CatalogRepository) Testimonials() []domain.Testimonial {
	return r.testimonials
}

func defaultServiceCatalog() ServiceCatalog {
	return ServiceCatalog{
		Categories: []string{"hair", "skin", "nails", "makeup"},
		Services: []domain.Service{
			{ID: 1, Name: "Haircut", Category: "hair", Description: "Precision cut and styling tailored to you.", Duration: "45 min", Price: "₹500", Popular: true},
			{ID: 2, Name: "Hair Coloring", Category: "hair", Description: "Full color, highlights or balayage.", Duration: "2 hrs", Price: "₹2500"},
			{ID: 3, Name: "Hair Spa", Category: "hair", Description: "Deep conditioning treatment for damaged hair.", Duration: "1 hr", Price: "₹1200"},
			{ID: 4, Name: "Ayurvedic Facial", Category: "skin", Description: "Herbal facial with traditional ingredients.", Duration: "1 hr", Price: "₹1500", Popular: true},
			{ID: 5, Name: "Manicure & Pedicure", Category: "nails", Description: "Classic nail care for hands and feet.", Duration: "1.5 hrs", Price: "₹1000"},
			{ID: 6, Name: "Bridal Makeup", Category: "makeup", Description: "Complete bridal look with trial session.", Duration: "3 hrs", Price: "₹8000"},
		},
	}
}

func defaultGalleryCatalog() GalleryCatalog {
	return GalleryCatalog{
		Categories: []string{"hair", "skin", "nails", "makeup"},
		Gallery: []domain.GalleryItem{
			{ID: 1, Title: "Layered Cut", Category: "hair", Description: "Soft layered cut with face framing.", Image: "/images/gallery/layered-cut.jpg", Featured: true},
			{ID: 2, Title: "Balayage", Category: "hair", Description: "Sun-kissed balayage color.", Image: "/images/gallery/balayage.jpg", Featured: true},
			{ID: 3, Title: "Glow Facial", Category: "skin", Description: "Post-facial glow.", Image: "/images/gallery/glow-facial.jpg"},
			{ID: 4, Title: "Bridal Look", Category: "makeup", Description: "Classic bridal makeup.", Image: "/images/gallery/bridal-look.jpg", Featured: true},
			{ID: 5, Title: "Nail Art", Category: "nails", Description: "Hand-painted nail art.", Image: "/images/gallery/nail-art.jpg"},
		},
	}
}

func defaultTestimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{ID: 1, Name: "Priya Sharma", Role: "Regular Client", Content: "Absolutely loved the service — very professional and tailored to my needs!", Rating: 5, Date: "2026-11-12", Avatar: "https://randomuser.me/api/portraits/women/68.jpg"},
		{ID: 2, Name: "Rajesh Kumar", Role: "First-time Visitor", Content: "The Ayurvedic facial was amazing — skin felt rejuvenated and glowing.", Rating: 5, Date: "2026-10-03", Avatar: "https://randomuser.me/api/portraits/men/45.jpg"},
		{ID: 3, Name: "Aisha Patel", Role: "Wellness Enthusiast", Content: "Friendly staff and authentic treatments. Highly recommend to my friends!", Rating: 5, Date: "2026-09-21", Avatar: "https://randomuser.me/api/portraits/women/72.jpg"},
	}
}
