// Package seed provides helpers to create development and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"newsroom/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	NumReaders     int
	NumJournalists int
	NumEditors     int
	NumPublishers  int
	NumArticles    int
	NumNewsletters int
	// MaxDays spreads generated created_at timestamps over this many days back.
	MaxDays int
	// SkipBcrypt uses a plaintext password for faster local seeding.
	SkipBcrypt bool
	// DryRun logs what would be created without writing to the database.
	DryRun bool
	Clean  bool
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(seed)), nextID: 1000}
}

// pastTime returns a timestamp spread over the configured MaxDays window so
// feeds and listings have a realistic ordering to exercise.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample user with the given role.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(role models.Role, overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Role:     role,
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s (%s)", user.Username, user.Role)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePublisher constructs and persists a publisher with a unique name.
func (f *Factory) CreatePublisher(overrides ...func(*models.Publisher)) (*models.Publisher, error) {
	publisher := &models.Publisher{
		Name: fmt.Sprintf("%s %s %d", gofakeit.City(), gofakeit.RandomString([]string{
			"Times", "Herald", "Tribune", "Chronicle", "Gazette", "Observer", "Post", "Dispatch",
		}), gofakeit.Number(10, 9999)),
	}

	for _, override := range overrides {
		override(publisher)
	}

	if f.opts.DryRun {
		f.nextID++
		publisher.ID = f.nextID
		log.Printf("[dry-run] CreatePublisher: %s", publisher.Name)
		return publisher, nil
	}

	if err := f.db.Create(publisher).Error; err != nil {
		return nil, err
	}
	return publisher, nil
}

// BuildArticle constructs an article struct without persisting it. Useful for
// batching. A nil publisher produces independent content.
func (f *Factory) BuildArticle(author *models.User, publisher *models.Publisher, overrides ...func(*models.Article)) *models.Article {
	article := &models.Article{
		Title:    gofakeit.Sentence(6),
		Content:  gofakeit.Paragraph(2, 4, 8, "\n\n"),
		AuthorID: author.ID,
		Approved: f.rng.Intn(100) < 70,
	}
	article.CreatedAt = f.pastTime()

	if publisher != nil {
		article.PublisherID = &publisher.ID
	}

	for _, override := range overrides {
		override(article)
	}
	return article
}

// CreateArticlesBatch persists multiple articles in a single DB call.
func (f *Factory) CreateArticlesBatch(articles []*models.Article) error {
	if len(articles) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, a := range articles {
			f.nextID++
			a.ID = f.nextID
		}
		log.Printf("[dry-run] CreateArticlesBatch: %d articles (no DB write)", len(articles))
		return nil
	}
	return f.db.Create(&articles).Error
}

// BuildNewsletter constructs a newsletter struct without persisting it.
func (f *Factory) BuildNewsletter(author *models.User, publisher *models.Publisher, overrides ...func(*models.Newsletter)) *models.Newsletter {
	newsletter := &models.Newsletter{
		Title:    fmt.Sprintf("%s Weekly", gofakeit.BuzzWord()),
		Content:  gofakeit.Paragraph(1, 3, 6, "\n\n"),
		AuthorID: author.ID,
	}
	newsletter.CreatedAt = f.pastTime()

	if publisher != nil {
		newsletter.PublisherID = &publisher.ID
	}

	for _, override := range overrides {
		override(newsletter)
	}
	return newsletter
}

// CreateNewslettersBatch persists multiple newsletters in a single DB call.
func (f *Factory) CreateNewslettersBatch(newsletters []*models.Newsletter) error {
	if len(newsletters) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, n := range newsletters {
			f.nextID++
			n.ID = f.nextID
		}
		log.Printf("[dry-run] CreateNewslettersBatch: %d newsletters (no DB write)", len(newsletters))
		return nil
	}
	return f.db.Create(&newsletters).Error
}
