package seed

import (
	"fmt"
	"log"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates building a realistic newsroom: publishers with staff,
// readers with subscriptions, and a spread of approved and pending content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts), opts: opts}
}

// ClearAll removes all seeded data. Join tables are cleared first so foreign
// keys never dangle.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	joinTables := []string{
		"reader_publisher_subscriptions",
		"reader_journalist_subscriptions",
		"publisher_editors",
		"publisher_journalists",
		"user_role_groups",
	}
	for _, table := range joinTables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	entities := []interface{}{
		&models.Article{},
		&models.Newsletter{},
		&models.Publisher{},
		&models.User{},
		&models.RoleGroup{},
	}
	for _, entity := range entities {
		if err := s.db.Unscoped().Where("1 = 1").Delete(entity).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", entity, err)
		}
	}
	return nil
}

// Run builds the full data set described by the seeder options.
func (s *Seeder) Run() error {
	roleGroups, err := s.ensureRoleGroups()
	if err != nil {
		return fmt.Errorf("role groups: %w", err)
	}

	publishers := make([]*models.Publisher, 0, s.opts.NumPublishers)
	for i := 0; i < s.opts.NumPublishers; i++ {
		p, err := s.factory.CreatePublisher()
		if err != nil {
			return fmt.Errorf("publisher %d: %w", i, err)
		}
		publishers = append(publishers, p)
	}
	log.Printf("Created %d publishers", len(publishers))

	journalists, err := s.seedUsers(models.RoleJournalist, s.opts.NumJournalists, roleGroups)
	if err != nil {
		return err
	}
	editors, err := s.seedUsers(models.RoleEditor, s.opts.NumEditors, roleGroups)
	if err != nil {
		return err
	}
	readers, err := s.seedUsers(models.RoleReader, s.opts.NumReaders, roleGroups)
	if err != nil {
		return err
	}
	log.Printf("Created %d journalists, %d editors, %d readers",
		len(journalists), len(editors), len(readers))

	if err := s.staffPublishers(publishers, editors, journalists); err != nil {
		return fmt.Errorf("staffing publishers: %w", err)
	}

	if err := s.seedContent(journalists, publishers); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	if err := s.seedSubscriptions(readers, publishers, journalists); err != nil {
		return fmt.Errorf("subscriptions: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

func (s *Seeder) ensureRoleGroups() (map[models.Role]*models.RoleGroup, error) {
	groups := make(map[models.Role]*models.RoleGroup, 3)
	for _, role := range []models.Role{models.RoleReader, models.RoleEditor, models.RoleJournalist} {
		group := &models.RoleGroup{Name: role.GroupName()}
		if s.opts.DryRun {
			groups[role] = group
			continue
		}
		if err := s.db.Where("name = ?", group.Name).FirstOrCreate(group).Error; err != nil {
			return nil, err
		}
		groups[role] = group
	}
	return groups, nil
}

func (s *Seeder) seedUsers(role models.Role, count int, groups map[models.Role]*models.RoleGroup) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := s.factory.CreateUser(role)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", role, i, err)
		}
		if !s.opts.DryRun {
			if err := s.db.Model(user).Association("RoleGroups").Replace(groups[role]); err != nil {
				log.Printf("warning: role group for %s: %v", user.Username, err)
			}
		}
		users = append(users, user)
	}
	return users, nil
}

// staffPublishers distributes editors and journalists across the publishers
// round-robin, so every publisher has at least one of each when counts allow.
func (s *Seeder) staffPublishers(publishers []*models.Publisher, editors, journalists []*models.User) error {
	if s.opts.DryRun || len(publishers) == 0 {
		return nil
	}
	for i, editor := range editors {
		publisher := publishers[i%len(publishers)]
		if err := s.db.Model(publisher).Association("Editors").Append(editor); err != nil {
			return err
		}
	}
	for i, journalist := range journalists {
		publisher := publishers[i%len(publishers)]
		if err := s.db.Model(publisher).Association("Journalists").Append(journalist); err != nil {
			return err
		}
	}
	return nil
}

// seedContent generates articles and newsletters. Roughly a fifth of content
// is left without a publisher, which makes it independent.
func (s *Seeder) seedContent(journalists []*models.User, publishers []*models.Publisher) error {
	if len(journalists) == 0 {
		return nil
	}

	articles := make([]*models.Article, 0, s.opts.NumArticles)
	for i := 0; i < s.opts.NumArticles; i++ {
		author := journalists[s.factory.rng.Intn(len(journalists))]
		var publisher *models.Publisher
		if len(publishers) > 0 && s.factory.rng.Intn(100) >= 20 {
			publisher = publishers[s.factory.rng.Intn(len(publishers))]
		}
		articles = append(articles, s.factory.BuildArticle(author, publisher))
	}
	if err := s.factory.CreateArticlesBatch(articles); err != nil {
		return err
	}
	log.Printf("Created %d articles", len(articles))

	newsletters := make([]*models.Newsletter, 0, s.opts.NumNewsletters)
	for i := 0; i < s.opts.NumNewsletters; i++ {
		author := journalists[s.factory.rng.Intn(len(journalists))]
		var publisher *models.Publisher
		if len(publishers) > 0 && s.factory.rng.Intn(100) >= 20 {
			publisher = publishers[s.factory.rng.Intn(len(publishers))]
		}
		newsletters = append(newsletters, s.factory.BuildNewsletter(author, publisher))
	}
	if err := s.factory.CreateNewslettersBatch(newsletters); err != nil {
		return err
	}
	log.Printf("Created %d newsletters", len(newsletters))
	return nil
}

// seedSubscriptions gives every reader a few publisher and journalist
// subscriptions so the feed has something to show.
func (s *Seeder) seedSubscriptions(readers []*models.User, publishers []*models.Publisher, journalists []*models.User) error {
	if s.opts.DryRun {
		return nil
	}
	for _, reader := range readers {
		if len(publishers) > 0 {
			count := 1 + s.factory.rng.Intn(min(3, len(publishers)))
			for _, idx := range s.factory.rng.Perm(len(publishers))[:count] {
				if err := s.db.Model(reader).Association("SubscribedPublishers").Append(publishers[idx]); err != nil {
					return err
				}
			}
		}
		if len(journalists) > 0 && s.factory.rng.Intn(100) < 60 {
			count := 1 + s.factory.rng.Intn(min(2, len(journalists)))
			for _, idx := range s.factory.rng.Perm(len(journalists))[:count] {
				if err := s.db.Model(reader).Association("SubscribedJournalists").Append(journalists[idx]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
